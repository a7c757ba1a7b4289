package tui

import "time"

// ReducedMotionMsg delivers a new reduced-motion preference to the feed.
type ReducedMotionMsg struct{ Reduced bool }

// FrameMsg advances card animations by one frame.
type FrameMsg time.Time
