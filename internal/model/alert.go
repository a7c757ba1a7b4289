package model

// Overrides are caller-supplied replacements for the canonical severity
// attributes. An empty field means "not set".
type Overrides struct {
	Label string
	Color string
	Icon  IconKey
}

// Alert carries the fields an alert card binds to.
type Alert struct {
	ID          string
	Severity    Severity
	Title       string
	RiskSummary string
	Overrides   Overrides
}
