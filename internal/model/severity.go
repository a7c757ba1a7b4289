package model

// Severity is the risk tier of an alert. Values outside the four known levels
// are representable because they arrive from callers; they always resolve as
// SeverityLow.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// EscalationLevel is a descriptive tag attached to each severity tier.
type EscalationLevel string

const (
	EscalationMonitor   EscalationLevel = "monitor"
	EscalationCaution   EscalationLevel = "caution"
	EscalationUrgent    EscalationLevel = "urgent"
	EscalationEmergency EscalationLevel = "emergency"
)

// SeverityProfile holds the canonical display attributes of a severity tier.
type SeverityProfile struct {
	Label      string
	Color      string // hex, e.g. "#E74C3C"
	Icon       IconKey
	Escalation EscalationLevel
}

// severityProfiles is the canonical severity map. Read-only after init.
var severityProfiles = map[Severity]SeverityProfile{
	SeverityLow: {
		Label:      "LOW",
		Color:      "#2ECC71",
		Icon:       IconInfo,
		Escalation: EscalationMonitor,
	},
	SeverityMedium: {
		Label:      "MEDIUM",
		Color:      "#F1C40F",
		Icon:       IconAlertTriangle,
		Escalation: EscalationCaution,
	},
	SeverityHigh: {
		Label:      "HIGH",
		Color:      "#E67E22",
		Icon:       IconWarningOctagon,
		Escalation: EscalationUrgent,
	},
	SeverityCritical: {
		Label:      "CRITICAL",
		Color:      "#E74C3C",
		Icon:       IconSiren,
		Escalation: EscalationEmergency,
	},
}

// Severities returns the known levels, lowest first.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// Valid reports whether s is one of the four known levels. Matching is exact.
func (s Severity) Valid() bool {
	_, ok := severityProfiles[s]
	return ok
}

// Normalize returns s when it is a known level and SeverityLow otherwise.
func (s Severity) Normalize() Severity {
	if s.Valid() {
		return s
	}
	return SeverityLow
}

// Profile returns the canonical profile for s, falling back to the low profile.
func (s Severity) Profile() SeverityProfile {
	return severityProfiles[s.Normalize()]
}
