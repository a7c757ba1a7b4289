package model

// IconKey names one of the severity icons.
type IconKey string

const (
	IconInfo           IconKey = "info"
	IconAlertTriangle  IconKey = "alert_triangle"
	IconWarningOctagon IconKey = "warning_octagon"
	IconSiren          IconKey = "siren"
)

// Valid reports whether k is a known icon.
func (k IconKey) Valid() bool {
	switch k {
	case IconInfo, IconAlertTriangle, IconWarningOctagon, IconSiren:
		return true
	default:
		return false
	}
}
