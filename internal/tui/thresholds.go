package tui

import "github.com/charmbracelet/lipgloss"

// severity levels for the tracked percentages.
type severity int

const (
	severityNormal severity = iota
	severityWarning
	severityCritical
)

// Thresholds on the percentage of total objects still degraded/misplaced.
// Above 10% a meaningful share of the cluster is at reduced redundancy.
const (
	percentWarning  = 1.0
	percentCritical = 10.0
)

// percentSeverity classifies a tracked percentage.
func percentSeverity(percent float64) severity {
	switch {
	case percent >= percentCritical:
		return severityCritical
	case percent >= percentWarning:
		return severityWarning
	default:
		return severityNormal
	}
}

// severityColor returns the card accent color for a severity level.
func severityColor(s severity) lipgloss.Color {
	switch s {
	case severityCritical:
		return colorRed
	case severityWarning:
		return colorYellow
	default:
		return colorGreen
	}
}

// severityTitleStyle returns the card title style for a severity level.
// Normal severity keeps the standard dim style.
func severityTitleStyle(s severity) lipgloss.Style {
	switch s {
	case severityCritical:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	case severityWarning:
		return lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	default:
		return StyleDim
	}
}
