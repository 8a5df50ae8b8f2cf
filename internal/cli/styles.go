// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (cinnabar).
	PrimaryColor = lipgloss.Color("#E4572E")
	// AuspiciousColor marks good and excellent days.
	AuspiciousColor = lipgloss.Color("#4ECDC4")
	// WarningColor marks consult-promoted days and cautions.
	WarningColor = lipgloss.Color("#FFE66D")
	// DireColor marks forbidden and dire days.
	DireColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// PillarStyle renders stem-branch pairs.
	PillarStyle = lipgloss.NewStyle().
			Bold(true)

	// AuspiciousStyle formats good ratings.
	AuspiciousStyle = lipgloss.NewStyle().
			Foreground(AuspiciousColor)

	// WarningStyle formats consult markers.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// DireStyle formats forbidden markers.
	DireStyle = lipgloss.NewStyle().
			Foreground(DireColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// RatingStyle picks the style matching a rating value.
func RatingStyle(value int) lipgloss.Style {
	switch {
	case value >= 3:
		return AuspiciousStyle
	case value == 0:
		return DireStyle
	case value < 0:
		return WarningStyle
	default:
		return SubtleStyle
	}
}
