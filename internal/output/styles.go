package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Every color the CLI prints comes from here.
var (
	// ColorCyan is used for identifiable nouns: component names, module keys.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "resolved" module status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "pending" module status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" module status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (component names, module keys).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (paths, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleHeader styles table headers.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Module status values shown by `load --resolve`.
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
	StatusFailed   = "failed"
)

// StatusStyle returns the lipgloss style for a module status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusResolved:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusPending:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minKeyColumnWidth keeps status words aligned across module lines.
const minKeyColumnWidth = 40

// FormatModuleLine renders a dotted module key with a right-aligned,
// color-coded status suffix.
//
// Format: m:<key>  <status>
func FormatModuleLine(key, status string) string {
	padding := minKeyColumnWidth - len(key)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("m:") +
		StyleNoun.Render(key) +
		strings.Repeat(" ", padding) +
		StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
