// Package style holds the colours and icons shared by log and table output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Saffron = lipgloss.Color("#E8A317")
	Ash     = lipgloss.Color("#667085")
	Herb    = lipgloss.Color("#22A06B")
	Tomato  = lipgloss.Color("#D93025")
	Plum    = lipgloss.Color("#7C3AED")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
