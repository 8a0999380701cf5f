// Package style provides the colors and icons shared by the logger and the
// terminal time bar.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Blue   = lipgloss.Color("#5B8FF9")
	Slate  = lipgloss.Color("#667085")
	Track  = lipgloss.Color("#E2E2E2")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Play    = "▶"
	Pause   = "⏸"
	Handle  = "┃"
	Full    = "█"
	Empty   = "░"
)
