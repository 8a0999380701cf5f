package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/timebar/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Blue).
			Foreground(style.White)

	selectedCellStyle = lipgloss.NewStyle().
				Foreground(style.Blue)

	trackCellStyle = lipgloss.NewStyle().
			Foreground(style.Track)

	handleStyle = lipgloss.NewStyle().
			Foreground(style.Ink).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)
