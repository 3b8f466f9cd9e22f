// Package render prints converted collections to the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor     = lipgloss.Color("#6c6c6c")
	TextColor    = lipgloss.Color("#e0e0e0")
	AccentColor  = lipgloss.Color("#7aa2f7")
	ErrorColor   = lipgloss.Color("#f7768e")
	SuccessColor = lipgloss.Color("#9ece6a")
)

// Message styles
var (
	TitleStyle   = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	TextStyle    = lipgloss.NewStyle().Foreground(TextColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	DimStyle     = lipgloss.NewStyle().Foreground(DimColor)
	AddedStyle   = lipgloss.NewStyle().Foreground(SuccessColor)
	RemovedStyle = lipgloss.NewStyle().Foreground(ErrorColor)
)

// Message prefixes
const (
	SuccessPrefix = "✓ "
	ErrorPrefix   = "✗ "
)

// Success formats a success line.
func Success(msg string) string {
	return SuccessStyle.Render(SuccessPrefix + msg)
}

// Error formats an error line.
func Error(msg string) string {
	return ErrorStyle.Render(ErrorPrefix + msg)
}
