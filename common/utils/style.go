package utils

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

var (
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3185FC")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#0A64E2"))
	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff9a59"))
	ArrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#adadad"))
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06cc00"))
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#cc0000"))
	StatsStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#d864ff"))
)

// KeyValue renders a "key -> value" line.
func KeyValue(key string, value string) string {
	return KeyStyle.Render(key) + ArrowStyle.Render(" -> ") + ValueStyle.Render(value)
}
