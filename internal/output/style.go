package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"studyplan/internal/service"
)

// Theme holds the styles used when writing to one destination. Styles
// render as plain text when the destination is not a color terminal.
type Theme struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Done     lipgloss.Style
	Today    lipgloss.Style
	Bar      lipgloss.Style
	priority map[service.Priority]lipgloss.Style
}

// NewTheme builds a theme whose color profile is detected from w.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	return Theme{
		Title: r.NewStyle().Bold(true),
		Muted: r.NewStyle().Faint(true),
		Done:  r.NewStyle().Strikethrough(true).Faint(true),
		Today: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Bar:   r.NewStyle().Foreground(lipgloss.Color("212")),
		priority: map[service.Priority]lipgloss.Style{
			service.PriorityLow:    r.NewStyle().Foreground(lipgloss.Color("42")),
			service.PriorityMedium: r.NewStyle().Foreground(lipgloss.Color("214")),
			service.PriorityHigh:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
	}
}

// Priority renders a priority badge.
func (t Theme) Priority(p service.Priority, text string) string {
	if s, ok := t.priority[p]; ok {
		return s.Render(text)
	}
	return text
}
