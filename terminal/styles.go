package terminal

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title lipgloss.Style
	index lipgloss.Style
	row   lipgloss.Style
	empty lipgloss.Style
	err   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginBottom(1),
		index: r.NewStyle().Foreground(lipgloss.Color("8")).PaddingRight(1),
		row:   r.NewStyle(),
		empty: r.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		err:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}
