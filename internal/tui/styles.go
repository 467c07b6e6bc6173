package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/qianyan/rimekit/internal/rime"
)

// styles holds the lipgloss styles for the repl view, derived from the
// resolved backend color scheme when one is configured.
type styles struct {
	document  lipgloss.Style
	preedit   lipgloss.Style
	candidate lipgloss.Style
	selected  lipgloss.Style
	comment   lipgloss.Style
	status    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		document:  lipgloss.NewStyle(),
		preedit:   lipgloss.NewStyle().Bold(true).Underline(true),
		candidate: lipgloss.NewStyle().Padding(0, 1),
		selected:  lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		comment:   lipgloss.NewStyle().Faint(true),
		status:    lipgloss.NewStyle().Faint(true),
	}
}

// stylesFor derives styles from a backend palette.
func stylesFor(scheme rime.ColorScheme) styles {
	s := defaultStyles()
	if scheme.Background != "" {
		bg := lipgloss.Color(scheme.Background)
		s.candidate = s.candidate.Background(bg)
		s.selected = s.selected.Background(bg)
	}
	if scheme.Text != "" {
		s.preedit = s.preedit.Foreground(lipgloss.Color(scheme.Text))
	}
	if scheme.CandidateText != "" {
		s.candidate = s.candidate.Foreground(lipgloss.Color(scheme.CandidateText))
	}
	return s
}
