package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Status glyphs prefixed to console lines.
const (
	glyphSuccess = "✅"
	glyphError   = "❗"
	glyphFailure = "❌"
	glyphInfo    = "🔲"
)

type styles struct {
	success lipgloss.Style
	err     lipgloss.Style
	info    lipgloss.Style
	title   lipgloss.Style
}

// newStyles binds styles to w so that colours are dropped automatically when
// w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		err:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		info:    r.NewStyle().Faint(true),
		title:   r.NewStyle().Bold(true),
	}
}
