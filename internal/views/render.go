package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/habitflower/internal/ui"
)

type AppData struct {
	Styles      ui.Styles
	Tabs        string
	MainPane    string
	DetailPane  string
	StatusLine  string
	StatusError bool
	Palette     string
	Footer      string
	PaneWidth   int
}

func RenderApp(data AppData) string {
	st := data.Styles
	width := data.PaneWidth
	if width <= 0 {
		width = 58
	}

	main := st.Card.Width(width).Render(data.MainPane)
	row := main
	if strings.TrimSpace(data.DetailPane) != "" {
		detail := st.Card.Width(width).Render(data.DetailPane)
		row = lipgloss.JoinHorizontal(lipgloss.Top, main, detail)
	}

	lines := []string{data.Tabs, row}
	if data.StatusLine != "" {
		if data.StatusError {
			lines = append(lines, st.Error.Render(data.StatusLine))
		} else {
			lines = append(lines, st.Accent.Render(data.StatusLine))
		}
	}
	if data.Palette != "" {
		lines = append(lines, st.Selected.Render(data.Palette))
	}
	if data.Footer != "" {
		lines = append(lines, st.Muted.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders a to-do description with the glamour style matching
// the active scheme. Render failures fall back to the raw text.
func RenderMarkdown(md string, scheme ui.Scheme, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if scheme.IsLight() {
		style = "light"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
