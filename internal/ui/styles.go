package ui

import "github.com/charmbracelet/lipgloss"

const (
	IconSeedling = "🌱"
	IconCheck    = "✓"
	IconToday    = "▾"
	IconInfo     = "ℹ"
	IconClipbd   = "📋"
)

// Styles is the resolved set of lipgloss styles for one scheme.
type Styles struct {
	Scheme     Scheme
	Background lipgloss.Color
	Text       lipgloss.Color
	Tint       lipgloss.Color
	Icon       lipgloss.Color

	Title    lipgloss.Style
	Date     lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	TabOn    lipgloss.Style
	TabOff   lipgloss.Style
}

func NewStyles(r Resolver, scheme Scheme) Styles {
	if r == nil {
		r = DefaultPalette
	}
	bg := r.ResolveColor(scheme, RoleBackground)
	text := r.ResolveColor(scheme, RoleText)
	tint := r.ResolveColor(scheme, RoleTint)
	icon := r.ResolveColor(scheme, RoleIcon)
	return Styles{
		Scheme:     scheme,
		Background: bg,
		Text:       text,
		Tint:       tint,
		Icon:       icon,
		Title:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Date:       lipgloss.NewStyle().Foreground(icon),
		Body:       lipgloss.NewStyle().Foreground(text),
		Muted:      lipgloss.NewStyle().Foreground(icon),
		Accent:     lipgloss.NewStyle().Bold(true).Foreground(tint),
		Error:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(icon).Padding(0, 1),
		Selected:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(tint).Padding(0, 1),
		TabOn:      lipgloss.NewStyle().Bold(true).Foreground(r.ResolveColor(scheme, RoleTabIconSelected)).Underline(true),
		TabOff:     lipgloss.NewStyle().Foreground(r.ResolveColor(scheme, RoleTabIconDefault)),
	}
}
