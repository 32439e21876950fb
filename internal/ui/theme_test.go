package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestResolveColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#FEF3FF"), DefaultPalette.ResolveColor(SchemeLight, RoleBackground))
	assert.Equal(t, lipgloss.Color("#4BAF17"), DefaultPalette.ResolveColor(SchemeDark, RoleTint))
	assert.Equal(t, lipgloss.Color("#6B3F69"), DefaultPalette.ResolveColor(Scheme("sepia"), RoleTint), "unknown scheme falls back to light")
	assert.Equal(t, lipgloss.Color("#6B3F69"), DefaultPalette.ResolveColor(SchemeDark, Role("border")), "unknown role falls back to text")
}

func TestParseAndToggleScheme(t *testing.T) {
	s, ok := ParseScheme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, SchemeDark, s)
	assert.False(t, s.IsLight())
	assert.Equal(t, SchemeLight, s.Toggle())

	_, ok = ParseScheme("solarized")
	assert.False(t, ok)
}

func TestHabitColorCycles(t *testing.T) {
	assert.Equal(t, HabitColor(0), HabitColor(4))
	assert.Equal(t, lipgloss.Color("#4BAF17"), HabitColor(1))
	assert.Equal(t, HabitColor(0), HabitColor(-3))
}

func TestBlend(t *testing.T) {
	bg := lipgloss.Color("#000000")
	fg := lipgloss.Color("#FFFFFF")
	assert.Equal(t, "#000000", strings.ToLower(string(Blend(bg, fg, 0))))
	assert.Equal(t, "#ffffff", strings.ToLower(string(Blend(bg, fg, 1))))
	assert.Equal(t, "#ffffff", strings.ToLower(string(Blend(bg, fg, 3))), "opacity clamps")
	assert.Equal(t, fg, Blend(lipgloss.Color("not-a-colour"), fg, 0.5))
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#000000"), ContrastColor("#FFB020"))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), ContrastColor("#6B3F69"))
	assert.Equal(t, lipgloss.Color("#FFFFFF"), ContrastColor("bogus"))
}

func TestNewStylesUsesScheme(t *testing.T) {
	st := NewStyles(nil, SchemeDark)
	assert.Equal(t, lipgloss.Color("#1f0f20"), st.Background)
	assert.Equal(t, lipgloss.Color("#4BAF17"), st.Tint)
}
