package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// HabitFlower theme: the light/dark palette plus a few helpers for painting
// translucent cells on a terminal that has no alpha channel.

type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

func ParseScheme(raw string) (Scheme, bool) {
	switch Scheme(strings.ToLower(strings.TrimSpace(raw))) {
	case SchemeLight:
		return SchemeLight, true
	case SchemeDark:
		return SchemeDark, true
	default:
		return "", false
	}
}

func (s Scheme) IsLight() bool { return s != SchemeDark }

func (s Scheme) Toggle() Scheme {
	if s == SchemeDark {
		return SchemeLight
	}
	return SchemeDark
}

type Role string

const (
	RoleText            Role = "text"
	RoleBackground      Role = "background"
	RoleTint            Role = "tint"
	RoleIcon            Role = "icon"
	RoleTabIconDefault  Role = "tabIconDefault"
	RoleTabIconSelected Role = "tabIconSelected"
)

// Resolver maps a scheme and role to a concrete colour.
type Resolver interface {
	ResolveColor(scheme Scheme, role Role) lipgloss.Color
}

type Palette map[Scheme]map[Role]string

var DefaultPalette = Palette{
	SchemeLight: {
		RoleText:            "#6B3F69",
		RoleBackground:      "#FEF3FF",
		RoleTint:            "#6B3F69",
		RoleIcon:            "#9b6b8f",
		RoleTabIconDefault:  "#9b6b8f",
		RoleTabIconSelected: "#6B3F69",
	},
	SchemeDark: {
		RoleText:            "#FEF3FF",
		RoleBackground:      "#1f0f20",
		RoleTint:            "#4BAF17",
		RoleIcon:            "#b99fc0",
		RoleTabIconDefault:  "#b99fc0",
		RoleTabIconSelected: "#4BAF17",
	},
}

// ResolveColor falls back to the light scheme, then to the light text colour.
func (p Palette) ResolveColor(scheme Scheme, role Role) lipgloss.Color {
	if roles, ok := p[scheme]; ok {
		if hex, ok := roles[role]; ok {
			return lipgloss.Color(hex)
		}
	}
	if hex, ok := p[SchemeLight][role]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(DefaultPalette[SchemeLight][RoleText])
}

var habitColors = []string{"#6B3F69", "#4BAF17", "#FFB020", "#3B82F6"}

// HabitColor cycles the per-habit accent colours by display position.
func HabitColor(i int) lipgloss.Color {
	if i < 0 {
		i = 0
	}
	return lipgloss.Color(habitColors[i%len(habitColors)])
}

// Blend paints tint over background at the given opacity.
func Blend(background, tint lipgloss.Color, opacity float64) lipgloss.Color {
	bg, err := colorful.Hex(string(background))
	if err != nil {
		return tint
	}
	fg, err := colorful.Hex(string(tint))
	if err != nil {
		return background
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return lipgloss.Color(bg.BlendRgb(fg, opacity).Clamped().Hex())
}

// ContrastColor picks black or white text for a given fill.
func ContrastColor(fill lipgloss.Color) lipgloss.Color {
	c, err := colorful.Hex(string(fill))
	if err != nil {
		return lipgloss.Color("#FFFFFF")
	}
	luminance := 0.299*c.R + 0.587*c.G + 0.114*c.B
	if luminance > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}
