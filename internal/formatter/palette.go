package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/strafe/internal/shared"
)

// Palette holds the styles used for one line: the command type token, the three emphasis classes and the base bytes.
type Palette struct {
	name lipgloss.Style
	a    lipgloss.Style
	b    lipgloss.Style
	c    lipgloss.Style
	base lipgloss.Style
}

// NewPalette builds a [Palette] bound to the given [lipgloss.Renderer].
func NewPalette(r *lipgloss.Renderer, display shared.DisplayConfig) Palette {
	return Palette{
		name: newStyle(r, display.Name),
		a:    newStyle(r, display.EmphasisA),
		b:    newStyle(r, display.EmphasisB),
		c:    newStyle(r, display.EmphasisC),
		base: newStyle(r, display.Base),
	}
}

func newStyle(r *lipgloss.Renderer, fg string) lipgloss.Style {
	return r.NewStyle().Foreground(lipgloss.Color(fg))
}

// Style returns the style used for payload bytes of the given emphasis class.
func (p Palette) Style(e Emphasis) lipgloss.Style {
	switch e {
	case EmphasisA:
		return p.a
	case EmphasisB:
		return p.b
	case EmphasisC:
		return p.c
	default:
		return p.base
	}
}
