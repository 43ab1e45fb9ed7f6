package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kquiz/internal/ui/theme"
)

// LightstickVariant selects which lightstick art to display.
type LightstickVariant int

const (
	LightstickIdle    LightstickVariant = iota // Default pink
	LightstickGlowing                          // Gold rays, hot streak
)

const lightstickIdle = ` ╭───╮
 │ ♥ │
 ╰─┬─╯
   │
   │
  ═╧═`

const lightstickGlowing = `✦ ╭───╮ ✦
  │ ♥ │
✦ ╰─┬─╯ ✦
    │
    │
   ═╧═`

// RenderLightstick returns the lightstick ASCII art for the given variant.
func RenderLightstick(variant ...LightstickVariant) string {
	v := LightstickIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	art := lightstickIdle
	fg := theme.Primary
	if v == LightstickGlowing {
		art = lightstickGlowing
		fg = theme.Gold
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
