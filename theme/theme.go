package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
	Unicode bool
}

type Symbols struct {
	Rest  rune // · cell holding no symbol
	Beat  rune // ╌ gutter mark on whole-beat rows
	Drum  rune // ◆ percussion column header mark
	Sharp rune // ♯ in note labels
}

func New(unicode bool) *Theme {
	s := Symbols{
		Rest:  '.',
		Beat:  '-',
		Drum:  '#',
		Sharp: '#',
	}
	if unicode {
		s = Symbols{
			Rest:  '·',
			Beat:  '╌',
			Drum:  '◆',
			Sharp: '♯',
		}
	}
	return &Theme{
		Palette: Default(),
		Symbols: s,
		Unicode: unicode,
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0  // deep slate
	RoleSurface = 0.1  // dark slate
	RoleMuted   = 0.2  // dusk blue
	RoleFG      = 0.45 // pale foreground
	RoleAccent  = 0.55 // sky blue
	RoleCursor  = 0.65 // cyan
	RoleActive  = 0.8  // green
	RoleWarning = 0.9  // amber
	RoleError   = 1.0  // rose
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Active() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleActive))
}

func (t *Theme) Cursor() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleCursor))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Error() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleError))
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

// ChannelColor spreads the bright half of the palette across n channel
// columns so adjacent columns stay distinguishable.
func (t *Theme) ChannelColor(i, n int) lipgloss.Color {
	if n <= 1 {
		return t.Accent()
	}
	return t.Color(0.45 + 0.55*float64(i)/float64(n-1))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
