package widget

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a two-color gradient pair for the arc and glyph fill.
type Palette struct {
	Start colorful.Color
	End   colorful.Color
}

var (
	chargingGreen = mustPalette("#69F0AE", "#00C853")
	lowRed        = mustPalette("#F44336", "#D32F2F")
	mediumAmber   = mustPalette("#FFC107", "#FFA000")
	highCyan      = mustPalette("#00E5FF", "#00B8D4")

	ringBackground = tcell.NewRGBColor(60, 60, 60)
	glyphBody      = tcell.NewRGBColor(80, 80, 80)
	glyphBorder    = tcell.NewRGBColor(200, 200, 200)
	textWhite      = tcell.ColorWhite
)

func mustPalette(start, end string) Palette {
	s, err := colorful.Hex(start)
	if err != nil {
		panic(err)
	}
	e, err := colorful.Hex(end)
	if err != nil {
		panic(err)
	}
	return Palette{Start: s, End: e}
}

// PaletteFor picks the gradient pair for the current reading: plugged wins
// over every charge level, then low/medium/high thresholds apply.
func PaletteFor(percent float64, plugged bool) Palette {
	switch {
	case plugged:
		return chargingGreen
	case percent < 20:
		return lowRed
	case percent < 50:
		return mediumAmber
	default:
		return highCyan
	}
}

// At blends the pair at fraction frac in [0,1] and maps it to a terminal
// color. Plain RGB blending matches a linear paint gradient.
func (p Palette) At(frac float64) tcell.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	r, g, b := p.Start.BlendRgb(p.End, frac).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
