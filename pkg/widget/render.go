package widget

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Gauge box geometry, in cells. The ring uses a 2:1 x/y radius so it reads
// as a circle in a typical terminal cell aspect.
const (
	boxWidth  = 27
	boxHeight = 13
	centerX   = 13
	centerY   = 6

	ringRadiusX = 10.0
	ringRadiusY = 5.0
	ringBand    = 0.12 // normalized ring thickness
)

// Battery glyph geometry, relative to the gauge center.
const (
	glyphCapRow  = -3
	glyphTopRow  = -2
	glyphRows    = 4 // body rows glyphTopRow..glyphTopRow+glyphRows-1
	glyphHalfW   = 2 // body spans centerX +- glyphHalfW
	textRow      = 4
	boltRune     = 'ϟ'
	fullBlock    = '█'
	capHalfBlock = '▄'
)

// eighth blocks used for the partial fill row, from empty to 7/8.
var fillEighths = [8]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇'}

// ringPoint classifies a cell offset from the gauge center against the ring
// scaled by scale. angle is in degrees clockwise from the top; frac is the
// gradient position along the top-left to bottom-right diagonal.
func ringPoint(dx, dy int, scale float64) (on bool, angle, frac float64) {
	rx := ringRadiusX * scale
	ry := ringRadiusY * scale
	nx := float64(dx) / rx
	ny := float64(dy) / ry

	r := math.Sqrt(nx*nx + ny*ny)
	if math.Abs(r-1) > ringBand {
		return false, 0, 0
	}

	// atan2(east, north) so the top of the ring is 0 and angles grow
	// clockwise, matching the arc sweep.
	angle = math.Atan2(nx, -ny) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}

	frac = (nx+ny)/4 + 0.5
	return true, angle, frac
}

func (w *Widget) draw(now time.Time) {
	percent := w.state.PercentAt(now)
	scale := w.state.PulseScaleAt(now)
	plugged := w.state.Plugged()
	pal := PaletteFor(percent, plugged)

	s := w.screen
	s.Clear()
	drawRing(s, w.originX, w.originY, percent, scale, pal)
	drawBatteryGlyph(s, w.originX, w.originY, percent, plugged, pal)
	drawCenteredText(s, w.originX+centerX, w.originY+centerY+textRow,
		fmt.Sprintf("%d%%", int(percent)), tcell.StyleDefault.Foreground(textWhite).Bold(true))
	s.Show()
}

// drawRing rasters the background ring and the foreground arc spanning
// percent/100 of a full turn, clockwise from the top. The pulse scale only
// affects the ring; the glyph and text stay fixed.
func drawRing(s tcell.Screen, ox, oy int, percent, scale float64, pal Palette) {
	span := percent / 100 * 360

	for y := 0; y < boxHeight; y++ {
		for x := 0; x < boxWidth; x++ {
			on, angle, frac := ringPoint(x-centerX, y-centerY, scale)
			if !on {
				continue
			}
			color := ringBackground
			if span > 0 && angle <= span {
				color = pal.At(frac)
			}
			s.SetContent(ox+x, oy+y, fullBlock, nil, tcell.StyleDefault.Foreground(color))
		}
	}
}

// drawBatteryGlyph draws the central battery icon: a gray body with a cap,
// filled from the bottom in the palette gradient proportionally to percent,
// with a lightning bolt overlay when plugged.
func drawBatteryGlyph(s tcell.Screen, ox, oy int, percent float64, plugged bool, pal Palette) {
	bodyStyle := tcell.StyleDefault.Foreground(glyphBody)

	// Cap.
	for dx := -1; dx <= 1; dx++ {
		s.SetContent(ox+centerX+dx, oy+centerY+glyphCapRow, capHalfBlock, nil,
			tcell.StyleDefault.Foreground(glyphBorder))
	}

	// Body.
	for row := 0; row < glyphRows; row++ {
		for dx := -glyphHalfW; dx <= glyphHalfW; dx++ {
			s.SetContent(ox+centerX+dx, oy+centerY+glyphTopRow+row, fullBlock, nil, bodyStyle)
		}
	}

	// Fill, bottom-up, with a partial-height top row in eighth blocks.
	fill := float64(glyphRows) * percent / 100
	fullRows := int(fill)
	if fullRows > glyphRows {
		fullRows = glyphRows
	}
	eighth := int(math.Round((fill - float64(fullRows)) * 8))

	for r := 0; r < glyphRows; r++ {
		y := oy + centerY + glyphTopRow + glyphRows - 1 - r // r counts from the bottom
		color := pal.At(fillGradFrac(r, fill))
		var ch rune
		switch {
		case r < fullRows:
			ch = fullBlock
		case r == fullRows && eighth > 0 && eighth < 8:
			ch = fillEighths[eighth]
		case r == fullRows && eighth == 8:
			ch = fullBlock
		default:
			continue
		}
		for dx := -glyphHalfW + 1; dx <= glyphHalfW-1; dx++ {
			s.SetContent(ox+centerX+dx, y, ch, nil, tcell.StyleDefault.Foreground(color))
		}
	}

	if plugged {
		s.SetContent(ox+centerX, oy+centerY+glyphTopRow+1, boltRune, nil,
			tcell.StyleDefault.Foreground(textWhite).Bold(true))
	}
}

// fillGradFrac maps a fill row (counted from the bottom) to its position in
// the fill gradient: 0 at the top of the filled extent, 1 at its bottom.
// The gradient is anchored to the fill, not the whole glyph, so a half-full
// glyph still shows the complete color pair.
func fillGradFrac(r int, fill float64) float64 {
	if fill <= 1 {
		return 0.5
	}
	return 1 - float64(r)/(fill-1)
}

func drawCenteredText(s tcell.Screen, cx, y int, text string, style tcell.Style) {
	runes := []rune(text)
	x := cx - len(runes)/2
	for i, r := range runes {
		s.SetContent(x+i, y, r, nil, style)
	}
}
