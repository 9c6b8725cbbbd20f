// Package term renders the particle field into a terminal with tcell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Display units covered by one terminal cell.
	CellWidth  = 8.0
	CellHeight = 16.0

	discGlyph  = '●'
	speckGlyph = '•'
	linkGlyph  = '·'
)

var background = colorful.Color{R: 0.06, G: 0.06, B: 0.14}

// Canvas is a particles.Surface backed by a tcell screen. Glow is not
// representable in cells and is ignored.
type Canvas struct {
	screen tcell.Screen
	w, h   float64
}

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen}
}

func (c *Canvas) Size() (float64, float64) { return c.w, c.h }

func (c *Canvas) SetSize(w, h float64) { c.w, c.h = w, h }

func (c *Canvas) Clear() { c.screen.Clear() }

func (c *Canvas) FillCircle(x, y, r, opacity float64, clr color.Color, _ float64) {
	cx, cy, ok := c.cell(x, y)
	if !ok {
		return
	}
	glyph := speckGlyph
	if r >= 2.5 {
		glyph = discGlyph
	}
	c.screen.SetContent(cx, cy, glyph, nil, styleFor(clr, opacity))
}

// Line rasterises the segment cell by cell, leaving discs in place.
func (c *Canvas) Line(x0, y0, x1, y1, opacity float64, clr color.Color) {
	ax, ay := int(math.Floor(x0/CellWidth)), int(math.Floor(y0/CellHeight))
	bx, by := int(math.Floor(x1/CellWidth)), int(math.Floor(y1/CellHeight))
	style := styleFor(clr, opacity)
	cols, rows := c.screen.Size()

	bresenham(ax, ay, bx, by, func(x, y int) {
		if x < 0 || y < 0 || x >= cols || y >= rows {
			return
		}
		mainc, _, _, _ := c.screen.GetContent(x, y)
		if mainc == discGlyph || mainc == speckGlyph {
			return
		}
		c.screen.SetContent(x, y, linkGlyph, nil, style)
	})
}

func (c *Canvas) cell(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	cx, cy := int(x/CellWidth), int(y/CellHeight)
	cols, rows := c.screen.Size()
	if cx >= cols || cy >= rows {
		return 0, 0, false
	}
	return cx, cy, true
}

// styleFor shades clr against the background. Terminal cells have no alpha,
// so opacity is mapped onto a blend that keeps faint links visible.
func styleFor(clr color.Color, opacity float64) tcell.Style {
	fg, _ := colorful.MakeColor(clr)
	mixed := background.BlendRgb(fg, 0.3+0.7*math.Max(0, math.Min(1, opacity)))
	r, g, b := mixed.Clamped().RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
