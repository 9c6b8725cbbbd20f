package effects

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	cursorSize       = 20.0
	cursorHoverScale = 2.0
	magneticPull     = 0.1
)

// Cursor is the custom pointer dot. It is created once and follows the
// mouse; hovering an interactive element grows it.
type Cursor struct {
	x, y     float64
	visible  bool
	hovering bool

	spring harmonica.Spring
	scale  float64
	vel    float64
	acc    time.Duration
}

func NewCursor() *Cursor {
	return &Cursor{
		scale:  1,
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), 20.0, 1.0),
	}
}

// Move places the dot centred on the pointer.
func (c *Cursor) Move(px, py float64) {
	c.x, c.y = px-cursorSize/2, py-cursorSize/2
	c.visible = true
}

func (c *Cursor) Enter() { c.hovering = true }
func (c *Cursor) Leave() { c.hovering = false }

func (c *Cursor) Visible() bool { return c.visible }

// Position is the top-left corner of the dot.
func (c *Cursor) Position() (float64, float64) { return c.x, c.y }

func (c *Cursor) Size() float64 { return cursorSize }

func (c *Cursor) Scale() float64 { return c.scale }

// HoverAmount maps the current scale to [0, 1], 1 meaning fully grown.
func (c *Cursor) HoverAmount() float64 {
	return clamp01((c.scale - 1) / (cursorHoverScale - 1))
}

func (c *Cursor) Update(dt time.Duration) {
	target := 1.0
	if c.hovering {
		target = cursorHoverScale
	}
	c.acc += dt
	for c.acc >= springStep {
		c.acc -= springStep
		c.scale, c.vel = c.spring.Update(c.scale, c.vel, target)
	}
}

// Rect is an axis-aligned box in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

// Magnetic pulls a button a tenth of the way toward the pointer while the
// pointer is over it.
type Magnetic struct {
	Rect Rect

	dx, dy float64
}

func NewMagnetic(r Rect) *Magnetic { return &Magnetic{Rect: r} }

func (m *Magnetic) Move(px, py float64) {
	cx, cy := m.Rect.Center()
	m.dx, m.dy = (px-cx)*magneticPull, (py-cy)*magneticPull
}

func (m *Magnetic) Leave() { m.dx, m.dy = 0, 0 }

func (m *Magnetic) Offset() (float64, float64) { return m.dx, m.dy }
