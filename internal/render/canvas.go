package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glowSteps is the number of translucent halo rings drawn around a disc.
const glowSteps = 4

// Canvas is an offscreen ebiten layer implementing particles.Surface.
type Canvas struct {
	layer *ebiten.Image
	w, h  float64
}

func NewCanvas(w, h float64) *Canvas {
	c := &Canvas{}
	c.SetSize(w, h)
	return c
}

func (c *Canvas) Size() (float64, float64) { return c.w, c.h }

// SetSize reallocates the layer when the pixel size changes.
func (c *Canvas) SetSize(w, h float64) {
	pw, ph := pixels(w), pixels(h)
	c.w, c.h = w, h
	if c.layer != nil {
		b := c.layer.Bounds()
		if b.Dx() == pw && b.Dy() == ph {
			return
		}
		c.layer.Deallocate()
	}
	c.layer = ebiten.NewImage(pw, ph)
}

func (c *Canvas) Clear() { c.layer.Clear() }

func (c *Canvas) FillCircle(x, y, r, opacity float64, clr color.Color, blur float64) {
	for _, ring := range glowRings(r, opacity, blur) {
		vector.DrawFilledCircle(c.layer, float32(x), float32(y), float32(ring.radius), WithAlpha(clr, ring.opacity), true)
	}
	vector.DrawFilledCircle(c.layer, float32(x), float32(y), float32(r), WithAlpha(clr, opacity), true)
}

func (c *Canvas) Line(x0, y0, x1, y1, opacity float64, clr color.Color) {
	vector.StrokeLine(c.layer, float32(x0), float32(y0), float32(x1), float32(y1), 1, WithAlpha(clr, opacity), true)
}

// Blit composites the layer onto dst scaled by alpha.
func (c *Canvas) Blit(dst *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	dst.DrawImage(c.layer, op)
}

type halo struct {
	radius  float64
	opacity float64
}

// glowRings approximates a shadow blur with concentric discs, outermost
// first, each fainter than the disc itself.
func glowRings(r, opacity, blur float64) []halo {
	if blur <= 0 {
		return nil
	}
	spread := blur / 4
	rings := make([]halo, 0, glowSteps)
	for i := glowSteps; i > 0; i-- {
		t := float64(i) / glowSteps
		rings = append(rings, halo{
			radius:  r + spread*t,
			opacity: opacity * 0.25 * (1 - t + 1.0/glowSteps),
		})
	}
	return rings
}

func pixels(v float64) int {
	return max(1, int(math.Ceil(v)))
}
