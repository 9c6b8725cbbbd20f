package particles

import (
	"image/color"
	"math/rand/v2"
)

const (
	DefaultCount        = 100
	DefaultLinkDistance = 100.0
	LinkOpacity         = 0.1
	GlowBlur            = 20.0
)

// Accent is the fill and stroke color of the field (#7c3aed).
var Accent color.Color = color.RGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff}

// Stats describes one connection pass.
type Stats struct {
	Pairs int // distance checks performed
	Lines int // lines drawn
}

// Field is a fixed set of particles bouncing inside a w x h rectangle.
type Field struct {
	particles []Particle
	w, h      float64

	color    color.Color
	linkDist float64
}

// NewField creates count particles placed uniformly over w x h.
func NewField(w, h float64, count int, rng *rand.Rand) *Field {
	ps := make([]Particle, count)
	for i := range ps {
		ps[i] = NewParticle(rng, w, h)
	}
	return NewFieldFrom(w, h, ps)
}

// NewFieldFrom creates a field from explicit particles. The slice is copied.
func NewFieldFrom(w, h float64, ps []Particle) *Field {
	return &Field{
		particles: append([]Particle(nil), ps...),
		w:         w,
		h:         h,
		color:     Accent,
		linkDist:  DefaultLinkDistance,
	}
}

func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the current particle state.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

func (f *Field) Bounds() (w, h float64) { return f.w, f.h }

// Resize changes the reflection bounds. Positions are not rescaled.
func (f *Field) Resize(w, h float64) {
	f.w, f.h = w, h
}

// Step moves every particle one frame and reflects it at the bounds.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.Move()
		p.Reflect(f.w, f.h)
	}
}

// Render clears s, draws every particle as a glowing disc and links every
// pair closer than the link distance.
func (f *Field) Render(s Surface) Stats {
	s.Clear()
	for _, p := range f.particles {
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Opacity, f.color, GlowBlur)
	}
	return f.connect(s)
}

func (f *Field) connect(s Surface) Stats {
	var st Stats
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			a, b := f.particles[i].Pos, f.particles[j].Pos
			st.Pairs++
			if a.Dist(b) < f.linkDist {
				s.Line(a.X, a.Y, b.X, b.Y, LinkOpacity, f.color)
				st.Lines++
			}
		}
	}
	return st
}
