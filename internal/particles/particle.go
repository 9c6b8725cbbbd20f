package particles

import (
	"math"
	"math/rand/v2"
)

// Vec2 is a point or displacement in display units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Particle is one entity of the field. Radius and Opacity are fixed at
// creation; Pos moves every frame and Vel only changes sign.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Radius  float64
	Opacity float64
}

// NewParticle draws a particle uniformly inside a w x h surface.
func NewParticle(rng *rand.Rand, w, h float64) Particle {
	return Particle{
		Pos:     Vec2{rng.Float64() * w, rng.Float64() * h},
		Vel:     Vec2{rng.Float64()*2 - 1, rng.Float64()*2 - 1},
		Radius:  rng.Float64()*3 + 1,
		Opacity: rng.Float64()*0.5 + 0.2,
	}
}

// Move advances the particle by one frame.
func (p *Particle) Move() {
	p.Pos = p.Pos.Add(p.Vel)
}

// Reflect flips each velocity component whose coordinate lies outside
// [0, bound]. The position is left where it is; the flipped velocity brings
// it back on the next Move.
func (p *Particle) Reflect(w, h float64) {
	if p.Pos.X > w || p.Pos.X < 0 {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y > h || p.Pos.Y < 0 {
		p.Vel.Y = -p.Vel.Y
	}
}
