// Package effects holds the page's UI effects. Each effect owns its state,
// is given everything it touches at construction and advances through
// Update(dt); none of them look anything up globally.
package effects

import (
	"math"
	"time"
)

// Ease is the CSS "ease" timing function, cubic-bezier(0.25, 0.1, 0.25, 1).
func Ease(t float64) float64 {
	return cubicBezier(0.25, 0.1, 0.25, 1, clamp01(t))
}

// cubicBezier solves x(s) = t for s with Newton steps, falling back to
// bisection, and returns y(s).
func cubicBezier(x1, y1, x2, y2, t float64) float64 {
	if t <= 0 || t >= 1 {
		return t
	}
	bez := func(a, b, s float64) float64 {
		return 3*a*s*(1-s)*(1-s) + 3*b*s*s*(1-s) + s*s*s
	}
	slope := func(a, b, s float64) float64 {
		return 3*a*(1-s)*(1-s) + 6*(b-a)*s*(1-s) + 3*(1-b)*s*s
	}

	s := t
	for i := 0; i < 8; i++ {
		d := slope(x1, x2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= (bez(x1, x2, s) - t) / d
	}
	if s < 0 || s > 1 || math.Abs(bez(x1, x2, s)-t) > 1e-5 {
		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < 40; i++ {
			x := bez(x1, x2, s)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
	}
	return bez(y1, y2, s)
}

// transition returns eased progress of a transition of length d that has
// been running for elapsed.
func transition(elapsed, d time.Duration) float64 {
	if d <= 0 || elapsed >= d {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return Ease(float64(elapsed) / float64(d))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
