package effects

import "math"

const defaultParallaxSpeed = 0.5

// ParallaxOffset is the vertical shift of a .parallax element. A zero speed
// falls back to the default of 0.5.
func ParallaxOffset(scrolled, speed float64) float64 {
	if speed == 0 {
		speed = defaultParallaxSpeed
	}
	return -(scrolled * speed)
}

// Hero describes the geometry the hero fade depends on.
type Hero struct {
	Height   float64
	AboutTop float64
}

// HeroFrame is the hero's state for one scroll position.
type HeroFrame struct {
	Offset        float64
	ContentOffset float64
	// Opacity applies to the hero content and the particle layer.
	Opacity float64
}

// At computes the hero shift and fade. Fading starts at 60% of the hero
// height and completes 100 units above the about section.
func (h Hero) At(scrolled float64) HeroFrame {
	offset := scrolled * 0.5
	fadeStart := h.Height * 0.6
	fadeEnd := h.AboutTop - 100

	opacity := 1.0
	if scrolled > fadeStart {
		if fadeEnd > fadeStart {
			opacity = math.Max(0, 1-(scrolled-fadeStart)/(fadeEnd-fadeStart))
		} else {
			opacity = 0
		}
	}
	return HeroFrame{
		Offset:        offset,
		ContentOffset: offset * 0.3,
		Opacity:       opacity,
	}
}

// ScrollProgress is the page scroll position in percent of the scrollable
// height, clamped to [0, 100].
func ScrollProgress(scrollY, docHeight, viewportHeight float64) float64 {
	span := docHeight - viewportHeight
	if span <= 0 {
		return 0
	}
	return clamp01(scrollY/span) * 100
}
