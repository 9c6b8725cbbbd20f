package effects

import "time"

// Slider cycles through n testimonial cards. Exactly one card and its dot
// are active at a time.
type Slider struct {
	n        int
	current  int
	interval time.Duration
	acc      time.Duration
}

func NewSlider(n int, interval time.Duration) *Slider {
	return &Slider{n: n, interval: interval}
}

func (s *Slider) Len() int     { return s.n }
func (s *Slider) Current() int { return s.current }

// Show activates card i. Out of range indexes are ignored.
func (s *Slider) Show(i int) {
	if i < 0 || i >= s.n {
		return
	}
	s.current = i
}

// Click selects card i from its dot. The auto-advance timer keeps running.
func (s *Slider) Click(i int) { s.Show(i) }

func (s *Slider) Active(i int) bool { return i == s.current && s.n > 0 }

func (s *Slider) Update(dt time.Duration) {
	if s.n == 0 || s.interval <= 0 {
		return
	}
	s.acc += dt
	for s.acc >= s.interval {
		s.acc -= s.interval
		s.Show((s.current + 1) % s.n)
	}
}
