package effects

import "time"

// Loader is the full-screen splash: held for hold, faded out over fade,
// then removed.
type Loader struct {
	hold, fade time.Duration
	elapsed    time.Duration
}

func NewLoader(hold, fade time.Duration) *Loader {
	return &Loader{hold: hold, fade: fade}
}

func (l *Loader) Update(dt time.Duration) { l.elapsed += dt }

func (l *Loader) Opacity() float64 {
	if l.elapsed < l.hold {
		return 1
	}
	return 1 - transition(l.elapsed-l.hold, l.fade)
}

func (l *Loader) Removed() bool { return l.elapsed >= l.hold+l.fade }

const (
	revealBase     = 500 * time.Millisecond
	revealStagger  = 200 * time.Millisecond
	revealDuration = 800 * time.Millisecond
	revealDistance = 50.0
)

// Reveal fades in the hero and headline elements in order. Element i is
// released at 500+200i ms and its transition is itself delayed by 200i ms.
type Reveal struct {
	n       int
	elapsed time.Duration
}

func NewReveal(n int) *Reveal { return &Reveal{n: n} }

func (r *Reveal) Update(dt time.Duration) { r.elapsed += dt }

// Start is when element i begins to move.
func (r *Reveal) Start(i int) time.Duration {
	return revealBase + 2*time.Duration(i)*revealStagger
}

// At returns opacity and vertical offset of element i.
func (r *Reveal) At(i int) (opacity, offset float64) {
	p := transition(r.elapsed-r.Start(i), revealDuration)
	return p, revealDistance * (1 - p)
}

const (
	scrollRevealThreshold = 0.1
	scrollRevealMargin    = 50.0
	scrollRevealDuration  = 600 * time.Millisecond
)

// Observed is an element watched by ScrollReveal.
type Observed struct {
	Top, Height float64

	// OnEnter runs every time the element starts intersecting.
	OnEnter func()

	intersecting bool
	animated     bool
	since        time.Duration
}

// ScrollReveal marks elements animate-in once at least 10% of them lies
// inside the viewport shrunk by 50 units at the bottom.
type ScrollReveal struct {
	items []*Observed
}

func NewScrollReveal(items ...*Observed) *ScrollReveal {
	return &ScrollReveal{items: items}
}

func (s *ScrollReveal) Items() []*Observed { return s.items }

// OnScroll re-evaluates intersection for the visible band
// [scrollY, scrollY+viewportH-50).
func (s *ScrollReveal) OnScroll(scrollY, viewportH float64) {
	top, bottom := scrollY, scrollY+viewportH-scrollRevealMargin
	for _, it := range s.items {
		was := it.intersecting
		it.intersecting = intersectionRatio(it.Top, it.Height, top, bottom) >= scrollRevealThreshold
		if it.intersecting && !was {
			it.animated = true
			if it.OnEnter != nil {
				it.OnEnter()
			}
		}
	}
}

func (s *ScrollReveal) Update(dt time.Duration) {
	for _, it := range s.items {
		if it.animated && it.since < scrollRevealDuration {
			it.since += dt
		}
	}
}

func (o *Observed) Animated() bool { return o.animated }

// Progress is the animate-in transition progress in [0, 1].
func (o *Observed) Progress() float64 {
	if !o.animated {
		return 0
	}
	return transition(o.since, scrollRevealDuration)
}

func intersectionRatio(top, height, viewTop, viewBottom float64) float64 {
	if height <= 0 {
		if top >= viewTop && top < viewBottom {
			return 1
		}
		return 0
	}
	overlap := min(top+height, viewBottom) - max(top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return overlap / height
}
