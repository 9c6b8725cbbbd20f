package effects

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	skillDelay = 300 * time.Millisecond
	springFPS  = 60
)

var springStep = time.Second / springFPS

// SkillBar fills to Percent once triggered, 300ms after the trigger, easing
// the width with a critically damped spring.
type SkillBar struct {
	Percent float64

	spring    harmonica.Spring
	width     float64
	vel       float64
	triggered bool
	since     time.Duration
	acc       time.Duration
}

func NewSkillBar(percent float64) *SkillBar {
	return &SkillBar{
		Percent: percent,
		spring:  harmonica.NewSpring(harmonica.FPS(springFPS), 6.0, 1.0),
	}
}

// Trigger starts the delayed fill. Later triggers keep the running fill.
func (s *SkillBar) Trigger() {
	if s.triggered {
		return
	}
	s.triggered = true
	s.since = 0
	s.acc = 0
}


func (s *SkillBar) Update(dt time.Duration) {
	if !s.triggered {
		return
	}
	before := s.since
	s.since += dt
	if s.since < skillDelay {
		return
	}
	if before < skillDelay {
		dt = s.since - skillDelay
	}
	s.acc += dt
	for s.acc >= springStep {
		s.acc -= springStep
		s.width, s.vel = s.spring.Update(s.width, s.vel, s.Percent)
	}
}

// Width is the current fill in percent.
func (s *SkillBar) Width() float64 { return s.width }

// CircularSkill is a ring gauge; its sweep is percent*3.6 degrees.
type CircularSkill struct {
	bar *SkillBar
}

func NewCircularSkill(percent float64) *CircularSkill {
	return &CircularSkill{bar: NewSkillBar(percent)}
}

func (c *CircularSkill) Trigger()                { c.bar.Trigger() }
func (c *CircularSkill) Update(dt time.Duration) { c.bar.Update(dt) }
func (c *CircularSkill) Percent() float64        { return c.bar.Percent }

// Angle is the current sweep in degrees.
func (c *CircularSkill) Angle() float64 { return c.bar.Width() * 3.6 }
