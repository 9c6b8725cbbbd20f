package particles

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
)

var (
	ErrNoSurface   = errors.New("particles: drawing surface unavailable")
	ErrNoViewport  = errors.New("particles: viewport unavailable")
	ErrNoScheduler = errors.New("particles: frame scheduler unavailable")
	ErrBadCount    = errors.New("particles: negative particle count")
)

// State is the lifecycle state of an Animator.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

type options struct {
	count    int
	rng      *rand.Rand
	seeded   []Particle
	color    color.Color
	linkDist float64
	onFrame  func(Stats)
}

// Option configures New.
type Option func(*options)

func WithCount(n int) Option { return func(o *options) { o.count = n } }

func WithRand(rng *rand.Rand) Option { return func(o *options) { o.rng = rng } }

// WithParticles replaces random generation with the given particles.
func WithParticles(ps []Particle) Option {
	return func(o *options) { o.seeded = ps }
}

func WithColor(c color.Color) Option { return func(o *options) { o.color = c } }

func WithLinkDistance(d float64) Option { return func(o *options) { o.linkDist = d } }

// WithFrameHook is called after every rendered frame.
func WithFrameHook(fn func(Stats)) Option { return func(o *options) { o.onFrame = fn } }

// Animator drives a Field on a Surface, one frame per scheduler callback.
type Animator struct {
	surface  Surface
	viewport Viewport
	sched    Scheduler
	field    *Field

	state        State
	frames       uint64
	last         Stats
	onFrame      func(Stats)
	cancelResize func()
}

// New sizes the surface to the viewport, subscribes to resizes and builds
// the field. Missing collaborators and a negative count are reported as
// errors; there is no degraded mode.
func New(surface Surface, viewport Viewport, sched Scheduler, opts ...Option) (*Animator, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if viewport == nil {
		return nil, ErrNoViewport
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}

	o := options{
		count:    DefaultCount,
		color:    Accent,
		linkDist: DefaultLinkDistance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seeded == nil && o.count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, o.count)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	a := &Animator{
		surface:  surface,
		viewport: viewport,
		sched:    sched,
		onFrame:  o.onFrame,
	}

	w, h := viewport.Size()
	surface.SetSize(w, h)
	a.cancelResize = viewport.OnResize(a.HandleResize)

	if o.seeded != nil {
		a.field = NewFieldFrom(w, h, o.seeded)
	} else {
		a.field = NewField(w, h, o.count, o.rng)
	}
	a.field.color = o.color
	a.field.linkDist = o.linkDist
	return a, nil
}

func (a *Animator) Field() *Field { return a.field }

func (a *Animator) State() State { return a.state }

// Frames returns the number of frames rendered so far.
func (a *Animator) Frames() uint64 { return a.frames }

// LastStats returns the connection stats of the most recent frame.
func (a *Animator) LastStats() Stats { return a.last }

// HandleResize applies the current viewport size to the surface and field.
func (a *Animator) HandleResize() {
	w, h := a.viewport.Size()
	a.surface.SetSize(w, h)
	a.field.Resize(w, h)
}

// Start requests the first frame. It is a no-op unless the animator is idle.
func (a *Animator) Start() {
	if a.state != Idle {
		return
	}
	a.state = Running
	a.sched.RequestFrame(a.frame)
}

// Stop halts the loop and drops the resize subscription. Frames already
// queued with the scheduler do nothing once they fire.
func (a *Animator) Stop() {
	if a.state == Stopped {
		return
	}
	a.state = Stopped
	if a.cancelResize != nil {
		a.cancelResize()
		a.cancelResize = nil
	}
}

func (a *Animator) frame() {
	if a.state != Running {
		return
	}
	a.field.Step()
	a.last = a.field.Render(a.surface)
	a.frames++
	if a.onFrame != nil {
		a.onFrame(a.last)
	}
	a.sched.RequestFrame(a.frame)
}
