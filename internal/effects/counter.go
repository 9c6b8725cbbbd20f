package effects

import (
	"math"
	"time"
)

const (
	counterSteps = 50
	counterTick  = 40 * time.Millisecond
)

// Counter counts up to Target in 50 equal increments, one every 40ms.
type Counter struct {
	Target int

	current float64
	acc     time.Duration
	running bool
}

func NewCounter(target int) *Counter { return &Counter{Target: target} }

// Start restarts the count from zero.
func (c *Counter) Start() {
	c.current = 0
	c.acc = 0
	c.running = true
}

func (c *Counter) Running() bool { return c.running }

func (c *Counter) Update(dt time.Duration) {
	if !c.running {
		return
	}
	c.acc += dt
	inc := float64(c.Target) / counterSteps
	for c.running && c.acc >= counterTick {
		c.acc -= counterTick
		c.current += inc
		if c.current >= float64(c.Target) {
			c.current = float64(c.Target)
			c.running = false
		}
	}
}

// Value is the displayed (floored) count.
func (c *Counter) Value() int { return int(math.Floor(c.current)) }
