package chime

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a streamer and keeps the most recent samples in a ring buffer so
// the page can show a level meter for whatever the speaker just played.
type Tap struct {
	Source beep.Streamer

	mu     sync.RWMutex
	buffer [][2]float64
	next   int
	filled int
}

func NewTap(src beep.Streamer, size int) *Tap {
	return &Tap{Source: src, buffer: make([][2]float64, size)}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.next] = samples[i]
			t.next++
			if t.next == len(t.buffer) {
				t.next = 0
			}
		}
		t.filled = min(t.filled+n, len(t.buffer))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, t.filled)
	out := make([][2]float64, n)
	idx := t.next - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx == len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// Level is the RMS of the last n mono-mixed samples, 0 when nothing played.
func (t *Tap) Level(n int) float64 {
	samples := t.Snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sum += mono * mono
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Reset empties the buffer so the meter falls back to silence once a tone
// has finished.
func (t *Tap) Reset() {
	t.mu.Lock()
	t.filled = 0
	t.next = 0
	t.mu.Unlock()
}
