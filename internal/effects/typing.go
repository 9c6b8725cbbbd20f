package effects

import "time"

// Typer reveals a text one rune at a time after an initial delay.
type Typer struct {
	text     []rune
	delay    time.Duration
	interval time.Duration
	elapsed  time.Duration
}

// NewTyper starts with an empty line; the first rune shows after delay and
// each further rune after interval.
func NewTyper(text string, delay, interval time.Duration) *Typer {
	return &Typer{text: []rune(text), delay: delay, interval: interval}
}

func (t *Typer) Update(dt time.Duration) { t.elapsed += dt }

func (t *Typer) Shown() int {
	if t.elapsed < t.delay {
		return 0
	}
	n := len(t.text)
	if t.interval > 0 {
		n = 1 + int((t.elapsed-t.delay)/t.interval)
	}
	return min(n, len(t.text))
}

func (t *Typer) Text() string { return string(t.text[:t.Shown()]) }

func (t *Typer) Done() bool { return t.Shown() == len(t.text) }
