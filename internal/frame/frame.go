// Package frame provides the host-side pieces of the animation loop: a
// queue of "before next repaint" callbacks and a viewport that reports
// size changes. Both are driven by whichever loop owns the window.
package frame

// Queue collects callbacks to run before the next repaint. The host calls
// Flush once per display refresh.
type Queue struct {
	pending []func()
}

func (q *Queue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Flush runs the callbacks queued so far. Callbacks requested while
// flushing run on the next Flush.
func (q *Queue) Flush() int {
	queued := q.pending
	q.pending = nil
	for _, fn := range queued {
		fn()
	}
	return len(queued)
}

func (q *Queue) Len() int { return len(q.pending) }

// Viewport tracks the outside window size reported to Layout.
type Viewport struct {
	w, h      float64
	observers map[int]func()
	nextID    int
}

func NewViewport(w, h float64) *Viewport {
	return &Viewport{w: w, h: h, observers: make(map[int]func())}
}

func (v *Viewport) Size() (float64, float64) { return v.w, v.h }

// Set records a new size and notifies observers when it differs from the
// current one.
func (v *Viewport) Set(w, h float64) bool {
	if w == v.w && h == v.h {
		return false
	}
	v.w, v.h = w, h
	for _, fn := range v.observers {
		fn()
	}
	return true
}

func (v *Viewport) OnResize(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.observers[id] = fn
	return func() { delete(v.observers, id) }
}
