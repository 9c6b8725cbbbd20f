package particles

import "image/color"

type circleCall struct {
	x, y, r, opacity, blur float64
}

type lineCall struct {
	x0, y0, x1, y1, opacity float64
}

type fakeSurface struct {
	w, h    float64
	clears  int
	circles []circleCall
	lines   []lineCall
}

func (s *fakeSurface) Size() (float64, float64) { return s.w, s.h }
func (s *fakeSurface) SetSize(w, h float64)     { s.w, s.h = w, h }

func (s *fakeSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

func (s *fakeSurface) FillCircle(x, y, r, opacity float64, _ color.Color, blur float64) {
	s.circles = append(s.circles, circleCall{x, y, r, opacity, blur})
}

func (s *fakeSurface) Line(x0, y0, x1, y1, opacity float64, _ color.Color) {
	s.lines = append(s.lines, lineCall{x0, y0, x1, y1, opacity})
}

type fakeViewport struct {
	w, h      float64
	observers map[int]func()
	next      int
}

func newFakeViewport(w, h float64) *fakeViewport {
	return &fakeViewport{w: w, h: h, observers: map[int]func(){}}
}

func (v *fakeViewport) Size() (float64, float64) { return v.w, v.h }

func (v *fakeViewport) OnResize(fn func()) func() {
	id := v.next
	v.next++
	v.observers[id] = fn
	return func() { delete(v.observers, id) }
}

func (v *fakeViewport) resize(w, h float64) {
	v.w, v.h = w, h
	for _, fn := range v.observers {
		fn()
	}
}

// manualScheduler holds requested callbacks until tick is called.
type manualScheduler struct {
	pending []func()
}

func (m *manualScheduler) RequestFrame(fn func()) { m.pending = append(m.pending, fn) }

func (m *manualScheduler) tick() {
	queued := m.pending
	m.pending = nil
	for _, fn := range queued {
		fn()
	}
}
