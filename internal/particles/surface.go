package particles

import "image/color"

// Surface is the raster target the animator draws on.
type Surface interface {
	Size() (w, h float64)
	SetSize(w, h float64)
	Clear()
	// FillCircle draws a filled disc with a glow of the given blur radius.
	FillCircle(x, y, r, opacity float64, c color.Color, blur float64)
	Line(x0, y0, x1, y1, opacity float64, c color.Color)
}

// Viewport reports the host's visible size and notifies on changes.
type Viewport interface {
	Size() (w, h float64)
	// OnResize registers fn and returns a function that unregisters it.
	OnResize(fn func()) (cancel func())
}

// Scheduler runs a callback before the next repaint.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) RequestFrame(fn func()) { f(fn) }
