package effects

import "time"

const (
	FilterAll    = "all"
	filterFadeIn = 600 * time.Millisecond
)

// Filter shows the project cards whose category matches the active button.
type Filter struct {
	buttons    []string
	categories []string
	active     string

	visible []bool
	shown   []time.Duration
}

// NewFilter starts with every card visible and the "all" button active.
func NewFilter(buttons, categories []string) *Filter {
	f := &Filter{
		buttons:    buttons,
		categories: categories,
		active:     FilterAll,
		visible:    make([]bool, len(categories)),
		shown:      make([]time.Duration, len(categories)),
	}
	for i := range f.visible {
		f.visible[i] = true
		f.shown[i] = filterFadeIn
	}
	return f
}

func (f *Filter) Buttons() []string { return f.buttons }
func (f *Filter) Active() string    { return f.active }

// Select makes button the only active one and restarts the fade of every
// card it shows.
func (f *Filter) Select(button string) {
	f.active = button
	for i, cat := range f.categories {
		if button == FilterAll || cat == button {
			f.visible[i] = true
			f.shown[i] = 0
		} else {
			f.visible[i] = false
		}
	}
}

func (f *Filter) Visible(i int) bool { return f.visible[i] }

// Fade returns the fade-in-up progress of card i in [0, 1].
func (f *Filter) Fade(i int) float64 {
	if !f.visible[i] {
		return 0
	}
	return transition(f.shown[i], filterFadeIn)
}

func (f *Filter) Update(dt time.Duration) {
	for i := range f.shown {
		if f.visible[i] && f.shown[i] < filterFadeIn {
			f.shown[i] += dt
		}
	}
}
