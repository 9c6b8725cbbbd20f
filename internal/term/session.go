package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/portfolio-fx/internal/frame"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
)

// TickInterval is the terminal stand-in for the display refresh (~60 Hz).
const TickInterval = 16 * time.Millisecond

// Session owns a tcell screen and the animator drawing into it.
type Session struct {
	screen   tcell.Screen
	canvas   *Canvas
	viewport *frame.Viewport
	queue    *frame.Queue
	anim     *particles.Animator
}

// NewSession builds an animator over an initialised screen.
func NewSession(screen tcell.Screen, opts ...particles.Option) (*Session, error) {
	cols, rows := screen.Size()
	s := &Session{
		screen:   screen,
		canvas:   NewCanvas(screen),
		viewport: frame.NewViewport(float64(cols)*CellWidth, float64(rows)*CellHeight),
		queue:    &frame.Queue{},
	}
	anim, err := particles.New(s.canvas, s.viewport, s.queue, opts...)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	s.anim = anim
	return s, nil
}

func (s *Session) Animator() *particles.Animator { return s.anim }

// Tick plays one display refresh: pending frames run, then the screen is shown.
func (s *Session) Tick() {
	s.queue.Flush()
	s.drawStatus()
	s.screen.Show()
}

// Handle reacts to one terminal event and reports whether the session
// should keep running.
func (s *Session) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.screen.Sync()
		s.viewport.Set(float64(cols)*CellWidth, float64(rows)*CellHeight)
	}
	return true
}

func (s *Session) drawStatus() {
	cols, rows := s.screen.Size()
	if rows == 0 {
		return
	}
	st := s.anim.LastStats()
	line := fmt.Sprintf(" particles %d  links %d  frame %d  q to quit ", s.anim.Field().Len(), st.Lines, s.anim.Frames())
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range []rune(line) {
		if i >= cols {
			break
		}
		s.screen.SetContent(i, rows-1, r, nil, style)
	}
}

// Run starts the animator and drives it until ctx ends or the user quits.
func (s *Session) Run(ctx context.Context) error {
	s.anim.Start()
	defer s.anim.Stop()

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !s.Handle(ev) {
				log.Printf("term: quit after %d frames", s.anim.Frames())
				return nil
			}
		case <-ticker.C:
			s.Tick()
		}
	}
}
