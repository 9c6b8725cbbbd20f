// Package game is the ebiten front end: one scrolling portfolio page with
// the particle field behind the hero.
package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio-fx/internal/chime"
	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/contact"
	"github.com/iburimskiy/portfolio-fx/internal/content"
	"github.com/iburimskiy/portfolio-fx/internal/effects"
	"github.com/iburimskiy/portfolio-fx/internal/frame"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
)

const (
	// tick is the simulated time of one Update at ebiten's default 60 TPS.
	tick       = time.Second / 60
	decorSpeed = 0.3
)

// Layer is the particle surface the page composites behind its content.
type Layer interface {
	particles.Surface
	Blit(dst *ebiten.Image, alpha float64)
}

// Page implements ebiten.Game.
type Page struct {
	cfg   config.Config
	layer Layer

	viewport *frame.Viewport
	queue    *frame.Queue
	anim     *particles.Animator

	heroH float64
	geo   geometry
	hero  effects.Hero

	scroll       float64
	scrollVel    float64
	scrollTarget float64
	scrollSpring harmonica.Spring

	typer    *effects.Typer
	counters []*effects.Counter
	bars     []*effects.SkillBar
	circles  []*effects.CircularSkill
	filter   *effects.Filter
	slider   *effects.Slider
	notifier *effects.Notifier
	nav      *effects.Navbar
	cursor   *effects.Cursor
	magnets  []*effects.Magnetic
	loader   *effects.Loader
	reveal   *effects.Reveal
	observer *effects.ScrollReveal

	form    *contact.Form
	client  *contact.Client
	pending <-chan error
	cancel  context.CancelFunc
	chime   *chime.Player

	elapsed time.Duration
	lastErr error
}

// New builds the page for cfg. The particle animator draws into layer and is
// started immediately; frames are produced by Draw.
func New(cfg config.Config, layer Layer, opts ...particles.Option) (*Page, error) {
	w, h := float64(cfg.Width), float64(cfg.Height)
	p := &Page{
		cfg:          cfg,
		layer:        layer,
		viewport:     frame.NewViewport(w, h),
		queue:        &frame.Queue{},
		heroH:        h,
		scrollSpring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0),
		typer:        effects.NewTyper(content.HeroSubtitle, config.TypingDelayMs*time.Millisecond, config.TypingIntervalMs*time.Millisecond),
		slider:       effects.NewSlider(len(content.Testimonials), config.SlideIntervalMs*time.Millisecond),
		cursor:       effects.NewCursor(),
		loader:       effects.NewLoader(config.LoaderHoldMs*time.Millisecond, config.LoaderFadeMs*time.Millisecond),
		reveal:       effects.NewReveal(3),
		form:         contact.NewForm(nil),
		client:       contact.NewClient(cfg.FormEndpoint),
		chime:        chime.NewPlayer(cfg.Mute),
	}
	p.geo = newGeometry(w, p.heroH)
	p.hero = effects.Hero{Height: p.heroH, AboutTop: p.geo.sections[1].Top}
	p.nav = effects.NewNavbar(p.geo.sections)

	opts = append([]particles.Option{particles.WithCount(cfg.ParticleCount)}, opts...)
	anim, err := particles.New(layer, p.viewport, p.queue, opts...)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	p.anim = anim

	categories := make([]string, len(content.Projects))
	for i, pr := range content.Projects {
		categories[i] = pr.Category
	}
	p.filter = effects.NewFilter(content.ProjectFilters, categories)

	p.notifier = effects.NewNotifier(func(n effects.Notification) {
		freq := chime.SuccessFreq
		if n.Kind == effects.Failure {
			freq = chime.FailureFreq
		}
		p.chime.Play(freq)
	})

	for _, r := range p.geo.heroButtons {
		p.magnets = append(p.magnets, effects.NewMagnetic(r))
	}
	p.observer = effects.NewScrollReveal(p.observed()...)
	p.observer.OnScroll(p.scroll, h)
	p.nav.OnScroll(p.scroll)

	p.anim.Start()
	return p, nil
}

// observed builds the scroll-revealed elements and hooks each one to the
// effect it starts.
func (p *Page) observed() []*effects.Observed {
	var items []*effects.Observed
	for i, st := range content.Stats {
		c := effects.NewCounter(st.Count)
		p.counters = append(p.counters, c)
		r := p.geo.stats[i]
		items = append(items, &effects.Observed{Top: r.Y, Height: r.H, OnEnter: c.Start})
	}
	for i, sk := range content.Skills {
		b := effects.NewSkillBar(sk.Percent)
		p.bars = append(p.bars, b)
		r := p.geo.skills[i]
		items = append(items, &effects.Observed{Top: r.Y, Height: r.H, OnEnter: b.Trigger})
	}
	for i, sk := range content.CircularSkills {
		c := effects.NewCircularSkill(sk.Percent)
		p.circles = append(p.circles, c)
		r := p.geo.circles[i]
		items = append(items, &effects.Observed{Top: r.Y, Height: r.H, OnEnter: c.Trigger})
	}
	for _, r := range p.geo.cards {
		items = append(items, &effects.Observed{Top: r.Y, Height: r.H})
	}
	return items
}

func (p *Page) Animator() *particles.Animator { return p.anim }

// Close stops the animator and abandons an in-flight submission.
func (p *Page) Close() {
	p.anim.Stop()
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *Page) Update() error {
	return p.step(readInput())
}

func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if p.viewport.Set(w, h) {
		p.relayout(w)
	}
	return outsideWidth, outsideHeight
}

// relayout recomputes horizontal positions for a new width. Vertical page
// positions, and therefore the scroll-revealed elements, do not change.
func (p *Page) relayout(w float64) {
	p.geo = newGeometry(w, p.heroH)
	for i, m := range p.magnets {
		m.Rect = p.geo.heroButtons[i]
		m.Leave()
	}
	_, h := p.viewport.Size()
	p.scrollTarget = min(p.scrollTarget, p.geo.maxScroll(h))
}

// input is one tick's worth of user input.
type input struct {
	mx, my  float64
	wheel   float64
	clicked bool
	chars   []rune

	tab, enter, backspace, escape bool
	pageUp, pageDown              bool
}

func readInput() input {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return input{
		mx:        float64(mx),
		my:        float64(my),
		wheel:     wy,
		clicked:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		chars:     ebiten.AppendInputChars(nil),
		tab:       inpututil.IsKeyJustPressed(ebiten.KeyTab),
		enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		backspace: repeating(ebiten.KeyBackspace),
		escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		pageUp:    repeating(ebiten.KeyPageUp),
		pageDown:  repeating(ebiten.KeyPageDown),
	}
}

// repeating reports a key press and then, while held, a repeat every 3
// ticks after a 30 tick delay.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 30 && (d-30)%3 == 0)
}

func (p *Page) step(in input) error {
	p.elapsed += tick
	_, h := p.viewport.Size()

	if in.escape {
		if p.form.Current() < 0 {
			return ebiten.Termination
		}
		p.form.Blur()
	}
	if p.form.Current() < 0 {
		for _, r := range in.chars {
			if r == 'q' || r == 'Q' {
				return ebiten.Termination
			}
		}
	} else {
		p.form.Type(in.chars)
		if in.backspace {
			p.form.Backspace()
		}
	}
	if in.tab {
		p.form.Next()
		p.scrollToSection(content.ContactID)
	}
	if in.enter {
		p.submit()
	}

	switch {
	case in.wheel != 0:
		p.scrollBy(-in.wheel * config.ScrollStep)
	case in.pageDown:
		p.scrollBy(h * 0.9)
	case in.pageUp:
		p.scrollBy(-h * 0.9)
	}

	p.pointer(in.mx, in.my)
	if in.clicked {
		p.click(in.mx, in.my)
	}

	p.advance(tick)
	return nil
}

// advance moves every time-based effect forward by dt and applies the
// scroll position to the scroll-driven ones.
func (p *Page) advance(dt time.Duration) {
	p.scroll, p.scrollVel = p.scrollSpring.Update(p.scroll, p.scrollVel, p.scrollTarget)
	_, h := p.viewport.Size()
	p.nav.OnScroll(p.scroll)
	p.observer.OnScroll(p.scroll, h)

	p.loader.Update(dt)
	p.reveal.Update(dt)
	p.typer.Update(dt)
	for _, c := range p.counters {
		c.Update(dt)
	}
	for _, b := range p.bars {
		b.Update(dt)
	}
	for _, c := range p.circles {
		c.Update(dt)
	}
	p.filter.Update(dt)
	p.slider.Update(dt)
	p.notifier.Update(dt)
	p.observer.Update(dt)
	p.cursor.Update(dt)
	p.form.Update(dt)

	select {
	case err := <-p.pending:
		p.finish(err)
	default:
	}
}

func (p *Page) scrollBy(dy float64) {
	p.scrollTo(p.scrollTarget + dy)
}

func (p *Page) scrollTo(y float64) {
	_, h := p.viewport.Size()
	p.scrollTarget = max(0, min(y, p.geo.maxScroll(h)))
}

func (p *Page) scrollToSection(id string) {
	if y, ok := p.nav.ScrollTarget(id); ok {
		p.scrollTo(y)
	}
}

// decorY is the page y of the ring drawn behind a section, which drifts
// against the scroll once the section reaches the top of the viewport.
func (p *Page) decorY(section int) float64 {
	s := p.geo.sections[section]
	return s.Top + s.Height/2 + effects.ParallaxOffset(p.scroll-s.Top, decorSpeed)
}

func (p *Page) visibleCards() int {
	n := 0
	for i := range content.Projects {
		if p.filter.Visible(i) {
			n++
		}
	}
	return n
}

func (p *Page) pointer(x, y float64) {
	p.cursor.Move(x, y)
	docY := y + p.scroll
	shiftY := p.hero.At(p.scroll).Offset
	if p.geo.interactive(x, y, docY, shiftY, p.nav.MenuOpen(), p.visibleCards()) {
		p.cursor.Enter()
	} else {
		p.cursor.Leave()
	}
	for _, m := range p.magnets {
		if y >= navHeight && m.Rect.Contains(x, docY-shiftY) {
			m.Move(x, docY-shiftY)
		} else {
			m.Leave()
		}
	}
}

func (p *Page) click(x, y float64) {
	g := p.geo
	if g.compact && g.hamburger.Contains(x, y) {
		p.nav.ToggleMenu()
		return
	}
	if !g.compact || p.nav.MenuOpen() {
		if i := hitIndex(g.navLinks, x, y); i >= 0 {
			p.scrollToSection(content.Sections[i])
			if p.nav.MenuOpen() {
				p.nav.ToggleMenu()
			}
			return
		}
	}
	if y < navHeight {
		return
	}

	docY := y + p.scroll
	switch i := hitIndex(g.heroButtons, x, docY-p.hero.At(p.scroll).Offset); i {
	case 0:
		p.scrollToSection(content.ProjectsID)
		return
	case 1:
		p.scrollToSection(content.ContactID)
		return
	}
	if i := hitIndex(g.filters, x, docY); i >= 0 {
		p.filter.Select(p.filter.Buttons()[i])
		return
	}
	if i := hitIndex(g.dots, x, docY); i >= 0 {
		p.slider.Click(i)
		return
	}
	if i := hitIndex(g.fields, x, docY); i >= 0 {
		p.form.Focus(i)
		return
	}
	if g.submit.Contains(x, docY) {
		p.submit()
		return
	}
	p.form.Blur()
}

// submit sends the form unless a submission is already running or a
// required field is empty, in which case that field gets focus.
func (p *Page) submit() {
	if i := p.form.Missing(); i >= 0 {
		p.form.Focus(i)
		p.scrollToSection(content.ContactID)
		return
	}
	if !p.form.BeginSubmit() {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.pending = p.client.SubmitAsync(ctx, p.form.Values())
}

func (p *Page) finish(err error) {
	p.pending = nil
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.form.Finish(err)
	if err != nil {
		log.Printf("contact: %v", err)
		p.lastErr = err
		p.notifier.Push(contact.FailedMessage, effects.Failure)
		return
	}
	p.lastErr = nil
	p.notifier.Push(contact.SentMessage, effects.Success)
}
