package game

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/contact"
	"github.com/iburimskiy/portfolio-fx/internal/content"
	"github.com/iburimskiy/portfolio-fx/internal/effects"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
)

type fakeLayer struct {
	w, h    float64
	circles int
	lines   int
}

func (l *fakeLayer) Size() (float64, float64) { return l.w, l.h }
func (l *fakeLayer) SetSize(w, h float64)     { l.w, l.h = w, h }
func (l *fakeLayer) Clear()                   { l.circles, l.lines = 0, 0 }

func (l *fakeLayer) FillCircle(x, y, r, opacity float64, c color.Color, blur float64) {
	l.circles++
}

func (l *fakeLayer) Line(x0, y0, x1, y1, opacity float64, c color.Color) { l.lines++ }

func (l *fakeLayer) Blit(dst *ebiten.Image, alpha float64) {}

func newTestPage(t *testing.T, endpoint string) (*Page, *fakeLayer) {
	t.Helper()
	cfg := config.Default()
	cfg.Mute = true
	if endpoint != "" {
		cfg.FormEndpoint = endpoint
	}
	layer := &fakeLayer{}
	p, err := New(cfg, layer, particles.WithRand(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(p.Close)
	return p, layer
}

// settle runs idle ticks until the smooth scroll has arrived.
func settle(t *testing.T, p *Page) {
	t.Helper()
	for range 300 {
		if err := p.step(input{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if math.Abs(p.scroll-p.scrollTarget) > 1 {
		t.Fatalf("scroll did not settle: %v vs %v", p.scroll, p.scrollTarget)
	}
}

func section(p *Page, id string) effects.Section {
	for _, s := range p.geo.sections {
		if s.ID == id {
			return s
		}
	}
	return effects.Section{}
}

func TestNewSizesLayerAndStartsAnimator(t *testing.T) {
	p, layer := newTestPage(t, "")
	if layer.w != config.WindowWidth || layer.h != config.WindowHeight {
		t.Fatalf("expected layer sized to the window, got %vx%v", layer.w, layer.h)
	}
	if p.Animator().State() != particles.Running {
		t.Fatalf("expected running animator, got %v", p.Animator().State())
	}

	if n := p.queue.Flush(); n != 1 {
		t.Fatalf("expected one queued frame, got %d", n)
	}
	if p.Animator().Frames() != 1 || layer.circles != config.ParticleCount {
		t.Fatalf("expected one frame of %d discs, got %d frames and %d discs", config.ParticleCount, p.Animator().Frames(), layer.circles)
	}
}

func TestLayoutResizesLayer(t *testing.T) {
	p, layer := newTestPage(t, "")
	w, h := p.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Fatalf("expected outside size back, got %dx%d", w, h)
	}
	if layer.w != 800 || layer.h != 600 {
		t.Fatalf("expected layer resized, got %vx%v", layer.w, layer.h)
	}
	if p.geo.compact {
		t.Fatal("expected full nav at 800 wide")
	}
	if fw, fh := p.Animator().Field().Bounds(); fw != 800 || fh != 600 {
		t.Fatalf("expected field bounds 800x600, got %vx%v", fw, fh)
	}
}

func TestNavLinkScrollsToSection(t *testing.T) {
	p, _ := newTestPage(t, "")
	link := p.geo.navLinks[5]
	p.click(link.X+5, link.Y+5)

	want := section(p, content.ContactID).Top - navHeight
	if p.scrollTarget != want {
		t.Fatalf("expected target %v, got %v", want, p.scrollTarget)
	}
	settle(t, p)
	if p.nav.Active() != content.ContactID || !p.nav.Scrolled() {
		t.Fatalf("expected contact active and bar scrolled, got %q", p.nav.Active())
	}
}

func TestHeroButtonsScroll(t *testing.T) {
	p, _ := newTestPage(t, "")
	b := p.geo.heroButtons[0]
	p.click(b.X+5, b.Y+5)
	if want := section(p, content.ProjectsID).Top - navHeight; p.scrollTarget != want {
		t.Fatalf("expected target %v, got %v", want, p.scrollTarget)
	}
	b = p.geo.heroButtons[1]
	p.click(b.X+5, b.Y+5)
	if want := section(p, content.ContactID).Top - navHeight; p.scrollTarget != want {
		t.Fatalf("expected target %v, got %v", want, p.scrollTarget)
	}
}

func TestWheelScrollClamps(t *testing.T) {
	p, _ := newTestPage(t, "")
	p.step(input{wheel: 2})
	if p.scrollTarget != 0 {
		t.Fatalf("expected scroll clamped at top, got %v", p.scrollTarget)
	}
	p.step(input{wheel: -3})
	if p.scrollTarget != 3*config.ScrollStep {
		t.Fatalf("expected %v, got %v", 3*config.ScrollStep, p.scrollTarget)
	}
	p.scrollBy(1e6)
	if p.scrollTarget != p.geo.maxScroll(config.WindowHeight) {
		t.Fatalf("expected scroll clamped at bottom, got %v", p.scrollTarget)
	}
}

func TestCompactMenu(t *testing.T) {
	p, _ := newTestPage(t, "")
	p.Layout(640, 480)
	if !p.geo.compact {
		t.Fatal("expected compact nav at 640 wide")
	}
	hb := p.geo.hamburger
	p.click(hb.X+5, hb.Y+5)
	if !p.nav.MenuOpen() {
		t.Fatal("expected menu open")
	}
	link := p.geo.navLinks[5]
	p.click(link.X+5, link.Y+5)
	if p.nav.MenuOpen() {
		t.Fatal("expected link click to close the menu")
	}
	if p.scrollTarget != section(p, content.ContactID).Top-navHeight {
		t.Fatalf("unexpected target %v", p.scrollTarget)
	}
}

func TestScrollRevealStartsCounters(t *testing.T) {
	p, _ := newTestPage(t, "")
	if p.counters[0].Running() {
		t.Fatal("expected counters idle before they are seen")
	}
	link := p.geo.navLinks[1]
	p.click(link.X+5, link.Y+5)
	settle(t, p)
	if !p.counters[0].Running() && p.counters[0].Value() == 0 {
		t.Fatal("expected counters started once scrolled into view")
	}
}

func TestFilterAndSliderClicks(t *testing.T) {
	p, _ := newTestPage(t, "")

	f := p.geo.filters[1]
	p.scroll = f.Y - 200
	p.click(f.X+5, 205)
	if p.filter.Active() != content.ProjectFilters[1] {
		t.Fatalf("expected %q active, got %q", content.ProjectFilters[1], p.filter.Active())
	}
	if p.visibleCards() != 2 {
		t.Fatalf("expected 2 web projects, got %d", p.visibleCards())
	}

	d := p.geo.dots[2]
	p.scroll = d.Y - 200
	p.click(d.X+5, 205)
	if p.slider.Current() != 2 {
		t.Fatalf("expected slide 2, got %d", p.slider.Current())
	}
}

func TestTypingAndQuitKeys(t *testing.T) {
	p, _ := newTestPage(t, "")
	fd := p.geo.fields[0]
	p.scroll = fd.Y - 200
	p.click(fd.X+5, 205)
	if p.form.Current() != 0 {
		t.Fatalf("expected name field focused, got %d", p.form.Current())
	}

	if err := p.step(input{chars: []rune("Quinn")}); err != nil {
		t.Fatalf("expected typing q into a field not to quit, got %v", err)
	}
	p.step(input{backspace: true})
	if got := p.form.Fields[0].Value; got != "Quin" {
		t.Fatalf("expected Quin, got %q", got)
	}

	if err := p.step(input{escape: true}); err != nil {
		t.Fatalf("expected escape to blur first, got %v", err)
	}
	if err := p.step(input{escape: true}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected termination, got %v", err)
	}
	if err := p.step(input{chars: []rune("q")}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected q to quit, got %v", err)
	}
}

func TestSubmitRequiresFields(t *testing.T) {
	p, _ := newTestPage(t, "")
	p.step(input{enter: true})
	if p.form.State() != contact.Idle || p.form.Current() != 0 {
		t.Fatalf("expected empty name focused, got state %v field %d", p.form.State(), p.form.Current())
	}
}

func relay(t *testing.T, status int) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/f/:form", func(c *gin.Context) {
		c.JSON(status, gin.H{"name": c.PostForm("name")})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL + "/f/test"
}

func submitAndWait(t *testing.T, p *Page) {
	t.Helper()
	p.form.Fields[0].Value = "Ada"
	p.form.Fields[1].Value = "ada@example.com"
	p.form.Fields[3].Value = "Hello"
	p.submit()
	if p.form.State() != contact.Sending {
		t.Fatalf("expected sending, got %v", p.form.State())
	}
	deadline := time.Now().Add(5 * time.Second)
	for p.form.State() == contact.Sending {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the relay")
		}
		time.Sleep(5 * time.Millisecond)
		p.advance(tick)
	}
}

func TestSubmitSuccess(t *testing.T) {
	p, _ := newTestPage(t, relay(t, http.StatusOK))
	submitAndWait(t, p)

	if p.form.State() != contact.Sent || p.lastErr != nil {
		t.Fatalf("expected sent, got %v (%v)", p.form.State(), p.lastErr)
	}
	items := p.notifier.Items()
	if len(items) != 1 || items[0].Kind != effects.Success || items[0].Message != contact.SentMessage {
		t.Fatalf("unexpected notifications %+v", items)
	}
}

func TestSubmitFailure(t *testing.T) {
	p, _ := newTestPage(t, relay(t, http.StatusBadRequest))
	submitAndWait(t, p)

	if p.form.State() != contact.Failed || !errors.Is(p.lastErr, contact.ErrRejected) {
		t.Fatalf("expected failed with ErrRejected, got %v (%v)", p.form.State(), p.lastErr)
	}
	items := p.notifier.Items()
	if len(items) != 1 || items[0].Kind != effects.Failure {
		t.Fatalf("unexpected notifications %+v", items)
	}
	if p.form.Fields[0].Value != "Ada" {
		t.Fatal("expected values kept after a failure")
	}
}

func TestHeroButtonHover(t *testing.T) {
	p, _ := newTestPage(t, "")
	b := p.geo.heroButtons[0]
	p.pointer(b.X+b.W-2, b.Y+b.H/2)
	for range 60 {
		p.advance(tick)
	}
	if p.cursor.HoverAmount() < 0.9 {
		t.Fatalf("expected cursor to grow over a button, got %v", p.cursor.HoverAmount())
	}
	dx, _ := p.magnets[0].Offset()
	if dx <= 0 {
		t.Fatalf("expected button pulled toward the pointer, got %v", dx)
	}
	p.pointer(5, 400)
	for range 60 {
		p.advance(tick)
	}
	if p.cursor.HoverAmount() > 0.1 {
		t.Fatalf("expected cursor to shrink off the button, got %v", p.cursor.HoverAmount())
	}
	if dx, dy := p.magnets[0].Offset(); dx != 0 || dy != 0 {
		t.Fatal("expected magnet reset on leave")
	}
}

func TestAboutDecorDrifts(t *testing.T) {
	p, _ := newTestPage(t, "")
	s := p.geo.sections[1]
	p.scroll = s.Top
	rest := p.decorY(1)
	if rest != s.Top+s.Height/2 {
		t.Fatalf("expected ring centred at %v, got %v", s.Top+s.Height/2, rest)
	}
	p.scroll = s.Top + 100
	if got := p.decorY(1); math.Abs(got-(rest-100*decorSpeed)) > 1e-9 {
		t.Fatalf("expected ring to drift to %v, got %v", rest-100*decorSpeed, got)
	}
}

func TestWrap(t *testing.T) {
	got := wrap("aaa bbb ccc", 7*glyphWidth)
	if len(got) != 2 || got[0] != "aaa bbb" || got[1] != "ccc" {
		t.Fatalf("unexpected lines %q", got)
	}
	got = wrap("abcdefghij", 4*glyphWidth)
	if len(got) != 3 || got[0] != "abcd" || got[2] != "ij" {
		t.Fatalf("unexpected lines %q", got)
	}
	if got := wrap("", 100); len(got) != 0 {
		t.Fatalf("expected no lines, got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(75 * time.Second); got != "01:15" {
		t.Fatalf("expected 01:15, got %s", got)
	}
}
