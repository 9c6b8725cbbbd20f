package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/contact"
	"github.com/iburimskiy/portfolio-fx/internal/content"
	"github.com/iburimskiy/portfolio-fx/internal/effects"
	"github.com/iburimskiy/portfolio-fx/internal/particles"
	"github.com/iburimskiy/portfolio-fx/internal/render"
)

const cursorBlink = 500 * time.Millisecond

var (
	accent  = render.Hex(config.AccentColor, particles.Accent)
	neon    = render.Hex(config.NeonColor, particles.Accent)
	white   = color.White
	bg      = color.RGBA{R: 10, G: 10, B: 22, A: 255}
	success = render.Hex("#10b981", color.White)
	failure = render.Hex("#ef4444", color.White)
)

func (p *Page) Draw(screen *ebiten.Image) {
	p.queue.Flush()

	screen.Fill(bg)
	hf := p.hero.At(p.scroll)
	p.layer.Blit(screen, hf.Opacity)

	p.drawHero(screen, hf)
	p.drawAbout(screen)
	p.drawSkills(screen)
	p.drawProjects(screen)
	p.drawTestimonials(screen)
	p.drawContact(screen)

	p.drawNav(screen)
	p.drawProgress(screen)
	p.drawNotifications(screen)
	p.drawStatus(screen)
	p.drawLoader(screen)
	p.drawCursor(screen)
}

// Page-space helpers: y is converted to screen space with the scroll offset.

func (p *Page) fill(dst *ebiten.Image, r effects.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y-p.scroll), float32(r.W), float32(r.H), c, true)
}

func (p *Page) stroke(dst *ebiten.Image, r effects.Rect, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y-p.scroll), float32(r.W), float32(r.H), width, c, true)
}

func (p *Page) print(dst *ebiten.Image, s string, x, y float64) {
	sy := y - p.scroll
	if sy < -lineHeight || sy > float64(dst.Bounds().Dy()) {
		return
	}
	ebitenutil.DebugPrintAt(dst, s, int(x), int(sy))
}

func (p *Page) title(dst *ebiten.Image, section int, text string) {
	s := p.geo.sections[section]
	p.print(dst, text, p.geo.left, s.Top+60)
	p.fill(dst, effects.Rect{X: p.geo.left, Y: s.Top + 80, W: 60, H: 3}, accent)
}

func (p *Page) drawHero(dst *ebiten.Image, hf effects.HeroFrame) {
	if hf.Opacity <= 0 {
		return
	}
	shift := hf.Offset + hf.ContentOffset
	cx := p.geo.w / 2
	y := p.heroH * 0.38

	if a, off := p.reveal.At(0); a > 0.5 {
		p.print(dst, content.Name, cx-float64(len(content.Name)*glyphWidth)/2, y+shift+off)
	}
	if a, off := p.reveal.At(1); a > 0.5 {
		sub := p.typer.Text()
		if !p.typer.Done() && (p.elapsed/cursorBlink)%2 == 0 {
			sub += "|"
		}
		p.print(dst, sub, cx-float64(len([]rune(content.HeroSubtitle))*glyphWidth)/2, y+40+shift+off)
	}

	a, off := p.reveal.At(2)
	if a <= 0 {
		return
	}
	labels := []string{"View Work", "Contact Me"}
	for i, m := range p.magnets {
		dx, dy := m.Offset()
		r := m.Rect
		r.X += dx
		r.Y += dy + hf.Offset + off
		c := accent
		if i == 1 {
			c = render.WithAlpha(accent, 0.25)
		}
		p.fill(dst, r, render.WithAlpha(c, a*hf.Opacity))
		p.stroke(dst, r, 1, render.WithAlpha(neon, a*hf.Opacity))
		p.print(dst, labels[i], r.X+(r.W-float64(len(labels[i])*glyphWidth))/2, r.Y+12)
	}
}

func (p *Page) drawAbout(dst *ebiten.Image) {
	s := p.geo.sections[1]
	ry := p.decorY(1) - p.scroll
	vector.StrokeCircle(dst, float32(p.geo.left+p.geo.width-90), float32(ry), 70, 2, render.WithAlpha(neon, 0.15), true)
	p.title(dst, 1, "About Me")
	for i, line := range wrap(content.AboutMe, p.geo.width) {
		p.print(dst, line, p.geo.left, s.Top+110+float64(i)*lineHeight)
	}
	for i, st := range content.Stats {
		r := p.geo.stats[i]
		p.fill(dst, r, render.WithAlpha(white, 0.05))
		p.print(dst, fmt.Sprintf("%d+", p.counters[i].Value()), r.X+12, r.Y+18)
		p.print(dst, st.Label, r.X+12, r.Y+44)
	}
}

func (p *Page) drawSkills(dst *ebiten.Image) {
	p.title(dst, 2, "Skills")
	for i, sk := range content.Skills {
		r := p.geo.skills[i]
		p.print(dst, sk.Name, r.X, r.Y)
		p.print(dst, fmt.Sprintf("%.0f%%", sk.Percent), r.X+r.W-30, r.Y)
		track := effects.Rect{X: r.X, Y: r.Y + 24, W: r.W, H: 8}
		p.fill(dst, track, render.WithAlpha(white, 0.1))
		track.W *= clamp01(p.bars[i].Width() / 100)
		p.fill(dst, track, render.Blend(accent, neon, clamp01(p.bars[i].Width()/100)))
	}

	for i, sk := range content.CircularSkills {
		r := p.geo.circles[i]
		pct := p.circles[i].Percent()
		cx, cy := r.Center()
		radius := r.W / 2
		angle := p.circles[i].Angle()
		for deg := 0.0; deg < 360; deg += 6 {
			x := cx + radius*math.Cos((deg-90)*math.Pi/180)
			y := cy + radius*math.Sin((deg-90)*math.Pi/180) - p.scroll
			c := render.WithAlpha(white, 0.1)
			if deg < angle {
				c = render.WithAlpha(render.Blend(accent, neon, deg/360), 1)
			}
			vector.DrawFilledCircle(dst, float32(x), float32(y), 3, c, true)
		}
		label := fmt.Sprintf("%.0f%%", pct)
		p.print(dst, label, cx-float64(len(label)*glyphWidth)/2, cy-8)
		p.print(dst, sk.Name, cx-float64(len(sk.Name)*glyphWidth)/2, r.Y+r.H+8)
	}
}

func (p *Page) drawProjects(dst *ebiten.Image) {
	p.title(dst, 3, "Projects")
	for i, name := range p.filter.Buttons() {
		r := p.geo.filters[i]
		if name == p.filter.Active() {
			p.fill(dst, r, accent)
		} else {
			p.stroke(dst, r, 1, render.WithAlpha(accent, 0.6))
		}
		p.print(dst, name, r.X+(r.W-float64(len(name)*glyphWidth))/2, r.Y+6)
	}

	items := p.observer.Items()
	cardItems := items[len(items)-len(content.Projects):]
	k := 0
	for i, pr := range content.Projects {
		if !p.filter.Visible(i) {
			continue
		}
		fade := p.filter.Fade(i) * cardItems[k].Progress()
		r := shift(p.geo.cards[k], 20*(1-fade))
		k++
		tint := render.Hue(260+float64(i)*20, 0.6, 0.9)
		p.fill(dst, r, render.WithAlpha(tint, 0.12*fade))
		p.stroke(dst, r, 1, render.WithAlpha(tint, fade))
		if fade < 0.5 {
			continue
		}
		p.print(dst, pr.Title, r.X+12, r.Y+12)
		p.print(dst, "#"+pr.Category, r.X+12, r.Y+30)
		for j, line := range wrap(pr.Description, r.W-24) {
			if j == 4 {
				break
			}
			p.print(dst, line, r.X+12, r.Y+56+float64(j)*lineHeight)
		}
	}
}

func (p *Page) drawTestimonials(dst *ebiten.Image) {
	p.title(dst, 4, "Testimonials")
	if p.slider.Len() == 0 {
		return
	}
	t := content.Testimonials[p.slider.Current()]
	r := p.geo.testimonial
	p.fill(dst, r, render.WithAlpha(white, 0.05))
	lines := wrap("\""+t.Quote+"\"", r.W-40)
	for j, line := range lines {
		p.print(dst, line, r.X+20, r.Y+24+float64(j)*lineHeight)
	}
	p.print(dst, t.Author+", "+t.Role, r.X+20, r.Y+r.H-36)

	for i, d := range p.geo.dots {
		cx, cy := d.Center()
		c := render.WithAlpha(white, 0.3)
		if p.slider.Active(i) {
			c = render.WithAlpha(accent, 1)
		}
		vector.DrawFilledCircle(dst, float32(cx), float32(cy-p.scroll), float32(d.W/2), c, true)
	}
}

func (p *Page) drawContact(dst *ebiten.Image) {
	p.title(dst, 5, "Contact")
	for i, fd := range p.form.Fields {
		r := p.geo.fields[i]
		border := render.WithAlpha(white, 0.2)
		if fd.Active() {
			border = render.WithAlpha(accent, 1)
		}
		p.fill(dst, r, render.WithAlpha(white, 0.04))
		p.stroke(dst, r, 1, border)
		if fd.Focused() {
			p.print(dst, fd.Label, r.X+8, r.Y-18)
		} else {
			p.print(dst, fd.Label, r.X+10, r.Y+14)
		}
		for j, line := range wrap(fd.Value, r.W-20) {
			if float64(j+1)*lineHeight > r.H-12 {
				break
			}
			p.print(dst, line, r.X+10, r.Y+14+float64(j)*lineHeight)
		}
	}

	r := p.geo.submit
	c := accent
	switch p.form.State() {
	case contact.Sending:
		c = render.WithAlpha(accent, 0.5)
	case contact.Sent:
		c = success
	case contact.Failed:
		c = failure
	}
	p.fill(dst, r, c)
	label := p.form.State().Label()
	p.print(dst, label, r.X+(r.W-float64(len(label)*glyphWidth))/2, r.Y+14)
}

func (p *Page) drawNav(dst *ebiten.Image) {
	w := float32(p.geo.w)
	barAlpha := 0.0
	if p.nav.Scrolled() {
		barAlpha = 0.9
	}
	vector.DrawFilledRect(dst, 0, 0, w, float32(navHeight), render.WithAlpha(bg, barAlpha), false)
	ebitenutil.DebugPrintAt(dst, content.Name, int(sidePadding), 32)

	if p.geo.compact {
		h := p.geo.hamburger
		for i := range 3 {
			y := float32(h.Y) + 6 + float32(i)*9
			vector.StrokeLine(dst, float32(h.X)+4, y, float32(h.X+h.W)-4, y, 2, white, true)
		}
		if !p.nav.MenuOpen() {
			return
		}
	}
	for i, id := range content.Sections {
		r := p.geo.navLinks[i]
		if p.geo.compact {
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), render.WithAlpha(bg, 0.95), false)
		}
		ebitenutil.DebugPrintAt(dst, id, int(r.X), int(r.Y)+2)
		if id == p.nav.Active() {
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y+r.H), float32(len(id)*glyphWidth), 2, accent, false)
		}
	}
}

func (p *Page) drawProgress(dst *ebiten.Image) {
	_, h := p.viewport.Size()
	pct := effects.ScrollProgress(p.scroll, p.geo.doc, h)
	vector.DrawFilledRect(dst, 0, 0, float32(p.geo.w*pct/100), 3, render.Blend(accent, neon, pct/100), false)
}

func (p *Page) drawNotifications(dst *ebiten.Image) {
	items := p.notifier.Items()
	for i, n := range items {
		c := success
		if n.Kind == effects.Failure {
			c = failure
		}
		x := p.geo.w - 340 + n.Offset()
		y := navHeight + 20 + float64(i)*70
		vector.DrawFilledRect(dst, float32(x), float32(y), 320, 56, render.Blend(c, bg, 0.2), true)
		ebitenutil.DebugPrintAt(dst, n.Kind.String(), int(x)+36, int(y)+8)
		msg := wrap(n.Message, 270)
		for j, line := range msg[:min(2, len(msg))] {
			ebitenutil.DebugPrintAt(dst, line, int(x)+36, int(y)+24+j*lineHeight)
		}
		if i == len(items)-1 {
			lvl := clamp01(p.chime.Level() * 4)
			vector.DrawFilledRect(dst, float32(x)+12, float32(y)+28-float32(lvl*20), 8, float32(lvl*40)+2, white, false)
		}
	}
}

func (p *Page) drawStatus(dst *ebiten.Image) {
	_, h := p.viewport.Size()
	st := p.anim.LastStats()
	status := fmt.Sprintf("%s  up %s  particles %d  links %d", content.Footer, formatDuration(p.elapsed), p.anim.Field().Len(), st.Lines)
	if p.cfg.Mute {
		status += "  muted"
	}
	if p.lastErr != nil {
		status += " | Error: " + p.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(dst, status, 12, int(h)-20)
}

func (p *Page) drawLoader(dst *ebiten.Image) {
	if p.loader.Removed() {
		return
	}
	a := p.loader.Opacity()
	w, h := p.viewport.Size()
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), render.WithAlpha(bg, a), false)
	if a < 0.5 {
		return
	}
	turn := p.elapsed.Seconds() * 2 * math.Pi
	for i := range 8 {
		ang := turn + float64(i)*math.Pi/4
		x := w/2 + 24*math.Cos(ang)
		y := h/2 + 24*math.Sin(ang)
		vector.DrawFilledCircle(dst, float32(x), float32(y), 4, render.WithAlpha(accent, a*float64(i+1)/8), true)
	}
}

func (p *Page) drawCursor(dst *ebiten.Image) {
	if !p.cursor.Visible() {
		return
	}
	x, y := p.cursor.Position()
	half := p.cursor.Size() / 2
	c := render.Blend(accent, neon, p.cursor.HoverAmount())
	vector.StrokeCircle(dst, float32(x+half), float32(y+half), float32(half*p.cursor.Scale()), 2, c, true)
}
