package game

import (
	"github.com/iburimskiy/portfolio-fx/internal/config"
	"github.com/iburimskiy/portfolio-fx/internal/content"
	"github.com/iburimskiy/portfolio-fx/internal/effects"
)

const (
	navHeight    = float64(config.NavHeight)
	compactWidth = 800.0
	maxContent   = 1000.0
	sidePadding  = 40.0

	navLinkWidth = 100.0
	cardHeight   = 140.0
	cardGap      = 20.0
	cardColumns  = 3
)

// sectionHeights are the heights of every section after the hero, in page
// order.
var sectionHeights = []float64{560, 560, 660, 420, 640}

// geometry is the page layout for one viewport width. Vertical positions are
// page coordinates; nav rects are screen coordinates since the bar is fixed.
type geometry struct {
	w       float64
	left    float64
	width   float64
	compact bool

	sections []effects.Section
	doc      float64

	navLinks  []effects.Rect
	hamburger effects.Rect

	heroButtons []effects.Rect
	stats       []effects.Rect
	skills      []effects.Rect
	circles     []effects.Rect
	filters     []effects.Rect
	cards       []effects.Rect
	testimonial effects.Rect
	dots        []effects.Rect
	fields      []effects.Rect
	submit      effects.Rect
}

func newGeometry(w, heroH float64) geometry {
	g := geometry{w: w, compact: w < compactWidth}
	g.width = min(w-2*sidePadding, maxContent)
	g.left = (w - g.width) / 2

	top := heroH
	g.sections = append(g.sections, effects.Section{ID: content.Sections[0], Top: 0, Height: heroH})
	for i, h := range sectionHeights {
		g.sections = append(g.sections, effects.Section{ID: content.Sections[i+1], Top: top, Height: h})
		top += h
	}
	g.doc = top

	n := len(content.Sections)
	for i := range n {
		if g.compact {
			g.navLinks = append(g.navLinks, effects.Rect{X: w - 220, Y: navHeight + float64(i)*40, W: 200, H: 36})
		} else {
			g.navLinks = append(g.navLinks, effects.Rect{X: w - sidePadding - float64(n-i)*navLinkWidth, Y: 30, W: navLinkWidth - 10, H: 20})
		}
	}
	g.hamburger = effects.Rect{X: w - 60, Y: 24, W: 36, H: 32}

	by := heroH*0.38 + 90
	g.heroButtons = []effects.Rect{
		{X: w/2 - 150, Y: by, W: 140, H: 40},
		{X: w/2 + 10, Y: by, W: 140, H: 40},
	}

	about := g.sections[1].Top
	statW := g.width / float64(len(content.Stats))
	for i := range content.Stats {
		g.stats = append(g.stats, effects.Rect{X: g.left + float64(i)*statW, Y: about + 360, W: statW - 10, H: 80})
	}

	skills := g.sections[2].Top
	for i := range content.Skills {
		g.skills = append(g.skills, effects.Rect{X: g.left, Y: skills + 120 + float64(i)*60, W: g.width * 0.55, H: 40})
	}
	for i := range content.CircularSkills {
		g.circles = append(g.circles, effects.Rect{X: g.left + g.width*0.7, Y: skills + 110 + float64(i)*130, W: 100, H: 100})
	}

	projects := g.sections[3].Top
	for i := range content.ProjectFilters {
		g.filters = append(g.filters, effects.Rect{X: g.left + float64(i)*90, Y: projects + 110, W: 80, H: 28})
	}
	cardW := (g.width - cardGap*(cardColumns-1)) / cardColumns
	for i := range content.Projects {
		col, row := i%cardColumns, i/cardColumns
		g.cards = append(g.cards, effects.Rect{
			X: g.left + float64(col)*(cardW+cardGap),
			Y: projects + 170 + float64(row)*(cardHeight+cardGap),
			W: cardW,
			H: cardHeight,
		})
	}

	testimonials := g.sections[4].Top
	g.testimonial = effects.Rect{X: g.left, Y: testimonials + 120, W: g.width, H: 180}
	dotsW := float64(len(content.Testimonials))*24 - 10
	for i := range content.Testimonials {
		g.dots = append(g.dots, effects.Rect{X: w/2 - dotsW/2 + float64(i)*24, Y: testimonials + 330, W: 14, H: 14})
	}

	c := g.sections[5].Top
	half := g.width/2 - 10
	g.fields = []effects.Rect{
		{X: g.left, Y: c + 120, W: half, H: 44},
		{X: g.left + half + 20, Y: c + 120, W: half, H: 44},
		{X: g.left, Y: c + 190, W: g.width, H: 44},
		{X: g.left, Y: c + 260, W: g.width, H: 140},
	}
	g.submit = effects.Rect{X: g.left, Y: c + 430, W: 200, H: 44}
	return g
}

// maxScroll is the largest scroll offset for a viewport of height h.
func (g geometry) maxScroll(h float64) float64 {
	return max(0, g.doc-h)
}

// interactive reports whether the point (x, screen y; docY page y) is over
// anything that reacts to the pointer. Only the first cards grid slots hold
// a visible project card.
func (g geometry) interactive(x, y, docY, heroShift float64, menuOpen bool, cards int) bool {
	if g.compact {
		if g.hamburger.Contains(x, y) {
			return true
		}
		if menuOpen && hitIndex(g.navLinks, x, y) >= 0 {
			return true
		}
	} else if hitIndex(g.navLinks, x, y) >= 0 {
		return true
	}
	if y < navHeight {
		return false
	}
	if hitIndex(g.heroButtons, x, docY-heroShift) >= 0 {
		return true
	}
	for _, rs := range [][]effects.Rect{g.skills, g.filters, g.cards[:cards], g.dots} {
		if hitIndex(rs, x, docY) >= 0 {
			return true
		}
	}
	return g.submit.Contains(x, docY)
}

func hitIndex(rs []effects.Rect, x, y float64) int {
	for i, r := range rs {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
