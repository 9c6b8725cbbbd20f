package effects

// Section is a vertical band of the page.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

const (
	navScrolledAt   = 100.0
	navActiveOffset = 100.0
	navBarHeight    = 80.0
)

// Navbar tracks the bar style, the highlighted link and the mobile menu.
type Navbar struct {
	sections []Section
	scrolled bool
	active   string
	menuOpen bool
}

func NewNavbar(sections []Section) *Navbar {
	return &Navbar{sections: sections}
}

// OnScroll updates the bar style and the active link. When no section
// contains the probe position the previous link stays active.
func (n *Navbar) OnScroll(scrollY float64) {
	n.scrolled = scrollY > navScrolledAt
	pos := scrollY + navActiveOffset
	for _, s := range n.sections {
		if pos >= s.Top && pos < s.Top+s.Height {
			n.active = s.ID
		}
	}
}

func (n *Navbar) Scrolled() bool { return n.scrolled }
func (n *Navbar) Active() string { return n.active }

// ScrollTarget is where a click on the link for id scrolls to, leaving room
// for the fixed bar.
func (n *Navbar) ScrollTarget(id string) (float64, bool) {
	for _, s := range n.sections {
		if s.ID == id {
			return s.Top - navBarHeight, true
		}
	}
	return 0, false
}

func (n *Navbar) ToggleMenu()    { n.menuOpen = !n.menuOpen }
func (n *Navbar) MenuOpen() bool { return n.menuOpen }
