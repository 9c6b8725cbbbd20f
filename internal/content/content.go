// Package content holds the text and figures shown on the page.
package content

var (
	Name = "Developer Portfolio"

	HeroSubtitle = "Full-stack developer crafting fast, playful interfaces"

	AboutMe = `I build software that feels alive: interfaces that react, move and
explain themselves. Most of my projects start from a small idea and turn into
a reason to learn a new tool, a new language or a new way to think about a
problem. Away from the keyboard I climb, cook and sketch.`

	Footer = "Esc/Q: quit · Wheel: scroll · Tab: next field · Enter: send"
)

// Section ids in page order.
const (
	HomeID         = "home"
	AboutID        = "about"
	SkillsID       = "skills"
	ProjectsID     = "projects"
	TestimonialsID = "testimonials"
	ContactID      = "contact"
)

var Sections = []string{HomeID, AboutID, SkillsID, ProjectsID, TestimonialsID, ContactID}

type Stat struct {
	Label string
	Count int
}

var Stats = []Stat{
	{"Projects shipped", 48},
	{"Happy clients", 32},
	{"Years coding", 7},
	{"Cups of coffee", 1200},
}

type Skill struct {
	Name    string
	Percent float64
}

var Skills = []Skill{
	{"Go", 90},
	{"JavaScript / TypeScript", 85},
	{"HTML & CSS", 95},
	{"SQL", 75},
}

var CircularSkills = []Skill{
	{"UI Design", 80},
	{"Animation", 70},
	{"DevOps", 60},
}

type Project struct {
	Title       string
	Category    string
	Description string
}

var ProjectFilters = []string{"all", "web", "app", "tool"}

var Projects = []Project{
	{"Particle Portfolio", "web", "An animated single page portfolio with a live particle field and a contact form."},
	{"Terminal Mail", "tool", "A keyboard driven email client for the terminal with fuzzy search."},
	{"Tune Stream", "app", "A desktop music player that visualises whatever it plays."},
	{"Shop Front", "web", "A storefront with server rendered pages and instant search."},
	{"Habit Loop", "app", "A habit tracker with streaks, reminders and gentle charts."},
	{"Deploy Bot", "tool", "A chat bot that ships preview builds for every pull request."},
}

type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

var Testimonials = []Testimonial{
	{"Delivered ahead of schedule and the animations made our launch.", "Maria K.", "Product lead"},
	{"Clear communication and clean, well tested code.", "Tom R.", "CTO"},
	{"The site finally feels like us. Visitors stay longer.", "Lena S.", "Founder"},
}
