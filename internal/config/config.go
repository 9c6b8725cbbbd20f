package config

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Particle field
	ParticleCount = 100
	LinkDistance  = 100
	AccentColor   = "#7c3aed"
	NeonColor     = "#a855f7"

	// Page geometry
	NavHeight  = 80
	ScrollStep = 60

	// Timers
	LoaderHoldMs     = 2000
	LoaderFadeMs     = 500
	TypingDelayMs    = 1000
	TypingIntervalMs = 100
	SlideIntervalMs  = 5000

	FormEndpoint = "https://formspree.io/f/xldwkrda"
)
