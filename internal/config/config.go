package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "ILD Presenter - ←/→ to navigate, M: mute, Esc/Q: Quit"

	// Particle backdrop
	ParticleCount     = 50
	ParticleMinRadius = 5.0
	ParticleMaxRadius = 30.0
	ParticleMaxSpeed  = 0.15

	// Nav button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonGap    = 16
	ButtonBottom = 36

	// Progress bar along the bottom edge
	ProgressBarHeight = 8

	// Slide layout
	SlidePadding    = 48
	TitleSize       = 34
	SubtitleSize    = 20
	BodySize        = 17
	LineSpacing     = 1.35
	AccordionHeader = 44
	BadgeRadius     = 34

	TransitionDuration = 350 * time.Millisecond
	RevealSpeed        = 4.0 // accordion reveal, fractions per second

	TicksPerSecond = 60

	WrapCacheSize = 256

	// Chime
	ChimeSampleRate = 44100
	ChimeFrequency  = 880.0
	ChimeGain       = 0.18
	ChimeDuration   = 180 * time.Millisecond
	LevelRingSize   = 4096
)
