// Package deck holds the fixed slide content of each presentation.
package deck

// Background names one of the slide background styles the renderer knows.
type Background string

const (
	BackgroundSky   Background = "sky"
	BackgroundWhite Background = "white"
	BackgroundMint  Background = "mint"
	BackgroundMist  Background = "mist"
	BackgroundDawn  Background = "dawn"
	BackgroundNight Background = "night"
)

// Decoration names the icon shown in the slide badge. Empty means none.
type Decoration string

const (
	DecorationNone        Decoration = ""
	DecorationLung        Decoration = "lung"
	DecorationSearch      Decoration = "search"
	DecorationPill        Decoration = "pill"
	DecorationStethoscope Decoration = "stethoscope"
	DecorationCheck       Decoration = "check"
	DecorationDNA         Decoration = "dna"
	DecorationHeart       Decoration = "heart"
	DecorationUsers       Decoration = "users"
	DecorationActivity    Decoration = "activity"
	DecorationAlert       Decoration = "alert"
)

type Backdrop int

const (
	BackdropNone Backdrop = iota
	BackdropParticles
)

// Card is a short titled blurb laid out in a row with its siblings.
type Card struct {
	Title      string
	Text       string
	Decoration Decoration
}

// Section is an accordion: Items show once the viewer opens it.
type Section struct {
	Title string
	Items []string
	Open  bool
}

// Step is one stage of a left-to-right pipeline.
type Step struct {
	Label string
	Title string
	Text  string
}

// Slide is one screen of content. Body fields render top to bottom in
// declaration order and any of them may be empty.
type Slide struct {
	ID         string
	Title      string
	Subtitle   string
	Background Background
	Decoration Decoration
	Backdrop   Backdrop

	Lead     string
	Points   []string
	Cards    []Card
	Sections []Section
	Steps    []Step
	Note     string
}

func (s Slide) clone() Slide {
	c := s
	c.Points = append([]string(nil), s.Points...)
	c.Cards = append([]Card(nil), s.Cards...)
	c.Steps = append([]Step(nil), s.Steps...)
	c.Sections = make([]Section, len(s.Sections))
	for i, sec := range s.Sections {
		sec.Items = append([]string(nil), sec.Items...)
		c.Sections[i] = sec
	}
	if len(s.Sections) == 0 {
		c.Sections = nil
	}
	return c
}
