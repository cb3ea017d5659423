package widget

import (
	"github.com/iburimskiy/ild-presenter/internal/anim"
	"github.com/iburimskiy/ild-presenter/internal/config"
)

// Accordion is a titled block whose items show only while it is open.
// Each instance carries its own state; opening one never closes another.
type Accordion struct {
	title  string
	items  []string
	open   bool
	reveal float64
}

func NewAccordion(title string, items []string, open bool) *Accordion {
	a := &Accordion{
		title: title,
		items: append([]string(nil), items...),
		open:  open,
	}
	if open {
		a.reveal = 1
	}
	return a
}

func (a *Accordion) Title() string   { return a.title }
func (a *Accordion) Items() []string { return append([]string(nil), a.items...) }
func (a *Accordion) IsOpen() bool    { return a.open }

// Toggle flips the open state and returns the new value.
func (a *Accordion) Toggle() bool {
	a.open = !a.open
	return a.open
}

// Reveal is how far the body is expanded, 0 closed to 1 open. It trails
// IsOpen while the expand animation runs.
func (a *Accordion) Reveal() float64 { return a.reveal }

func (a *Accordion) Step(dt float64) {
	target := 0.0
	if a.open {
		target = 1
	}
	a.reveal = anim.Approach(a.reveal, target, dt*config.RevealSpeed)
}
