// Package shell is the presentation state: which slide is up, the
// accordions on it, and the transition that brought it there. It has no
// rendering dependencies so it can be driven headlessly.
package shell

import (
	"fmt"

	"github.com/iburimskiy/ild-presenter/internal/anim"
	"github.com/iburimskiy/ild-presenter/internal/config"
	"github.com/iburimskiy/ild-presenter/internal/deck"
	"github.com/iburimskiy/ild-presenter/internal/nav"
	"github.com/iburimskiy/ild-presenter/internal/widget"
)

// MountFunc is called when a slide becomes active. The func it returns, if
// any, runs when the slide stops being active.
type MountFunc func(s deck.Slide) (unmount func())

// Transition describes the most recent slide change.
type Transition struct {
	From      string
	To        string
	Direction nav.Direction
	Elapsed   float64
	Duration  float64
}

func (t Transition) Active() bool { return t.Direction != nav.None && t.Elapsed < t.Duration }

// Progress is the eased completion of the transition in [0,1].
func (t Transition) Progress() float64 {
	if t.Direction == nav.None || t.Duration <= 0 {
		return 1
	}
	return anim.EaseOutCubic(t.Elapsed / t.Duration)
}

// Leaving reports whether the previous slide is still the one on screen,
// which is the first half of the transition.
func (t Transition) Leaving() bool { return t.Active() && t.Progress() < 0.5 }

type Presentation struct {
	reg *deck.Registry
	nav *nav.Navigator

	mount    MountFunc
	onChange func(nav.Direction)
	unmount  func()
	slide    deck.Slide
	sections []*widget.Accordion

	transition Transition
	outgoing   []*widget.Accordion
	closed     bool
}

type Option func(*Presentation)

func WithMount(fn MountFunc) Option { return func(p *Presentation) { p.mount = fn } }

// WithChangeHook is told about every slide change after it happens.
func WithChangeHook(fn func(nav.Direction)) Option {
	return func(p *Presentation) { p.onChange = fn }
}

// New mounts the first slide of reg.
func New(reg *deck.Registry, policy nav.Policy, opts ...Option) (*Presentation, error) {
	if reg == nil {
		return nil, deck.ErrEmpty
	}
	n, err := nav.New(reg.Len(), policy)
	if err != nil {
		return nil, fmt.Errorf("new navigator: %w", err)
	}
	p := &Presentation{reg: reg, nav: n}
	for _, o := range opts {
		o(p)
	}
	p.mountCurrent()
	return p, nil
}

func (p *Presentation) Slide() deck.Slide  { return p.slide }
func (p *Presentation) Index() int         { return p.nav.Index() }
func (p *Presentation) Len() int           { return p.nav.Len() }
func (p *Presentation) Policy() nav.Policy { return p.nav.Policy() }
func (p *Presentation) Progress() float64  { return p.nav.Progress() }
func (p *Presentation) CanNext() bool      { return p.nav.HasNext() }
func (p *Presentation) CanPrevious() bool  { return p.nav.HasPrevious() }

func (p *Presentation) Transition() Transition { return p.transition }

// SlideByID looks up any slide of the deck, active or not.
func (p *Presentation) SlideByID(id string) (deck.Slide, bool) {
	i := p.reg.IndexOf(id)
	if i < 0 {
		return deck.Slide{}, false
	}
	return p.reg.At(i), true
}

// Sections returns the accordions of the active slide, in slide order.
func (p *Presentation) Sections() []*widget.Accordion {
	return append([]*widget.Accordion(nil), p.sections...)
}

// OutgoingSections returns the accordions of the slide being left, as they
// were when it was left. It is empty once that slide is off screen.
func (p *Presentation) OutgoingSections() []*widget.Accordion {
	if !p.transition.Leaving() {
		return nil
	}
	return append([]*widget.Accordion(nil), p.outgoing...)
}

func (p *Presentation) Next() bool     { return p.change(p.nav.Next) }
func (p *Presentation) Previous() bool { return p.change(p.nav.Previous) }

func (p *Presentation) Jump(i int) bool {
	return p.change(func() nav.Direction { return p.nav.Jump(i) })
}

// Toggle flips accordion i on the active slide. Out-of-range indexes are
// ignored and report false.
func (p *Presentation) Toggle(i int) bool {
	if i < 0 || i >= len(p.sections) {
		return false
	}
	p.sections[i].Toggle()
	return true
}

// Step advances the cosmetic animations by dt seconds.
func (p *Presentation) Step(dt float64) {
	if p.transition.Direction != nav.None && p.transition.Elapsed < p.transition.Duration {
		p.transition.Elapsed = min(p.transition.Elapsed+dt, p.transition.Duration)
	}
	if !p.transition.Leaving() {
		p.outgoing = nil
	}
	for _, a := range p.sections {
		a.Step(dt)
	}
}

// Close unmounts the active slide. The presentation is unusable afterwards.
func (p *Presentation) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.outgoing = nil
	p.unmountCurrent()
}

func (p *Presentation) change(move func() nav.Direction) bool {
	if p.closed {
		return false
	}
	from := p.slide.ID
	dir := move()
	if dir == nav.None {
		return false
	}
	leaving := p.sections
	p.unmountCurrent()
	p.mountCurrent()
	p.outgoing = leaving
	p.transition = Transition{
		From:      from,
		To:        p.slide.ID,
		Direction: dir,
		Duration:  config.TransitionDuration.Seconds(),
	}
	if p.onChange != nil {
		p.onChange(dir)
	}
	return true
}

func (p *Presentation) mountCurrent() {
	p.slide = p.reg.At(p.nav.Index())
	p.sections = make([]*widget.Accordion, 0, len(p.slide.Sections))
	for _, s := range p.slide.Sections {
		p.sections = append(p.sections, widget.NewAccordion(s.Title, s.Items, s.Open))
	}
	if p.mount != nil {
		p.unmount = p.mount(p.slide)
	}
}

func (p *Presentation) unmountCurrent() {
	p.sections = nil
	if p.unmount != nil {
		fn := p.unmount
		p.unmount = nil
		fn()
	}
}
