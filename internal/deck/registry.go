package deck

import (
	"errors"
	"fmt"
	"sort"

	"github.com/iburimskiy/ild-presenter/internal/nav"
)

var (
	ErrEmpty       = errors.New("deck has no slides")
	ErrMissingID   = errors.New("slide has no id")
	ErrDuplicateID = errors.New("duplicate slide id")
	ErrUnknownDeck = errors.New("unknown deck")
)

// Registry is an ordered, read-only list of slides. It keeps its own
// copies, and every accessor hands out copies, so nothing can change a
// slide after construction.
type Registry struct {
	slides []Slide
	index  map[string]int
}

func New(slides ...Slide) (*Registry, error) {
	if len(slides) == 0 {
		return nil, ErrEmpty
	}
	r := &Registry{
		slides: make([]Slide, 0, len(slides)),
		index:  make(map[string]int, len(slides)),
	}
	for i, s := range slides {
		if s.ID == "" {
			return nil, fmt.Errorf("slide %d: %w", i, ErrMissingID)
		}
		if _, dup := r.index[s.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, s.ID)
		}
		r.index[s.ID] = i
		r.slides = append(r.slides, s.clone())
	}
	return r, nil
}

func (r *Registry) Len() int { return len(r.slides) }

// At returns slide i. It panics when i is out of range, like a slice.
func (r *Registry) At(i int) Slide { return r.slides[i].clone() }

// IndexOf returns the position of id, or -1.
func (r *Registry) IndexOf(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

func (r *Registry) IDs() []string {
	ids := make([]string, len(r.slides))
	for i, s := range r.slides {
		ids[i] = s.ID
	}
	return ids
}

// Deck is a named registry together with the navigation policy it was
// designed for.
type Deck struct {
	Name     string
	Title    string
	Policy   nav.Policy
	Registry *Registry
}

var builtin = map[string]func() []Slide{
	"traits":  traitsSlides,
	"program": programSlides,
}

var builtinPolicy = map[string]nav.Policy{
	"traits":  nav.Clamped,
	"program": nav.Cyclic,
}

var builtinTitle = map[string]string{
	"traits":  "ILD and Treatable Traits",
	"program": "ILD Clinical Program",
}

// Names lists the built-in decks in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup builds the named built-in deck.
func Lookup(name string) (Deck, error) {
	slides, ok := builtin[name]
	if !ok {
		return Deck{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownDeck, name, Names())
	}
	reg, err := New(slides()...)
	if err != nil {
		return Deck{}, fmt.Errorf("build deck %q: %w", name, err)
	}
	return Deck{
		Name:     name,
		Title:    builtinTitle[name],
		Policy:   builtinPolicy[name],
		Registry: reg,
	}, nil
}
