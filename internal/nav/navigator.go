// Package nav tracks which slide of a deck is active.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSlides      = errors.New("navigator needs at least one slide")
	ErrUnknownPolicy = errors.New("unknown navigation policy")
)

// Policy decides what happens when navigation runs past either end.
type Policy int

const (
	// Clamped saturates at the first and last slide.
	Clamped Policy = iota
	// Cyclic wraps from the last slide to the first and back.
	Cyclic
)

func (p Policy) String() string {
	switch p {
	case Clamped:
		return "clamped"
	case Cyclic:
		return "cyclic"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "clamped" or "cyclic", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamped":
		return Clamped, nil
	case "cyclic":
		return Cyclic, nil
	}
	return Clamped, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Direction is the way a transition moved, used to pick enter/exit animations.
type Direction int

const (
	None     Direction = 0
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Navigator holds the current index into a fixed number of slides.
// The index is always in [0, Len()-1].
type Navigator struct {
	count  int
	index  int
	policy Policy
}

func New(count int, policy Policy) (*Navigator, error) {
	if count < 1 {
		return nil, ErrNoSlides
	}
	if policy != Clamped && policy != Cyclic {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}
	return &Navigator{count: count, policy: policy}, nil
}

func (n *Navigator) Index() int     { return n.index }
func (n *Navigator) Len() int       { return n.count }
func (n *Navigator) Policy() Policy { return n.policy }

// Next advances by one slide and reports the direction moved, or None when
// the index did not change.
func (n *Navigator) Next() Direction {
	next := n.index + 1
	if next >= n.count {
		if n.policy == Clamped {
			return None
		}
		next = 0
	}
	return n.moveTo(next, Forward)
}

// Previous steps back by one slide.
func (n *Navigator) Previous() Direction {
	prev := n.index - 1
	if prev < 0 {
		if n.policy == Clamped {
			return None
		}
		prev = n.count - 1
	}
	return n.moveTo(prev, Backward)
}

// Jump moves straight to i, clamped into range regardless of policy.
func (n *Navigator) Jump(i int) Direction {
	if i < 0 {
		i = 0
	}
	if i > n.count-1 {
		i = n.count - 1
	}
	dir := Forward
	if i < n.index {
		dir = Backward
	}
	return n.moveTo(i, dir)
}

func (n *Navigator) moveTo(i int, dir Direction) Direction {
	if i == n.index {
		return None
	}
	n.index = i
	return dir
}

// HasNext reports whether Next would change the index.
func (n *Navigator) HasNext() bool {
	if n.policy == Cyclic {
		return n.count > 1
	}
	return n.index < n.count-1
}

// HasPrevious reports whether Previous would change the index.
func (n *Navigator) HasPrevious() bool {
	if n.policy == Cyclic {
		return n.count > 1
	}
	return n.index > 0
}

// Progress is (Index()+1)/Len().
func (n *Navigator) Progress() float64 {
	return float64(n.index+1) / float64(n.count)
}
