package anim

import "sort"

// Viewport is the window size as last reported by the host, plus the
// listeners interested in changes to it.
type Viewport struct {
	width, height int
	nextID        int
	listeners     map[int]func(w, h int)
}

func NewViewport(w, h int) *Viewport {
	return &Viewport{width: w, height: h, listeners: map[int]func(w, h int){}}
}

func (v *Viewport) Size() (int, int) { return v.width, v.height }

// Resize records a new size and notifies listeners, in registration order,
// when it differs from the previous one.
func (v *Viewport) Resize(w, h int) bool {
	if w == v.width && h == v.height {
		return false
	}
	v.width, v.height = w, h

	ids := make([]int, 0, len(v.listeners))
	for id := range v.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		// A listener may remove another one while we iterate.
		if fn, ok := v.listeners[id]; ok {
			fn(w, h)
		}
	}
	return true
}

// OnResize registers fn and returns the func that removes it again.
// Calling remove more than once is harmless.
func (v *Viewport) OnResize(fn func(w, h int)) (remove func()) {
	if v.listeners == nil {
		v.listeners = map[int]func(w, h int){}
	}
	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

func (v *Viewport) Listeners() int { return len(v.listeners) }
