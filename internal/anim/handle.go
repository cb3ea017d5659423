package anim

import "sync"

// Handle is returned by anything that starts a background animation. Stop
// guarantees that no further ticks happen and every listener the animation
// registered is gone. It may be called any number of times.
type Handle struct {
	once sync.Once
	stop func()
	done bool
}

func NewHandle(stop func()) *Handle {
	return &Handle{stop: stop}
}

func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		h.done = true
		if h.stop != nil {
			h.stop()
		}
	})
}

// Stopped reports whether Stop has run.
func (h *Handle) Stopped() bool { return h != nil && h.done }
