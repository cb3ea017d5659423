// Package anim holds the cooperative animation primitives the presenter runs
// on: a one-shot frame scheduler pumped by the host loop, the viewport with
// its resize listeners, and a cancellation handle.
package anim

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

type frame struct {
	id       FrameID
	cb       func()
	canceled bool
}

// Frames is a requestAnimationFrame-style scheduler. Callbacks run once, on
// the next Pump; a callback that wants another frame requests it again.
// It is not safe for concurrent use: everything runs on the UI goroutine.
type Frames struct {
	last    FrameID
	pending []*frame
	running []*frame
}

// Request schedules cb for the next Pump.
func (f *Frames) Request(cb func()) FrameID {
	f.last++
	f.pending = append(f.pending, &frame{id: f.last, cb: cb})
	return f.last
}

// Cancel revokes a pending request. Unknown or already-run IDs are ignored.
func (f *Frames) Cancel(id FrameID) {
	if id == 0 {
		return
	}
	for i, fr := range f.pending {
		if fr.id == id {
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return
		}
	}
	for _, fr := range f.running {
		if fr.id == id {
			fr.canceled = true
			return
		}
	}
}

// Pump runs every callback requested before the call and returns how many
// ran. Callbacks requested while pumping wait for the next Pump.
func (f *Frames) Pump() int {
	f.running, f.pending = f.pending, nil
	ran := 0
	for _, fr := range f.running {
		if fr.canceled {
			continue
		}
		fr.canceled = true
		fr.cb()
		ran++
	}
	f.running = nil
	return ran
}

// Pending is the number of callbacks waiting for the next Pump.
func (f *Frames) Pending() int { return len(f.pending) }
