// Package widget has the small interactive pieces a slide is built from.
package widget

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Pointer is one tick's worth of mouse or touch input.
type Pointer struct {
	X, Y         float64
	JustPressed  bool
	JustReleased bool
}

// Button tracks hover and press state. A click is a press and a release
// that both land inside the button.
type Button struct {
	Label  string
	Rect   Rect
	Hidden bool

	hovered bool
	pressed bool
}

// Update feeds the button one pointer sample and reports a click.
func (b *Button) Update(p Pointer) bool {
	if b.Hidden {
		b.hovered, b.pressed = false, false
		return false
	}
	b.hovered = b.Rect.Contains(p.X, p.Y)
	if b.hovered && p.JustPressed {
		b.pressed = true
	}
	clicked := false
	if p.JustReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *Button) Hovered() bool { return b.hovered }
func (b *Button) Pressed() bool { return b.pressed }
