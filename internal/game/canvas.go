package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ild-presenter/internal/particles"
)

// canvas is the offscreen image the particle backdrop paints into. It is
// sized to the viewport and thrown away when the backdrop unmounts.
type canvas struct {
	img *ebiten.Image
}

func (c *canvas) acquire(w, h int) particles.Surface {
	if w <= 0 || h <= 0 {
		c.release()
		return nil
	}
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return imageSurface{img: c.img}
		}
		c.release()
	}
	c.img = ebiten.NewImage(w, h)
	return imageSurface{img: c.img}
}

func (c *canvas) release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

// imageSurface adapts an ebiten image to particles.Surface.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Clear() { s.img.Clear() }

func (s imageSurface) FillVerticalGradient(top, bottom color.NRGBA) {
	fillGradient(s.img, 0, 0, float64(s.img.Bounds().Dx()), float64(s.img.Bounds().Dy()), top, bottom)
}

func (s imageSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

// fillGradient paints a vertical two-stop gradient one row at a time.
func fillGradient(dst *ebiten.Image, x, y, w, h float64, top, bottom color.NRGBA) {
	if top == bottom {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), top, false)
		return
	}
	for row := 0; row < int(h); row++ {
		ratio := float64(row) / h
		vector.DrawFilledRect(dst, float32(x), float32(y)+float32(row), float32(w), 1, lerpColor(top, bottom, ratio), false)
	}
}
