// Package particles animates the decorative backdrop of drifting circles.
package particles

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/ild-presenter/internal/anim"
	"github.com/iburimskiy/ild-presenter/internal/config"
)

// Surface is what a Field draws on. A nil Surface means nothing to draw on.
type Surface interface {
	Clear()
	FillVerticalGradient(top, bottom color.NRGBA)
	FillCircle(x, y, r float64, c color.NRGBA)
}

type Particle struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Color  color.NRGBA
}

var (
	DefaultPalette = []color.NRGBA{
		{R: 96, G: 165, B: 250, A: 90},
		{R: 129, G: 140, B: 248, A: 90},
		{R: 52, G: 211, B: 153, A: 80},
		{R: 244, G: 114, B: 182, A: 70},
	}

	GradientTop    = color.NRGBA{R: 239, G: 246, B: 255, A: 255}
	GradientBottom = color.NRGBA{R: 224, G: 231, B: 255, A: 255}
)

// Field owns a fixed-size batch of particles inside a width×height box.
type Field struct {
	rng     *rand.Rand
	count   int
	palette []color.NRGBA

	width, height float64
	particles     []Particle
}

type Option func(*Field)

func WithRand(r *rand.Rand) Option { return func(f *Field) { f.rng = r } }

func WithCount(n int) Option { return func(f *Field) { f.count = n } }

func WithPalette(p ...color.NRGBA) Option {
	return func(f *Field) { f.palette = append([]color.NRGBA(nil), p...) }
}

// WithSeed makes the field deterministic. Zero seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(f *Field) {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func New(opts ...Option) *Field {
	f := &Field{
		count:   config.ParticleCount,
		palette: DefaultPalette,
	}
	for _, o := range opts {
		o(f)
	}
	if f.rng == nil {
		WithSeed(0)(f)
	}
	if len(f.palette) == 0 {
		f.palette = DefaultPalette
	}
	return f
}

// Reset throws away every particle and scatters a fresh batch over w×h.
func (f *Field) Reset(w, h float64) {
	f.width, f.height = w, h
	f.particles = f.particles[:0]
	for range f.count {
		f.particles = append(f.particles, Particle{
			X:     f.rng.Float64() * w,
			Y:     f.rng.Float64() * h,
			R:     config.ParticleMinRadius + f.rng.Float64()*(config.ParticleMaxRadius-config.ParticleMinRadius),
			VX:    (f.rng.Float64()*2 - 1) * config.ParticleMaxSpeed,
			VY:    (f.rng.Float64()*2 - 1) * config.ParticleMaxSpeed,
			Color: f.palette[f.rng.IntN(len(f.palette))],
		})
	}
}

func (f *Field) Bounds() (float64, float64) { return f.width, f.height }

// Particles returns a copy of the current batch.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Tick draws one frame on s and advances every particle by its velocity.
// Velocities reflect at the edges; positions are never corrected, so a
// particle can overlap an edge for a frame before it turns back.
func (f *Field) Tick(s Surface) {
	if s == nil {
		return
	}
	s.Clear()
	s.FillVerticalGradient(GradientTop, GradientBottom)

	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, p.R, p.Color)

		p.X += p.VX
		p.Y += p.VY
		if p.X+p.R > f.width || p.X-p.R < 0 {
			p.VX = -p.VX
		}
		if p.Y+p.R > f.height || p.Y-p.R < 0 {
			p.VY = -p.VY
		}
	}
}

// Mount starts animating the field inside vp. acquire is asked for a
// surface on mount and after every resize; it may return nil when there is
// nothing to draw on, in which case ticks do nothing until the next resize.
//
// The returned handle cancels the pending frame and removes the resize
// listener. If Mount panics half way the same cleanup runs first.
func (f *Field) Mount(frames *anim.Frames, vp *anim.Viewport, acquire func(w, h int) Surface) *anim.Handle {
	var (
		surface Surface
		pending anim.FrameID
		stopped bool
	)

	fit := func(w, h int) {
		surface = acquire(w, h)
		f.Reset(float64(w), float64(h))
	}

	var tick func()
	tick = func() {
		if stopped {
			return
		}
		f.Tick(surface)
		pending = frames.Request(tick)
	}

	remove := vp.OnResize(fit)
	h := anim.NewHandle(func() {
		stopped = true
		frames.Cancel(pending)
		remove()
		surface = nil
	})

	mounted := false
	defer func() {
		if !mounted {
			h.Stop()
		}
	}()

	fit(vp.Size())
	pending = frames.Request(tick)
	mounted = true
	return h
}
