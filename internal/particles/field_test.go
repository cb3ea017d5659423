package particles

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ild-presenter/internal/anim"
)

type recorder struct {
	ops     []string
	circles int
}

func (r *recorder) Clear() { r.ops = append(r.ops, "clear") }

func (r *recorder) FillVerticalGradient(top, bottom color.NRGBA) {
	r.ops = append(r.ops, "gradient")
}

func (r *recorder) FillCircle(x, y, rad float64, c color.NRGBA) {
	r.circles++
	r.ops = append(r.ops, "circle")
}

func TestResetScattersWithinBounds(t *testing.T) {
	f := New(WithSeed(42))
	for _, size := range [][2]float64{{800, 600}, {320, 200}, {1920, 1080}} {
		f.Reset(size[0], size[1])
		ps := f.Particles()
		require.Len(t, ps, 50)
		for _, p := range ps {
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.LessOrEqual(t, p.X, size[0])
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.Y, size[1])
			assert.GreaterOrEqual(t, p.R, 5.0)
			assert.Less(t, p.R, 30.0)
			assert.GreaterOrEqual(t, p.VX, -0.15)
			assert.Less(t, p.VX, 0.15)
			assert.GreaterOrEqual(t, p.VY, -0.15)
			assert.Less(t, p.VY, 0.15)
			assert.Contains(t, DefaultPalette, p.Color)
		}
	}
}

func TestTickDrawOrder(t *testing.T) {
	f := New(WithSeed(1), WithCount(3))
	f.Reset(100, 100)

	var r recorder
	f.Tick(&r)
	assert.Equal(t, []string{"clear", "gradient", "circle", "circle", "circle"}, r.ops)
}

func TestTickNilSurfaceIsNoop(t *testing.T) {
	f := New(WithSeed(1))
	f.Reset(100, 100)
	before := f.Particles()
	f.Tick(nil)
	assert.Equal(t, before, f.Particles())
}

func TestTickAdvancesByVelocity(t *testing.T) {
	f := New(WithCount(0))
	f.Reset(100, 100)
	f.particles = []Particle{{X: 50, Y: 50, R: 5, VX: 0.1, VY: -0.05}}

	f.Tick(&recorder{})
	assert.InDelta(t, 50.1, f.particles[0].X, 1e-9)
	assert.InDelta(t, 49.95, f.particles[0].Y, 1e-9)
	assert.Equal(t, 0.1, f.particles[0].VX)
	assert.Equal(t, -0.05, f.particles[0].VY)
}

func TestReflectsAtRightEdge(t *testing.T) {
	f := New(WithCount(0))
	f.Reset(100, 100)
	f.particles = []Particle{{X: 94.9, Y: 50, R: 5, VX: 0.15}}

	f.Tick(&recorder{})
	p := f.particles[0]
	assert.Equal(t, -0.15, p.VX)
	assert.Greater(t, p.X+p.R, 100.0, "position is not corrected")

	f.Tick(&recorder{})
	assert.Equal(t, -0.15, f.particles[0].VX)
	assert.Less(t, f.particles[0].X, p.X)
}

func TestReflectsAtLeftEdge(t *testing.T) {
	f := New(WithCount(0))
	f.Reset(100, 100)
	f.particles = []Particle{{X: 5.05, Y: 50, R: 5, VX: -0.1}}

	f.Tick(&recorder{})
	assert.Equal(t, 0.1, f.particles[0].VX)
}

func TestVerticalReflectionLeavesXVelocityAlone(t *testing.T) {
	f := New(WithCount(0))
	f.Reset(100, 100)
	f.particles = []Particle{{X: 50, Y: 94.95, R: 5, VY: 0.1}}

	for i := 0; i < 200; i++ {
		f.Tick(&recorder{})
		require.Equal(t, 0.0, f.particles[0].VX)
		require.Equal(t, 50.0, f.particles[0].X)
	}
	assert.Less(t, f.particles[0].Y, 94.95)
}

func TestCustomPaletteAndCount(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	f := New(WithSeed(7), WithCount(4), WithPalette(red))
	f.Reset(10, 10)
	for _, p := range f.Particles() {
		assert.Equal(t, red, p.Color)
	}
	assert.Len(t, f.Particles(), 4)
}

func TestMountTicksUntilStopped(t *testing.T) {
	var frames anim.Frames
	vp := anim.NewViewport(640, 480)
	r := &recorder{}
	f := New(WithSeed(3))

	h := f.Mount(&frames, vp, func(w, h int) Surface { return r })
	assert.Equal(t, 1, vp.Listeners())
	require.Len(t, f.Particles(), 50)

	for range 3 {
		frames.Pump()
	}
	assert.Equal(t, 150, r.circles)

	h.Stop()
	assert.Equal(t, 0, frames.Pending())
	assert.Equal(t, 0, vp.Listeners())
	frames.Pump()
	assert.Equal(t, 150, r.circles)
	h.Stop()
}

func TestMountResizeReinitializes(t *testing.T) {
	var frames anim.Frames
	vp := anim.NewViewport(640, 480)
	var sizes [][2]int
	f := New(WithSeed(9))

	h := f.Mount(&frames, vp, func(w, h int) Surface {
		sizes = append(sizes, [2]int{w, h})
		return &recorder{}
	})
	defer h.Stop()

	vp.Resize(200, 100)
	assert.Equal(t, [][2]int{{640, 480}, {200, 100}}, sizes)

	ps := f.Particles()
	require.Len(t, ps, 50)
	for _, p := range ps {
		assert.LessOrEqual(t, p.X, 200.0)
		assert.LessOrEqual(t, p.Y, 100.0)
	}
}

func TestMountWithoutSurfaceDrawsNothing(t *testing.T) {
	var frames anim.Frames
	vp := anim.NewViewport(0, 0)
	r := &recorder{}
	f := New(WithSeed(5))

	h := f.Mount(&frames, vp, func(w, h int) Surface {
		if w == 0 || h == 0 {
			return nil
		}
		return r
	})
	defer h.Stop()

	frames.Pump()
	assert.Empty(t, r.ops)

	vp.Resize(300, 200)
	frames.Pump()
	assert.Equal(t, 50, r.circles)
}

func TestMountCleansUpWhenAcquirePanics(t *testing.T) {
	var frames anim.Frames
	vp := anim.NewViewport(10, 10)
	f := New(WithSeed(5))

	assert.Panics(t, func() {
		f.Mount(&frames, vp, func(int, int) Surface { panic("no surface") })
	})
	assert.Equal(t, 0, vp.Listeners())
	assert.Equal(t, 0, frames.Pending())
}
