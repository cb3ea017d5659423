package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ild-presenter/internal/deck"
	"github.com/iburimskiy/ild-presenter/internal/nav"
)

func fiveSlides(t *testing.T) *deck.Registry {
	t.Helper()
	slides := make([]deck.Slide, 5)
	for i := range slides {
		slides[i] = deck.Slide{ID: fmt.Sprintf("s%d", i), Title: fmt.Sprintf("Slide %d", i)}
	}
	slides[1].Sections = []deck.Section{
		{Title: "A", Items: []string{"a1"}},
		{Title: "B", Items: []string{"b1"}},
		{Title: "C", Open: true},
	}
	reg, err := deck.New(slides...)
	require.NoError(t, err)
	return reg
}

func TestClampedScenario(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Clamped)
	require.NoError(t, err)

	assert.False(t, p.Previous())
	assert.Equal(t, 0, p.Index())
	for range 4 {
		assert.True(t, p.Next())
	}
	assert.Equal(t, 4, p.Index())
	assert.False(t, p.Next())
	assert.Equal(t, 4, p.Index())
	assert.Equal(t, "s4", p.Slide().ID)
}

func TestCyclicWraps(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Cyclic)
	require.NoError(t, err)

	assert.True(t, p.Previous())
	assert.Equal(t, 4, p.Index())
	assert.True(t, p.Next())
	assert.Equal(t, 0, p.Index())
}

func TestProgress(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Clamped)
	require.NoError(t, err)

	assert.Equal(t, 0.2, p.Progress())
	p.Jump(4)
	assert.Equal(t, 1.0, p.Progress())
}

func TestSectionsAreIndependent(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Clamped)
	require.NoError(t, err)
	p.Next()

	secs := p.Sections()
	require.Len(t, secs, 3)
	assert.False(t, secs[0].IsOpen())
	assert.True(t, secs[2].IsOpen())

	assert.True(t, p.Toggle(0))
	assert.True(t, p.Toggle(1))
	assert.True(t, secs[0].IsOpen())
	assert.True(t, secs[1].IsOpen())
	assert.False(t, p.Toggle(3))
	assert.False(t, p.Toggle(-1))
}

func TestSectionsResetOnRemount(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Clamped)
	require.NoError(t, err)
	p.Next()
	p.Toggle(0)
	p.Toggle(2)

	p.Next()
	assert.Empty(t, p.Sections())
	p.Previous()

	secs := p.Sections()
	assert.False(t, secs[0].IsOpen())
	assert.True(t, secs[2].IsOpen())
}

func TestMountLifecycle(t *testing.T) {
	var log []string
	mount := func(s deck.Slide) func() {
		log = append(log, "mount "+s.ID)
		return func() { log = append(log, "unmount "+s.ID) }
	}
	p, err := New(fiveSlides(t), nav.Clamped, WithMount(mount))
	require.NoError(t, err)

	p.Next()
	p.Next()
	p.Previous()
	p.Close()
	p.Close()

	assert.Equal(t, []string{
		"mount s0",
		"unmount s0", "mount s1",
		"unmount s1", "mount s2",
		"unmount s2", "mount s1",
		"unmount s1",
	}, log)
	assert.False(t, p.Next())
}

func TestMountMayReturnNil(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Clamped, WithMount(func(deck.Slide) func() { return nil }))
	require.NoError(t, err)
	assert.True(t, p.Next())
	p.Close()
}

func TestTransition(t *testing.T) {
	var dirs []nav.Direction
	p, err := New(fiveSlides(t), nav.Cyclic, WithChangeHook(func(d nav.Direction) { dirs = append(dirs, d) }))
	require.NoError(t, err)

	assert.False(t, p.Transition().Active())
	assert.Equal(t, 1.0, p.Transition().Progress())

	p.Next()
	tr := p.Transition()
	assert.Equal(t, "s0", tr.From)
	assert.Equal(t, "s1", tr.To)
	assert.Equal(t, nav.Forward, tr.Direction)
	assert.True(t, tr.Active())
	assert.Equal(t, 0.0, tr.Progress())

	p.Step(10)
	assert.False(t, p.Transition().Active())
	assert.Equal(t, 1.0, p.Transition().Progress())

	p.Previous()
	assert.Equal(t, nav.Backward, p.Transition().Direction)
	assert.Equal(t, []nav.Direction{nav.Forward, nav.Backward}, dirs)
}

func TestNoTransitionWhenClampedAtEdge(t *testing.T) {
	calls := 0
	p, err := New(fiveSlides(t), nav.Clamped, WithChangeHook(func(nav.Direction) { calls++ }))
	require.NoError(t, err)

	p.Previous()
	assert.Equal(t, 0, calls)
	assert.Equal(t, nav.None, p.Transition().Direction)
}

func TestNewRequiresRegistry(t *testing.T) {
	_, err := New(nil, nav.Clamped)
	assert.ErrorIs(t, err, deck.ErrEmpty)
}

func TestSlideByID(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Clamped)
	require.NoError(t, err)

	s, ok := p.SlideByID("s3")
	require.True(t, ok)
	assert.Equal(t, "Slide 3", s.Title)
	assert.Equal(t, 0, p.Index())

	_, ok = p.SlideByID("missing")
	assert.False(t, ok)
}

func TestLeavingHalfOfTransition(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Clamped)
	require.NoError(t, err)
	assert.False(t, p.Transition().Leaving())

	p.Next()
	assert.True(t, p.Transition().Leaving())

	p.Step(p.Transition().Duration / 2)
	assert.True(t, p.Transition().Active())
	assert.False(t, p.Transition().Leaving())
}

func TestOutgoingSectionsKeepTheirState(t *testing.T) {
	p, err := New(fiveSlides(t), nav.Clamped)
	require.NoError(t, err)
	p.Next()
	assert.Empty(t, p.OutgoingSections())

	p.Step(10)
	p.Toggle(0)
	p.Toggle(2)
	p.Next()

	out := p.OutgoingSections()
	require.Len(t, out, 3)
	assert.True(t, out[0].IsOpen())
	assert.False(t, out[1].IsOpen())
	assert.False(t, out[2].IsOpen())
	assert.Empty(t, p.Sections())

	p.Step(10)
	assert.Empty(t, p.OutgoingSections())
}
