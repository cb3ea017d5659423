package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ild-presenter/internal/nav"
)

func TestNewValidates(t *testing.T) {
	_, err := New()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New(Slide{ID: "a"}, Slide{})
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = New(Slide{ID: "a"}, Slide{ID: "a"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestRegistryOrderAndLookup(t *testing.T) {
	r, err := New(Slide{ID: "one"}, Slide{ID: "two"}, Slide{ID: "three"})
	require.NoError(t, err)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"one", "two", "three"}, r.IDs())
	assert.Equal(t, 1, r.IndexOf("two"))
	assert.Equal(t, -1, r.IndexOf("four"))
	assert.Equal(t, "three", r.At(2).ID)
}

func TestRegistryIsImmutable(t *testing.T) {
	src := Slide{
		ID:       "a",
		Points:   []string{"p"},
		Sections: []Section{{Title: "s", Items: []string{"i"}}},
	}
	r, err := New(src)
	require.NoError(t, err)

	src.Points[0] = "changed"
	src.Sections[0].Items[0] = "changed"

	got := r.At(0)
	assert.Equal(t, "p", got.Points[0])
	assert.Equal(t, "i", got.Sections[0].Items[0])

	got.Title = "mutated"
	got.Sections[0].Items[0] = "mutated"
	assert.Empty(t, r.At(0).Title)
	assert.Equal(t, "i", r.At(0).Sections[0].Items[0])
}

func TestBuiltinDecks(t *testing.T) {
	assert.Equal(t, []string{"program", "traits"}, Names())

	for _, name := range Names() {
		d, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, d.Name)
		assert.NotEmpty(t, d.Title)
		assert.Equal(t, 5, d.Registry.Len())

		particles := 0
		for i := 0; i < d.Registry.Len(); i++ {
			s := d.Registry.At(i)
			assert.NotEmpty(t, s.Title, s.ID)
			assert.NotEmpty(t, s.Background, s.ID)
			if s.Backdrop == BackdropParticles {
				particles++
			}
		}
		assert.Equal(t, 1, particles, "%s has one particle slide", name)
	}
}

func TestIntroHeadingPrecedesPoints(t *testing.T) {
	d, err := Lookup("traits")
	require.NoError(t, err)

	intro := d.Registry.At(0)
	assert.Equal(t, "intro", intro.ID)
	assert.Equal(t, "Key points for this talk:", intro.Lead)
	assert.Empty(t, intro.Note)
	assert.Len(t, intro.Points, 3)
}

func TestBuiltinPolicies(t *testing.T) {
	traits, err := Lookup("traits")
	require.NoError(t, err)
	assert.Equal(t, nav.Clamped, traits.Policy)

	program, err := Lookup("program")
	require.NoError(t, err)
	assert.Equal(t, nav.Cyclic, program.Policy)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("slideshow")
	assert.ErrorIs(t, err, ErrUnknownDeck)
}
