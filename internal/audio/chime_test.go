package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ild-presenter/internal/config"
)

func TestToneIsBoundedAndDecays(t *testing.T) {
	sr := beep.SampleRate(44100)
	s := Tone(sr, 440, 0.5)

	buf := make([][2]float64, 512)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 512, n)

	var early float64
	for _, v := range buf {
		assert.LessOrEqual(t, math.Abs(v[0]), 0.5)
		assert.Equal(t, v[0], v[1])
		early = math.Max(early, math.Abs(v[0]))
	}

	for range 40 {
		s.Stream(buf)
	}
	var late float64
	for _, v := range buf {
		late = math.Max(late, math.Abs(v[0]))
	}
	assert.Less(t, late, early)
}

func TestLevelTapRMS(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.5, 0.5}
		}
		return len(samples), true
	})
	tap := newLevelTap(src, 8)
	assert.Equal(t, 0.0, tap.rms(4))

	tap.Stream(make([][2]float64, 3))
	assert.InDelta(t, 0.5, tap.rms(3), 1e-9)
	assert.InDelta(t, 0.5*math.Sqrt(3.0/8.0), tap.rms(100), 1e-9)
	assert.NoError(t, tap.Err())
}

func TestChimeLevelAndMute(t *testing.T) {
	c := newChime(beep.SampleRate(config.ChimeSampleRate))
	assert.Equal(t, 0.0, c.Level())

	c.Play(config.ChimeFrequency)
	buf := make([][2]float64, 2048)
	c.tap.Stream(buf)
	assert.Greater(t, c.Level(), 0.0)

	c.SetMuted(true)
	assert.True(t, c.Muted())
	c.tap.Stream(buf)
	assert.Equal(t, 0.0, c.Level())
}

func TestMutedChimeQueuesNothing(t *testing.T) {
	c := newChime(beep.SampleRate(config.ChimeSampleRate))
	c.Play(config.ChimeFrequency)
	require.Equal(t, 1, c.mixer.Len())

	c.SetMuted(true)
	assert.Equal(t, 0, c.mixer.Len())
	for range 10 {
		c.Play(config.ChimeFrequency)
	}
	assert.Equal(t, 0, c.mixer.Len())

	c.SetMuted(false)
	c.tap.Stream(make([][2]float64, 2048))
	assert.Equal(t, 0.0, c.Level())
}

func TestNilChimeIsSilent(t *testing.T) {
	var c *Chime
	c.Play(440)
	c.SetMuted(true)
	c.Close()
	assert.False(t, c.Muted())
	assert.Equal(t, 0.0, c.Level())
}

func TestLoadSampleResamplesWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "click.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	src := beep.SampleRate(22050)
	format := beep.Format{SampleRate: src, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(1000, Tone(src, 440, 0.5)), format))
	require.NoError(t, f.Close())

	c := newChime(beep.SampleRate(config.ChimeSampleRate))
	require.NoError(t, c.LoadSample(path))
	require.NotNil(t, c.sample)
	assert.InDelta(t, 2000, c.sample.Len(), 50)

	c.Play(0)
	c.tap.Stream(make([][2]float64, 2048))
	assert.Greater(t, c.Level(), 0.0)
}

func TestLoadSampleRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "click.ogg")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))

	c := newChime(beep.SampleRate(config.ChimeSampleRate))
	assert.ErrorIs(t, c.LoadSample(path), ErrUnsupportedFile)

	err := c.LoadSample(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
