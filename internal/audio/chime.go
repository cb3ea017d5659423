// Package audio plays the short chime that accompanies a slide change.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/ild-presenter/internal/config"
)

// Tone is an endless sine at freq Hz whose amplitude decays from gain.
func Tone(sr beep.SampleRate, freq, gain float64) beep.Streamer {
	var pos int
	step := 2 * math.Pi * freq / float64(sr)
	decay := 1 / float64(sr.N(config.ChimeDuration/3))
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := gain * math.Exp(-float64(pos)*decay) * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// Chime owns the speaker. Tones are mixed in as they are played; the mix
// passes through a pause control for muting and a tap for level metering.
type Chime struct {
	sr    beep.SampleRate
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
	tap   *levelTap
	muted bool

	sample *beep.Buffer
}

// NewChime initialises the speaker and starts the (silent) mix.
func NewChime() (*Chime, error) {
	sr := beep.SampleRate(config.ChimeSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	c := newChime(sr)
	speaker.Play(c.tap)
	return c, nil
}

func newChime(sr beep.SampleRate) *Chime {
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer}
	return &Chime{
		sr:    sr,
		mixer: mixer,
		ctrl:  ctrl,
		tap:   newLevelTap(ctrl, config.LevelRingSize),
	}
}

// Play queues a short tone at freq Hz, or the loaded sample if there is one.
// Nothing is queued while muted.
func (c *Chime) Play(freq float64) {
	if c == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if c.muted {
		return
	}
	if c.sample != nil {
		c.mixer.Add(c.sample.Streamer(0, c.sample.Len()))
		return
	}
	c.mixer.Add(beep.Take(c.sr.N(config.ChimeDuration), Tone(c.sr, freq, config.ChimeGain)))
}

func (c *Chime) SetMuted(muted bool) {
	if c == nil {
		return
	}
	speaker.Lock()
	c.muted = muted
	c.ctrl.Paused = muted
	// A paused ctrl never drains the mixer.
	if muted {
		c.mixer.Clear()
	}
	speaker.Unlock()
}

func (c *Chime) Muted() bool { return c != nil && c.muted }

// Level is the recent output loudness, roughly 0 for silence up to gain.
func (c *Chime) Level() float64 {
	if c == nil {
		return 0
	}
	return c.tap.rms(c.sr.N(time.Second / 30))
}

// Close stops playback.
func (c *Chime) Close() {
	if c == nil {
		return
	}
	speaker.Clear()
}
