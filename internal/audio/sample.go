package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFile = errors.New("unsupported audio file")

// LoadSample decodes a short wav, mp3 or flac clip and plays it instead of
// the synthesized tone from then on.
func (c *Chime) LoadSample(path string) error {
	if c == nil {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open sample: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode sample: %w", err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != c.sr {
		src = beep.Resample(4, format.SampleRate, c.sr, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: c.sr, NumChannels: 2, Precision: 2})
	buf.Append(src)

	speaker.Lock()
	c.sample = buf
	speaker.Unlock()
	return nil
}
