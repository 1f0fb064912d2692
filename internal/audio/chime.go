// Package audio plays the optional eat chime.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	noteLength = 60 * time.Millisecond
	firstNote  = 659.25 // E5
	secondNote = 987.77 // B5
	volume     = 0.25
)

// Chime owns the speaker and a mixer that sound effects are added to.
// A nil *Chime is valid and silent.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime opens the default audio device.
func NewChime() (*Chime, error) {
	c := &Chime{mixer: &beep.Mixer{}}

	err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("audio init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return c, nil
}

// Open returns a chime when enabled is set and the audio device opens.
// Failures are logged and yield a nil (silent) chime.
func Open(enabled bool, logger *log.Logger) *Chime {
	if !enabled {
		return nil
	}
	c, err := NewChime()
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return c
}

// Eat plays the two-note chime without blocking.
func (c *Chime) Eat() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	s, err := EatSound(sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences any playing sound. The chime plays nothing afterwards.
func (c *Chime) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// EatSound builds the rising two-note chime at rate sr.
func EatSound(sr beep.SampleRate) (beep.Streamer, error) {
	n1, err := note(sr, firstNote)
	if err != nil {
		return nil, err
	}
	n2, err := note(sr, secondNote)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Seq(n1, n2),
		Base:     2,
		Volume:   math.Log2(volume),
	}, nil
}

func note(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(noteLength), tone), nil
}
