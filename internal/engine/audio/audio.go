// Package audio provides a fire-and-forget sound effect trigger. The core
// hands it a WAV sample and moves on; playback is neither tracked nor
// awaited.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the playback sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Trigger plays sound effects through a shared mixer.
type Trigger struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer

	volume float64 // 0.0 to 1.0
	muted  bool
}

// New creates a trigger at full volume.
func New() *Trigger {
	return &Trigger{
		volume: 1.0,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (t *Trigger) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	t.sampleRate = DefaultSampleRate
	if err := speaker.Init(t.sampleRate, t.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(t.mixer)

	t.initialized = true
	return nil
}

// Close shuts the speaker down.
func (t *Trigger) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	speaker.Clear()
	t.initialized = false
}

// SetVolume sets the effect volume (0.0 to 1.0).
func (t *Trigger) SetVolume(vol float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	t.volume = vol
}

// SetMuted silences the trigger without touching the volume setting.
func (t *Trigger) SetMuted(muted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.muted = muted
}

// Play decodes a WAV sample and queues it on the mixer. The sample plays
// to completion on its own; errors only cover decoding and setup.
func (t *Trigger) Play(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return fmt.Errorf("audio not initialized")
	}
	if t.muted || t.volume == 0 {
		return nil
	}

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != t.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, t.sampleRate, streamer)
	}

	vol := &effects.Volume{
		Streamer: resampled,
		Base:     2,
		Volume:   volumeToDb(t.volume) / 6, // Base 2: one unit halves/doubles
	}

	speaker.Lock()
	t.mixer.Add(vol)
	speaker.Unlock()
	return nil
}

// volumeToDb converts a 0-1 volume to a decibel offset.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * math.Log10(vol)
}
