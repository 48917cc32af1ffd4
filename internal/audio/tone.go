// Package audio provides the looping wall-contact tone.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultFrequency is the pitch of the contact tone in Hz.
	DefaultFrequency = 220.0

	amplitude = 0.25
	maxVolume = 2.0
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker starts the shared output device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	return speakerErr
}

// sine is an endless sine wave streamer.
type sine struct {
	freq  float64
	phase float64
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := amplitude * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// Tone is a continuous sine tone with volume and stereo pan. Until Init
// succeeds it runs silent: every call only updates the recorded state.
type Tone struct {
	mu      sync.Mutex
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	pan     *effects.Pan
	mixer   *beep.Mixer
	enabled bool

	playing bool
	level   float64
	balance float64
}

// NewTone builds a silent tone at freq Hz.
func NewTone(freq float64) *Tone {
	if freq <= 0 {
		freq = DefaultFrequency
	}
	vol := &effects.Volume{Streamer: &sine{freq: freq}, Base: 2, Silent: true}
	pan := &effects.Pan{Streamer: vol}
	return &Tone{
		volume: vol,
		pan:    pan,
		ctrl:   &beep.Ctrl{Streamer: pan, Paused: true},
		mixer:  &beep.Mixer{},
	}
}

// Init connects the tone to the speaker. On failure the tone stays silent
// and the error is returned for logging.
func (t *Tone) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.enabled {
		return nil
	}
	if err := initSpeaker(); err != nil {
		return err
	}

	t.mixer.Add(t.ctrl)
	speaker.Play(t.mixer)
	t.enabled = true
	return nil
}

// Enabled reports whether the tone reaches a real output device.
func (t *Tone) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// locked runs fn with the speaker locked when the tone is live.
func (t *Tone) locked(fn func()) {
	if t.enabled {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// Play resumes the loop.
func (t *Tone) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.playing = true
	t.locked(func() { t.ctrl.Paused = false })
}

// Stop pauses the loop.
func (t *Tone) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.playing = false
	t.locked(func() { t.ctrl.Paused = true })
}

// SetVolume sets the linear volume, clamped to [0, 2]. Zero is silence.
func (t *Tone) SetVolume(v float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v = math.Max(0, math.Min(maxVolume, v))
	t.level = v
	t.locked(func() {
		if v == 0 {
			t.volume.Silent = true
			t.volume.Volume = 0
			return
		}
		t.volume.Silent = false
		t.volume.Volume = math.Log2(v)
	})
}

// SetPan sets the stereo balance, clamped to [-1, 1]. Negative is left.
func (t *Tone) SetPan(p float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p = math.Max(-1, math.Min(1, p))
	t.balance = p
	t.locked(func() { t.pan.Pan = p })
}

// Playing reports whether Play was called more recently than Stop.
func (t *Tone) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// Volume returns the last linear volume set.
func (t *Tone) Volume() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.level
}

// Pan returns the last pan set.
func (t *Tone) Pan() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.balance
}

// Close stops the tone and detaches it from the speaker.
func (t *Tone) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.playing = false
	if !t.enabled {
		t.ctrl.Paused = true
		return
	}
	speaker.Lock()
	t.ctrl.Paused = true
	t.mixer.Clear()
	speaker.Unlock()
	t.enabled = false
}
