package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cactus-run/internal/config"
)

const (
	sampleRate   = beep.SampleRate(44100)
	failDuration = 600 * time.Millisecond
)

// Speaker plays the cues through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	ambient     *beep.Ctrl
	initialized bool
}

// NewSpeaker creates a speaker sink. Call Initialize before use.
func NewSpeaker(cfg config.AudioConfig) *Speaker {
	return &Speaker{cfg: cfg}
}

// Initialize opens the audio device.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// PlayAmbient starts the background track from the beginning, replacing any
// earlier instance.
func (s *Speaker) PlayAmbient() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: withVolume(NewAmbientGenerator(sampleRate), s.cfg.AmbientVolume)}

	speaker.Lock()
	if s.ambient != nil {
		// A Ctrl without a streamer is drained and dropped by the speaker mixer
		s.ambient.Streamer = nil
	}
	speaker.Unlock()

	s.ambient = ctrl
	speaker.Play(ctrl)
}

// PauseAmbient pauses the background track.
func (s *Speaker) PauseAmbient() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.ambient == nil {
		return
	}
	speaker.Lock()
	s.ambient.Paused = true
	speaker.Unlock()
}

// PlayFail plays the collision cue once.
func (s *Speaker) PlayFail() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Play(withVolume(NewFailGenerator(sampleRate, failDuration), s.cfg.FailVolume))
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.ambient = nil
	s.initialized = false
}

// withVolume scales a streamer linearly; volume 1 is unchanged.
func withVolume(st beep.Streamer, volume float64) beep.Streamer {
	return &effects.Gain{Streamer: st, Gain: volume - 1}
}
