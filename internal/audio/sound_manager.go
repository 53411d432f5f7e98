// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-porcle/internal/audio/synth"
	"go-porcle/internal/effects"
	"go-porcle/pkg/geom"
)

const (
	sampleRate = beep.SampleRate(44100)
	// maxVoices caps simultaneous effects; extra requests are dropped.
	maxVoices = 16
)

var _ effects.Sink = (*SoundManager)(nil)

// SoundManager plays synthesized effects through the beep speaker. It is
// safe to use without Initialize: every request is then dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64
	// frame holds the ids already played since the last EndFrame.
	frame map[effects.Sfx]bool
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		frame:  make(map[effects.Sfx]bool),
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sampleRate)
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// admit decides whether a request becomes a voice: one voice per id and
// frame, and no more than maxVoices at once.
func (sm *SoundManager) admit(id effects.Sfx, playing int) bool {
	if sm.muted || sm.frame[id] || playing >= maxVoices {
		return false
	}
	sm.frame[id] = true
	return true
}

// PlaySfx starts the voice for id.
func (sm *SoundManager) PlaySfx(id effects.Sfx) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	playing := sm.mixer.Len()
	speaker.Unlock()
	if !sm.admit(id, playing) {
		return
	}
	voice := synth.Voice(id, sampleRate)
	if voice == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(synth.Gain(voice, sm.volume))
	speaker.Unlock()
}

// EndFrame allows every id to play again. Call it once per rendered frame.
func (sm *SoundManager) EndFrame() {
	sm.mu.Lock()
	clear(sm.frame)
	sm.mu.Unlock()
}

// SpawnParticles is not audible.
func (sm *SoundManager) SpawnParticles(effects.Particle, geom.Vec2, float64) {}

// AddTrauma is not audible.
func (sm *SoundManager) AddTrauma(float64) {}
