// internal/state/services.go
package state

import (
	"log"

	"go-porcle/internal/audio"
	"go-porcle/internal/config"
	"go-porcle/internal/defs"
	"go-porcle/internal/effects"
	"go-porcle/internal/render"
	"go-porcle/internal/replay"
)

// Services is what every screen shares for the lifetime of the program.
type Services struct {
	Tuning  *config.Tuning
	Library defs.EnemyLibrary
	// Seed is used for every new session; zero picks one per session.
	Seed int64

	Renderer *render.Renderer
	// Sound may be nil when audio is disabled or the device failed.
	Sound *audio.SoundManager

	// RecordPath, if set, receives a replay of every finished session.
	RecordPath string
	// Replay, if set, is offered on the title screen. It is replaced by
	// every saved recording.
	Replay *replay.Recording
}

// Effects is the sink the simulation reports to.
func (s *Services) Effects() effects.Sink {
	if s.Sound == nil {
		return effects.Multi{s.Renderer}
	}
	return effects.Multi{s.Renderer, s.Sound}
}

// EndFrame finishes per-frame bookkeeping of the presentation sinks.
func (s *Services) EndFrame(deltaTime, speedFactor float64) {
	s.Renderer.Update(deltaTime, speedFactor)
	if s.Sound != nil {
		s.Sound.EndFrame()
	}
}

// ToggleMute flips the sound state, if there is sound at all.
func (s *Services) ToggleMute() {
	if s.Sound == nil {
		return
	}
	s.Sound.SetMuted(!s.Sound.Muted())
	log.Printf("audio muted: %v", s.Sound.Muted())
}

// saveRecording writes rec to RecordPath. Failures are logged and dropped.
func (s *Services) saveRecording(rec *replay.Recording) {
	if s.RecordPath == "" || rec == nil || len(rec.Inputs) == 0 {
		return
	}
	if err := replay.Save(s.RecordPath, rec); err != nil {
		log.Printf("save replay: %v", err)
		return
	}
	s.Replay = rec
}
