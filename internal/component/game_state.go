// internal/component/game_state.go
package component

import "go-porcle/internal/event"

// GamePhase: фаза игровой сессии.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)

// GameState is the per-session singleton.
type GameState struct {
	Phase GamePhase
	Score int
	// GameOverPending is set once the game-over transition has been scheduled.
	GameOverPending bool
}

// DelayedEvent is a deferred event: it is pushed when Timer runs out and the
// carrying entity is removed.
type DelayedEvent struct {
	Timer float64
	Event event.Event
}
