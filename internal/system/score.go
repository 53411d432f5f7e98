// internal/system/score.go
package system

import (
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
)

// ScoreSystem counts kills. It must run before the enemy is turned into debris.
type ScoreSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewScoreSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ScoreSystem {
	return &ScoreSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ScoreSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.DespawnEnemyData)
	if !ok || !data.Killed {
		return
	}
	// A second despawn request for the same enemy finds it already converted.
	if _, alive := s.ecs.Enemies[data.Enemy]; !alive {
		return
	}
	s.ecs.GameState.Score++
	s.eventDispatcher.Push(event.Event{Type: event.ScoreChanged, Data: event.ScoreChangedData{Score: s.ecs.GameState.Score}})
}
