// internal/system/bounds.go
package system

import (
	"go-porcle/internal/config"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
)

// BoundsSystem removes projectiles and stray balls far outside the arena.
type BoundsSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	limit           float64
}

func NewBoundsSystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher) *BoundsSystem {
	return &BoundsSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		limit:           config.GameSize + tuning.Motion.OutOfBoundsMargin,
	}
}

func (s *BoundsSystem) Update() {
	for _, id := range entity.SortedIDs(s.ecs.OutOfBounds) {
		t, ok := s.ecs.Transforms[id]
		if !ok || t.Pos.MaxAbs() <= s.limit {
			continue
		}
		if _, isProjectile := s.ecs.Projectiles[id]; isProjectile {
			s.eventDispatcher.Push(event.Event{Type: event.DespawnProjectile, Data: event.DespawnProjectileData{Projectile: id}})
			continue
		}
		s.ecs.Despawn(id)
	}
	for _, id := range entity.SortedIDs(s.ecs.Balls) {
		if t, ok := s.ecs.Transforms[id]; ok && t.Pos.MaxAbs() > s.limit {
			s.ecs.Despawn(id)
		}
	}
}
