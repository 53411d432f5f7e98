// internal/system/core.go
package system

import (
	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/interfaces"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
)

const clearFlashSeconds = 0.35

// CoreSystem handles damage to the core, enemies reaching it and the gear
// animation.
type CoreSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	fx              effects.Sink
	game            interfaces.GameContext
}

func NewCoreSystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher, fx effects.Sink, game interfaces.GameContext) *CoreSystem {
	return &CoreSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		fx:              fx,
		game:            game,
	}
}

// OnTakeDamage disables the first active gear. Losing the last one schedules
// the game over exactly once.
func (s *CoreSystem) OnTakeDamage(e event.Event) {
	gs := s.ecs.GameState
	if gs.GameOverPending {
		return
	}
	coreID, core, ok := s.ecs.FirstCore()
	if !ok {
		s.game.WarnOnce("core-missing", "take damage without a core")
		return
	}

	idx := -1
	for i, g := range core.Gears {
		if g.Active {
			idx = i
			break
		}
	}
	if idx < 0 {
		entity.Invariant("core %d damaged with no active gear", coreID)
		return
	}
	gear := &core.Gears[idx]
	gear.Active = false
	s.ecs.MovementPaused[gear.Entity] = &component.MovementPaused{}

	s.fx.AddTrauma(0.9)
	s.fx.PlaySfx(effects.SfxCoreHit)

	if core.ActiveGears() == 0 {
		gs.GameOverPending = true
		s.ecs.Schedule(s.tuning.Core.GameOverDelay, event.Event{Type: event.GameOver})
	}
}

// OnClearRadius removes everything hostile inside the paddle orbit after a hit.
func (s *CoreSystem) OnClearRadius(e event.Event) {
	radius := s.tuning.Paddle.OrbitRadius

	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		if s.ecs.Projectiles[id].Target != event.TargetCore {
			continue
		}
		if t, ok := s.ecs.Transforms[id]; ok && t.Pos.Len() < radius {
			s.eventDispatcher.Push(event.Event{Type: event.DespawnProjectile, Data: event.DespawnProjectileData{Projectile: id}})
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		if t, ok := s.ecs.Transforms[id]; ok && t.Pos.Len() < radius {
			s.eventDispatcher.Push(event.Event{Type: event.DespawnEnemy, Data: event.DespawnEnemyData{Enemy: id}})
		}
	}

	flash := s.ecs.NewEntity()
	s.ecs.Transforms[flash] = component.NewTransform(geom.Vec2{}, 0)
	s.ecs.ClearFlashes[flash] = &component.ClearFlash{Timer: clearFlashSeconds, Duration: clearFlashSeconds, Radius: radius}
	s.fx.SpawnParticles(effects.ParticleCoreClear, geom.Vec2{}, 0)
}

// CheckContacts damages the core for every enemy touching it.
func (s *CoreSystem) CheckContacts() {
	coreID, core, ok := s.ecs.FirstCore()
	if !ok {
		return
	}
	ct, ok := s.ecs.Transforms[coreID]
	if !ok {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		if t.Pos.Distance(ct.Pos) > core.Radius+s.ecs.Enemies[id].Radius {
			continue
		}
		s.eventDispatcher.Push(event.Event{Type: event.TakeDamage})
		s.eventDispatcher.Push(event.Event{Type: event.DespawnEnemy, Data: event.DespawnEnemyData{Enemy: id}})
	}
}

// UpdateGears spins live gears with the paddle pivot.
func (s *CoreSystem) UpdateGears() {
	var theta float64
	found := false
	for _, pivot := range entity.SortedIDs(s.ecs.PaddleRotations) {
		if t, ok := s.ecs.Transforms[pivot]; ok {
			theta, found = t.Rot, true
			break
		}
	}
	if !found {
		return
	}
	for id, gear := range s.ecs.Gears {
		if s.ecs.IsPaused(id) {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		sign := -1.0
		if gear.Invert {
			sign = 1
		}
		t.Rot = utils.NormalizeAngle((gear.Offset + theta) * sign * gear.Multiplier)
	}
}
