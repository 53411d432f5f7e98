// internal/system/enemy.go
package system

import (
	"math"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/types"
	"go-porcle/pkg/geom"
)

// EnemySystem drives ranged enemies and turns damage into knockback, flashes
// and debris.
type EnemySystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	fx              effects.Sink
	index           *SpatialIndex
}

func NewEnemySystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher, fx effects.Sink, index *SpatialIndex) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		fx:              fx,
		index:           index,
	}
}

// StopMultiplier is 1 at or beyond trigger+band, 0 at or inside trigger and
// follows a power curve in between.
func StopMultiplier(distance, trigger, band, curve float64) float64 {
	if distance <= trigger {
		return 0
	}
	if band <= 0 || distance >= trigger+band {
		return 1
	}
	return math.Pow((distance-trigger)/band, curve)
}

// UpdateStopNearCore slows ranged enemies down around their trigger radius
// and arms their barrel once they have stopped. The same epsilon arms and
// disarms.
func (s *EnemySystem) UpdateStopNearCore() {
	e := s.tuning.Enemy
	for _, id := range entity.SortedIDs(s.ecs.StopNearCores) {
		stop := s.ecs.StopNearCores[id]
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		mult := StopMultiplier(t.Pos.Len(), stop.TriggerRadius, e.StopBand, e.StopCurve)
		if sm, ok := s.ecs.SpeedMultipliers[id]; ok {
			sm.Value = mult
		} else {
			s.ecs.SpeedMultipliers[id] = &component.SpeedMultiplier{Value: mult}
		}

		barrel, ok := s.ecs.GunBarrels[id]
		if !ok {
			continue
		}
		active := mult < e.BarrelEpsilon
		if active && !barrel.Active {
			s.ecs.Cooldowns.Set(id, entity.CooldownBarrelReload, e.BarrelReload)
		}
		barrel.Active = active
	}
}

// UpdateBarrels fires every armed barrel whose reload has elapsed.
func (s *EnemySystem) UpdateBarrels() {
	e := s.tuning.Enemy
	for _, id := range entity.SortedIDs(s.ecs.GunBarrels) {
		barrel := s.ecs.GunBarrels[id]
		if !barrel.Active || s.ecs.Cooldowns.Has(id, entity.CooldownBarrelReload) {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		enemy, isEnemy := s.ecs.Enemies[id]
		if !ok || !isEnemy {
			continue
		}
		toCore := t.Pos.Neg().Normalize()
		if toCore.IsZero() {
			continue
		}
		s.eventDispatcher.Push(event.Event{Type: event.SpawnProjectile, Data: event.SpawnProjectileData{
			Position:  t.Pos.Add(toCore.Scale(enemy.Radius)),
			Direction: toCore,
			Target:    event.TargetCore,
			SpreadDeg: e.ProjectileSpreadDeg,
		}})
		s.ecs.Cooldowns.Set(id, entity.CooldownBarrelReload, e.BarrelReload)
		s.fx.PlaySfx(effects.SfxEnemyShoot)
	}
}

// OnDamageEnemy applies a hit. Shields soak the hit but not the knockback.
func (s *EnemySystem) OnDamageEnemy(e event.Event) {
	data, ok := e.Data.(event.DamageEnemyData)
	if !ok {
		return
	}
	if _, alive := s.ecs.Enemies[data.Enemy]; !alive {
		return
	}
	s.knockback(data.Enemy, data.Knockback)

	if shield, ok := s.ecs.Shields[data.Enemy]; ok {
		shield.Hits--
		if shield.Hits <= 0 {
			delete(s.ecs.Shields, data.Enemy)
		}
		s.flash(data.Enemy)
		s.fx.PlaySfx(effects.SfxShieldHit)
		return
	}

	health, ok := s.ecs.Healths[data.Enemy]
	if !ok {
		return
	}
	health.Value -= data.Amount
	if health.Value <= 0 {
		s.eventDispatcher.Push(event.Event{Type: event.DespawnEnemy, Data: event.DespawnEnemyData{
			Enemy:  data.Enemy,
			Killed: true,
		}})
		return
	}
	s.flash(data.Enemy)
	s.fx.PlaySfx(effects.SfxEnemyHit)
}

func (s *EnemySystem) knockback(id types.EntityID, v geom.Vec2) {
	if imp, ok := s.ecs.Impulses[id]; ok {
		imp.Vec = imp.Vec.Add(v)
		return
	}
	s.ecs.Impulses[id] = &component.Impulse{Vec: v}
}

func (s *EnemySystem) flash(id types.EntityID) {
	d := s.tuning.Enemy.FlashSeconds
	s.ecs.DamageFlashes[id] = &component.DamageFlash{Timer: d, Duration: d}
}

// OnDespawnEnemy strips the enemy of its gameplay components and leaves a
// shrinking, heavily damped shell behind.
func (s *EnemySystem) OnDespawnEnemy(e event.Event) {
	data, ok := e.Data.(event.DespawnEnemyData)
	if !ok {
		return
	}
	id := data.Enemy
	if _, alive := s.ecs.Enemies[id]; !alive {
		return
	}
	t, ok := s.ecs.Transforms[id]
	if !ok {
		return
	}

	delete(s.ecs.Enemies, id)
	delete(s.ecs.Healths, id)
	delete(s.ecs.Shields, id)
	delete(s.ecs.StopNearCores, id)
	delete(s.ecs.GunBarrels, id)
	delete(s.ecs.HomingTargets, id)
	delete(s.ecs.SpeedMultipliers, id)
	s.ecs.Cooldowns.ClearEntity(id)
	s.index.Remove(id)

	en := s.tuning.Enemy
	s.ecs.Dampings[id] = &component.Damping{Factor: en.DebrisDamping}
	s.ecs.Debris[id] = &component.Debris{Timer: en.ShrinkSeconds, Duration: en.ShrinkSeconds}

	s.fx.SpawnParticles(effects.ParticleEnemyBurst, t.Pos, t.Rot)
	s.fx.PlaySfx(effects.SfxEnemyDeath)
}
