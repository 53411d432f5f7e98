// internal/system/gun.go
package system

import (
	"go-porcle/internal/config"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
)

// GunSystem fires the paddle gun and regenerates its ammo.
type GunSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	fx              effects.Sink
}

func NewGunSystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher, fx effects.Sink) *GunSystem {
	return &GunSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		fx:              fx,
	}
}

// Fire shoots one projectile outward from every paddle that has reloaded.
// Call it every tick the trigger is held.
func (s *GunSystem) Fire() {
	g := s.tuning.Gun
	for _, id := range entity.SortedIDs(s.ecs.PaddleAmmos) {
		if s.ecs.Cooldowns.Has(id, entity.CooldownReload) {
			continue
		}
		ammo := s.ecs.PaddleAmmos[id]
		if ammo.Ammo <= 0 {
			if !s.ecs.Cooldowns.Has(id, entity.CooldownNoAmmoWarning) {
				s.fx.PlaySfx(effects.SfxNoAmmo)
				s.ecs.Cooldowns.Set(id, entity.CooldownNoAmmoWarning, g.NoAmmoWarning)
			}
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		outward := t.Right().Neg()
		ammo.Offset(-1)

		s.eventDispatcher.Push(event.Event{Type: event.SpawnProjectile, Data: event.SpawnProjectileData{
			Position:  t.Pos.Add(outward.Scale(g.MuzzleOffset)),
			Direction: outward,
			Target:    event.TargetEnemy,
			SpreadDeg: g.SpreadDeg,
		}})
		s.ecs.Cooldowns.Set(id, entity.CooldownReload, g.Reload)
		s.ecs.Cooldowns.Set(id, entity.CooldownAmmoRegenDelay, s.tuning.Paddle.AmmoRegenDelay)
		s.fx.PlaySfx(effects.SfxShoot)
	}
}

// Regen adds one round per interval while the gun has not fired recently.
func (s *GunSystem) Regen() {
	for _, id := range entity.SortedIDs(s.ecs.PaddleAmmos) {
		ammo := s.ecs.PaddleAmmos[id]
		if ammo.Ammo >= ammo.Capacity {
			continue
		}
		if s.ecs.Cooldowns.Has(id, entity.CooldownAmmoRegenDelay) || s.ecs.Cooldowns.Has(id, entity.CooldownAmmoRegen) {
			continue
		}
		ammo.Offset(1)
		s.ecs.Cooldowns.Set(id, entity.CooldownAmmoRegen, s.tuning.Paddle.AmmoRegenInterval)
	}
}
