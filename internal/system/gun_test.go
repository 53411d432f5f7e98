package system

import (
	"testing"

	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/pkg/geom"
)

func TestFireShootsOutwardAndReloads(t *testing.T) {
	w := newTestWorld()
	w.record(event.SpawnProjectile)
	gun := NewGunSystem(w.ecs, w.tuning, w.d, w.fx)
	paddle := w.spawnPaddle()

	gun.Fire()
	gun.Fire()
	w.d.Drain()

	if n := w.count(event.SpawnProjectile); n != 1 {
		t.Fatalf("shots = %d, want 1 before the reload ends", n)
	}
	data := w.events[0].Data.(event.SpawnProjectileData)
	if data.Target != event.TargetEnemy {
		t.Fatal("player shot targets the core")
	}
	if !nearVec(data.Direction, geom.V(1, 0), 1e-9) {
		t.Fatalf("direction = %v, want outward (1, 0)", data.Direction)
	}
	if !nearVec(data.Position, geom.V(240+w.tuning.Gun.MuzzleOffset, 0), 1e-9) {
		t.Fatalf("muzzle = %v", data.Position)
	}
	if got := w.ecs.PaddleAmmos[paddle].Ammo; got != w.tuning.Paddle.AmmoStart-1 {
		t.Fatalf("ammo = %d, want %d", got, w.tuning.Paddle.AmmoStart-1)
	}
	if !w.ecs.Cooldowns.Has(paddle, entity.CooldownAmmoRegenDelay) {
		t.Fatal("firing did not delay regeneration")
	}

	w.ecs.Cooldowns.Tick(w.tuning.Gun.Reload + 0.001)
	gun.Fire()
	w.d.Drain()
	if n := w.count(event.SpawnProjectile); n != 2 {
		t.Fatalf("shots after reload = %d, want 2", n)
	}
}

func TestEmptyGunWarnsThrottled(t *testing.T) {
	w := newTestWorld()
	w.record(event.SpawnProjectile)
	gun := NewGunSystem(w.ecs, w.tuning, w.d, w.fx)
	paddle := w.spawnPaddle()
	w.ecs.PaddleAmmos[paddle].Ammo = 0

	gun.Fire()
	gun.Fire()
	if n := w.fx.CountSfx(effects.SfxNoAmmo); n != 1 {
		t.Fatalf("warnings = %d, want 1", n)
	}
	w.ecs.Cooldowns.Tick(w.tuning.Gun.NoAmmoWarning + 0.001)
	gun.Fire()
	w.d.Drain()
	if n := w.fx.CountSfx(effects.SfxNoAmmo); n != 2 {
		t.Fatalf("warnings = %d, want 2", n)
	}
	if w.count(event.SpawnProjectile) != 0 {
		t.Fatal("empty gun fired")
	}
}

func TestRegenAddsOneRoundPerInterval(t *testing.T) {
	w := newTestWorld()
	gun := NewGunSystem(w.ecs, w.tuning, w.d, w.fx)
	paddle := w.spawnPaddle()
	ammo := w.ecs.PaddleAmmos[paddle]
	ammo.Ammo = 5

	gun.Regen()
	gun.Regen()
	if ammo.Ammo != 6 {
		t.Fatalf("ammo = %d, want 6", ammo.Ammo)
	}
	w.ecs.Cooldowns.Tick(w.tuning.Paddle.AmmoRegenInterval + 0.001)
	gun.Regen()
	if ammo.Ammo != 7 {
		t.Fatalf("ammo = %d, want 7", ammo.Ammo)
	}

	// Shooting holds regeneration back for the regen delay.
	w.ecs.Cooldowns.Tick(w.tuning.Paddle.AmmoRegenInterval + 0.001)
	gun.Fire()
	gun.Regen()
	if ammo.Ammo != 6 {
		t.Fatalf("ammo = %d after a shot, want 6", ammo.Ammo)
	}
	w.ecs.Cooldowns.Tick(w.tuning.Paddle.AmmoRegenDelay + 0.001)
	gun.Regen()
	if ammo.Ammo != 7 {
		t.Fatalf("ammo = %d after the delay, want 7", ammo.Ammo)
	}

	ammo.Ammo = ammo.Capacity
	w.ecs.Cooldowns.Tick(w.tuning.Paddle.AmmoRegenInterval + 0.001)
	gun.Regen()
	if ammo.Ammo != ammo.Capacity {
		t.Fatal("regen overfilled the gun")
	}
}
