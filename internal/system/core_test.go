package system

import (
	"testing"

	"go-porcle/internal/component"
	"go-porcle/internal/effects"
	"go-porcle/internal/event"
	"go-porcle/internal/types"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
)

func (w *testWorld) coreSystem() *CoreSystem {
	return NewCoreSystem(w.ecs, w.tuning, w.d, w.fx, nopContext{})
}

func (w *testWorld) spawnCore() (types.EntityID, *component.Core) {
	w.level.SpawnCore(event.Event{Type: event.SpawnLevel})
	id, core, _ := w.ecs.FirstCore()
	return id, core
}

func (w *testWorld) addProjectile(pos, vel geom.Vec2, target event.ProjectileTarget) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = component.NewTransform(pos, vel.Angle())
	w.ecs.Velocities[id] = &component.Velocity{Vec: vel}
	w.ecs.OutOfBounds[id] = &component.DespawnOutOfBounds{}
	w.ecs.Projectiles[id] = &component.Projectile{Size: geom.V(12, 12), Target: target}
	return id
}

func TestCoreLosesOneGearPerHit(t *testing.T) {
	w := newTestWorld()
	cs := w.coreSystem()
	_, core := w.spawnCore()

	lastCreated := types.EntityID(0)
	for id := range w.ecs.Gears {
		if id > lastCreated {
			lastCreated = id
		}
	}

	cs.OnTakeDamage(event.Event{Type: event.TakeDamage})
	if got := core.ActiveGears(); got != w.tuning.Core.Gears-1 {
		t.Fatalf("active gears = %d, want %d", got, w.tuning.Core.Gears-1)
	}
	if core.Gears[0].Entity != lastCreated || core.Gears[0].Active {
		t.Fatalf("first hit should take the last created gear, got %+v", core.Gears[0])
	}
	if _, ok := w.ecs.MovementPaused[lastCreated]; !ok {
		t.Fatal("lost gear keeps spinning")
	}
	if w.fx.CountSfx(effects.SfxCoreHit) != 1 {
		t.Fatal("core hit sound not requested")
	}
}

func TestGameOverScheduledOnce(t *testing.T) {
	w := newTestWorld()
	cs := w.coreSystem()
	_, core := w.spawnCore()

	for i := 0; i < w.tuning.Core.Gears+3; i++ {
		cs.OnTakeDamage(event.Event{Type: event.TakeDamage})
	}
	if core.ActiveGears() != 0 {
		t.Fatalf("active gears = %d, want 0", core.ActiveGears())
	}
	if !w.ecs.GameState.GameOverPending {
		t.Fatal("game over not pending")
	}
	scheduled := 0
	for _, d := range w.ecs.DelayedEvents {
		if d.Event.Type == event.GameOver {
			scheduled++
			if d.Timer != w.tuning.Core.GameOverDelay {
				t.Fatalf("game over delay = %f", d.Timer)
			}
		}
	}
	if scheduled != 1 {
		t.Fatalf("game over scheduled %d times, want 1", scheduled)
	}
	if got := w.fx.CountSfx(effects.SfxCoreHit); got != w.tuning.Core.Gears {
		t.Fatalf("core hits after game over was pending: %d sounds", got)
	}
}

func TestEnemyTouchingCoreDamagesIt(t *testing.T) {
	w := newTestWorld()
	w.record(event.TakeDamage, event.DespawnEnemy)
	cs := w.coreSystem()
	w.spawnCore()
	touching := w.addEnemy(geom.V(100, 0), 26, 3)
	w.addEnemy(geom.V(200, 0), 26, 3)

	cs.CheckContacts()
	w.d.Drain()

	if n := w.count(event.TakeDamage); n != 1 {
		t.Fatalf("core damage events = %d, want 1", n)
	}
	if n := w.count(event.DespawnEnemy); n != 1 {
		t.Fatalf("despawns = %d, want 1", n)
	}
	for _, e := range w.events {
		if data, ok := e.Data.(event.DespawnEnemyData); ok {
			if data.Enemy != touching || data.Killed {
				t.Fatalf("despawn = %+v, want unscored removal of %d", data, touching)
			}
		}
	}
}

func TestClearRadiusAfterCoreHit(t *testing.T) {
	w := newTestWorld()
	w.record(event.DespawnProjectile, event.DespawnEnemy)
	cs := w.coreSystem()

	hostile := w.addProjectile(geom.V(100, 0), geom.V(-5, 0), event.TargetCore)
	w.addProjectile(geom.V(0, 100), geom.V(0, 20), event.TargetEnemy)
	w.addProjectile(geom.V(400, 0), geom.V(-5, 0), event.TargetCore)
	inside := w.addEnemy(geom.V(0, -200), 26, 1)
	w.addEnemy(geom.V(0, -300), 26, 1)

	cs.OnClearRadius(event.Event{Type: event.TakeDamage})
	w.d.Drain()

	if len(w.events) != 2 {
		t.Fatalf("events = %+v, want one projectile and one enemy", w.events)
	}
	for _, e := range w.events {
		switch data := e.Data.(type) {
		case event.DespawnProjectileData:
			if data.Projectile != hostile {
				t.Fatalf("cleared projectile %d, want %d", data.Projectile, hostile)
			}
		case event.DespawnEnemyData:
			if data.Enemy != inside || data.Killed {
				t.Fatalf("cleared enemy %+v, want %d unscored", data, inside)
			}
		}
	}
	if len(w.ecs.ClearFlashes) != 1 {
		t.Fatal("no clear flash")
	}
}

func TestGearsFollowPivot(t *testing.T) {
	w := newTestWorld()
	cs := w.coreSystem()
	w.spawnPaddle()
	_, core := w.spawnCore()
	w.ecs.Transforms[w.pivot()].Rot = 0.5

	// The lost gear must not move.
	lost := core.Gears[0].Entity
	core.Gears[0].Active = false
	w.ecs.MovementPaused[lost] = &component.MovementPaused{}
	before := w.ecs.Transforms[lost].Rot

	cs.UpdateGears()
	for id, gear := range w.ecs.Gears {
		rot := w.ecs.Transforms[id].Rot
		if id == lost {
			if rot != before {
				t.Fatal("paused gear rotated")
			}
			continue
		}
		sign := -1.0
		if gear.Invert {
			sign = 1
		}
		if want := utils.NormalizeAngle((gear.Offset + 0.5) * sign); !near(rot, want, 1e-12) {
			t.Errorf("gear %d rot = %f, want %f", id, rot, want)
		}
	}
}

func TestVisualEffectsExpire(t *testing.T) {
	w := newTestWorld()
	vs := NewVisualEffectSystem(w.ecs)
	enemy := w.addEnemy(geom.V(0, 300), 26, 1)
	w.ecs.DamageFlashes[enemy] = &component.DamageFlash{Timer: 0.05, Duration: 0.05}
	debris := w.ecs.NewEntity()
	w.ecs.Transforms[debris] = component.NewTransform(geom.V(10, 10), 0)
	w.ecs.Debris[debris] = &component.Debris{Timer: 0.3, Duration: 0.3}

	vs.Update(0.1)
	if _, ok := w.ecs.DamageFlashes[enemy]; ok {
		t.Fatal("flash outlived its timer")
	}
	if !w.ecs.Exists(enemy) {
		t.Fatal("expired flash removed the enemy")
	}
	if s := w.ecs.Debris[debris].Scale(); !near(s, 2.0/3, 1e-9) {
		t.Fatalf("debris scale = %f", s)
	}

	vs.Update(0.25)
	if w.ecs.Exists(debris) {
		t.Fatal("debris was not removed after shrinking")
	}
}

func TestBoundsRemovesStrays(t *testing.T) {
	w := newTestWorld()
	w.record(event.DespawnProjectile)
	bs := NewBoundsSystem(w.ecs, w.tuning, w.d)
	limit := 1024 + w.tuning.Motion.OutOfBoundsMargin

	gone := w.addProjectile(geom.V(limit+1, 0), geom.V(10, 0), event.TargetEnemy)
	w.addProjectile(geom.V(limit-1, 0), geom.V(10, 0), event.TargetEnemy)
	ball := w.addBall(geom.V(0, -limit-5), geom.V(0, -1), 250)

	bs.Update()
	w.d.Drain()
	if n := w.count(event.DespawnProjectile); n != 1 || w.events[0].Data.(event.DespawnProjectileData).Projectile != gone {
		t.Fatalf("despawn requests = %+v", w.events)
	}
	if w.ecs.Exists(ball) {
		t.Fatal("stray ball was kept")
	}
}
