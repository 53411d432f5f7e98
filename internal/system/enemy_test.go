package system

import (
	"math"
	"testing"

	"go-porcle/internal/component"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/types"
	"go-porcle/pkg/geom"
)

func (w *testWorld) enemySystem() *EnemySystem {
	return NewEnemySystem(w.ecs, w.tuning, w.d, w.fx, w.index)
}

func (w *testWorld) addTurret(pos geom.Vec2, trigger float64) types.EntityID {
	id := w.addEnemy(pos, 30, 2)
	w.ecs.StopNearCores[id] = &component.StopNearCore{TriggerRadius: trigger}
	w.ecs.GunBarrels[id] = &component.GunBarrel{}
	return id
}

func TestStopMultiplier(t *testing.T) {
	cases := []struct {
		distance float64
		want     float64
	}{
		{300, 0},
		{400, 0},
		{425, math.Pow(0.5, 1.7)},
		{450, 1},
		{900, 1},
	}
	for _, c := range cases {
		if got := StopMultiplier(c.distance, 400, 50, 1.7); !near(got, c.want, 1e-12) {
			t.Errorf("StopMultiplier(%v) = %v, want %v", c.distance, got, c.want)
		}
	}
}

func TestBarrelArmsAndDisarmsAtEpsilon(t *testing.T) {
	w := newTestWorld()
	enemies := w.enemySystem()
	id := w.addTurret(geom.V(402, 0), 400)

	enemies.UpdateStopNearCore()
	if !w.ecs.GunBarrels[id].Active {
		t.Fatalf("barrel inactive at multiplier %f", w.ecs.SpeedMultipliers[id].Value)
	}
	if !w.ecs.Cooldowns.Has(id, entity.CooldownBarrelReload) {
		t.Fatal("arming did not start the reload")
	}

	w.ecs.Transforms[id].Pos = geom.V(410, 0)
	enemies.UpdateStopNearCore()
	if w.ecs.GunBarrels[id].Active {
		t.Fatalf("barrel still active at multiplier %f", w.ecs.SpeedMultipliers[id].Value)
	}
	if got := w.ecs.SpeedMultipliers[id].Value; !near(got, math.Pow(0.2, 1.7), 1e-12) {
		t.Fatalf("speed multiplier = %f", got)
	}
}

func TestBarrelFiresTowardCore(t *testing.T) {
	w := newTestWorld()
	w.record(event.SpawnProjectile)
	enemies := w.enemySystem()
	id := w.addTurret(geom.V(0, -400), 420)
	w.ecs.GunBarrels[id].Active = true

	enemies.UpdateBarrels()
	enemies.UpdateBarrels()
	w.d.Drain()

	if n := w.count(event.SpawnProjectile); n != 1 {
		t.Fatalf("shots = %d, want 1 per reload", n)
	}
	data := w.events[0].Data.(event.SpawnProjectileData)
	if data.Target != event.TargetCore {
		t.Fatalf("target = %v, want core", data.Target)
	}
	if !nearVec(data.Direction, geom.V(0, 1), 1e-9) {
		t.Fatalf("direction = %v, want (0, 1)", data.Direction)
	}
	if !nearVec(data.Position, geom.V(0, -370), 1e-9) {
		t.Fatalf("muzzle = %v, want (0, -370)", data.Position)
	}
	if w.fx.CountSfx(effects.SfxEnemyShoot) != 1 {
		t.Fatal("shot sound not requested")
	}
}

func TestShieldAbsorbsHitButNotKnockback(t *testing.T) {
	w := newTestWorld()
	w.record(event.DespawnEnemy)
	enemies := w.enemySystem()
	id := w.addEnemy(geom.V(300, 0), 30, 1)
	w.ecs.Shields[id] = &component.Shielded{Hits: 1}

	hit := event.Event{Type: event.DamageEnemy, Data: event.DamageEnemyData{Enemy: id, Amount: 1, Knockback: geom.V(50, 0)}}
	enemies.OnDamageEnemy(hit)

	if got := w.ecs.Healths[id].Value; got != 1 {
		t.Fatalf("health = %d, shield should have absorbed the hit", got)
	}
	if _, ok := w.ecs.Shields[id]; ok {
		t.Fatal("spent shield was not removed")
	}
	if got := w.ecs.Impulses[id].Vec; got != geom.V(50, 0) {
		t.Fatalf("impulse = %v, want (50, 0)", got)
	}
	if _, ok := w.ecs.DamageFlashes[id]; !ok {
		t.Fatal("shield hit did not flash")
	}
	if w.fx.CountSfx(effects.SfxShieldHit) != 1 {
		t.Fatal("shield sound not requested")
	}

	enemies.OnDamageEnemy(hit)
	w.d.Drain()
	if n := w.count(event.DespawnEnemy); n != 1 {
		t.Fatalf("despawns after the second hit = %d, want 1", n)
	}
}

func TestLethalHitLeavesDebrisAndScoresOnce(t *testing.T) {
	w := newTestWorld()
	enemies := w.enemySystem()
	score := NewScoreSystem(w.ecs, w.d)
	w.d.SubscribeFunc(event.DamageEnemy, 10, enemies.OnDamageEnemy)
	w.d.Subscribe(event.DespawnEnemy, 10, score)
	w.d.SubscribeFunc(event.DespawnEnemy, 20, enemies.OnDespawnEnemy)
	w.record(event.ScoreChanged)

	id := w.addEnemy(geom.V(300, 0), 26, 1)
	w.index.Sync()
	// Two hits in the same tick, like a ball and a bullet arriving together.
	for i := 0; i < 2; i++ {
		w.d.Push(event.Event{Type: event.DamageEnemy, Data: event.DamageEnemyData{Enemy: id, Amount: 1}})
	}
	w.d.Drain()

	if got := w.ecs.GameState.Score; got != 1 {
		t.Fatalf("score = %d, want 1", got)
	}
	if n := w.count(event.ScoreChanged); n != 1 {
		t.Fatalf("score events = %d, want 1", n)
	}
	if _, ok := w.ecs.Enemies[id]; ok {
		t.Fatal("dead enemy is still an enemy")
	}
	if _, ok := w.ecs.Debris[id]; !ok {
		t.Fatal("dead enemy left no debris")
	}
	if d, ok := w.ecs.Dampings[id]; !ok || d.Factor != w.tuning.Enemy.DebrisDamping {
		t.Fatal("debris is not damped")
	}
	if w.index.Len() != 0 {
		t.Fatal("dead enemy is still indexed")
	}
	if w.fx.CountSfx(effects.SfxEnemyDeath) != 1 {
		t.Fatal("death sound not requested once")
	}
}

func TestDespawnWithoutKillDoesNotScore(t *testing.T) {
	w := newTestWorld()
	enemies := w.enemySystem()
	score := NewScoreSystem(w.ecs, w.d)
	w.d.Subscribe(event.DespawnEnemy, 10, score)
	w.d.SubscribeFunc(event.DespawnEnemy, 20, enemies.OnDespawnEnemy)

	id := w.addEnemy(geom.V(100, 0), 26, 1)
	w.d.Push(event.Event{Type: event.DespawnEnemy, Data: event.DespawnEnemyData{Enemy: id}})
	w.d.Drain()

	if w.ecs.GameState.Score != 0 {
		t.Fatalf("score = %d, want 0", w.ecs.GameState.Score)
	}
	if _, ok := w.ecs.Debris[id]; !ok {
		t.Fatal("removed enemy left no debris")
	}
}
