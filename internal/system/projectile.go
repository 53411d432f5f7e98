// internal/system/projectile.go
package system

import (
	"math"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/types"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
)

// ProjectileSystem управляет созданием снарядов и их попаданиями.
type ProjectileSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	fx              effects.Sink
	rng             *utils.PRNGService
	index           *SpatialIndex
}

func NewProjectileSystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher, fx effects.Sink, rng *utils.PRNGService, index *SpatialIndex) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		fx:              fx,
		rng:             rng,
		index:           index,
	}
}

// OnSpawnProjectile creates a projectile. The direction is rotated by a
// uniform random spread.
func (s *ProjectileSystem) OnSpawnProjectile(e event.Event) {
	data, ok := e.Data.(event.SpawnProjectileData)
	if !ok {
		return
	}
	dir := data.Direction.Normalize()
	if dir.IsZero() {
		return
	}
	if data.SpreadDeg > 0 {
		half := data.SpreadDeg / 2 * math.Pi / 180
		dir = dir.Rotate(s.rng.Range(-half, half))
	}

	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(data.Position, dir.Angle())
	s.ecs.SetMoveDirection(id, component.MoveDirection{Dir: dir})
	s.ecs.OutOfBounds[id] = &component.DespawnOutOfBounds{}

	switch data.Target {
	case event.TargetEnemy:
		g := s.tuning.Gun
		s.ecs.Speeds[id] = &component.Speed{Value: g.ProjectileSpeed}
		s.ecs.Dampings[id] = &component.Damping{Factor: g.ProjectileDamping}
		s.ecs.Projectiles[id] = &component.Projectile{
			Size:   geom.V(g.ProjectileWidth, g.ProjectileHeight),
			Target: event.TargetEnemy,
		}
	case event.TargetCore:
		en := s.tuning.Enemy
		s.ecs.Speeds[id] = &component.Speed{Value: en.ProjectileSpeed}
		s.ecs.Projectiles[id] = &component.Projectile{
			Size:   geom.V(en.ProjectileSize, en.ProjectileSize),
			Target: event.TargetCore,
		}
	}
}

// OnDespawnProjectile удаляет снаряд.
func (s *ProjectileSystem) OnDespawnProjectile(e event.Event) {
	data, ok := e.Data.(event.DespawnProjectileData)
	if !ok {
		return
	}
	if _, exists := s.ecs.Projectiles[data.Projectile]; !exists {
		return
	}
	s.ecs.Despawn(data.Projectile)
}

// ResolveCollisions sweeps every projectile along this tick's displacement.
func (s *ProjectileSystem) ResolveCollisions() {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		if s.ecs.IsPaused(id) {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		vel, hasV := s.ecs.Velocities[id]
		if !ok || !hasV || vel.Vec.IsZero() {
			continue
		}
		dir := vel.Vec.Normalize()
		dist := vel.Vec.Len() * s.tuning.Ball.SweepMargin

		switch proj.Target {
		case event.TargetEnemy:
			s.resolveAgainstEnemies(id, proj, t.Pos, dir, dist)
		case event.TargetCore:
			s.resolveAgainstCore(id, proj, t.Pos, dir, dist)
		}
	}
}

func (s *ProjectileSystem) resolveAgainstEnemies(id types.EntityID, proj *component.Projectile, origin, dir geom.Vec2, dist float64) {
	radius := proj.Radius()
	best := types.EntityID(0)
	bestDist := math.MaxFloat64
	for _, eid := range s.index.QuerySweep(origin, dir, dist, radius) {
		enemy := s.ecs.Enemies[eid]
		et, ok := s.ecs.Transforms[eid]
		if !ok || enemy == nil {
			continue
		}
		h, hit := geom.SweepCircle(origin, dir, dist, radius, et.Pos, enemy.Radius)
		if hit && h.Distance < bestDist {
			best, bestDist = eid, h.Distance
		}
	}
	if best == 0 {
		return
	}
	s.eventDispatcher.Push(event.Event{Type: event.DamageEnemy, Data: event.DamageEnemyData{
		Enemy:     best,
		Amount:    1,
		Knockback: dir.Scale(s.tuning.Gun.Knockback),
	}})
	s.despawn(id)
}

type coreHitKind int

const (
	coreHitNone coreHitKind = iota
	coreHitPaddle
	coreHitBall
	coreHitCore
)

// resolveAgainstCore takes the nearest of the paddle, a ball or the core.
// The first two block the shot.
func (s *ProjectileSystem) resolveAgainstCore(id types.EntityID, proj *component.Projectile, origin, dir geom.Vec2, dist float64) {
	radius := proj.Radius()
	kind := coreHitNone
	var nearest geom.Hit
	nearest.Distance = math.MaxFloat64
	consider := func(h geom.Hit, hit bool, k coreHitKind) {
		if hit && h.Distance < nearest.Distance {
			nearest, kind = h, k
		}
	}

	p := s.tuning.Paddle
	for _, pid := range entity.SortedIDs(s.ecs.Paddles) {
		pt, ok := s.ecs.Transforms[pid]
		if !ok {
			continue
		}
		a, b := PaddleSegment(pt, p.CapsuleLength, p.CapsuleRadius)
		h, hit := geom.SweepCapsule(origin, dir, dist, radius, a, b, p.CapsuleRadius)
		consider(h, hit, coreHitPaddle)
	}
	for _, bid := range entity.SortedIDs(s.ecs.Balls) {
		bt, ok := s.ecs.Transforms[bid]
		if !ok {
			continue
		}
		h, hit := geom.SweepCircle(origin, dir, dist, radius, bt.Pos, s.ecs.Balls[bid].Radius)
		consider(h, hit, coreHitBall)
	}
	if cid, core, ok := s.ecs.FirstCore(); ok {
		if ct, ok := s.ecs.Transforms[cid]; ok {
			h, hit := geom.SweepCircle(origin, dir, dist, radius, ct.Pos, core.Radius)
			consider(h, hit, coreHitCore)
		}
	}

	switch kind {
	case coreHitNone:
		return
	case coreHitPaddle, coreHitBall:
		s.fx.SpawnParticles(effects.ParticleProjectileBlocked, nearest.Point, nearest.Normal.Angle())
	case coreHitCore:
		s.eventDispatcher.Push(event.Event{Type: event.TakeDamage})
	}
	s.despawn(id)
}

func (s *ProjectileSystem) despawn(id types.EntityID) {
	s.eventDispatcher.Push(event.Event{Type: event.DespawnProjectile, Data: event.DespawnProjectileData{Projectile: id}})
	// Stop it before the drain so a second sweep cannot hit again.
	if vel, ok := s.ecs.Velocities[id]; ok {
		vel.Vec = geom.Vec2{}
	}
}
