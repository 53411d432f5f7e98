// internal/system/ball.go
package system

import (
	"math"
	"sort"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/types"
	"go-porcle/pkg/geom"
	mathutil "go-porcle/pkg/utils"
)

type hitKind int

const (
	hitPaddle hitKind = iota
	hitWall
	hitEnemy
)

type ballHit struct {
	geom.Hit
	kind   hitKind
	entity types.EntityID
}

// BallSystem resolves ball collisions and owns the ball state transitions.
type BallSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	fx              effects.Sink
	feel            *FeelSystem
	index           *SpatialIndex
}

func NewBallSystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher, fx effects.Sink, feel *FeelSystem, index *SpatialIndex) *BallSystem {
	return &BallSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		fx:              fx,
		feel:            feel,
		index:           index,
	}
}

// SetBallState switches a ball between states and sets the steering
// components each state implies. It is the only place that adds or removes
// homing and damping on balls.
func (s *BallSystem) SetBallState(id types.EntityID, state component.BallState) {
	ball, ok := s.ecs.Balls[id]
	if !ok {
		return
	}
	ball.State = state
	switch state {
	case component.BallAttached:
		delete(s.ecs.Homings, id)
		delete(s.ecs.Dampings, id)
		s.ecs.MovementPaused[id] = &component.MovementPaused{}
	case component.BallInsideOrbit:
		delete(s.ecs.Homings, id)
		delete(s.ecs.Dampings, id)
	case component.BallOutside:
		b := s.tuning.Ball
		s.ecs.Dampings[id] = &component.Damping{Factor: b.OutsideDamping}
		s.ecs.Homings[id] = &component.Homing{
			MaxDistance:   b.HomingMaxDistance,
			MaxFactor:     b.HomingMaxFactor,
			FactorDecay:   b.HomingFactorDecay,
			MaxAngleDeg:   b.HomingMaxAngleDeg,
			HasSpeedRange: true,
			SpeedMin:      b.BaseSpeed,
			SpeedMax:      b.BaseSpeed * b.HomingSpeedMaxMult,
		}
	}
}

// UpdateOrbitState moves free balls between inside and outside the paddle orbit.
func (s *BallSystem) UpdateOrbitState() {
	insideRadius := s.tuning.InsideOrbitRadius()
	for _, id := range entity.SortedIDs(s.ecs.Balls) {
		ball := s.ecs.Balls[id]
		if _, attached := s.ecs.Follows[id]; attached {
			if ball.State != component.BallAttached {
				s.SetBallState(id, component.BallAttached)
			}
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		want := component.BallOutside
		if t.Pos.Len() < insideRadius {
			want = component.BallInsideOrbit
		}
		if ball.State != want {
			s.SetBallState(id, want)
		}
	}
}

// ResolveCollisions sweeps every moving ball along its velocity.
func (s *BallSystem) ResolveCollisions(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Balls) {
		s.resolveBall(id, deltaTime)
	}
}

func (s *BallSystem) resolveBall(id types.EntityID, deltaTime float64) {
	ball := s.ecs.Balls[id]
	if s.ecs.IsPaused(id) {
		return
	}
	t, hasT := s.ecs.Transforms[id]
	vel, hasV := s.ecs.Velocities[id]
	speed, hasS := s.ecs.Speeds[id]
	dirC, hasD := s.ecs.MoveDirections[id]
	if !hasT || !hasV || !hasS || !hasD {
		return
	}
	if vel.Vec.IsZero() {
		// stationary
		s.retarget(id, ball, t, dirC, speed)
		return
	}

	dir := vel.Vec.Normalize()
	dist := speed.Value * s.tuning.Ball.SweepMargin * deltaTime
	hits := s.sweep(id, t.Pos, dir, dist, ball.Radius)

	stillInside := false
	for _, hit := range hits {
		switch hit.kind {
		case hitPaddle:
			s.onPaddleHit(id, ball, t, dirC, speed, hit)
		case hitWall:
			s.onWallHit(id, ball, dirC, speed, vel, hit)
		case hitEnemy:
			if hit.entity == ball.IgnoreEnemy {
				stillInside = true
				continue
			}
			s.onEnemyHit(id, ball, dir, speed, hit)
			stillInside = true
		}
	}
	if !stillInside {
		ball.IgnoreEnemy = 0
	}

	s.retarget(id, ball, t, dirC, speed)
}

// sweep gathers every contact along the path, nearest first.
func (s *BallSystem) sweep(self types.EntityID, origin, dir geom.Vec2, dist, radius float64) []ballHit {
	var hits []ballHit
	add := func(h geom.Hit, ok bool, kind hitKind, e types.EntityID) {
		if !ok {
			return
		}
		// Overlaps we are already leaving are not contacts.
		if h.Distance == 0 && dir.Dot(h.Normal) >= 0 {
			return
		}
		hits = append(hits, ballHit{Hit: h, kind: kind, entity: e})
	}

	p := s.tuning.Paddle
	for _, id := range entity.SortedIDs(s.ecs.Paddles) {
		pt, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		a, b := PaddleSegment(pt, p.CapsuleLength, p.CapsuleRadius)
		h, hit := geom.SweepCapsule(origin, dir, dist, radius, a, b, p.CapsuleRadius)
		add(h, hit, hitPaddle, id)
	}
	for _, id := range entity.SortedIDs(s.ecs.Walls) {
		w := s.ecs.Walls[id]
		h, hit := geom.SweepCapsule(origin, dir, dist, radius, w.A, w.B, 0)
		add(h, hit, hitWall, id)
	}
	for _, id := range s.index.QuerySweep(origin, dir, dist, radius) {
		enemy, ok := s.ecs.Enemies[id]
		if !ok {
			continue
		}
		et, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		h, hit := geom.SweepCircle(origin, dir, dist, radius, et.Pos, enemy.Radius)
		add(h, hit, hitEnemy, id)
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// PaddleSegment returns the world endpoints of the capsule core segment.
// The long axis is the paddle's local y.
func PaddleSegment(t *component.Transform, length, radius float64) (geom.Vec2, geom.Vec2) {
	half := faceHalfLength(length, radius)
	return t.ToWorld(geom.V(0, -half)), t.ToWorld(geom.V(0, half))
}

// faceHalfLength is half of the straight part of a capsule with the given
// total length.
func faceHalfLength(length, radius float64) float64 {
	return math.Max(length/2-radius, 0)
}

// ReflectAngle maps a paddle-local hit offset to a reflection angle in
// radians. Off-centre hits bend further, with a power curve.
func ReflectAngle(localY, halfLength, maxAngleDeg, curve float64) float64 {
	if halfLength <= 0 {
		return 0
	}
	ratio := mathutil.Clamp(localY/halfLength, -1, 1)
	return -mathutil.Sign(ratio) * math.Pow(math.Abs(ratio), curve) * maxAngleDeg * math.Pi / 180
}

func (s *BallSystem) onPaddleHit(id types.EntityID, ball *component.Ball, t *component.Transform, dir *component.MoveDirection, speed *component.Speed, hit ballHit) {
	mode, ok := s.ecs.PaddleModes[hit.entity]
	if !ok || mode.State == component.ModeCaptured {
		return
	}
	if s.ecs.GameTime < ball.LastReflectionTime+s.tuning.Paddle.HitGrace {
		// ignore consecutive hits
		return
	}
	paddleT := s.ecs.Transforms[hit.entity]
	p := s.tuning.Paddle
	local := paddleT.ToLocal(hit.Point)
	// Ratio 1 sits at the end of the flat face; cap hits clamp to it.
	angle := ReflectAngle(local.Y, faceHalfLength(p.CapsuleLength, p.CapsuleRadius), p.MaxReflectAngleDeg, p.ReflectCurve)

	ballLocal := paddleT.ToLocal(t.Pos)
	if mode.State == component.ModeCapture && ballLocal.X > 0 {
		s.capture(id, ball, hit.entity, mode, ballLocal, angle)
		return
	}

	base := s.tuning.Ball.BaseSpeed
	s.fx.AddTrauma(0.15 + 0.15*speed.Factor(base, base*2))
	s.fx.SpawnParticles(effects.ParticleReflection, hit.Point, paddleT.Up().Angle())
	s.fx.PlaySfx(effects.SfxReflect)

	speed.Value = mathutil.Clamp(speed.Value*s.tuning.Ball.ReflectSpeedMult, base, s.tuning.BallMaxSpeed())
	dir.Dir = paddleT.Right().Neg().Rotate(angle).NormalizeOr(paddleT.Right().Neg())

	if ammo, ok := s.ecs.PaddleAmmos[hit.entity]; ok {
		ammo.Offset(s.feel.AmmoBonus())
	}

	cooldown := 0.1 + speed.Factor(base, base*1.5)*0.2
	s.ecs.Cooldowns.Set(id, entity.CooldownMovementPaused, cooldown)
	ball.LastReflectionTime = s.ecs.GameTime + cooldown
}

func (s *BallSystem) capture(id types.EntityID, ball *component.Ball, paddleID types.EntityID, mode *component.PaddleMode, ballLocal geom.Vec2, angle float64) {
	*mode = component.PaddleMode{
		State:         component.ModeCaptured,
		ShootRotation: angle,
		Ball:          id,
	}
	s.ecs.Follows[id] = &component.Follow{Target: paddleID, Offset: ballLocal, Local: true}
	ball.Retarget = false
	s.SetBallState(id, component.BallAttached)
	s.fx.PlaySfx(effects.SfxCapture)
}

func (s *BallSystem) onWallHit(id types.EntityID, ball *component.Ball, dir *component.MoveDirection, speed *component.Speed, vel *component.Velocity, hit ballHit) {
	if s.ecs.GameTime < ball.LastReflectionTime+s.tuning.Ball.WallGrace {
		// ignore consecutive hits
		return
	}
	base := s.tuning.Ball.BaseSpeed
	sf := speed.Factor(base*0.5, base*2)

	s.fx.AddTrauma(0.1 + 0.225*sf)
	s.fx.SpawnParticles(effects.ParticleWallSpark, hit.Point, hit.Normal.Angle())
	s.fx.PlaySfx(effects.SfxWallHit)

	cooldown := 0.085 + sf*0.125
	s.ecs.Cooldowns.Set(id, entity.CooldownMovementPaused, cooldown)
	ball.LastReflectionTime = s.ecs.GameTime + cooldown
	ball.Retarget = true

	speed.Value *= s.tuning.Ball.WallSpeedMult
	in := vel.Vec.Normalize()
	dir.Dir = geom.Reflect(in, hit.Normal)
}

func (s *BallSystem) onEnemyHit(id types.EntityID, ball *component.Ball, dir geom.Vec2, speed *component.Speed, hit ballHit) {
	s.eventDispatcher.Push(event.Event{Type: event.DamageEnemy, Data: event.DamageEnemyData{
		Enemy:     hit.entity,
		Amount:    1,
		Knockback: dir.Scale(s.tuning.Ball.EnemyKnockback),
	}})
	s.fx.AddTrauma(0.15)
	s.fx.SpawnParticles(effects.ParticleEnemyBurst, hit.Point, 0)

	base := s.tuning.Ball.BaseSpeed
	cooldown := 0.08 + speed.Factor(base*0.5, base*1.75)*0.12
	s.ecs.Cooldowns.Set(id, entity.CooldownMovementPaused, cooldown)
	ball.Retarget = true
	ball.IgnoreEnemy = hit.entity
}

// retarget aims the ball at the nearest visible enemy inside a probe circle
// ahead of it, once its pause has ended.
func (s *BallSystem) retarget(id types.EntityID, ball *component.Ball, t *component.Transform, dir *component.MoveDirection, speed *component.Speed) {
	if !ball.Retarget || s.ecs.IsPaused(id) {
		return
	}
	ball.Retarget = false

	heading := dir.Dir.Normalize()
	if heading.IsZero() {
		return
	}
	b := s.tuning.Ball
	origin := t.Pos.Add(heading.Scale(b.RetargetAhead))
	visible := config.GameSize/2 - 50

	best := types.EntityID(0)
	bestDist := math.MaxFloat64
	for _, eid := range s.index.QueryCircle(origin, b.RetargetRadius) {
		enemy := s.ecs.Enemies[eid]
		et, ok := s.ecs.Transforms[eid]
		if !ok || enemy == nil {
			continue
		}
		if et.Pos.MaxAbs() > visible {
			continue
		}
		d := et.Pos.Distance(origin)
		if d > b.RetargetRadius+enemy.Radius || d >= bestDist {
			continue
		}
		best, bestDist = eid, d
	}
	if best == 0 {
		return
	}
	dir.Dir = s.ecs.Transforms[best].Pos.Sub(t.Pos).NormalizeOr(heading)
}
