// internal/system/movement.go
package system

import (
	"math"

	"go-porcle/internal/config"
	"go-porcle/internal/entity"
	"go-porcle/internal/types"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
	mathutil "go-porcle/pkg/utils"
)

// MovementSystem интегрирует движение: затухание, скорость, импульс, самонаведение.
// The steps run in a fixed order: damping attenuates speed before velocity
// is recomputed from direction and speed.
type MovementSystem struct {
	ecs         *entity.ECS
	impulseRate float64
	// playfieldHalf bounds homing candidates.
	playfieldHalf float64
}

func NewMovementSystem(ecs *entity.ECS, tuning *config.Tuning) *MovementSystem {
	return &MovementSystem{
		ecs:           ecs,
		impulseRate:   tuning.Motion.ImpulseRate,
		playfieldHalf: config.GameSize / 2,
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.ApplyDamping(deltaTime)
	s.ComputeVelocity(deltaTime)
	s.ApplyImpulse(deltaTime)
	s.ApplyVelocity(deltaTime)
	s.AccumulateRotation()
	s.Follow()
}

func (s *MovementSystem) ApplyDamping(deltaTime float64) {
	for id, damping := range s.ecs.Dampings {
		if s.ecs.IsPaused(id) {
			continue
		}
		mult := 1 - damping.Factor*deltaTime
		if mult < 0 {
			mult = 0
		}
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.Vec = vel.Vec.Scale(mult)
		}
		if speed, ok := s.ecs.Speeds[id]; ok {
			speed.Value *= mult
		}
	}
}

// ComputeVelocity overwrites velocity from heading and speed, scaled by dt.
func (s *MovementSystem) ComputeVelocity(deltaTime float64) {
	for id, dir := range s.ecs.MoveDirections {
		if s.ecs.IsPaused(id) {
			continue
		}
		speed, ok := s.ecs.Speeds[id]
		if !ok {
			continue
		}
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		mult := 1.0
		if m, ok := s.ecs.SpeedMultipliers[id]; ok {
			mult = m.Value
		}
		vel.Vec = dir.Dir.Scale(speed.Value * mult * deltaTime)
	}
}

// ApplyImpulse adds the impulse to velocity and bleeds it off.
func (s *MovementSystem) ApplyImpulse(deltaTime float64) {
	k := deltaTime * s.impulseRate
	for id, impulse := range s.ecs.Impulses {
		if s.ecs.IsPaused(id) {
			continue
		}
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		vel.Vec = vel.Vec.Add(impulse.Vec.Scale(k))
		impulse.Vec = impulse.Vec.Scale(1 - k)
	}
}

// ApplyVelocity moves every unpaused entity by its velocity, steering homing
// entities first.
func (s *MovementSystem) ApplyVelocity(deltaTime float64) {
	// Sorted: homing reads positions other entities may already have moved.
	for _, id := range entity.SortedIDs(s.ecs.Velocities) {
		vel := s.ecs.Velocities[id]
		if s.ecs.IsPaused(id) {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		if _, homing := s.ecs.Homings[id]; homing {
			s.steer(id, t.Pos, vel.Vec, deltaTime)
		}
		t.Pos = t.Pos.Add(vel.Vec)
	}
}

func (s *MovementSystem) steer(id types.EntityID, pos, displacement geom.Vec2, deltaTime float64) {
	homing := s.ecs.Homings[id]
	dir := displacement.Normalize()
	if dir.IsZero() {
		return
	}

	speedFactor := 1.0
	if homing.HasSpeedRange {
		speed, ok := s.ecs.Speeds[id]
		if !ok {
			return
		}
		if speed.Value < homing.SpeedMin || speed.Value >= homing.SpeedMax {
			return
		}
		speedFactor = 1 - speed.Factor(homing.SpeedMin, homing.SpeedMax)
	}

	targetDir, distance, found := s.nearestTarget(id, pos, dir, homing.MaxDistance, homing.MaxAngleDeg)
	if !found {
		return
	}

	f := math.Pow(1-distance/homing.MaxDistance, homing.FactorDecay) * homing.MaxFactor * speedFactor * deltaTime
	f = mathutil.Clamp(f, 0, 1)
	steered := dir.Scale(1 - f).Add(targetDir.Scale(f)).NormalizeOr(dir)

	vel := s.ecs.Velocities[id]
	vel.Vec = steered.Scale(displacement.Len())
	if md, ok := s.ecs.MoveDirections[id]; ok {
		md.Dir = steered
	}
}

// nearestTarget returns the direction to the closest on-screen homing target
// within maxDistance and within maxAngleDeg of dir.
func (s *MovementSystem) nearestTarget(self types.EntityID, pos, dir geom.Vec2, maxDistance, maxAngleDeg float64) (geom.Vec2, float64, bool) {
	closest := math.MaxFloat64
	var best geom.Vec2
	found := false
	for _, id := range entity.SortedIDs(s.ecs.HomingTargets) {
		if id == self || s.ecs.IsPaused(id) {
			continue
		}
		t, ok := s.ecs.Transforms[id]
		if !ok || t.Pos.MaxAbs() > s.playfieldHalf {
			continue
		}
		distance := pos.Distance(t.Pos)
		if distance >= closest || distance > maxDistance {
			continue
		}
		targetDir := t.Pos.Sub(pos).Normalize()
		if targetDir.IsZero() {
			continue
		}
		angle := math.Abs(geom.AngleBetween(dir, targetDir)) * 180 / math.Pi
		if angle > maxAngleDeg {
			continue
		}
		closest = distance
		best = targetDir
		found = true
	}
	return best, closest, found
}

// AccumulateRotation adds the signed rotation since the last observation.
func (s *MovementSystem) AccumulateRotation() {
	for id, acc := range s.ecs.AccumulatedRotations {
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		if acc.HasPrev {
			acc.Total += utils.AngleDelta(acc.Prev, t.Rot)
		}
		acc.Prev = t.Rot
		acc.HasPrev = true
	}
}

// Follow pins followers to their targets, resolving chains target-first.
func (s *MovementSystem) Follow() {
	done := make(map[types.EntityID]bool, len(s.ecs.Follows))
	for id := range s.ecs.Follows {
		s.follow(id, done, 0)
	}
}

const maxFollowDepth = 8

func (s *MovementSystem) follow(id types.EntityID, done map[types.EntityID]bool, depth int) {
	if done[id] || depth > maxFollowDepth {
		return
	}
	done[id] = true
	f, ok := s.ecs.Follows[id]
	if !ok {
		return
	}
	if _, chained := s.ecs.Follows[f.Target]; chained {
		s.follow(f.Target, done, depth+1)
	}
	target, ok := s.ecs.Transforms[f.Target]
	if !ok {
		return
	}
	t, ok := s.ecs.Transforms[id]
	if !ok {
		return
	}
	if f.Local {
		t.Pos = target.ToWorld(f.Offset)
		t.Rot = utils.NormalizeAngle(target.Rot + f.RotationOffset)
		return
	}
	t.Pos = target.Pos.Add(f.Offset)
}
