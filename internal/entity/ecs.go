// internal/entity/ecs.go
package entity

import (
	"go-porcle/internal/component"
	"go-porcle/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Transforms           map[types.EntityID]*component.Transform
	MoveDirections       map[types.EntityID]*component.MoveDirection
	Speeds               map[types.EntityID]*component.Speed
	SpeedMultipliers     map[types.EntityID]*component.SpeedMultiplier
	Velocities           map[types.EntityID]*component.Velocity
	Dampings             map[types.EntityID]*component.Damping
	Impulses             map[types.EntityID]*component.Impulse
	Homings              map[types.EntityID]*component.Homing
	HomingTargets        map[types.EntityID]*component.HomingTarget
	MovementPaused       map[types.EntityID]*component.MovementPaused
	Follows              map[types.EntityID]*component.Follow
	AccumulatedRotations map[types.EntityID]*component.AccumulatedRotation

	Paddles         map[types.EntityID]*component.Paddle
	PaddleModes     map[types.EntityID]*component.PaddleMode
	PaddleAmmos     map[types.EntityID]*component.PaddleAmmo
	PaddleRotations map[types.EntityID]*component.PaddleRotation
	Balls           map[types.EntityID]*component.Ball

	Enemies       map[types.EntityID]*component.Enemy
	Healths       map[types.EntityID]*component.Health
	Shields       map[types.EntityID]*component.Shielded
	StopNearCores map[types.EntityID]*component.StopNearCore
	GunBarrels    map[types.EntityID]*component.GunBarrel
	Debris        map[types.EntityID]*component.Debris

	Projectiles   map[types.EntityID]*component.Projectile
	OutOfBounds   map[types.EntityID]*component.DespawnOutOfBounds
	Cores         map[types.EntityID]*component.Core
	Gears         map[types.EntityID]*component.RotateWithPaddle
	Walls         map[types.EntityID]*component.Wall
	DamageFlashes map[types.EntityID]*component.DamageFlash
	ClearFlashes  map[types.EntityID]*component.ClearFlash
	DelayedEvents map[types.EntityID]*component.DelayedEvent

	Cooldowns *Cooldowns
	GameState *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:               1,
		Transforms:           make(map[types.EntityID]*component.Transform),
		MoveDirections:       make(map[types.EntityID]*component.MoveDirection),
		Speeds:               make(map[types.EntityID]*component.Speed),
		SpeedMultipliers:     make(map[types.EntityID]*component.SpeedMultiplier),
		Velocities:           make(map[types.EntityID]*component.Velocity),
		Dampings:             make(map[types.EntityID]*component.Damping),
		Impulses:             make(map[types.EntityID]*component.Impulse),
		Homings:              make(map[types.EntityID]*component.Homing),
		HomingTargets:        make(map[types.EntityID]*component.HomingTarget),
		MovementPaused:       make(map[types.EntityID]*component.MovementPaused),
		Follows:              make(map[types.EntityID]*component.Follow),
		AccumulatedRotations: make(map[types.EntityID]*component.AccumulatedRotation),
		Paddles:              make(map[types.EntityID]*component.Paddle),
		PaddleModes:          make(map[types.EntityID]*component.PaddleMode),
		PaddleAmmos:          make(map[types.EntityID]*component.PaddleAmmo),
		PaddleRotations:      make(map[types.EntityID]*component.PaddleRotation),
		Balls:                make(map[types.EntityID]*component.Ball),
		Enemies:              make(map[types.EntityID]*component.Enemy),
		Healths:              make(map[types.EntityID]*component.Health),
		Shields:              make(map[types.EntityID]*component.Shielded),
		StopNearCores:        make(map[types.EntityID]*component.StopNearCore),
		GunBarrels:           make(map[types.EntityID]*component.GunBarrel),
		Debris:               make(map[types.EntityID]*component.Debris),
		Projectiles:          make(map[types.EntityID]*component.Projectile),
		OutOfBounds:          make(map[types.EntityID]*component.DespawnOutOfBounds),
		Cores:                make(map[types.EntityID]*component.Core),
		Gears:                make(map[types.EntityID]*component.RotateWithPaddle),
		Walls:                make(map[types.EntityID]*component.Wall),
		DamageFlashes:        make(map[types.EntityID]*component.DamageFlash),
		ClearFlashes:         make(map[types.EntityID]*component.ClearFlash),
		DelayedEvents:        make(map[types.EntityID]*component.DelayedEvent),
		Cooldowns:            NewCooldowns(),
		GameState:            &component.GameState{Phase: component.PhasePlaying},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SetMoveDirection attaches a heading and, if missing, the velocity that goes with it.
func (ecs *ECS) SetMoveDirection(id types.EntityID, dir component.MoveDirection) {
	ecs.MoveDirections[id] = &dir
	if _, ok := ecs.Velocities[id]; !ok {
		ecs.Velocities[id] = &component.Velocity{}
	}
}

// IsPaused reports whether movement is frozen, permanently or by cooldown.
func (ecs *ECS) IsPaused(id types.EntityID) bool {
	if _, ok := ecs.MovementPaused[id]; ok {
		return true
	}
	return ecs.Cooldowns.Has(id, CooldownMovementPaused)
}

// Exists reports whether the entity still carries a transform.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Transforms[id]
	return ok
}

// Despawn removes every component of the entity.
func (ecs *ECS) Despawn(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.MoveDirections, id)
	delete(ecs.Speeds, id)
	delete(ecs.SpeedMultipliers, id)
	delete(ecs.Velocities, id)
	delete(ecs.Dampings, id)
	delete(ecs.Impulses, id)
	delete(ecs.Homings, id)
	delete(ecs.HomingTargets, id)
	delete(ecs.MovementPaused, id)
	delete(ecs.Follows, id)
	delete(ecs.AccumulatedRotations, id)
	delete(ecs.Paddles, id)
	delete(ecs.PaddleModes, id)
	delete(ecs.PaddleAmmos, id)
	delete(ecs.PaddleRotations, id)
	delete(ecs.Balls, id)
	delete(ecs.Enemies, id)
	delete(ecs.Healths, id)
	delete(ecs.Shields, id)
	delete(ecs.StopNearCores, id)
	delete(ecs.GunBarrels, id)
	delete(ecs.Debris, id)
	delete(ecs.Projectiles, id)
	delete(ecs.OutOfBounds, id)
	delete(ecs.Cores, id)
	delete(ecs.Gears, id)
	delete(ecs.Walls, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.ClearFlashes, id)
	delete(ecs.DelayedEvents, id)
	ecs.Cooldowns.ClearEntity(id)
}

// FirstPaddle returns any paddle. There is one per session.
func (ecs *ECS) FirstPaddle() (types.EntityID, bool) {
	for id := range ecs.Paddles {
		return id, true
	}
	return 0, false
}

// FirstCore returns the core. There is one per session.
func (ecs *ECS) FirstCore() (types.EntityID, *component.Core, bool) {
	for id, c := range ecs.Cores {
		return id, c, true
	}
	return 0, nil, false
}
