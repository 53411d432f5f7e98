// internal/system/level.go
package system

import (
	"math"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/interfaces"
	"go-porcle/pkg/geom"
)

const gearRadius = 24

// LevelSystem builds the arena on SpawnLevel and (re)spawns the ball.
type LevelSystem struct {
	ecs    *entity.ECS
	tuning *config.Tuning
	ball   *BallSystem
	game   interfaces.GameContext
}

func NewLevelSystem(ecs *entity.ECS, tuning *config.Tuning, ball *BallSystem, game interfaces.GameContext) *LevelSystem {
	return &LevelSystem{ecs: ecs, tuning: tuning, ball: ball, game: game}
}

// SpawnCore creates the core and its gear ring. The gear list is stored in
// reverse creation order and damage takes the first active entry.
func (s *LevelSystem) SpawnCore(e event.Event) {
	c := s.tuning.Core
	coreID := s.ecs.NewEntity()
	s.ecs.Transforms[coreID] = component.NewTransform(geom.Vec2{}, 0)

	gears := make([]component.GearRef, c.Gears)
	step := 2 * math.Pi / float64(c.Gears)
	for i := 0; i < c.Gears; i++ {
		angle := float64(i) * step
		id := s.ecs.NewEntity()
		s.ecs.Transforms[id] = component.NewTransform(geom.FromAngle(angle).Scale(c.GearRingRadius), angle)
		s.ecs.Gears[id] = &component.RotateWithPaddle{
			Offset:     angle,
			Invert:     i%2 == 1,
			Multiplier: 1,
			Radius:     gearRadius,
		}
		gears[c.Gears-1-i] = component.GearRef{Entity: id, Active: true}
	}
	s.ecs.Cores[coreID] = &component.Core{Radius: c.Radius, Gears: gears}
}

// SpawnWalls closes the arena with four segments facing inward.
func (s *LevelSystem) SpawnWalls(e event.Event) {
	h := config.GameSize / 2.0
	walls := []component.Wall{
		{A: geom.V(-h, h), B: geom.V(h, h), Normal: geom.V(0, -1)},
		{A: geom.V(-h, -h), B: geom.V(h, -h), Normal: geom.V(0, 1)},
		{A: geom.V(-h, -h), B: geom.V(-h, h), Normal: geom.V(1, 0)},
		{A: geom.V(h, -h), B: geom.V(h, h), Normal: geom.V(-1, 0)},
	}
	for i := range walls {
		id := s.ecs.NewEntity()
		w := walls[i]
		s.ecs.Walls[id] = &w
	}
}

// SpawnPaddle creates the orbit pivot at the core and the paddle riding it.
// The paddle's local x axis points at the core.
func (s *LevelSystem) SpawnPaddle(e event.Event) {
	p := s.tuning.Paddle
	pivot := s.ecs.NewEntity()
	s.ecs.Transforms[pivot] = component.NewTransform(geom.Vec2{}, 0)
	s.ecs.AccumulatedRotations[pivot] = &component.AccumulatedRotation{}

	paddle := s.ecs.NewEntity()
	s.ecs.Transforms[paddle] = component.NewTransform(geom.V(p.OrbitRadius, 0), math.Pi)
	s.ecs.Follows[paddle] = &component.Follow{
		Target:         pivot,
		Offset:         geom.V(p.OrbitRadius, 0),
		Local:          true,
		RotationOffset: math.Pi,
	}
	s.ecs.Paddles[paddle] = &component.Paddle{Pivot: pivot}
	s.ecs.PaddleModes[paddle] = &component.PaddleMode{State: component.ModeReflect}
	s.ecs.PaddleAmmos[paddle] = &component.PaddleAmmo{Ammo: p.AmmoStart, Capacity: p.AmmoCapacity}
	s.ecs.PaddleRotations[pivot] = &component.PaddleRotation{Paddle: paddle}
}

// ScheduleFirstBall spawns the first ball shortly after the level appears.
func (s *LevelSystem) ScheduleFirstBall(e event.Event) {
	paddle, ok := s.ecs.FirstPaddle()
	if !ok {
		s.game.WarnOnce("first-ball-no-paddle", "no paddle to attach the first ball to")
		return
	}
	s.ecs.Schedule(s.tuning.Core.FirstBallDelay, event.Event{Type: event.SpawnBall, Data: event.SpawnBallData{Paddle: paddle}})
}

// DespawnBalls removes every ball before a new one is spawned.
func (s *LevelSystem) DespawnBalls(e event.Event) {
	for _, id := range entity.SortedIDs(s.ecs.Balls) {
		s.ecs.Despawn(id)
	}
	for _, mode := range s.ecs.PaddleModes {
		if mode.State == component.ModeCaptured {
			*mode = component.PaddleMode{State: component.ModeReflect}
		}
	}
}

// SpawnBall creates a ball captured on the inner face of the paddle.
func (s *LevelSystem) SpawnBall(e event.Event) {
	data, ok := e.Data.(event.SpawnBallData)
	if !ok {
		return
	}
	paddleT, ok := s.ecs.Transforms[data.Paddle]
	mode, hasMode := s.ecs.PaddleModes[data.Paddle]
	if !ok || !hasMode {
		s.game.WarnOnce("spawn-ball-no-paddle", "paddle %d is gone, ball not spawned", data.Paddle)
		return
	}

	b := s.tuning.Ball
	offset := geom.V(s.tuning.Paddle.CapsuleRadius+b.Radius+2, 0)
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(paddleT.ToWorld(offset), paddleT.Rot)
	s.ecs.Follows[id] = &component.Follow{Target: data.Paddle, Offset: offset, Local: true}
	s.ecs.Speeds[id] = &component.Speed{Value: b.BaseSpeed}
	s.ecs.SetMoveDirection(id, component.MoveDirection{Dir: paddleT.Right().Neg()})
	s.ecs.Balls[id] = &component.Ball{Radius: b.Radius}
	s.ball.SetBallState(id, component.BallAttached)

	*mode = component.PaddleMode{State: component.ModeCaptured, Ball: id}
}
