// internal/system/paddle.go
package system

import (
	"math"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/interfaces"
	"go-porcle/internal/types"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
	mathutil "go-porcle/pkg/utils"
)

// cycleTolerance absorbs float drift when a sweep lands exactly on a threshold.
const cycleTolerance = 1e-6

// PaddleSystem handles mode toggling, orbit rotation and full-cycle effects.
type PaddleSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	eventDispatcher *event.Dispatcher
	fx              effects.Sink
	feel            *FeelSystem
	game            interfaces.GameContext
}

func NewPaddleSystem(ecs *entity.ECS, tuning *config.Tuning, eventDispatcher *event.Dispatcher, fx effects.Sink, feel *FeelSystem, game interfaces.GameContext) *PaddleSystem {
	return &PaddleSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		fx:              fx,
		feel:            feel,
		game:            game,
	}
}

// ToggleMode advances Reflect -> Capture -> Reflect, or launches a captured ball.
func (s *PaddleSystem) ToggleMode() {
	for _, id := range entity.SortedIDs(s.ecs.PaddleModes) {
		if s.ecs.Cooldowns.Has(id, entity.CooldownPaddleMode) {
			continue
		}
		mode := s.ecs.PaddleModes[id]
		switch mode.State {
		case component.ModeReflect:
			mode.State = component.ModeCapture
			s.fx.PlaySfx(effects.SfxModeToggle)
		case component.ModeCapture:
			mode.State = component.ModeReflect
			s.fx.PlaySfx(effects.SfxModeToggle)
		case component.ModeCaptured:
			s.launch(id, mode)
			*mode = component.PaddleMode{State: component.ModeReflect}
		}
		s.ecs.Cooldowns.Set(id, entity.CooldownPaddleMode, s.tuning.Paddle.ModeCooldown)
	}
}

func (s *PaddleSystem) launch(paddleID types.EntityID, mode *component.PaddleMode) {
	ball, ok := s.ecs.Balls[mode.Ball]
	if !ok {
		s.game.WarnOnce("launch-missing-ball", "captured ball %d no longer exists", mode.Ball)
		return
	}
	paddleT, ok := s.ecs.Transforms[paddleID]
	if !ok {
		return
	}
	dir := paddleT.Right().Neg().Rotate(mode.ShootRotation).NormalizeOr(paddleT.Right().Neg())
	s.ecs.SetMoveDirection(mode.Ball, component.MoveDirection{Dir: dir})
	delete(s.ecs.Follows, mode.Ball)
	delete(s.ecs.MovementPaused, mode.Ball)

	// The ball sits on the inner face and leaves through the paddle.
	speed := s.tuning.Ball.BaseSpeed
	if sp, ok := s.ecs.Speeds[mode.Ball]; ok && sp.Value > 0 {
		speed = sp.Value
	}
	passThrough := 2 * (s.tuning.Paddle.CapsuleRadius + ball.Radius) / speed
	ball.LastReflectionTime = s.ecs.GameTime + passThrough
	s.fx.PlaySfx(effects.SfxLaunch)
}

// Rotate turns the orbit pivot toward aim, capped at one revolution per
// MinRevolutionSeconds.
func (s *PaddleSystem) Rotate(aim geom.Vec2, deltaTime float64) {
	if aim.IsZero() {
		return
	}
	maxDelta := deltaTime / s.tuning.Paddle.MinRevolutionSeconds * 2 * math.Pi
	target := aim.Angle()
	for pivot := range s.ecs.PaddleRotations {
		t, ok := s.ecs.Transforms[pivot]
		if !ok {
			continue
		}
		delta := mathutil.Clamp(utils.AngleDelta(t.Rot, target), -maxDelta, maxDelta)
		t.Rot = utils.NormalizeAngle(t.Rot + delta)
	}
}

// UpdateCycles detects 720 degree clockwise and 360 degree counter-clockwise
// sweeps of the accumulated pivot rotation.
func (s *PaddleSystem) UpdateCycles(deltaTime float64) {
	recall := -s.tuning.Paddle.RecallDegrees * math.Pi / 180
	refill := s.tuning.Paddle.RefillDegrees * math.Pi / 180

	for _, pivot := range entity.SortedIDs(s.ecs.PaddleRotations) {
		rot := s.ecs.PaddleRotations[pivot]
		acc, ok := s.ecs.AccumulatedRotations[pivot]
		if !ok {
			continue
		}
		total := acc.Total

		switch {
		case total-rot.CWStart <= recall+cycleTolerance:
			rot.Reset(total)
			s.recallBall(rot.Paddle)
		case total-rot.CCWStart >= refill-cycleTolerance:
			rot.Reset(total)
			s.refillAmmo(rot.Paddle)
		case total > rot.CWStart:
			rot.CWStart = total
		case total < rot.CCWStart:
			rot.CCWStart = total
		}

		if deltaTime > 0 && math.Abs(rot.PrevTotal-total)/deltaTime < s.tuning.Paddle.StallThreshold {
			rot.IdleTimer += deltaTime
			if rot.IdleTimer >= s.tuning.Paddle.StallTimeout {
				rot.Reset(total)
			}
		} else {
			rot.IdleTimer = 0
		}
		rot.PrevTotal = total
	}
}

func (s *PaddleSystem) recallBall(paddleID types.EntityID) {
	if mode, ok := s.ecs.PaddleModes[paddleID]; ok && mode.State == component.ModeCaptured {
		if _, alive := s.ecs.Balls[mode.Ball]; alive {
			return
		}
	}
	s.fx.PlaySfx(effects.SfxRecall)
	s.eventDispatcher.Push(event.Event{Type: event.SpawnBall, Data: event.SpawnBallData{Paddle: paddleID}})
}

func (s *PaddleSystem) refillAmmo(paddleID types.EntityID) {
	ammo, ok := s.ecs.PaddleAmmos[paddleID]
	if !ok {
		s.game.WarnOnce("refill-missing-ammo", "paddle %d has no ammo store", paddleID)
		return
	}
	ammo.Offset(s.feel.AmmoBonus() * s.tuning.Paddle.RefillMultiplier)
	s.fx.PlaySfx(effects.SfxRefill)
}
