// internal/component/movement.go
package component

import (
	"go-porcle/internal/types"
	"go-porcle/pkg/geom"
)

// Transform хранит позицию и поворот сущности в мировых координатах.
type Transform struct {
	geom.Transform
}

func NewTransform(pos geom.Vec2, rot float64) *Transform {
	return &Transform{geom.Transform{Pos: pos, Rot: rot}}
}

// MoveDirection is the heading an entity moves along. It need not be normalized.
type MoveDirection struct {
	Dir geom.Vec2
}

type Speed struct {
	Value float64
}

// Factor normalizes the speed into [0, 1] between min and max.
func (s Speed) Factor(min, max float64) float64 {
	if max <= min {
		return 0
	}
	f := (s.Value - min) / (max - min)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// SpeedMultiplier scales Speed when velocity is computed. Missing means 1.
type SpeedMultiplier struct {
	Value float64
}

// Velocity is the displacement applied this tick, already scaled by dt.
type Velocity struct {
	Vec geom.Vec2
}

// Damping decays velocity and speed exponentially, Factor per second.
type Damping struct {
	Factor float64
}

// Impulse is an additive kick that bleeds off toward zero.
type Impulse struct {
	Vec geom.Vec2
}

// Homing steers velocity toward the nearest HomingTarget in range.
type Homing struct {
	MaxDistance float64
	MaxFactor   float64
	FactorDecay float64
	MaxAngleDeg float64
	// HasSpeedRange gates homing to speeds in [SpeedMin, SpeedMax).
	HasSpeedRange bool
	SpeedMin      float64
	SpeedMax      float64
}

// HomingTarget marks entities homing entities steer toward.
type HomingTarget struct{}

// MovementPaused freezes an entity until removed. Timed pauses use the
// MovementPaused cooldown tag instead.
type MovementPaused struct{}

// Follow pins an entity to another one. With Local set the offset and the
// rotation are expressed in the target's frame.
type Follow struct {
	Target         types.EntityID
	Offset         geom.Vec2
	Local          bool
	RotationOffset float64
}

// AccumulatedRotation sums signed rotation deltas so full turns survive wrap-around.
type AccumulatedRotation struct {
	HasPrev bool
	Prev    float64
	Total   float64
}
