// internal/component/ball.go
package component

import "go-porcle/internal/types"

// BallState replaces marker juggling: each state implies which steering
// components the ball carries.
type BallState int

const (
	// BallAttached rides the paddle, no homing or damping.
	BallAttached BallState = iota
	// BallInsideOrbit is free inside the paddle orbit, no homing or damping.
	BallInsideOrbit
	// BallOutside is free beyond the orbit, with homing and damping.
	BallOutside
)

func (s BallState) String() string {
	switch s {
	case BallAttached:
		return "attached"
	case BallInsideOrbit:
		return "inside"
	case BallOutside:
		return "outside"
	}
	return "unknown"
}

type Ball struct {
	Radius             float64
	State              BallState
	LastReflectionTime float64
	// Retarget asks for a nearest-enemy probe once the current pause ends.
	Retarget bool
	// IgnoreEnemy is the enemy the ball is still passing through.
	IgnoreEnemy types.EntityID
}
