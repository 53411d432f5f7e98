// internal/input/input.go
package input

import (
	"math"

	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
)

// State is one tick of device-independent player input. Aim is a direction
// in world space, zero when there is no aim. The action flags are edge
// triggered except Shoot, which is held.
type State struct {
	Aim        geom.Vec2 `msgpack:"a"`
	Shoot      bool      `msgpack:"s"`
	ToggleMode bool      `msgpack:"t"`
	Restart    bool      `msgpack:"r"`
	Quit       bool      `msgpack:"q"`
}

// AimSmoother turns raw cursor or stick positions into an aim direction.
type AimSmoother struct {
	Deadzone float64
	aim      geom.Vec2
}

func NewAimSmoother(deadzone float64) *AimSmoother {
	return &AimSmoother{Deadzone: deadzone, aim: geom.V(1, 0)}
}

// Aim returns the current direction.
func (s *AimSmoother) Aim() geom.Vec2 {
	return s.aim
}

// FromCursor updates the aim from a cursor offset relative to the core.
// Outside the dead zone the aim snaps to the cursor; inside it blends toward
// the cursor with a weight that grows with the cube of the distance.
func (s *AimSmoother) FromCursor(cursor geom.Vec2, dt float64) geom.Vec2 {
	dist := cursor.Len()
	if dist >= s.Deadzone {
		s.aim = cursor.NormalizeOr(s.aim)
		return s.aim
	}
	weight := math.Pow(dist/s.Deadzone, 3)
	s.aim = utils.AsymptoticSmoothingVec(s.aim, cursor, weight, dt)
	return s.aim
}

// FromStick updates the aim from an analog stick already past its own dead zone.
func (s *AimSmoother) FromStick(stick geom.Vec2) geom.Vec2 {
	s.aim = stick.NormalizeOr(s.aim)
	return s.aim
}

// Held keeps the aim and the held flags and drops the edge-triggered ones.
// When one frame runs several ticks only the first sees the edges.
func (s State) Held() State {
	return State{Aim: s.Aim, Shoot: s.Shoot}
}
