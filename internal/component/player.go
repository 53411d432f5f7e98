// internal/component/player.go
package component

import "go-porcle/internal/types"

// Paddle is the player's orbiting reflector. Pivot is the entity at the core
// whose rotation drives the orbit.
type Paddle struct {
	Pivot types.EntityID
}

// ModeState is the paddle interaction mode.
type ModeState int

const (
	ModeReflect ModeState = iota
	ModeCapture
	ModeCaptured
)

func (m ModeState) String() string {
	switch m {
	case ModeReflect:
		return "reflect"
	case ModeCapture:
		return "capture"
	case ModeCaptured:
		return "captured"
	}
	return "unknown"
}

// PaddleMode holds the current mode. ShootRotation and Ball are only
// meaningful while Captured.
type PaddleMode struct {
	State         ModeState
	ShootRotation float64
	Ball          types.EntityID
}

// PaddleAmmo хранит боезапас пушки на ракетке.
type PaddleAmmo struct {
	Ammo     int
	Capacity int
}

// Offset adds delta and clamps to [0, Capacity].
func (a *PaddleAmmo) Offset(delta int) {
	v := a.Ammo + delta
	if v < 0 {
		v = 0
	}
	if v > a.Capacity {
		v = a.Capacity
	}
	a.Ammo = v
}

func (a PaddleAmmo) Factor() float64 {
	if a.Capacity <= 0 {
		return 0
	}
	return float64(a.Ammo) / float64(a.Capacity)
}

// PaddleRotation tracks sweeps of the orbit pivot for full-cycle effects.
// CWStart is the highest total seen since the last reset, CCWStart the lowest.
type PaddleRotation struct {
	Paddle    types.EntityID
	CWStart   float64
	CCWStart  float64
	PrevTotal float64
	IdleTimer float64
}

// Reset starts a new sweep at total.
func (r *PaddleRotation) Reset(total float64) {
	r.CWStart = total
	r.CCWStart = total
	r.PrevTotal = total
	r.IdleTimer = 0
}
