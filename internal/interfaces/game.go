package interfaces

import "go-porcle/internal/component"

// Session is the read-only view of a running game that the HUD and the
// screens need. It keeps ui and state free of the app package.
type Session interface {
	Score() int
	Ammo() (ammo, capacity int)
	Mode() component.ModeState
	SpeedFactor() float64
	ActiveGears() (active, total int)
	Over() bool
}
