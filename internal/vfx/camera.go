// internal/vfx/camera.go
package vfx

import (
	"go-porcle/internal/config"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
	mathutil "go-porcle/pkg/utils"
)

// Camera maps world units (origin at the core, y up) to screen pixels and
// shakes with accumulated trauma.
type Camera struct {
	Trauma float64
	Offset geom.Vec2

	center geom.Vec2
	scale  float64
	rng    *utils.PRNGService
}

func NewCamera(screenWidth, screenHeight int, seed int64) *Camera {
	side := float64(screenWidth)
	if screenHeight < screenWidth {
		side = float64(screenHeight)
	}
	return &Camera{
		center: geom.V(float64(screenWidth)/2, float64(screenHeight)/2),
		scale:  side / config.GameSize,
		rng:    utils.NewPRNGService(seed),
	}
}

// AddTrauma adds shake; trauma saturates at 1.
func (c *Camera) AddTrauma(amount float64) {
	c.Trauma = mathutil.Clamp(c.Trauma+amount, 0, 1)
}

// Update decays trauma and picks this frame's shake offset. The offset
// grows with the square of trauma. speedFactor is the smoothed ball speed
// factor in [0, 1]: faster balls make the shake linger and grow.
func (c *Camera) Update(deltaTime, speedFactor float64) {
	f := mathutil.Clamp(speedFactor, 0, 1)
	c.Trauma -= config.TraumaDecay * (1 - config.ShakeSpeedLinger*f) * deltaTime
	if c.Trauma <= 0 {
		c.Trauma = 0
		c.Offset = geom.Zero
		return
	}
	shake := config.MaxShake * (1 + config.ShakeSpeedBoost*f) * c.Trauma * c.Trauma
	c.Offset = geom.V(c.rng.Range(-1, 1)*shake, c.rng.Range(-1, 1)*shake)
}

// ToScreen converts a world point to screen pixels, shake included.
func (c *Camera) ToScreen(p geom.Vec2) (float32, float32) {
	x := c.center.X + p.X*c.scale + c.Offset.X
	y := c.center.Y - p.Y*c.scale + c.Offset.Y
	return float32(x), float32(y)
}

// ToWorld converts a screen pixel to world units, ignoring shake.
func (c *Camera) ToWorld(x, y float64) geom.Vec2 {
	return geom.V((x-c.center.X)/c.scale, -(y-c.center.Y)/c.scale)
}

// Length converts a world length to pixels.
func (c *Camera) Length(l float64) float32 {
	return float32(l * c.scale)
}
