// internal/vfx/color.go
package vfx

import (
	"image/color"

	"go-porcle/internal/config"
	mathutil "go-porcle/pkg/utils"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor blends a toward b, t in [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = mathutil.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// WithAlpha fades a premultiplied colour by f.
func WithAlpha(c color.RGBA, f float64) color.RGBA {
	f = mathutil.Clamp(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// BloomIntensity is the glow alpha for a ball speed factor.
func BloomIntensity(speedFactor float64) float64 {
	return mathutil.Clamp(config.BloomBase+(1-config.BloomBase)*0.6*speedFactor, 0, 1)
}
