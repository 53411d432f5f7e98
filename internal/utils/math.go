// internal/utils/math.go
package utils

import (
	"math"

	"go-porcle/pkg/geom"
)

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDelta returns the shortest signed rotation taking from to to.
func AngleDelta(from, to float64) float64 {
	return NormalizeAngle(to - from)
}

// LerpAngle interpolates along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	return NormalizeAngle(from + AngleDelta(from, to)*t)
}

// SmoothingWeight converts a per-frame smoothing factor at 60 fps into the
// weight for a step of dt seconds, so the curve is frame-rate independent.
func SmoothingWeight(factor, dt float64) float64 {
	if factor >= 1 {
		return 1
	}
	if factor <= 0 {
		return 0
	}
	return 1 - math.Pow(1-factor, dt*60)
}

// AsymptoticSmoothing moves from toward to by SmoothingWeight(factor, dt).
func AsymptoticSmoothing(from, to, factor, dt float64) float64 {
	return Lerp(from, to, SmoothingWeight(factor, dt))
}

// AsymptoticSmoothingVec is AsymptoticSmoothing for vectors.
func AsymptoticSmoothingVec(from, to geom.Vec2, factor, dt float64) geom.Vec2 {
	return from.Lerp(to, SmoothingWeight(factor, dt))
}

// ExpApproach decays toward target at rate per second.
func ExpApproach(current, target, rate, dt float64) float64 {
	return target + (current-target)*math.Exp(-rate*dt)
}
