// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
)

// ModeIndicator показывает текущий режим ракетки и пульсирует при смене.
type ModeIndicator struct {
	X, Y    float32
	Radius  float32
	last    component.ModeState
	elapsed float64
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{X: x, Y: y, Radius: radius, elapsed: math.Inf(1)}
}

// Update restarts the pulse when the mode changes.
func (i *ModeIndicator) Update(deltaTime float64, mode component.ModeState) {
	if mode != i.last {
		i.last = mode
		i.elapsed = 0
		return
	}
	i.elapsed += deltaTime
}

func modeColor(mode component.ModeState) color.RGBA {
	switch mode {
	case component.ModeCapture:
		return config.CaptureColor
	case component.ModeCaptured:
		return config.CapturedColor
	}
	return config.PaddleColor
}

// Draw отрисовывает индикатор
func (i *ModeIndicator) Draw(screen *ebiten.Image) {
	scale := 1.0 + 0.3*math.Exp(-i.elapsed*8)
	radius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, radius, modeColor(i.last), true)
	vector.StrokeCircle(screen, i.X, i.Y, radius, 1.5, config.TextLightColor, true)
	DrawText(screen, i.last.String(), DefaultFace, int(i.X+i.Radius*1.6), int(i.Y)-6, config.TextLightColor)
}
