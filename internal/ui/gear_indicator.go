// internal/ui/gear_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/config"
)

const (
	GearCircleRadius  = 7.0
	GearCircleSpacing = 5.0
)

// GearIndicator отображает оставшиеся шестерёнки ядра рядом кружков.
type GearIndicator struct {
	X, Y float32
}

func NewGearIndicator(x, y float32) *GearIndicator {
	return &GearIndicator{X: x, Y: y}
}

// Width is the pixel width of a row of total gears.
func (i *GearIndicator) Width(total int) float32 {
	return float32(total)*(GearCircleRadius*2+GearCircleSpacing) - GearCircleSpacing
}

func (i *GearIndicator) Draw(screen *ebiten.Image, active, total int) {
	for j := 0; j < total; j++ {
		x := i.X + float32(j)*(GearCircleRadius*2+GearCircleSpacing) + GearCircleRadius
		y := i.Y + GearCircleRadius

		c := config.GearDisableColor
		if j < active {
			c = config.GearActiveColor
		}
		vector.DrawFilledCircle(screen, x, y, GearCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, GearCircleRadius, 1, config.TextLightColor, true)
	}
}
