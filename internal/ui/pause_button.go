// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/config"
)

// PauseButton рисует значок паузы (две полосы) или продолжения (треугольник).
type PauseButton struct {
	X, Y       float32
	Size       float32
	IsPaused   bool
	PauseColor color.RGBA
	PlayColor  color.RGBA
	sinceClick float64
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: config.GearActiveColor,
		PlayColor:  config.CaptureColor,
		sinceClick: math.Inf(1),
	}
}

func (b *PauseButton) Update(deltaTime float64) {
	b.sinceClick += deltaTime
}

// IsClicked hit-tests the circle around the icon.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx, dy := float32(x)-b.X, float32(y)-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.sinceClick = 0
	}
	b.IsPaused = paused
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	scale := 1.0 + 0.3*math.Exp(-b.sinceClick*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-size, b.Y-size*1.2)
		path.LineTo(b.X-size, b.Y+size*1.2)
		path.LineTo(b.X+size, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}
	// Две полосы (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
}

var fillImg *ebiten.Image

// fillPath fills a vector path with a solid colour.
func fillPath(screen *ebiten.Image, path *vector.Path, c color.RGBA) {
	if fillImg == nil {
		fillImg = ebiten.NewImage(3, 3)
		fillImg.Fill(color.White)
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
	screen.DrawTriangles(vs, is, fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
