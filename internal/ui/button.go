// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/config"
)

// Button представляет собой кликабельную кнопку на экранах меню.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	TextColor           color.Color
	BgColor             color.RGBA
	HoverColor          color.RGBA
}

// NewButton создает кнопку, центрированную по cx.
func NewButton(cx, y, width, height float32, label string) *Button {
	return &Button{
		X:          cx - width/2,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.WallColor,
		HoverColor: config.PaddleColor,
	}
}

// Contains reports whether the screen point lies on the button.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

// Draw отрисовывает кнопку; под курсором она подсвечивается.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bg, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, config.TextLightColor, false)

	lineHeight := DefaultFace.Metrics().Height.Ceil()
	DrawTextCentered(screen, b.Text, DefaultFace, int(b.X+b.Width/2), int(b.Y+(b.Height-float32(lineHeight))/2), b.TextColor)
}
