// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the HUD font.
var DefaultFace font.Face = basicfont.Face7x13

// DrawText draws s with its top-left corner at (x, y).
func DrawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, x, y+ascent, clr)
}

// DrawTextCentered draws s centred on x with its top at y.
func DrawTextCentered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	DrawText(screen, s, face, x-b.Dx()/2, y, clr)
}

// DrawTextOutlined draws centred text with a one-colour outline of the
// given thickness in pixels.
func DrawTextOutlined(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawTextCentered(screen, s, face, x+dx, y+dy, outline)
		}
	}
	DrawTextCentered(screen, s, face, x, y, clr)
}
