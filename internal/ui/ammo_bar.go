// internal/ui/ammo_bar.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/config"
)

// AmmoBar is a horizontal fill bar with the round count beside it.
type AmmoBar struct {
	X, Y          float32
	Width, Height float32
}

func NewAmmoBar(x, y float32) *AmmoBar {
	return &AmmoBar{X: x, Y: y, Width: config.HUDBarWidth, Height: config.HUDBarHeight}
}

// FillWidth is the filled part of the bar for ammo out of capacity.
func (b *AmmoBar) FillWidth(ammo, capacity int) float32 {
	if capacity <= 0 || ammo <= 0 {
		return 0
	}
	if ammo > capacity {
		ammo = capacity
	}
	return b.Width * float32(ammo) / float32(capacity)
}

func (b *AmmoBar) Draw(screen *ebiten.Image, ammo, capacity int) {
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, config.AmmoBarBackColor, false)
	if w := b.FillWidth(ammo, capacity); w > 0 {
		vector.DrawFilledRect(screen, b.X, b.Y, w, b.Height, config.AmmoBarColor, false)
	}
	label := fmt.Sprintf("%d/%d", ammo, capacity)
	DrawText(screen, label, DefaultFace, int(b.X+b.Width)+8, int(b.Y+b.Height/2)-6, config.TextLightColor)
}
