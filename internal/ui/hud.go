// internal/ui/hud.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/config"
	"go-porcle/internal/interfaces"
)

// HUD рисует поверх мира счёт, боезапас, режим ракетки, шестерёнки ядра и
// скорость мяча.
type HUD struct {
	Mode  *ModeIndicator
	Gears *GearIndicator
	Ammo  *AmmoBar
}

func NewHUD() *HUD {
	m := float32(config.HUDMargin)
	return &HUD{
		Mode:  NewModeIndicator(m+10, config.ScreenHeight-m-40, 8),
		Gears: NewGearIndicator(m, m),
		Ammo:  NewAmmoBar(m, config.ScreenHeight-m-config.HUDBarHeight),
	}
}

func (h *HUD) Update(deltaTime float64, s interfaces.Session) {
	h.Mode.Update(deltaTime, s.Mode())
}

func (h *HUD) Draw(screen *ebiten.Image, s interfaces.Session) {
	DrawTextOutlined(screen, strconv.Itoa(s.Score()), DefaultFace, config.ScreenWidth/2, config.HUDMargin, 1, config.TextLightColor, config.BackgroundColor)

	active, total := s.ActiveGears()
	h.Gears.Draw(screen, active, total)

	ammo, capacity := s.Ammo()
	h.Ammo.Draw(screen, ammo, capacity)
	h.Mode.Draw(screen)

	// Шкала скорости мяча справа внизу.
	w := float32(config.HUDBarWidth / 2)
	x := float32(config.ScreenWidth-config.HUDMargin) - w
	y := float32(config.ScreenHeight - config.HUDMargin - config.HUDBarHeight)
	vector.DrawFilledRect(screen, x, y, w, config.HUDBarHeight, config.AmmoBarBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(s.SpeedFactor()), config.HUDBarHeight, config.BallFastColor, false)
}
