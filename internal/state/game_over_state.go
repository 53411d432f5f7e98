// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/config"
	"go-porcle/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final score over the frozen world.
type GameOverState struct {
	sm       *StateMachine
	services *Services
	game     *GameState
	restart  *ui.Button
	title    *ui.Button
	fade     float64
}

func NewGameOverState(sm *StateMachine, services *Services, game *GameState) *GameOverState {
	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight) / 2
	return &GameOverState{
		sm:       sm,
		services: services,
		game:     game,
		restart:  ui.NewButton(cx, cy+30, 180, 36, "RESTART (R)"),
		title:    ui.NewButton(cx, cy+80, 180, 36, "TITLE (ESC)"),
	}
}

func (s *GameOverState) Enter() {
	s.fade = 0
}

func (s *GameOverState) Update(deltaTime float64) {
	// Частицы и тряска доигрывают поверх остановленного мира.
	s.services.EndFrame(deltaTime, s.game.Game().SpeedFactor())
	s.fade += deltaTime

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	cx, cy := ebiten.CursorPosition()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR) || (clicked && s.restart.Contains(cx, cy)):
		s.game.Restart()
		s.sm.SetState(s.game)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || (clicked && s.title.Contains(cx, cy)):
		s.sm.SetState(NewTitleState(s.sm, s.services))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)

	alpha := s.fade * 2
	if alpha > 1 {
		alpha = 1
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, uint8(160 * alpha)}, false)

	cx := config.ScreenWidth / 2
	cy := config.ScreenHeight / 2
	heading := "GAME OVER"
	if s.game.Replaying() {
		heading = "REPLAY FINISHED"
	}
	ui.DrawTextOutlined(screen, heading, ui.DefaultFace, cx, cy-40, 1, config.TextLightColor, config.BackgroundColor)
	ui.DrawTextCentered(screen, fmt.Sprintf("score %d", s.game.Game().Score()), ui.DefaultFace, cx, cy-16, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	s.restart.Draw(screen, mx, my)
	s.title.Draw(screen, mx, my)
}

func (s *GameOverState) Exit() {}
