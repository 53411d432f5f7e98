// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/config"
	"go-porcle/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the session and draws it dimmed.
type PauseState struct {
	sm   *StateMachine
	game *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{sm: sm, game: game}
}

func (s *PauseState) Enter() {
	s.game.pause.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	s.game.pause.Update(deltaTime)

	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.game.pause.IsClicked(ebiten.CursorPosition()))
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.Quit()
		return
	}
	if unpause {
		// Enter игрового состояния сбрасывает шаг и «отжимает» кнопку.
		s.sm.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	ui.DrawTextOutlined(screen, "PAUSED", ui.DefaultFace, config.ScreenWidth/2, config.ScreenHeight/2-6, 1, config.TextLightColor, config.BackgroundColor)
}

func (s *PauseState) Exit() {}
