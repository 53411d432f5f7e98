// internal/state/title_state.go
package state

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-porcle/internal/config"
	"go-porcle/internal/ui"
)

var _ State = (*TitleState)(nil)

// TitleState: стартовый экран
type TitleState struct {
	sm       *StateMachine
	services *Services
	play     *ui.Button
	replay   *ui.Button
	quit     *ui.Button
	time     float64
}

func NewTitleState(sm *StateMachine, services *Services) *TitleState {
	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight) / 2
	s := &TitleState{
		sm:       sm,
		services: services,
		play:     ui.NewButton(cx, cy+40, 200, 36, "PLAY (SPACE)"),
		quit:     ui.NewButton(cx, cy+140, 200, 36, "QUIT (ESC)"),
	}
	if services.Replay != nil {
		s.replay = ui.NewButton(cx, cy+90, 200, 36, "WATCH REPLAY (W)")
	}
	return s
}

func (s *TitleState) Enter() {
	s.time = 0
}

func (s *TitleState) Update(deltaTime float64) {
	s.time += deltaTime
	s.services.EndFrame(deltaTime, 0)

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	cx, cy := ebiten.CursorPosition()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		(clicked && s.play.Contains(cx, cy)):
		s.sm.SetState(NewGameState(s.sm, s.services))
	case s.replay != nil && (inpututil.IsKeyJustPressed(ebiten.KeyW) || (clicked && s.replay.Contains(cx, cy))):
		s.sm.SetState(NewReplayState(s.sm, s.services, s.services.Replay))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape) || (clicked && s.quit.Contains(cx, cy)):
		s.sm.RequestExit()
	}
}

func (s *TitleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	cx := float32(config.ScreenWidth) / 2
	cy := float32(config.ScreenHeight)/2 - 120
	orbit := float32(s.services.Tuning.Paddle.OrbitRadius) * 0.4

	// Ядро и ракетка, медленно обходящая орбиту.
	vector.StrokeCircle(screen, cx, cy, orbit, 1, config.WallColor, true)
	vector.DrawFilledCircle(screen, cx, cy, float32(s.services.Tuning.Core.Radius)*0.3, config.CoreColor, true)
	angle := s.time * 0.8
	for i := -3; i <= 3; i++ {
		a := angle + float64(i)*0.05
		x := cx + orbit*float32(math.Cos(a))
		y := cy - orbit*float32(math.Sin(a))
		vector.DrawFilledCircle(screen, x, y, 5, config.PaddleColor, true)
	}

	ui.DrawTextOutlined(screen, "P O R C L E", ui.DefaultFace, int(cx), int(cy+orbit)+30, 2, config.TextLightColor, config.WallColor)

	mx, my := ebiten.CursorPosition()
	s.play.Draw(screen, mx, my)
	if s.replay != nil {
		s.replay.Draw(screen, mx, my)
	}
	s.quit.Draw(screen, mx, my)
}

func (s *TitleState) Exit() {}
