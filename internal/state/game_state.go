// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-porcle/internal/app"
	"go-porcle/internal/config"
	"go-porcle/internal/input"
	"go-porcle/internal/replay"
	"go-porcle/internal/ui"
)

// GameState is the play screen: one session, its fixed-step loop and the HUD.
// With a player set, input comes from a recording instead of the devices.
type GameState struct {
	sm       *StateMachine
	services *Services
	game     *app.Game
	stepper  *app.Stepper
	sampler  *Sampler
	hud      *ui.HUD
	pause    *ui.PauseButton

	recording *replay.Recording
	player    *replay.Player
	debug     bool
}

// NewGameState starts a live session.
func NewGameState(sm *StateMachine, services *Services) *GameState {
	g := newGameState(sm, services)
	g.game = app.NewGame(services.Tuning, services.Library, services.Seed, services.Effects())
	g.startRecording()
	return g
}

// NewReplayState plays rec back.
func NewReplayState(sm *StateMachine, services *Services, rec *replay.Recording) *GameState {
	g := newGameState(sm, services)
	g.game = rec.NewGame(services.Effects())
	g.player = replay.NewPlayer(rec)
	log.Printf("replay of session %s: %d ticks, seed %d", rec.SessionID, len(rec.Inputs), rec.Seed)
	return g
}

func newGameState(sm *StateMachine, services *Services) *GameState {
	services.Renderer.Reset()
	return &GameState{
		sm:       sm,
		services: services,
		stepper:  app.NewStepper(),
		sampler:  NewSampler(services.Renderer.Camera),
		hud:      ui.NewHUD(),
		pause:    ui.NewPauseButton(config.ScreenWidth-config.HUDMargin-14, config.HUDMargin+14, 10),
	}
}

func (g *GameState) Game() *app.Game {
	return g.game
}

// Replaying reports whether inputs come from a recording.
func (g *GameState) Replaying() bool {
	return g.player != nil
}

func (g *GameState) Enter() {
	g.stepper.Reset()
	g.pause.SetPaused(false)
}

func (g *GameState) Exit() {}

func (g *GameState) startRecording() {
	if g.services.RecordPath == "" {
		return
	}
	g.recording = replay.NewRecording(g.game)
}

func (g *GameState) finishRecording() {
	if g.recording == nil {
		return
	}
	g.recording.Finish(g.game)
	g.services.saveRecording(g.recording)
	g.recording = nil
}

// Restart rebuilds the session. A replay restarts from its first tick.
func (g *GameState) Restart() {
	g.services.Renderer.Reset()
	g.stepper.Reset()
	if g.player != nil {
		rec := g.player.Recording()
		g.player = replay.NewPlayer(rec)
		g.game = rec.NewGame(g.services.Effects())
		return
	}
	g.finishRecording()
	g.game.Restart(g.services.Seed)
	g.startRecording()
}

// Quit leaves for the title screen.
func (g *GameState) Quit() {
	g.finishRecording()
	g.sm.SetState(NewTitleState(g.sm, g.services))
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.services.ToggleMute()
	}
	g.pause.Update(deltaTime)

	in := g.sampler.Sample(deltaTime)
	if in.Quit {
		g.Quit()
		return
	}
	if in.Restart {
		g.Restart()
		return
	}

	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || (clicked && g.pause.IsClicked(ebiten.CursorPosition())) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.step(deltaTime, in)
	g.hud.Update(deltaTime, g.game)
	g.services.EndFrame(deltaTime, g.game.SpeedFactor())

	if g.game.Over() || (g.player != nil && g.player.Done()) {
		g.finishRecording()
		g.sm.SetState(NewGameOverState(g.sm, g.services, g))
	}
}

// step runs this frame's fixed ticks. Edge-triggered input goes to the
// first tick only.
func (g *GameState) step(deltaTime float64, in input.State) {
	n := g.stepper.Advance(deltaTime)
	for i := 0; i < n && !g.game.Over(); i++ {
		tick := in
		if i > 0 {
			tick = in.Held()
		}
		if g.player != nil {
			recorded, ok := g.player.Next()
			if !ok {
				return
			}
			tick = recorded
		}
		g.game.Update(config.FixedDelta, tick)
		if g.recording != nil {
			g.recording.Add(tick)
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.services.Renderer.Draw(screen, g.game.ECS)
	g.hud.Draw(screen, g.game)
	g.pause.Draw(screen)

	if g.player != nil {
		label := fmt.Sprintf("REPLAY %3.0f%%", g.player.Progress()*100)
		ebitenutil.DebugPrintAt(screen, label, config.ScreenWidth/2-40, config.HUDMargin+20)
	}
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d  seed %d  entities %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.game.Tick, g.game.Seed(), len(g.game.ECS.Transforms)),
			config.HUDMargin, config.HUDMargin+24)
	}
}
