// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-porcle/internal/audio"
	"go-porcle/internal/config"
	"go-porcle/internal/defs"
	"go-porcle/internal/render"
	"go-porcle/internal/replay"
	"go-porcle/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Exiting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "TOML file overriding gameplay constants")
	enemiesPath := flag.String("enemies", "", "TOML file overriding enemy definitions")
	seed := flag.Int64("seed", 0, "session seed, 0 picks one per session")
	recordPath := flag.String("record", "", "write a replay of every finished session to this file")
	replayPath := flag.String("replay", "", "play this replay file instead of starting a session")
	mute := flag.Bool("mute", false, "do not open the audio device")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		t, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatal(err)
		}
		tuning = t
	}
	library := defs.DefaultEnemyLibrary()
	if *enemiesPath != "" {
		lib, err := defs.LoadEnemyDefinitions(*enemiesPath)
		if err != nil {
			log.Fatal(err)
		}
		library = lib
	}

	var rec *replay.Recording
	if *replayPath != "" {
		r, err := replay.Load(*replayPath)
		if err != nil {
			log.Fatal(err)
		}
		rec = r
		// Запись воспроизводится со своими константами.
		tuning = rec.Tuning
	}

	services := &state.Services{
		Tuning:     tuning,
		Library:    library,
		Seed:       *seed,
		Renderer:   render.NewRenderer(tuning, time.Now().UnixNano()),
		RecordPath: *recordPath,
		Replay:     rec,
	}

	if !*mute {
		sound := audio.NewSoundManager(0.6)
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			services.Sound = sound
			defer sound.Cleanup()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if rec != nil {
		sm.SetState(state.NewReplayState(sm, services, rec))
	} else {
		sm.SetState(state.NewTitleState(sm, services))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Porcle")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
