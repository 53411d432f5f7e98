// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/defs"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/input"
	"go-porcle/internal/interfaces"
	"go-porcle/internal/system"
	"go-porcle/internal/utils"
)

var (
	_ interfaces.Session     = (*Game)(nil)
	_ interfaces.GameContext = (*Game)(nil)
)

// Game holds one play session: the world, its systems and the event queue.
type Game struct {
	ECS             *entity.ECS
	Tuning          *config.Tuning
	Library         defs.EnemyLibrary
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	SessionID       uuid.UUID
	Tick            uint64

	CooldownSystem     *system.CooldownSystem
	DelayedEventSystem *system.DelayedEventSystem
	MovementSystem     *system.MovementSystem
	SpatialIndex       *system.SpatialIndex
	FeelSystem         *system.FeelSystem
	PaddleSystem       *system.PaddleSystem
	BallSystem         *system.BallSystem
	GunSystem          *system.GunSystem
	ProjectileSystem   *system.ProjectileSystem
	EnemySystem        *system.EnemySystem
	ScoreSystem        *system.ScoreSystem
	SpawnerSystem      *system.SpawnerSystem
	CoreSystem         *system.CoreSystem
	BoundsSystem       *system.BoundsSystem
	VisualEffectSystem *system.VisualEffectSystem
	LevelSystem        *system.LevelSystem

	fx     effects.Sink
	logger *log.Logger
	warned map[string]bool
}

// NewGame builds a session and spawns the level. A zero seed picks one from
// the clock; Seed reports the one in use.
func NewGame(tuning *config.Tuning, lib defs.EnemyLibrary, seed int64, fx effects.Sink) *Game {
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	if lib == nil {
		lib = defs.DefaultEnemyLibrary()
	}
	if fx == nil {
		fx = effects.Null{}
	}
	g := &Game{Tuning: tuning, Library: lib, fx: fx}
	g.build(seed)
	return g
}

func (g *Game) build(seed int64) {
	g.SessionID = uuid.New()
	g.logger = log.New(log.Writer(), fmt.Sprintf("[%s] ", g.SessionID.String()[:8]), log.LstdFlags|log.Lmsgprefix)
	g.warned = make(map[string]bool)
	g.Tick = 0

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	g.ECS = ecs
	g.EventDispatcher = dispatcher
	g.Rng = utils.NewPRNGService(seed)

	g.CooldownSystem = system.NewCooldownSystem(ecs)
	g.DelayedEventSystem = system.NewDelayedEventSystem(ecs, dispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, g.Tuning)
	g.SpatialIndex = system.NewSpatialIndex(ecs)
	g.FeelSystem = system.NewFeelSystem(ecs, g.Tuning)
	g.PaddleSystem = system.NewPaddleSystem(ecs, g.Tuning, dispatcher, g.fx, g.FeelSystem, g)
	g.BallSystem = system.NewBallSystem(ecs, g.Tuning, dispatcher, g.fx, g.FeelSystem, g.SpatialIndex)
	g.GunSystem = system.NewGunSystem(ecs, g.Tuning, dispatcher, g.fx)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.Tuning, dispatcher, g.fx, g.Rng, g.SpatialIndex)
	g.EnemySystem = system.NewEnemySystem(ecs, g.Tuning, dispatcher, g.fx, g.SpatialIndex)
	g.ScoreSystem = system.NewScoreSystem(ecs, dispatcher)
	g.SpawnerSystem = system.NewSpawnerSystem(ecs, g.Tuning, g.Library, g.Rng, dispatcher, g)
	g.CoreSystem = system.NewCoreSystem(ecs, g.Tuning, dispatcher, g.fx, g)
	g.BoundsSystem = system.NewBoundsSystem(ecs, g.Tuning, dispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.LevelSystem = system.NewLevelSystem(ecs, g.Tuning, g.BallSystem, g)

	g.registerHandlers()

	dispatcher.Push(event.Event{Type: event.SpawnLevel})
	dispatcher.Drain()
	g.logger.Printf("session started, seed %d", g.Rng.Seed())
}

// registerHandlers wires every event to its handlers. Order numbers within
// one event type decide the call order.
func (g *Game) registerHandlers() {
	d := g.EventDispatcher

	d.SubscribeFunc(event.SpawnLevel, 10, g.LevelSystem.SpawnCore)
	d.SubscribeFunc(event.SpawnLevel, 20, g.LevelSystem.SpawnWalls)
	d.SubscribeFunc(event.SpawnLevel, 30, g.LevelSystem.SpawnPaddle)
	d.SubscribeFunc(event.SpawnLevel, 40, g.LevelSystem.ScheduleFirstBall)

	d.SubscribeFunc(event.SpawnBall, 10, g.LevelSystem.DespawnBalls)
	d.SubscribeFunc(event.SpawnBall, 20, g.LevelSystem.SpawnBall)

	d.Subscribe(event.SpawnEnemy, 10, g.SpawnerSystem)
	d.SubscribeFunc(event.SpawnProjectile, 10, g.ProjectileSystem.OnSpawnProjectile)
	d.SubscribeFunc(event.DamageEnemy, 10, g.EnemySystem.OnDamageEnemy)

	d.Subscribe(event.DespawnEnemy, 10, g.ScoreSystem)
	d.SubscribeFunc(event.DespawnEnemy, 20, g.EnemySystem.OnDespawnEnemy)

	d.SubscribeFunc(event.DespawnProjectile, 10, g.ProjectileSystem.OnDespawnProjectile)

	d.SubscribeFunc(event.TakeDamage, 10, g.CoreSystem.OnTakeDamage)
	d.SubscribeFunc(event.TakeDamage, 20, g.CoreSystem.OnClearRadius)

	d.SubscribeFunc(event.GameOver, 10, g.onGameOver)
}

func (g *Game) onGameOver(e event.Event) {
	if g.ECS.GameState.Phase == component.PhaseGameOver {
		return
	}
	g.ECS.GameState.Phase = component.PhaseGameOver
	g.fx.PlaySfx(effects.SfxGameOver)
	g.logger.Printf("game over: score %d after %d ticks", g.ECS.GameState.Score, g.Tick)
}

// Update advances the simulation by one tick. Nothing moves once the game is over.
func (g *Game) Update(deltaTime float64, in input.State) {
	if g.ECS.GameState.Phase == component.PhaseGameOver {
		return
	}
	g.Tick++
	g.ECS.GameTime += deltaTime

	g.CooldownSystem.Update(deltaTime)
	g.DelayedEventSystem.Update(deltaTime)

	if in.ToggleMode {
		g.PaddleSystem.ToggleMode()
	}
	g.PaddleSystem.Rotate(in.Aim, deltaTime)
	if in.Shoot {
		g.GunSystem.Fire()
	}
	g.GunSystem.Regen()

	g.MovementSystem.Update(deltaTime)
	g.BallSystem.UpdateOrbitState()
	g.SpatialIndex.Sync()

	g.BallSystem.ResolveCollisions(deltaTime)
	g.ProjectileSystem.ResolveCollisions()
	g.CoreSystem.CheckContacts()
	g.PaddleSystem.UpdateCycles(deltaTime)
	g.EventDispatcher.Drain()

	g.SpawnerSystem.Update(deltaTime)
	g.EnemySystem.UpdateStopNearCore()
	g.EnemySystem.UpdateBarrels()
	g.BoundsSystem.Update()
	g.EventDispatcher.Drain()

	g.FeelSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.CoreSystem.UpdateGears()
}

// Restart discards the world and builds a fresh session. A zero seed picks a new one.
func (g *Game) Restart(seed int64) {
	g.logger.Printf("restart after %d ticks", g.Tick)
	g.build(seed)
}

// WarnOnce logs a soft failure the first time key is seen in this session.
func (g *Game) WarnOnce(key, format string, args ...interface{}) {
	if g.warned[key] {
		return
	}
	g.warned[key] = true
	g.logger.Printf(format, args...)
}

func (g *Game) Seed() int64 {
	return g.Rng.Seed()
}

func (g *Game) Score() int {
	return g.ECS.GameState.Score
}

func (g *Game) Over() bool {
	return g.ECS.GameState.Phase == component.PhaseGameOver
}

func (g *Game) Ammo() (int, int) {
	for _, id := range entity.SortedIDs(g.ECS.PaddleAmmos) {
		a := g.ECS.PaddleAmmos[id]
		return a.Ammo, a.Capacity
	}
	return 0, 0
}

func (g *Game) Mode() component.ModeState {
	if id, ok := g.ECS.FirstPaddle(); ok {
		if m, ok := g.ECS.PaddleModes[id]; ok {
			return m.State
		}
	}
	return component.ModeReflect
}

// SpeedFactor is the smoothed maximum ball speed factor.
func (g *Game) SpeedFactor() float64 {
	return g.FeelSystem.Factor()
}

func (g *Game) ActiveGears() (int, int) {
	if _, core, ok := g.ECS.FirstCore(); ok {
		return core.ActiveGears(), len(core.Gears)
	}
	return 0, 0
}
