// internal/system/spawner.go
package system

import (
	"math"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/defs"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/interfaces"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
)

// SpawnerSystem runs the single periodic enemy spawn timer. The difficulty
// ramp comes from the score bracket: it picks both the kind weights and the
// interval multiplier.
type SpawnerSystem struct {
	ecs             *entity.ECS
	tuning          *config.Tuning
	lib             defs.EnemyLibrary
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	game            interfaces.GameContext
	timer           float64
	interval        float64
}

func NewSpawnerSystem(ecs *entity.ECS, tuning *config.Tuning, lib defs.EnemyLibrary, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, game interfaces.GameContext) *SpawnerSystem {
	s := &SpawnerSystem{
		ecs:             ecs,
		tuning:          tuning,
		lib:             lib,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		game:            game,
	}
	s.Reset()
	return s
}

// Reset restarts the timer with an interval for the weakest kind.
func (s *SpawnerSystem) Reset() {
	s.timer = 0
	base := 2.0
	if def, ok := s.lib.Get(defs.KindCrawler); ok {
		base = def.SpawnBaseTime
	}
	s.interval = NextSpawnInterval(base, 0, s.rng)
}

// NextSpawnInterval scales a kind's base time by the score bracket's random
// multiplier.
func NextSpawnInterval(baseTime float64, score int, rng *utils.PRNGService) float64 {
	b := defs.BracketFor(score)
	return baseTime * rng.RangeInclusive(b.IntervalMin, b.IntervalMax)
}

// Interval is the time between the previous spawn and the next one.
func (s *SpawnerSystem) Interval() float64 {
	return s.interval
}

func (s *SpawnerSystem) Update(deltaTime float64) {
	s.timer += deltaTime
	if s.timer < s.interval {
		return
	}
	s.timer = 0

	score := s.ecs.GameState.Score
	bracket := defs.BracketFor(score)
	kind, ok := s.rng.ChooseWeighted(bracket.Weights)
	if !ok {
		s.game.WarnOnce("spawn-empty-bracket", "spawner: score bracket %d has no kinds", bracket.MinScore)
		return
	}
	def, ok := s.lib.Get(kind)
	if !ok {
		s.game.WarnOnce("spawn-missing-def:"+kind.String(), "Error: Enemy definition not found for kind: %s", kind)
		return
	}

	s.eventDispatcher.Push(event.Event{Type: event.SpawnEnemy, Data: event.SpawnEnemyData{
		Kind:     kind,
		Position: s.SpawnPosition(def),
	}})
	s.interval = NextSpawnInterval(def.SpawnBaseTime, score, s.rng)
}

// SpawnRadius lies just outside the corners of the visible square.
func (s *SpawnerSystem) SpawnRadius() float64 {
	return config.GameSize/2*math.Sqrt2 + s.tuning.Enemy.SpawnMargin
}

// SpawnPosition picks where a new enemy appears. Ranged kinds come in on a
// diagonal cone of one of the four quadrants, the rest from any angle.
func (s *SpawnerSystem) SpawnPosition(def defs.EnemyDefinition) geom.Vec2 {
	var angle float64
	if def.Ranged {
		e := s.tuning.Enemy
		deg := e.TurretConeCenterDeg + s.rng.Range(-e.TurretConeDeg, e.TurretConeDeg) + float64(s.rng.Intn(4))*90
		angle = deg * math.Pi / 180
	} else {
		angle = s.rng.Range(0, 2*math.Pi)
	}
	return geom.FromAngle(angle).Scale(s.SpawnRadius())
}

// OnEvent materializes a SpawnEnemy request.
func (s *SpawnerSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.SpawnEnemyData)
	if !ok {
		return
	}
	def, ok := s.lib.Get(data.Kind)
	if !ok {
		s.game.WarnOnce("spawn-missing-def:"+data.Kind.String(), "Error: Enemy definition not found for kind: %s", data.Kind)
		return
	}

	toCore := data.Position.Neg().NormalizeOr(geom.V(-1, 0))
	id := s.ecs.NewEntity()
	s.ecs.Transforms[id] = component.NewTransform(data.Position, toCore.Angle())
	s.ecs.SetMoveDirection(id, component.MoveDirection{Dir: toCore})
	s.ecs.Speeds[id] = &component.Speed{Value: s.rng.Range(def.Speed, def.Speed*s.tuning.Enemy.SpeedRangeMult)}
	s.ecs.SpeedMultipliers[id] = &component.SpeedMultiplier{Value: 1}
	s.ecs.Impulses[id] = &component.Impulse{}
	s.ecs.Enemies[id] = &component.Enemy{Kind: def.Kind, Radius: def.Radius, Shape: def.Shape}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.HomingTargets[id] = &component.HomingTarget{}
	if def.ShieldHits > 0 {
		s.ecs.Shields[id] = &component.Shielded{Hits: def.ShieldHits}
	}
	if def.Ranged {
		s.ecs.StopNearCores[id] = &component.StopNearCore{
			TriggerRadius: s.rng.Range(def.StopRadiusMin, def.StopRadiusMax),
		}
		s.ecs.GunBarrels[id] = &component.GunBarrel{}
	}
}
