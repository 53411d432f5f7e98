package system

import (
	"math"

	"go-porcle/internal/component"
	"go-porcle/internal/config"
	"go-porcle/internal/defs"
	"go-porcle/internal/effects"
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
	"go-porcle/internal/types"
	"go-porcle/internal/utils"
	"go-porcle/pkg/geom"
)

const dt = 1.0 / 60

type nopContext struct{}

func (nopContext) WarnOnce(string, string, ...interface{}) {}

// testWorld wires the systems the way the session does, minus the frontend.
type testWorld struct {
	ecs    *entity.ECS
	tuning *config.Tuning
	d      *event.Dispatcher
	fx     *effects.Recorder
	rng    *utils.PRNGService
	feel   *FeelSystem
	index  *SpatialIndex
	ball   *BallSystem
	paddle *PaddleSystem
	level  *LevelSystem
	events []event.Event
}

func newTestWorld() *testWorld {
	w := &testWorld{
		ecs:    entity.NewECS(),
		tuning: config.DefaultTuning(),
		d:      event.NewDispatcher(),
		fx:     &effects.Recorder{},
		rng:    utils.NewPRNGService(42),
	}
	w.ecs.GameTime = 10
	w.feel = NewFeelSystem(w.ecs, w.tuning)
	w.index = NewSpatialIndex(w.ecs)
	w.ball = NewBallSystem(w.ecs, w.tuning, w.d, w.fx, w.feel, w.index)
	w.paddle = NewPaddleSystem(w.ecs, w.tuning, w.d, w.fx, w.feel, nopContext{})
	w.level = NewLevelSystem(w.ecs, w.tuning, w.ball, nopContext{})
	return w
}

// record captures every event of the given types when the queue drains.
func (w *testWorld) record(eventTypes ...event.EventType) {
	for _, t := range eventTypes {
		w.d.SubscribeFunc(t, 1000, func(e event.Event) {
			w.events = append(w.events, e)
		})
	}
}

func (w *testWorld) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// spawnPaddle builds the pivot and the paddle at angle 0: the paddle sits at
// (240, 0) and its outward direction is +x.
func (w *testWorld) spawnPaddle() types.EntityID {
	w.level.SpawnPaddle(event.Event{Type: event.SpawnLevel})
	id, _ := w.ecs.FirstPaddle()
	return id
}

func (w *testWorld) pivot() types.EntityID {
	for id := range w.ecs.PaddleRotations {
		return id
	}
	return 0
}

func (w *testWorld) addBall(pos, dir geom.Vec2, speed float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = component.NewTransform(pos, 0)
	w.ecs.SetMoveDirection(id, component.MoveDirection{Dir: dir})
	w.ecs.Speeds[id] = &component.Speed{Value: speed}
	w.ecs.Velocities[id].Vec = dir.Scale(speed * dt)
	w.ecs.Balls[id] = &component.Ball{Radius: w.tuning.Ball.Radius, State: component.BallInsideOrbit}
	return id
}

func (w *testWorld) addEnemy(pos geom.Vec2, radius float64, health int) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Transforms[id] = component.NewTransform(pos, 0)
	w.ecs.Enemies[id] = &component.Enemy{Kind: defs.KindCrawler, Radius: radius}
	w.ecs.Healths[id] = &component.Health{Value: health}
	w.ecs.Impulses[id] = &component.Impulse{}
	w.ecs.HomingTargets[id] = &component.HomingTarget{}
	return id
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func nearVec(a, b geom.Vec2, eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps)
}
