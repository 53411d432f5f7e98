// internal/system/cooldown.go
package system

import (
	"go-porcle/internal/entity"
	"go-porcle/internal/event"
)

// CooldownSystem ticks every cooldown tag.
type CooldownSystem struct {
	ecs *entity.ECS
}

func NewCooldownSystem(ecs *entity.ECS) *CooldownSystem {
	return &CooldownSystem{ecs: ecs}
}

func (s *CooldownSystem) Update(deltaTime float64) {
	s.ecs.Cooldowns.Tick(deltaTime)
}

// DelayedEventSystem releases deferred events whose timer ran out.
type DelayedEventSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewDelayedEventSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *DelayedEventSystem {
	return &DelayedEventSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *DelayedEventSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.DelayedEvents) {
		delayed := s.ecs.DelayedEvents[id]
		delayed.Timer -= deltaTime
		if delayed.Timer <= 0 {
			s.eventDispatcher.Push(delayed.Event)
			s.ecs.Despawn(id)
		}
	}
}
