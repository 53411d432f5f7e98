// internal/entity/schedule.go
package entity

import (
	"go-porcle/internal/component"
	"go-porcle/internal/event"
	"go-porcle/internal/types"
)

// Schedule creates a carrier entity that releases e after delay seconds.
func (ecs *ECS) Schedule(delay float64, e event.Event) types.EntityID {
	id := ecs.NewEntity()
	ecs.DelayedEvents[id] = &component.DelayedEvent{Timer: delay, Event: e}
	return id
}
