// internal/system/visual_effect.go
package system

import (
	"go-porcle/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами: вспышки урона,
// вспышка очистки ядра и сжатие обломков.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, flash := range s.ecs.ClearFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			s.ecs.Despawn(id)
		}
	}

	// Обломки удаляются, когда сжатие завершено.
	for _, id := range entity.SortedIDs(s.ecs.Debris) {
		debris := s.ecs.Debris[id]
		debris.Timer -= deltaTime
		if debris.Timer <= 0 {
			s.ecs.Despawn(id)
		}
	}
}
