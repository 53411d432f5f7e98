package entity

import (
	"testing"

	"go-porcle/internal/component"
	"go-porcle/pkg/geom"
)

func TestCooldownExpires(t *testing.T) {
	c := NewCooldowns()
	c.Set(1, CooldownReload, 0.1)
	c.Tick(0.05)
	if !c.Has(1, CooldownReload) {
		t.Fatal("cooldown expired early")
	}
	c.Tick(0.06)
	if c.Has(1, CooldownReload) {
		t.Fatal("cooldown still present after its duration")
	}
}

func TestCooldownTagsAreIndependent(t *testing.T) {
	c := NewCooldowns()
	c.Set(1, CooldownReload, 0.1)
	c.Set(1, CooldownAmmoRegenDelay, 1.2)
	c.Set(2, CooldownReload, 1)
	c.Tick(0.2)
	if c.Has(1, CooldownReload) {
		t.Error("short cooldown should have expired")
	}
	if !c.Has(1, CooldownAmmoRegenDelay) || !c.Has(2, CooldownReload) {
		t.Error("unrelated cooldowns were affected")
	}
	if r := c.Remaining(1, CooldownAmmoRegenDelay); r <= 0.99 || r >= 1.01 {
		t.Errorf("remaining = %f, want 1.0", r)
	}
}

func TestCooldownOverwriteAndClear(t *testing.T) {
	c := NewCooldowns()
	c.Set(1, CooldownPaddleMode, 5)
	c.Set(1, CooldownPaddleMode, 0.1)
	if r := c.Remaining(1, CooldownPaddleMode); r != 0.1 {
		t.Fatalf("remaining = %f, want overwrite to 0.1", r)
	}
	c.Set(1, CooldownPaddleMode, 0)
	if c.Has(1, CooldownPaddleMode) {
		t.Fatal("zero duration should clear")
	}
	c.Set(1, CooldownReload, 1)
	c.Set(1, CooldownNoAmmoWarning, 1)
	c.ClearEntity(1)
	if c.Len() != 0 {
		t.Fatalf("Len = %d after ClearEntity", c.Len())
	}
}

func TestSetMoveDirectionAttachesVelocity(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.SetMoveDirection(id, component.MoveDirection{Dir: geom.V(1, 0)})
	if _, ok := ecs.Velocities[id]; !ok {
		t.Fatal("velocity not attached")
	}
}

func TestDespawnRemovesEverything(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Transforms[id] = component.NewTransform(geom.Zero, 0)
	ecs.Enemies[id] = &component.Enemy{}
	ecs.Cooldowns.Set(id, CooldownMovementPaused, 1)
	if !ecs.IsPaused(id) {
		t.Fatal("cooldown pause not seen")
	}
	ecs.Despawn(id)
	if ecs.Exists(id) || len(ecs.Enemies) != 0 || ecs.IsPaused(id) {
		t.Fatal("despawn left components behind")
	}
}
