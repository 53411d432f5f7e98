// internal/entity/cooldown.go
package entity

import "go-porcle/internal/types"

// CooldownTag names an independent timer an entity can carry.
type CooldownTag int

const (
	CooldownMovementPaused CooldownTag = iota
	CooldownPaddleMode
	CooldownReload
	CooldownAmmoRegenDelay
	CooldownAmmoRegen
	CooldownNoAmmoWarning
	CooldownBarrelReload
)

func (t CooldownTag) String() string {
	switch t {
	case CooldownMovementPaused:
		return "movement-paused"
	case CooldownPaddleMode:
		return "paddle-mode"
	case CooldownReload:
		return "reload"
	case CooldownAmmoRegenDelay:
		return "ammo-regen-delay"
	case CooldownAmmoRegen:
		return "ammo-regen"
	case CooldownNoAmmoWarning:
		return "no-ammo-warning"
	case CooldownBarrelReload:
		return "barrel-reload"
	}
	return "unknown"
}

type cooldownKey struct {
	id  types.EntityID
	tag CooldownTag
}

// Cooldowns holds expiring markers keyed by entity and tag. A present entry
// means the gated action is not yet available.
type Cooldowns struct {
	remaining map[cooldownKey]float64
}

func NewCooldowns() *Cooldowns {
	return &Cooldowns{remaining: make(map[cooldownKey]float64)}
}

// Set starts or overwrites a cooldown. Non-positive durations clear it.
func (c *Cooldowns) Set(id types.EntityID, tag CooldownTag, duration float64) {
	if duration <= 0 {
		c.Clear(id, tag)
		return
	}
	c.remaining[cooldownKey{id, tag}] = duration
}

func (c *Cooldowns) Has(id types.EntityID, tag CooldownTag) bool {
	_, ok := c.remaining[cooldownKey{id, tag}]
	return ok
}

// Remaining returns the time left, or 0 when the cooldown is absent.
func (c *Cooldowns) Remaining(id types.EntityID, tag CooldownTag) float64 {
	return c.remaining[cooldownKey{id, tag}]
}

func (c *Cooldowns) Clear(id types.EntityID, tag CooldownTag) {
	delete(c.remaining, cooldownKey{id, tag})
}

// ClearEntity drops every cooldown of id.
func (c *Cooldowns) ClearEntity(id types.EntityID) {
	for k := range c.remaining {
		if k.id == id {
			delete(c.remaining, k)
		}
	}
}

// Tick advances every cooldown and removes those that completed.
func (c *Cooldowns) Tick(dt float64) {
	for k, left := range c.remaining {
		left -= dt
		if left <= 0 {
			delete(c.remaining, k)
			continue
		}
		c.remaining[k] = left
	}
}

func (c *Cooldowns) Len() int {
	return len(c.remaining)
}
