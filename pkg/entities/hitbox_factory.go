package entities

import (
	"fmt"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
)

// NewMeleeHitbox creates a bat swing arc at (x, y) pointing at facing (radians).
func NewMeleeHitbox(em *ecs.EntityManager, combat *config.CombatConfig, owner ecs.EntityID, x, y, facing float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if combat == nil {
		return 0, fmt.Errorf("combat config cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, components.NewMeleeHitboxComponent(
		owner,
		combat.MeleeDamage,
		combat.MeleeRadius,
		combat.MeleeArcRadians(),
		facing,
		combat.MeleeDuration,
	))
	return entityID, nil
}

// NewEnemyAttackHitbox creates a hostile arc owned by an enemy. A full circle
// is an arc of 2*Pi.
func NewEnemyAttackHitbox(em *ecs.EntityManager, owner ecs.EntityID, x, y, facing, arc, radius float64, damage int, duration float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if radius <= 0 || duration <= 0 {
		return 0, fmt.Errorf("enemy attack needs a positive radius and duration, got %v/%v", radius, duration)
	}

	hb := components.NewMeleeHitboxComponent(owner, damage, radius, arc, facing, duration)
	hb.Hostile = true

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, hb)
	return entityID, nil
}
