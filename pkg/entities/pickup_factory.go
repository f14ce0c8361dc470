package entities

import (
	"fmt"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
)

// NewExperiencePickup drops an experience orb worth amount at (x, y).
func NewExperiencePickup(em *ecs.EntityManager, combat *config.CombatConfig, x, y float64, amount int, source string) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if combat == nil {
		return 0, fmt.Errorf("combat config cannot be nil")
	}
	if amount < 0 {
		return 0, fmt.Errorf("experience amount cannot be negative: %d", amount)
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  combat.PickupSize,
		Height: combat.PickupSize,
	})
	ecs.AddComponent(em, entityID, &components.ExperiencePickupComponent{
		Amount: amount,
		Source: source,
	})
	return entityID, nil
}
