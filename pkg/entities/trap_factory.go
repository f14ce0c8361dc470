package entities

import (
	"fmt"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
)

// NewTrap creates a floor trap centered at (x, y).
func NewTrap(em *ecs.EntityManager, traps *config.TrapConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if traps == nil {
		return 0, fmt.Errorf("trap config cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Width: traps.Size, Height: traps.Size})
	ecs.AddComponent(em, entityID, &components.TrapComponent{
		Duration:       traps.Duration,
		SpeedReduction: traps.SpeedReduction,
	})
	return entityID, nil
}
