package entities

import (
	"fmt"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
)

// NewPlayer creates the player at (x, y), level 1, full health, empty inventory.
func NewPlayer(em *ecs.EntityManager, player *config.PlayerConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if player == nil {
		return 0, fmt.Errorf("player config cannot be nil")
	}

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, components.NewHealthComponent(player.MaxHealth))
	ecs.AddComponent(em, entityID, components.NewInvulnerabilityComponent(
		player.InvulnerabilityDuration, types.ChannelContact))
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  player.Size,
		Height: player.Size,
	})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		Level:               1,
		NextLevelExperience: player.LevelUpBase,
	})
	ecs.AddComponent(em, entityID, components.NewPlayerStatsComponent(player.Speed))
	ecs.AddComponent(em, entityID, &components.InventoryComponent{})
	return entityID, nil
}
