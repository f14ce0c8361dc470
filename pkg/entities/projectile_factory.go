package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
)

// NewProjectile creates a player bullet at (x, y) travelling along (dirX, dirY).
// The direction is normalized; a zero direction is rejected.
func NewProjectile(em *ecs.EntityManager, combat *config.CombatConfig, x, y, dirX, dirY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if combat == nil {
		return 0, fmt.Errorf("combat config cannot be nil")
	}
	length := math.Hypot(dirX, dirY)
	if length == 0 {
		return 0, fmt.Errorf("projectile direction cannot be zero")
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{
		VX: dirX / length * combat.ProjectileSpeed,
		VY: dirY / length * combat.ProjectileSpeed,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  combat.ProjectileSize,
		Height: combat.ProjectileSize,
	})
	ecs.AddComponent(em, entityID, &components.ProjectileComponent{
		Damage:          combat.ProjectileDamage,
		PierceRemaining: combat.ProjectilePierce,
		BounceRemaining: combat.ProjectileBounce,
	})
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		MaxLifetime: combat.ProjectileLifetime,
	})

	return entityID, nil
}
