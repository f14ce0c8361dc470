package systems

import (
	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
)

// MovementSystem integrates velocity into position. Players are kept inside
// the world; everything else may leave it (bounds are handled by collision).
type MovementSystem struct {
	entityManager *ecs.EntityManager
	world         *config.WorldConfig
}

// NewMovementSystem creates the system.
func NewMovementSystem(em *ecs.EntityManager, world *config.WorldConfig) *MovementSystem {
	return &MovementSystem{entityManager: em, world: world}
}

// SetWorld swaps the world bounds.
func (s *MovementSystem) SetWorld(world *config.WorldConfig) {
	s.world = world
}

// Update moves every entity by velocity x dt.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.VelocityComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if ecs.HasComponent[*components.PlayerComponent](s.entityManager, id) {
			pos.X = clamp(pos.X, 0, s.world.Width)
			pos.Y = clamp(pos.Y, 0, s.world.Height)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
