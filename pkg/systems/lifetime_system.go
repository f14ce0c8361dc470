package systems

import (
	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/ecs"
)

// LifetimeSystem expires entities whose LifetimeComponent ran out.
// Expired entities are queued with MarkForDestroy and removed by the
// end-of-frame sweep, so other systems still see them this frame.
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem creates the system.
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update ages every entity by deltaTime and returns how many expired this call.
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.MarkForDestroy(id)
			expired++
		}
	}
	return expired
}
