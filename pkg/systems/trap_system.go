package systems

import (
	"log"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/entities"
	"github.com/gonewx/survivor/pkg/types"
)

// TrapSystem scatters slowing traps once StartTime of game time has passed.
//
// Every Interval seconds a trap appears at a random point of the world. A
// player that is not invulnerable and overlaps a trap gains one slow stack
// (up to MaxStacks), the slow timer restarts at the trap's Duration and the
// trap is consumed. All stacks drop when the timer runs out.
type TrapSystem struct {
	entityManager *ecs.EntityManager
	traps         *config.TrapConfig
	world         *config.WorldConfig
	rng           RandomSource

	elapsed    float64
	spawnTimer float64
}

// NewTrapSystem creates the system.
func NewTrapSystem(em *ecs.EntityManager, traps *config.TrapConfig, world *config.WorldConfig, rng RandomSource) *TrapSystem {
	return &TrapSystem{entityManager: em, traps: traps, world: world, rng: rng}
}

// SetConfig swaps the tuning. Elapsed time and the spawn timer are kept.
func (s *TrapSystem) SetConfig(traps *config.TrapConfig, world *config.WorldConfig) {
	s.traps = traps
	s.world = world
}

// Update advances slows and traps and returns the traps placed this frame.
func (s *TrapSystem) Update(deltaTime float64) []ecs.EntityID {
	s.elapsed += deltaTime
	s.decaySlows(deltaTime)

	if s.elapsed < s.traps.StartTime {
		return nil
	}

	var placed []ecs.EntityID
	s.spawnTimer += deltaTime
	if s.spawnTimer >= s.traps.Interval {
		s.spawnTimer = 0
		x := Uniform(s.rng, 0, s.world.Width)
		y := Uniform(s.rng, 0, s.world.Height)
		id, err := entities.NewTrap(s.entityManager, s.traps, x, y)
		if err != nil {
			log.Printf("[TrapSystem] WARNING: failed to place trap: %v", err)
		} else {
			placed = append(placed, id)
		}
	}

	s.triggerTraps()
	return placed
}

func (s *TrapSystem) decaySlows(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerStatsComponent](s.entityManager) {
		stats, _ := ecs.GetComponent[*components.PlayerStatsComponent](s.entityManager, id)
		if stats.SlowStacks == 0 {
			continue
		}
		stats.SlowTimer -= dt
		if stats.SlowTimer <= 0 {
			stats.SlowStacks = 0
			stats.SlowTimer = 0
		}
	}
}

func (s *TrapSystem) triggerTraps() {
	players := ecs.GetEntitiesWith4[*components.PlayerStatsComponent, *components.HealthComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	traps := ecs.GetEntitiesWith3[*components.TrapComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)

	for _, playerID := range players {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
		if health.Status != types.StatusAlive {
			continue
		}
		stats, _ := ecs.GetComponent[*components.PlayerStatsComponent](s.entityManager, playerID)
		pPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
		pCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID)

		for _, trapID := range traps {
			if !s.entityManager.Exists(trapID) {
				continue
			}
			tPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, trapID)
			tCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, trapID)
			if !checkAABBCollision(pPos, pCol, tPos, tCol) {
				continue
			}
			trap, _ := ecs.GetComponent[*components.TrapComponent](s.entityManager, trapID)
			if stats.SlowStacks < s.traps.MaxStacks {
				stats.SlowStacks++
			}
			stats.SlowTimer = trap.Duration
			stats.SlowPerStack = trap.SpeedReduction
			s.entityManager.DestroyEntity(trapID)
			log.Printf("[TrapSystem] Player %d stepped on trap %d (%d stacks)", playerID, trapID, stats.SlowStacks)
		}
	}
}

