package systems

import (
	"log"
	"math"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/entities"
)

// EnemyAttackSystem runs the korean teachers' fan attack. A teacher within
// AttackRange of the player charges for ChargeTime and then leaves a hostile
// arc of AttackArc around the bearing locked at the start of the charge.
// CollisionSystem applies the hit.
type EnemyAttackSystem struct {
	entityManager *ecs.EntityManager
}

// NewEnemyAttackSystem creates the system.
func NewEnemyAttackSystem(em *ecs.EntityManager) *EnemyAttackSystem {
	return &EnemyAttackSystem{entityManager: em}
}

// Update advances every charge and returns the hitboxes created.
func (s *EnemyAttackSystem) Update(deltaTime float64) []ecs.EntityID {
	distance, bearing := math.Inf(1), 0.0
	var target *components.PositionComponent
	if playerID, ok := findPlayer(s.entityManager); ok {
		target, _ = ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	}

	var created []ecs.EntityID
	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent,
		*components.PositionComponent](s.entityManager)
	for _, id := range enemies {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		fan, ok := enemy.Behavior.(*components.KoreanTeacherBehavior)
		if !ok {
			continue
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if health.IsDead() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if target != nil {
			dx, dy := target.X-pos.X, target.Y-pos.Y
			distance, bearing = math.Hypot(dx, dy), math.Atan2(dy, dx)
		}
		if !fan.Step(deltaTime, distance, bearing) {
			continue
		}

		hitbox, err := entities.NewEnemyAttackHitbox(s.entityManager, id, pos.X, pos.Y,
			fan.Facing, fan.AttackArc, fan.AttackRange, enemy.AttackPower, fan.AttackDuration)
		if err != nil {
			log.Printf("[EnemyAttackSystem] WARNING: enemy %d fan attack failed: %v", id, err)
			continue
		}
		created = append(created, hitbox)
	}
	return created
}
