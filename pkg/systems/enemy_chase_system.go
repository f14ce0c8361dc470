package systems

import (
	"log"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
)

// EnemyChaseSystem steers every living enemy straight at the player.
// Speed is archetype speed x EnemySpeedScale, times the dash multiplier for
// math teachers. Korean teachers stop while charging a fan attack.
type EnemyChaseSystem struct {
	entityManager *ecs.EntityManager
	combat        *config.CombatConfig
}

// NewEnemyChaseSystem creates the system.
func NewEnemyChaseSystem(em *ecs.EntityManager, combat *config.CombatConfig) *EnemyChaseSystem {
	return &EnemyChaseSystem{entityManager: em, combat: combat}
}

// SetCombatConfig swaps the tuning.
func (s *EnemyChaseSystem) SetCombatConfig(combat *config.CombatConfig) {
	s.combat = combat
}

// Update sets enemy velocities for this frame.
func (s *EnemyChaseSystem) Update(deltaTime float64) {
	playerID, ok := findPlayer(s.entityManager)
	if !ok {
		return
	}
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	target := vectorOf(playerPos)

	enemies := ecs.GetEntitiesWith4[*components.EnemyComponent, *components.HealthComponent,
		*components.PositionComponent, *components.VelocityComponent](s.entityManager)
	for _, id := range enemies {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		if health.IsDead() {
			vel.VX, vel.VY = 0, 0
			continue
		}

		offset := target.Sub(vectorOf(pos))
		distance := offset.Length()

		multiplier := 1.0
		switch b := enemy.Behavior.(type) {
		case *components.MathTeacherBehavior:
			if b.Step(deltaTime, distance) {
				log.Printf("[EnemyChaseSystem] Enemy %d dashes (distance %.0f)", id, distance)
			}
			multiplier = b.SpeedMultiplier()
		case *components.KoreanTeacherBehavior:
			// the fan attack itself is stepped by EnemyAttackSystem
			multiplier = b.SpeedMultiplier()
		}

		if distance == 0 {
			vel.VX, vel.VY = 0, 0
			continue
		}
		speed := enemy.Speed * s.combat.EnemySpeedScale * multiplier
		dir := offset.Normalize()
		vel.VX, vel.VY = dir.X*speed, dir.Y*speed
	}
}

// findPlayer returns the first living player in creation order.
func findPlayer(em *ecs.EntityManager) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](em) {
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && health.IsDead() {
			continue
		}
		return id, true
	}
	return 0, false
}
