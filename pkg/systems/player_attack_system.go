package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/entities"
)

// PlayerAttackSystem fires the player's automatic weapon and melee swings.
//
// Every 1/AttackSpeed seconds it shoots a projectile at the nearest living
// enemy within AttackRange. Without a target the weapon stays ready. Damage,
// projectile speed and projectile size follow PlayerStatsComponent.
type PlayerAttackSystem struct {
	entityManager *ecs.EntityManager
	player        *config.PlayerConfig
	combat        *config.CombatConfig
}

// NewPlayerAttackSystem creates the system.
func NewPlayerAttackSystem(em *ecs.EntityManager, player *config.PlayerConfig, combat *config.CombatConfig) *PlayerAttackSystem {
	return &PlayerAttackSystem{entityManager: em, player: player, combat: combat}
}

// SetConfig swaps the tuning.
func (s *PlayerAttackSystem) SetConfig(player *config.PlayerConfig, combat *config.CombatConfig) {
	s.player = player
	s.combat = combat
}

// Update advances attack cooldowns and returns the projectiles fired.
func (s *PlayerAttackSystem) Update(deltaTime float64) []ecs.EntityID {
	var fired []ecs.EntityID

	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.entityManager)
	for _, playerID := range players {
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID); ok && health.IsDead() {
			continue
		}
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)

		if player.AttackCooldown > 0 {
			player.AttackCooldown -= deltaTime
			if player.AttackCooldown > 0 {
				continue
			}
		}

		targetID, ok := s.nearestEnemy(pos)
		if !ok {
			continue
		}
		targetPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, targetID)
		dx, dy := targetPos.X-pos.X, targetPos.Y-pos.Y
		if dx == 0 && dy == 0 {
			dx = math.Cos(player.Facing)
			dy = math.Sin(player.Facing)
		}

		projID, err := entities.NewProjectile(s.entityManager, s.combat, pos.X, pos.Y, dx, dy)
		if err != nil {
			log.Printf("[PlayerAttackSystem] WARNING: failed to fire: %v", err)
			continue
		}
		s.applyStats(playerID, projID)
		player.Facing = math.Atan2(dy, dx)
		player.AttackCooldown = 1 / s.player.AttackSpeed
		fired = append(fired, projID)
	}
	return fired
}

// nearestEnemy returns the closest living enemy within AttackRange.
// Ties keep the earlier-created enemy.
func (s *PlayerAttackSystem) nearestEnemy(from *components.PositionComponent) (ecs.EntityID, bool) {
	origin := vectorOf(from)
	best := ecs.EntityID(0)
	bestDist := math.Inf(1)

	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](s.entityManager)
	for _, id := range enemies {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		if health.IsDead() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		d := origin.Distance(vectorOf(pos))
		if d <= s.player.AttackRange && d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != 0
}

// Swing creates a melee arc in front of the player pointing at facing (radians).
func (s *PlayerAttackSystem) Swing(playerID ecs.EntityID, facing float64) (ecs.EntityID, error) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if !ok {
		return 0, errNoPlayer(playerID)
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID); ok {
		player.Facing = facing
	}
	id, err := entities.NewMeleeHitbox(s.entityManager, s.combat, playerID, pos.X, pos.Y, facing)
	if err != nil {
		return 0, err
	}
	if stats, ok := ecs.GetComponent[*components.PlayerStatsComponent](s.entityManager, playerID); ok {
		hb, _ := ecs.GetComponent[*components.MeleeHitboxComponent](s.entityManager, id)
		hb.Damage = scaleDamage(hb.Damage, stats.DamageMultiplier)
	}
	return id, nil
}

// applyStats scales a fresh projectile by the player's item multipliers.
func (s *PlayerAttackSystem) applyStats(playerID, projID ecs.EntityID) {
	stats, ok := ecs.GetComponent[*components.PlayerStatsComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	if proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, projID); ok {
		proj.Damage = scaleDamage(proj.Damage, stats.DamageMultiplier)
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, projID); ok {
		vel.VX *= stats.ProjectileSpeedMultiplier
		vel.VY *= stats.ProjectileSpeedMultiplier
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, projID); ok {
		col.Width *= stats.ProjectileSizeMultiplier
		col.Height *= stats.ProjectileSizeMultiplier
	}
}

func scaleDamage(base int, multiplier float64) int {
	return int(math.Round(float64(base) * multiplier))
}

func errNoPlayer(id ecs.EntityID) error {
	return fmt.Errorf("entity %d has no position", id)
}
