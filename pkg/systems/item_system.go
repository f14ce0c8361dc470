package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
)

// ErrNoGrantableItem is returned when every item is maxed or the inventory
// has no room.
var ErrNoGrantableItem = errors.New("no item can be granted")

// ItemSystem turns the player's inventory into stats.
//
// Each Update resets PlayerStatsComponent and the health maximum to their
// base values, adds every carried item's effect, runs the periodic jump and
// finally sets the player's velocity from its movement input.
type ItemSystem struct {
	entityManager *ecs.EntityManager
	player        *config.PlayerConfig
	rng           RandomSource
}

// NewItemSystem creates the system. rng drives GrantRandom.
func NewItemSystem(em *ecs.EntityManager, player *config.PlayerConfig, rng RandomSource) *ItemSystem {
	return &ItemSystem{entityManager: em, player: player, rng: rng}
}

// SetPlayerConfig swaps the tuning.
func (s *ItemSystem) SetPlayerConfig(player *config.PlayerConfig) {
	s.player = player
}

// Update rebuilds item stats and returns the players that jumped this frame.
func (s *ItemSystem) Update(deltaTime float64) []ecs.EntityID {
	var jumped []ecs.EntityID

	players := ecs.GetEntitiesWith4[*components.PlayerComponent, *components.PlayerStatsComponent,
		*components.InventoryComponent, *components.HealthComponent](s.entityManager)
	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		stats, _ := ecs.GetComponent[*components.PlayerStatsComponent](s.entityManager, id)
		inventory, _ := ecs.GetComponent[*components.InventoryComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)

		s.rebuild(stats, inventory, health)

		if !health.IsDead() && s.stepJump(id, stats, deltaTime) {
			jumped = append(jumped, id)
		}

		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); ok {
			if health.IsDead() {
				vel.VX, vel.VY = 0, 0
				continue
			}
			speed := stats.EffectiveMoveSpeed()
			vel.VX, vel.VY = player.MoveX*speed, player.MoveY*speed
		}
	}
	return jumped
}

func (s *ItemSystem) rebuild(stats *components.PlayerStatsComponent, inventory *components.InventoryComponent, health *components.HealthComponent) {
	base := s.player.Speed
	stats.MoveSpeed = base
	stats.DamageMultiplier = 1
	stats.ProjectileSpeedMultiplier = 1
	stats.ProjectileSizeMultiplier = 1
	stats.JumpCooldown, stats.JumpDuration = 0, 0
	bonusHealth := 0

	for _, item := range inventory.Items() {
		effect := config.ItemEffectAt(item.ID, item.Level)
		stats.MoveSpeed += base * effect.MoveSpeedIncrease
		stats.DamageMultiplier += effect.AttackPowerIncrease
		stats.ProjectileSpeedMultiplier += effect.ProjectileSpeedIncrease
		stats.ProjectileSizeMultiplier += effect.ProjectileSizeIncrease
		bonusHealth += effect.MaxHealthIncrease
		if effect.JumpCooldown > 0 {
			stats.JumpCooldown, stats.JumpDuration = effect.JumpCooldown, effect.JumpDuration
		}
	}

	health.SetMaximum(health.BaseMaximum + bonusHealth)
}

// stepJump opens a jump window every JumpCooldown seconds.
func (s *ItemSystem) stepJump(id ecs.EntityID, stats *components.PlayerStatsComponent, dt float64) bool {
	if stats.JumpCooldown <= 0 {
		stats.JumpTimer = 0
		return false
	}
	stats.JumpTimer += dt
	if stats.JumpTimer < stats.JumpCooldown {
		return false
	}
	stats.JumpTimer = 0

	inv, ok := ecs.GetComponent[*components.InvulnerabilityComponent](s.entityManager, id)
	if !ok {
		return false
	}
	inv.OpenFor(stats.JumpDuration, types.ChannelContact)
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok {
		health.SetInvulnerable(true)
	}
	return true
}

// Grant gives id to the player. Consumables heal at once; other items level
// up or take a free slot.
func (s *ItemSystem) Grant(playerID ecs.EntityID, id types.ItemID) error {
	def, ok := config.Item(id)
	if !ok {
		return fmt.Errorf("unknown item %v", id)
	}

	if def.Consumable {
		health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
		if !ok {
			return fmt.Errorf("entity %d has no health", playerID)
		}
		amount := int(float64(health.Maximum) * config.ItemEffectAt(id, 1).InstantHeal)
		healed := health.Heal(amount)
		log.Printf("[ItemSystem] Player %d used %v, healed %d", playerID, id, healed)
		return nil
	}

	inventory, ok := ecs.GetComponent[*components.InventoryComponent](s.entityManager, playerID)
	if !ok {
		return fmt.Errorf("entity %d has no inventory", playerID)
	}
	stack, err := inventory.Add(id, def.MaxLevel)
	if err != nil {
		return fmt.Errorf("cannot give %v to player %d: %w", id, playerID, err)
	}
	log.Printf("[ItemSystem] Player %d has %v at level %d", playerID, id, stack.Level)
	return nil
}

// GrantRandom grants one item drawn uniformly from those the player can take.
func (s *ItemSystem) GrantRandom(playerID ecs.EntityID) (types.ItemID, error) {
	inventory, ok := ecs.GetComponent[*components.InventoryComponent](s.entityManager, playerID)
	if !ok {
		return types.ItemUnknown, fmt.Errorf("entity %d has no inventory", playerID)
	}

	ids := types.AllItemIDs()
	weights := make([]float64, len(ids))
	for i, id := range ids {
		def, _ := config.Item(id)
		stack := inventory.Find(id)
		switch {
		case def.Consumable:
			weights[i] = 1
		case stack != nil && stack.Level < def.MaxLevel:
			weights[i] = 1
		case stack == nil && !inventory.Full():
			weights[i] = 1
		}
	}

	idx := SelectWeighted(s.rng, weights)
	if idx < 0 {
		return types.ItemUnknown, ErrNoGrantableItem
	}
	return ids[idx], s.Grant(playerID, ids[idx])
}
