package systems

import (
	"log"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
)

// PlayerLevelSystem converts experience into levels. Each level costs
// LevelUpGrowth times the previous one; leftover experience carries over.
type PlayerLevelSystem struct {
	entityManager *ecs.EntityManager
	player        *config.PlayerConfig
}

// NewPlayerLevelSystem creates the system.
func NewPlayerLevelSystem(em *ecs.EntityManager, player *config.PlayerConfig) *PlayerLevelSystem {
	return &PlayerLevelSystem{entityManager: em, player: player}
}

// SetPlayerConfig swaps the tuning.
func (s *PlayerLevelSystem) SetPlayerConfig(player *config.PlayerConfig) {
	s.player = player
}

// Update applies pending level-ups and returns how many happened.
func (s *PlayerLevelSystem) Update(deltaTime float64) int {
	levels := 0
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		if player.NextLevelExperience <= 0 {
			player.NextLevelExperience = s.player.LevelUpBase
		}
		for player.Experience >= player.NextLevelExperience {
			player.Experience -= player.NextLevelExperience
			player.Level++
			player.NextLevelExperience = int(float64(player.NextLevelExperience) * s.player.LevelUpGrowth)
			levels++
			log.Printf("[PlayerLevelSystem] Player %d reached level %d (next at %d)", id, player.Level, player.NextLevelExperience)
		}
	}
	return levels
}
