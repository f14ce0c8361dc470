package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/entities"
	"github.com/gonewx/survivor/pkg/systems"
	"github.com/gonewx/survivor/pkg/types"
)

// FrameReport collects the explicit outputs of one Simulation.Update.
type FrameReport struct {
	Jumped       []ecs.EntityID
	EnemyAttacks []ecs.EntityID // hostile hitboxes from fan attacks
	Spawned      []ecs.EntityID
	Fired        []ecs.EntityID
	BossEvents   []systems.BossAttackEvent
	Traps        []ecs.EntityID
	Combat       systems.CombatReport
	Expired      int
	LevelUps     int
	Rewards      []types.ItemID // one item per level gained
	Swept        int
}

// Simulation wires the systems together and steps them in frame order:
// items, movement, chase, enemy attack, player attack, spawner, boss, traps,
// collision, lifetime, leveling and rewards, then the deferred destroy sweep.
//
// It does not own a clock; the caller passes dt.
type Simulation struct {
	entityManager *ecs.EntityManager
	cfg           *config.BalanceConfig
	state         *GameState
	playerID      ecs.EntityID

	enemyFactory *entities.EnemyFactory
	items        *systems.ItemSystem
	movement     *systems.MovementSystem
	chase        *systems.EnemyChaseSystem
	enemyAttack  *systems.EnemyAttackSystem
	attack       *systems.PlayerAttackSystem
	spawner      *systems.WaveSpawner
	boss         *systems.BossSystem
	traps        *systems.TrapSystem
	collision    *systems.CollisionSystem
	lifetime     *systems.LifetimeSystem
	leveling     *systems.PlayerLevelSystem
}

// NewSimulation builds a run from cfg with a player at the world center.
// The same cfg and seed always produce the same run for the same inputs.
func NewSimulation(cfg *config.BalanceConfig, seed int64) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("balance config cannot be nil")
	}
	return NewSimulationWithRand(cfg, rand.New(rand.NewSource(seed)))
}

// NewSimulationWithRand is NewSimulation with an explicit random source.
func NewSimulationWithRand(cfg *config.BalanceConfig, rng systems.RandomSource) (*Simulation, error) {
	em := ecs.NewEntityManager()

	playerID, err := entities.NewPlayer(em, &cfg.Player, cfg.World.Width/2, cfg.World.Height/2)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	factory := entities.NewEnemyFactory(em, cfg)
	spawner := systems.NewWaveSpawner(em, &cfg.Spawn, cfg.World, rng, factory)

	sim := &Simulation{
		entityManager: em,
		cfg:           cfg,
		state:         NewGameState(),
		playerID:      playerID,
		enemyFactory:  factory,
		items:         systems.NewItemSystem(em, &cfg.Player, rng),
		movement:      systems.NewMovementSystem(em, &cfg.World),
		chase:         systems.NewEnemyChaseSystem(em, &cfg.Combat),
		enemyAttack:   systems.NewEnemyAttackSystem(em),
		attack:        systems.NewPlayerAttackSystem(em, &cfg.Player, &cfg.Combat),
		spawner:       spawner,
		boss:          systems.NewBossSystem(em, &cfg.Boss, rng, factory, spawner),
		traps:         systems.NewTrapSystem(em, &cfg.Traps, &cfg.World, rng),
		collision:     systems.NewCollisionSystem(em, &cfg.Combat, &cfg.World),
		lifetime:      systems.NewLifetimeSystem(em),
		leveling:      systems.NewPlayerLevelSystem(em, &cfg.Player),
	}
	log.Printf("[Simulation] New run: world %.0fx%.0f, player %d", cfg.World.Width, cfg.World.Height, playerID)
	return sim, nil
}

// Update steps the world by dt seconds. After game over it does nothing.
func (s *Simulation) Update(dt float64) FrameReport {
	var report FrameReport
	if s.state.GameOver || dt <= 0 {
		return report
	}

	report.Jumped = s.items.Update(dt)
	s.movement.Update(dt)
	s.chase.Update(dt)
	report.EnemyAttacks = s.enemyAttack.Update(dt)
	report.Fired = s.attack.Update(dt)
	report.Spawned = s.spawner.Update(dt)
	report.BossEvents = s.boss.Update(dt)
	report.Traps = s.traps.Update(dt)
	report.Combat = s.collision.Update(dt)
	report.Expired = s.lifetime.Update(dt)
	report.LevelUps = s.leveling.Update(dt)
	if !report.Combat.PlayerDied {
		report.Rewards = s.grantRewards(report.LevelUps)
	}
	report.Swept = s.entityManager.RemoveMarkedEntities()

	s.state.Elapsed += dt
	s.state.Frames++
	s.state.RecordKills(len(report.Combat.Killed))
	s.state.AddExperience(report.Combat.ExperienceCollected)
	s.state.LevelUps += report.LevelUps
	for _, id := range report.Spawned {
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok && enemy.Type == types.EnemyPrincipal {
			s.state.BossesSpawned++
		}
	}
	if report.Combat.PlayerDied {
		s.state.GameOver = true
		log.Printf("[Simulation] Game over at %.1fs, %d kills", s.state.Elapsed, s.state.Kills)
	}
	return report
}

// SetPlayerDirection sets the player's movement direction; (0, 0) stops.
// The vector is normalized so diagonals are not faster. Speed follows items
// and slows, and is re-applied every frame.
func (s *Simulation) SetPlayerDirection(dx, dy float64) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return
	}
	length := math.Hypot(dx, dy)
	if length == 0 {
		player.MoveX, player.MoveY = 0, 0
	} else {
		player.MoveX, player.MoveY = dx/length, dy/length
		player.Facing = math.Atan2(dy, dx)
	}

	speed := s.cfg.Player.Speed
	if stats, ok := ecs.GetComponent[*components.PlayerStatsComponent](s.entityManager, s.playerID); ok {
		speed = stats.EffectiveMoveSpeed()
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, s.playerID); ok {
		vel.VX, vel.VY = player.MoveX*speed, player.MoveY*speed
	}
}

// GrantItem gives the player an item now.
func (s *Simulation) GrantItem(id types.ItemID) error {
	return s.items.Grant(s.playerID, id)
}

func (s *Simulation) grantRewards(levels int) []types.ItemID {
	var rewards []types.ItemID
	for i := 0; i < levels; i++ {
		id, err := s.items.GrantRandom(s.playerID)
		if err != nil {
			log.Printf("[Simulation] WARNING: no level-up reward: %v", err)
			break
		}
		rewards = append(rewards, id)
	}
	return rewards
}

// Swing starts a melee arc in the player's facing direction.
func (s *Simulation) Swing() (ecs.EntityID, error) {
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID)
	if !ok {
		return 0, fmt.Errorf("player %d is gone", s.playerID)
	}
	return s.attack.Swing(s.playerID, player.Facing)
}

// ForceSpawnBoss spawns a principal now.
func (s *Simulation) ForceSpawnBoss() (ecs.EntityID, error) {
	id, err := s.spawner.ForceSpawnBoss()
	if err == nil {
		s.state.BossesSpawned++
	}
	return id, err
}

// ClearAll removes every enemy the spawner tracks.
func (s *Simulation) ClearAll() int {
	return s.spawner.ClearAll()
}

// ApplyConfig hot-swaps tuning. Entities keep the stats they were created with;
// the spawner keeps its clock, timers and position pool.
func (s *Simulation) ApplyConfig(cfg *config.BalanceConfig) {
	s.cfg = cfg
	s.enemyFactory.SetConfig(cfg)
	s.items.SetPlayerConfig(&cfg.Player)
	s.movement.SetWorld(&cfg.World)
	s.chase.SetCombatConfig(&cfg.Combat)
	s.attack.SetConfig(&cfg.Player, &cfg.Combat)
	s.spawner.ApplyConfig(&cfg.Spawn)
	s.boss.SetConfig(&cfg.Boss)
	s.traps.SetConfig(&cfg.Traps, &cfg.World)
	s.collision.SetConfig(&cfg.Combat, &cfg.World)
	s.leveling.SetPlayerConfig(&cfg.Player)
	log.Printf("[Simulation] Applied new balance config")
}

// EntityManager exposes the world for rendering and tests.
func (s *Simulation) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PlayerID returns the player entity.
func (s *Simulation) PlayerID() ecs.EntityID {
	return s.playerID
}

// State returns the run tally.
func (s *Simulation) State() *GameState {
	return s.state
}

// Config returns the active tuning.
func (s *Simulation) Config() *config.BalanceConfig {
	return s.cfg
}

// SpawnerStats returns the spawner snapshot.
func (s *Simulation) SpawnerStats() systems.SpawnerStats {
	return s.spawner.Stats()
}
