package entities

import (
	"fmt"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
)

// behaviorTable builds the behavior record of each archetype.
// Adding an archetype means adding a row here and in config.enemyArchetypes.
var behaviorTable = [types.EnemyTypeCount]func() components.EnemyBehavior{
	types.EnemyKoreanTeacher: func() components.EnemyBehavior { return components.NewKoreanTeacherBehavior() },
	types.EnemyMathTeacher:   func() components.EnemyBehavior { return components.NewMathTeacherBehavior() },
	types.EnemyPrincipal:     func() components.EnemyBehavior { return components.NewPrincipalBossBehavior() },
}

// NewEnemy creates an enemy of type t centered at (x, y).
//
// Every enemy gets position, velocity, health, collision, an invulnerability
// window for player attacks and its behavior record. The principal also gets a
// BossComponent with the phase-1 patterns of cfg.Boss unlocked.
func NewEnemy(em *ecs.EntityManager, cfg *config.BalanceConfig, t types.EnemyType, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("balance config cannot be nil")
	}
	combat := &cfg.Combat
	archetype, ok := config.Archetype(t)
	if !ok {
		return 0, fmt.Errorf("unknown enemy type: %v", t)
	}
	newBehavior := behaviorTable[t]
	if newBehavior == nil {
		return 0, fmt.Errorf("no behavior registered for %v", t)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{})
	ecs.AddComponent(em, entityID, components.NewHealthComponent(archetype.Health))
	ecs.AddComponent(em, entityID, components.NewInvulnerabilityComponent(
		combat.EnemyInvulnerabilityDuration, types.ChannelPlayerAttack))

	size := combat.EnemySize
	if t == types.EnemyPrincipal {
		size = combat.BossSize
	}
	ecs.AddComponent(em, entityID, &components.CollisionComponent{Width: size, Height: size})

	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		Type:            t,
		Speed:           archetype.Speed,
		AttackPower:     archetype.AttackPower,
		ExperienceYield: archetype.ExperienceYield,
		Behavior:        newBehavior(),
	})

	if t == types.EnemyPrincipal {
		ecs.AddComponent(em, entityID, components.NewBossComponent(cfg.Boss.UnlockedPatterns(types.BossPhase1)))
	}

	return entityID, nil
}

// EnemyFactory binds NewEnemy to an entity manager and balance tuning.
type EnemyFactory struct {
	em  *ecs.EntityManager
	cfg *config.BalanceConfig
}

// NewEnemyFactory returns a factory creating enemies in em.
func NewEnemyFactory(em *ecs.EntityManager, cfg *config.BalanceConfig) *EnemyFactory {
	return &EnemyFactory{em: em, cfg: cfg}
}

// CreateEnemy implements systems.EnemyCreator.
func (f *EnemyFactory) CreateEnemy(t types.EnemyType, x, y float64) (ecs.EntityID, error) {
	return NewEnemy(f.em, f.cfg, t, x, y)
}

// SetConfig swaps the tuning used for enemies created from now on.
func (f *EnemyFactory) SetConfig(cfg *config.BalanceConfig) {
	f.cfg = cfg
}
