package config

import (
	"fmt"
	"math"
	"os"

	"github.com/gonewx/survivor/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultBalancePath is the balance file shipped in data/.
const DefaultBalancePath = "data/balance.yaml"

// WorldConfig is the visible play area.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig tunes the player entity.
type PlayerConfig struct {
	MaxHealth               int     `yaml:"maxHealth"`
	Speed                   float64 `yaml:"speed"` // px/s
	Size                    float64 `yaml:"size"`
	InvulnerabilityDuration float64 `yaml:"invulnerabilityDuration"`
	AttackSpeed             float64 `yaml:"attackSpeed"` // shots per second
	AttackRange             float64 `yaml:"attackRange"`
	LevelUpBase             int     `yaml:"levelUpBase"`   // experience needed for level 2
	LevelUpGrowth           float64 `yaml:"levelUpGrowth"` // threshold multiplier per level
}

// CombatConfig tunes collision and damage.
type CombatConfig struct {
	ContactDamage                int     `yaml:"contactDamage"`
	EnemySize                    float64 `yaml:"enemySize"`
	BossSize                     float64 `yaml:"bossSize"`
	EnemyInvulnerabilityDuration float64 `yaml:"enemyInvulnerabilityDuration"`
	EnemySpeedScale              float64 `yaml:"enemySpeedScale"` // archetype speed -> px/s

	ProjectileDamage   int     `yaml:"projectileDamage"`
	ProjectileSpeed    float64 `yaml:"projectileSpeed"`
	ProjectileLifetime float64 `yaml:"projectileLifetime"`
	ProjectileSize     float64 `yaml:"projectileSize"`
	ProjectilePierce   int     `yaml:"projectilePierce"`
	ProjectileBounce   int     `yaml:"projectileBounce"`

	MeleeDamage   int     `yaml:"meleeDamage"`
	MeleeRadius   float64 `yaml:"meleeRadius"`
	MeleeArc      float64 `yaml:"meleeArc"` // degrees in yaml, see MeleeArcRadians
	MeleeDuration float64 `yaml:"meleeDuration"`

	PickupSize float64 `yaml:"pickupSize"`
}

// MeleeArcRadians converts MeleeArc to radians.
func (c *CombatConfig) MeleeArcRadians() float64 {
	return c.MeleeArc * math.Pi / 180
}

// BalanceConfig is the complete tuning of a run.
type BalanceConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Combat CombatConfig `yaml:"combat"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Boss   BossConfig   `yaml:"boss"`
	Traps  TrapConfig   `yaml:"traps"`
}

// DefaultBalanceConfig returns the built-in tuning.
func DefaultBalanceConfig() *BalanceConfig {
	return &BalanceConfig{
		World: WorldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			MaxHealth:               100,
			Speed:                   200,
			Size:                    32,
			InvulnerabilityDuration: 1.0,
			AttackSpeed:             4.0,
			AttackRange:             200,
			LevelUpBase:             100,
			LevelUpGrowth:           1.5,
		},
		Combat: CombatConfig{
			ContactDamage:                10,
			EnemySize:                    32,
			BossSize:                     64,
			EnemyInvulnerabilityDuration: 0.1,
			EnemySpeedScale:              30,
			ProjectileDamage:             25,
			ProjectileSpeed:              500,
			ProjectileLifetime:           2.0,
			ProjectileSize:               8,
			MeleeDamage:                  30,
			MeleeRadius:                  60,
			MeleeArc:                     90,
			MeleeDuration:                0.2,
			PickupSize:                   16,
		},
		Spawn: DefaultSpawnConfig(),
		Boss:  DefaultBossConfig(),
		Traps: DefaultTrapConfig(),
	}
}

// LoadBalanceConfig reads a balance file from disk.
// Missing fields fall back to DefaultBalanceConfig values.
func LoadBalanceConfig(path string) (*BalanceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance config %s: %w", path, err)
	}
	cfg, err := ParseBalanceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadEmbeddedBalanceConfig reads the balance file compiled into the binary.
func LoadEmbeddedBalanceConfig() (*BalanceConfig, error) {
	data, err := embedded.ReadFile(DefaultBalancePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded balance config: %w", err)
	}
	return ParseBalanceConfig(data)
}

// ParseBalanceConfig decodes, defaults and validates yaml balance data.
func ParseBalanceConfig(data []byte) (*BalanceConfig, error) {
	var cfg BalanceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balance YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateBalanceConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid balance config: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *BalanceConfig) {
	def := DefaultBalanceConfig()

	if cfg.World.Width == 0 {
		cfg.World.Width = def.World.Width
	}
	if cfg.World.Height == 0 {
		cfg.World.Height = def.World.Height
	}

	p, dp := &cfg.Player, def.Player
	if p.MaxHealth == 0 {
		p.MaxHealth = dp.MaxHealth
	}
	if p.Speed == 0 {
		p.Speed = dp.Speed
	}
	if p.Size == 0 {
		p.Size = dp.Size
	}
	if p.InvulnerabilityDuration == 0 {
		p.InvulnerabilityDuration = dp.InvulnerabilityDuration
	}
	if p.AttackSpeed == 0 {
		p.AttackSpeed = dp.AttackSpeed
	}
	if p.AttackRange == 0 {
		p.AttackRange = dp.AttackRange
	}
	if p.LevelUpBase == 0 {
		p.LevelUpBase = dp.LevelUpBase
	}
	if p.LevelUpGrowth == 0 {
		p.LevelUpGrowth = dp.LevelUpGrowth
	}

	c, dc := &cfg.Combat, def.Combat
	if c.ContactDamage == 0 {
		c.ContactDamage = dc.ContactDamage
	}
	if c.EnemySize == 0 {
		c.EnemySize = dc.EnemySize
	}
	if c.BossSize == 0 {
		c.BossSize = dc.BossSize
	}
	if c.EnemyInvulnerabilityDuration == 0 {
		c.EnemyInvulnerabilityDuration = dc.EnemyInvulnerabilityDuration
	}
	if c.EnemySpeedScale == 0 {
		c.EnemySpeedScale = dc.EnemySpeedScale
	}
	if c.ProjectileDamage == 0 {
		c.ProjectileDamage = dc.ProjectileDamage
	}
	if c.ProjectileSpeed == 0 {
		c.ProjectileSpeed = dc.ProjectileSpeed
	}
	if c.ProjectileLifetime == 0 {
		c.ProjectileLifetime = dc.ProjectileLifetime
	}
	if c.ProjectileSize == 0 {
		c.ProjectileSize = dc.ProjectileSize
	}
	if c.MeleeDamage == 0 {
		c.MeleeDamage = dc.MeleeDamage
	}
	if c.MeleeRadius == 0 {
		c.MeleeRadius = dc.MeleeRadius
	}
	if c.MeleeArc == 0 {
		c.MeleeArc = dc.MeleeArc
	}
	if c.MeleeDuration == 0 {
		c.MeleeDuration = dc.MeleeDuration
	}
	if c.PickupSize == 0 {
		c.PickupSize = dc.PickupSize
	}
	// ProjectilePierce and ProjectileBounce default to zero

	applySpawnDefaults(&cfg.Spawn)
	applyBossDefaults(&cfg.Boss)
	applyTrapDefaults(&cfg.Traps)
}

func validateBalanceConfig(cfg *BalanceConfig) error {
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Player.MaxHealth < 1 {
		return fmt.Errorf("player.maxHealth must be at least 1, got %d", cfg.Player.MaxHealth)
	}
	if cfg.Player.AttackSpeed <= 0 {
		return fmt.Errorf("player.attackSpeed must be positive, got %v", cfg.Player.AttackSpeed)
	}
	if cfg.Player.LevelUpGrowth < 1 {
		return fmt.Errorf("player.levelUpGrowth must be >= 1, got %v", cfg.Player.LevelUpGrowth)
	}
	if cfg.Combat.ContactDamage < 0 || cfg.Combat.ProjectileDamage < 0 || cfg.Combat.MeleeDamage < 0 {
		return fmt.Errorf("combat damage values cannot be negative")
	}
	if cfg.Combat.ProjectilePierce < 0 || cfg.Combat.ProjectileBounce < 0 {
		return fmt.Errorf("projectile pierce/bounce cannot be negative")
	}
	if cfg.Combat.MeleeArc < 0 || cfg.Combat.MeleeArc > 360 {
		return fmt.Errorf("combat.meleeArc must be within [0, 360] degrees, got %v", cfg.Combat.MeleeArc)
	}
	if err := validateSpawnConfig(&cfg.Spawn); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	if err := validateBossConfig(&cfg.Boss); err != nil {
		return fmt.Errorf("boss: %w", err)
	}
	if err := validateTrapConfig(&cfg.Traps); err != nil {
		return fmt.Errorf("traps: %w", err)
	}
	return nil
}
