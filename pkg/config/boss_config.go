package config

import (
	"fmt"

	"github.com/gonewx/survivor/pkg/types"
)

// BossPatternConfig is the tuning of one boss attack pattern.
type BossPatternConfig struct {
	Name        string  `yaml:"name"`
	Cooldown    float64 `yaml:"cooldown"`
	Magnitude   float64 `yaml:"magnitude"`   // bullets, missiles, damage, dps or minions depending on the pattern
	UnlockPhase int     `yaml:"unlockPhase"` // 1..3

	pattern types.BossPattern
}

// Pattern returns the typed pattern resolved from Name.
func (p *BossPatternConfig) Pattern() types.BossPattern {
	return p.pattern
}

// BossConfig tunes the boss pattern selector.
type BossConfig struct {
	Patterns []BossPatternConfig `yaml:"patterns"`
	// CooldownMultipliers[i] scales cooldowns in phase i+1.
	CooldownMultipliers     []float64 `yaml:"cooldownMultipliers"`
	Phase2Threshold         float64   `yaml:"phase2Threshold"` // ratio at or below which phase 2 starts
	Phase3Threshold         float64   `yaml:"phase3Threshold"`
	RegenInterval           float64   `yaml:"regenInterval"`
	RegenFraction           float64   `yaml:"regenFraction"`
	PhaseTransitionDuration float64   `yaml:"phaseTransitionDuration"`
	TelegraphTime           float64   `yaml:"telegraphTime"`
	// WeightGrowth: a pattern's weight is 1 + secondsSinceLastUse / WeightGrowth.
	WeightGrowth float64 `yaml:"weightGrowth"`
	// MonotonicPhases forbids returning to an earlier phase after healing.
	MonotonicPhases bool    `yaml:"monotonicPhases"`
	SummonRadius    float64 `yaml:"summonRadius"`
}

// AllowPhaseRegression reports whether regen may move the boss back to an earlier phase.
func (c *BossConfig) AllowPhaseRegression() bool {
	return !c.MonotonicPhases
}

// CooldownMultiplier returns the multiplier for phase p.
func (c *BossConfig) CooldownMultiplier(p types.BossPhase) float64 {
	i := int(p) - 1
	if i < 0 || i >= len(c.CooldownMultipliers) {
		return 1.0
	}
	return c.CooldownMultipliers[i]
}

// PatternConfig returns the tuning of p.
func (c *BossConfig) PatternConfig(p types.BossPattern) (*BossPatternConfig, bool) {
	for i := range c.Patterns {
		if c.Patterns[i].pattern == p {
			return &c.Patterns[i], true
		}
	}
	return nil, false
}

// UnlockedPatterns returns, in declaration order, the patterns available in phase p.
// Each phase is a superset of the previous one.
func (c *BossConfig) UnlockedPatterns(p types.BossPhase) []types.BossPattern {
	result := make([]types.BossPattern, 0, len(c.Patterns))
	for i := range c.Patterns {
		if c.Patterns[i].UnlockPhase <= int(p) {
			result = append(result, c.Patterns[i].pattern)
		}
	}
	return result
}

// DefaultBossConfig returns the five-pattern principal fight.
func DefaultBossConfig() BossConfig {
	c := BossConfig{
		Patterns: []BossPatternConfig{
			{Name: "circular_bullets", Cooldown: 3.0, Magnitude: 12, UnlockPhase: 1},
			{Name: "homing_missiles", Cooldown: 5.0, Magnitude: 3, UnlockPhase: 1},
			{Name: "teleport_strike", Cooldown: 4.0, Magnitude: 30, UnlockPhase: 2},
			{Name: "laser_beam", Cooldown: 6.0, Magnitude: 40, UnlockPhase: 2},
			{Name: "summon_minions", Cooldown: 8.0, Magnitude: 2, UnlockPhase: 3},
		},
		CooldownMultipliers:     []float64{1.0, 0.8, 0.6},
		Phase2Threshold:         0.7,
		Phase3Threshold:         0.3,
		RegenInterval:           10.0,
		RegenFraction:           0.05,
		PhaseTransitionDuration: 2.0,
		TelegraphTime:           1.0,
		WeightGrowth:            10.0,
		SummonRadius:            60,
	}
	if err := c.resolve(); err != nil {
		panic(err)
	}
	return c
}

func (c *BossConfig) resolve() error {
	for i := range c.Patterns {
		p, ok := types.ParseBossPattern(c.Patterns[i].Name)
		if !ok {
			return fmt.Errorf("unknown boss pattern %q", c.Patterns[i].Name)
		}
		c.Patterns[i].pattern = p
	}
	return nil
}

func applyBossDefaults(c *BossConfig) {
	def := DefaultBossConfig()
	if len(c.Patterns) == 0 {
		c.Patterns = def.Patterns
	}
	for i := range c.Patterns {
		if c.Patterns[i].UnlockPhase == 0 {
			c.Patterns[i].UnlockPhase = 1
		}
	}
	if len(c.CooldownMultipliers) == 0 {
		c.CooldownMultipliers = def.CooldownMultipliers
	}
	if c.Phase2Threshold == 0 {
		c.Phase2Threshold = def.Phase2Threshold
	}
	if c.Phase3Threshold == 0 {
		c.Phase3Threshold = def.Phase3Threshold
	}
	if c.RegenInterval == 0 {
		c.RegenInterval = def.RegenInterval
	}
	if c.RegenFraction == 0 {
		c.RegenFraction = def.RegenFraction
	}
	if c.PhaseTransitionDuration == 0 {
		c.PhaseTransitionDuration = def.PhaseTransitionDuration
	}
	if c.TelegraphTime == 0 {
		c.TelegraphTime = def.TelegraphTime
	}
	if c.WeightGrowth == 0 {
		c.WeightGrowth = def.WeightGrowth
	}
	if c.SummonRadius == 0 {
		c.SummonRadius = def.SummonRadius
	}
}

func validateBossConfig(c *BossConfig) error {
	if err := c.resolve(); err != nil {
		return err
	}
	seen := make(map[types.BossPattern]bool)
	for _, p := range c.Patterns {
		if seen[p.pattern] {
			return fmt.Errorf("boss pattern %s listed twice", p.Name)
		}
		seen[p.pattern] = true
		if p.Cooldown <= 0 {
			return fmt.Errorf("boss pattern %s: cooldown must be positive, got %v", p.Name, p.Cooldown)
		}
		if p.UnlockPhase < 1 || p.UnlockPhase > 3 {
			return fmt.Errorf("boss pattern %s: unlockPhase must be between 1 and 3, got %d", p.Name, p.UnlockPhase)
		}
	}
	if len(c.CooldownMultipliers) != 3 {
		return fmt.Errorf("cooldownMultipliers needs 3 entries, got %d", len(c.CooldownMultipliers))
	}
	for i, m := range c.CooldownMultipliers {
		if m <= 0 {
			return fmt.Errorf("cooldownMultipliers[%d] must be positive, got %v", i, m)
		}
	}
	if !(c.Phase3Threshold > 0 && c.Phase3Threshold < c.Phase2Threshold && c.Phase2Threshold < 1) {
		return fmt.Errorf("phase thresholds must satisfy 0 < phase3 (%v) < phase2 (%v) < 1", c.Phase3Threshold, c.Phase2Threshold)
	}
	if c.RegenInterval <= 0 {
		return fmt.Errorf("regenInterval must be positive, got %v", c.RegenInterval)
	}
	if c.RegenFraction < 0 || c.RegenFraction > 1 {
		return fmt.Errorf("regenFraction must be within [0, 1], got %v", c.RegenFraction)
	}
	if c.WeightGrowth <= 0 {
		return fmt.Errorf("weightGrowth must be positive, got %v", c.WeightGrowth)
	}
	return nil
}
