package config

import (
	"fmt"
	"math"

	"github.com/gonewx/survivor/pkg/types"
)

// Built-in wave names. A config may rename or add waves; the spawner only relies on order.
const (
	WaveEarly = "early"
	WaveMid   = "mid"
	WaveLate  = "late"
	WaveBoss  = "boss"
)

// WaveConfig describes one stage of the spawn schedule.
type WaveConfig struct {
	Name string `yaml:"name"`
	// Duration in seconds. Zero or negative means unbounded; only the last wave may be unbounded.
	Duration             float64            `yaml:"duration"`
	MinInterval          float64            `yaml:"minInterval"`
	MaxInterval          float64            `yaml:"maxInterval"`
	Weights              map[string]float64 `yaml:"weights"` // enemy type key -> relative weight
	PopulationMultiplier float64            `yaml:"populationMultiplier"`

	// typed view of Weights, filled by resolve
	weights [types.EnemyTypeCount]float64
}

// Weight returns the configured weight for t.
func (w *WaveConfig) Weight(t types.EnemyType) float64 {
	if !t.Valid() {
		return 0
	}
	return w.weights[t]
}

// Unbounded reports whether the wave never ends.
func (w *WaveConfig) Unbounded() bool {
	return w.Duration <= 0
}

// SpawnConfig is the tuning of the wave spawner.
type SpawnConfig struct {
	MaxPopulation        int          `yaml:"maxPopulation"`
	InitialSpawnInterval float64      `yaml:"initialSpawnInterval"`
	PositionPoolSize     int          `yaml:"positionPoolSize"`
	SpawnMargin          float64      `yaml:"spawnMargin"`
	DefaultEnemyType     string       `yaml:"defaultEnemyType"`
	Waves                []WaveConfig `yaml:"waves"`

	defaultType types.EnemyType
}

// DefaultType is the type spawned when a wave has no positive weight.
func (c *SpawnConfig) DefaultType() types.EnemyType {
	if !c.defaultType.Valid() {
		return types.EnemyKoreanTeacher
	}
	return c.defaultType
}

// WaveIndexAt maps elapsed game time to a wave index using cumulative
// durations: wave i covers elapsed <= sum(durations[0..i]).
func (c *SpawnConfig) WaveIndexAt(elapsed float64) int {
	cumulative := 0.0
	for i := range c.Waves {
		w := &c.Waves[i]
		if w.Unbounded() {
			return i
		}
		cumulative += w.Duration
		if elapsed <= cumulative {
			return i
		}
	}
	return len(c.Waves) - 1
}

// WaveStart returns the elapsed time at which wave i begins.
func (c *SpawnConfig) WaveStart(i int) float64 {
	start := 0.0
	for j := 0; j < i && j < len(c.Waves); j++ {
		if c.Waves[j].Unbounded() {
			return math.Inf(1)
		}
		start += c.Waves[j].Duration
	}
	return start
}

// DefaultSpawnConfig returns the four-wave schedule.
func DefaultSpawnConfig() SpawnConfig {
	c := SpawnConfig{
		MaxPopulation:        50,
		InitialSpawnInterval: 2.0,
		PositionPoolSize:     100,
		SpawnMargin:          50,
		DefaultEnemyType:     types.EnemyKoreanTeacher.String(),
		Waves: []WaveConfig{
			{
				Name: WaveEarly, Duration: 60, MinInterval: 2.0, MaxInterval: 3.0,
				Weights:              map[string]float64{"korean_teacher": 0.8, "math_teacher": 0.2, "principal": 0},
				PopulationMultiplier: 0.6,
			},
			{
				Name: WaveMid, Duration: 120, MinInterval: 1.5, MaxInterval: 2.5,
				Weights:              map[string]float64{"korean_teacher": 0.5, "math_teacher": 0.5, "principal": 0},
				PopulationMultiplier: 0.8,
			},
			{
				Name: WaveLate, Duration: 180, MinInterval: 0.8, MaxInterval: 2.0,
				Weights:              map[string]float64{"korean_teacher": 0.3, "math_teacher": 0.6, "principal": 0.1},
				PopulationMultiplier: 1.0,
			},
			{
				Name: WaveBoss, Duration: 0, MinInterval: 3.0, MaxInterval: 5.0,
				Weights:              map[string]float64{"korean_teacher": 0.2, "math_teacher": 0.3, "principal": 0.5},
				PopulationMultiplier: 0.7,
			},
		},
	}
	if err := c.resolve(); err != nil {
		panic(err) // built-in table is known good
	}
	return c
}

// resolve converts string keys into typed lookups.
func (c *SpawnConfig) resolve() error {
	t, ok := types.ParseEnemyType(c.DefaultEnemyType)
	if !ok {
		return fmt.Errorf("defaultEnemyType: unknown enemy type %q", c.DefaultEnemyType)
	}
	c.defaultType = t

	for i := range c.Waves {
		w := &c.Waves[i]
		w.weights = [types.EnemyTypeCount]float64{}
		for name, weight := range w.Weights {
			et, ok := types.ParseEnemyType(name)
			if !ok {
				return fmt.Errorf("wave %s: unknown enemy type %q", w.Name, name)
			}
			w.weights[et] = weight
		}
	}
	return nil
}

func applySpawnDefaults(c *SpawnConfig) {
	def := DefaultSpawnConfig()
	if c.MaxPopulation == 0 {
		c.MaxPopulation = def.MaxPopulation
	}
	if c.InitialSpawnInterval == 0 {
		c.InitialSpawnInterval = def.InitialSpawnInterval
	}
	if c.PositionPoolSize == 0 {
		c.PositionPoolSize = def.PositionPoolSize
	}
	if c.SpawnMargin == 0 {
		c.SpawnMargin = def.SpawnMargin
	}
	if c.DefaultEnemyType == "" {
		c.DefaultEnemyType = def.DefaultEnemyType
	}
	if len(c.Waves) == 0 {
		c.Waves = def.Waves
	}
	for i := range c.Waves {
		w := &c.Waves[i]
		if w.Name == "" {
			w.Name = fmt.Sprintf("wave_%d", i+1)
		}
		if w.MaxInterval == 0 {
			w.MaxInterval = w.MinInterval
		}
		if w.PopulationMultiplier == 0 {
			w.PopulationMultiplier = 1.0
		}
	}
}

func validateSpawnConfig(c *SpawnConfig) error {
	if c.MaxPopulation < 1 {
		return fmt.Errorf("maxPopulation must be at least 1, got %d", c.MaxPopulation)
	}
	if c.InitialSpawnInterval <= 0 {
		return fmt.Errorf("initialSpawnInterval must be positive, got %v", c.InitialSpawnInterval)
	}
	if c.PositionPoolSize < 1 {
		return fmt.Errorf("positionPoolSize must be at least 1, got %d", c.PositionPoolSize)
	}
	if c.SpawnMargin < 0 {
		return fmt.Errorf("spawnMargin cannot be negative, got %v", c.SpawnMargin)
	}
	if len(c.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}

	for i := range c.Waves {
		w := &c.Waves[i]
		if w.Unbounded() && i != len(c.Waves)-1 {
			return fmt.Errorf("wave %s: only the last wave may be unbounded", w.Name)
		}
		if w.MinInterval <= 0 {
			return fmt.Errorf("wave %s: minInterval must be positive, got %v", w.Name, w.MinInterval)
		}
		if w.MaxInterval < w.MinInterval {
			return fmt.Errorf("wave %s: maxInterval %v < minInterval %v", w.Name, w.MaxInterval, w.MinInterval)
		}
		if w.PopulationMultiplier < 0 {
			return fmt.Errorf("wave %s: populationMultiplier cannot be negative, got %v", w.Name, w.PopulationMultiplier)
		}
		for name, weight := range w.Weights {
			if weight < 0 {
				return fmt.Errorf("wave %s: weight of %s cannot be negative, got %v", w.Name, name, weight)
			}
		}
	}

	return c.resolve()
}
