package config

import "fmt"

// TrapConfig tunes the slowing traps scattered over the field late in a run.
type TrapConfig struct {
	StartTime      float64 `yaml:"startTime"`      // s of game time before the first trap
	Interval       float64 `yaml:"interval"`       // s between traps
	Duration       float64 `yaml:"duration"`       // s a slow lasts after the last trap stepped on
	SpeedReduction float64 `yaml:"speedReduction"` // fraction of move speed lost per stack
	MaxStacks      int     `yaml:"maxStacks"`
	Size           float64 `yaml:"size"`
}

// DefaultTrapConfig returns traps from minute three, one every five seconds.
func DefaultTrapConfig() TrapConfig {
	return TrapConfig{
		StartTime:      180,
		Interval:       5,
		Duration:       3,
		SpeedReduction: 0.2,
		MaxStacks:      3,
		Size:           10,
	}
}

func applyTrapDefaults(c *TrapConfig) {
	def := DefaultTrapConfig()
	if c.StartTime == 0 {
		c.StartTime = def.StartTime
	}
	if c.Interval == 0 {
		c.Interval = def.Interval
	}
	if c.Duration == 0 {
		c.Duration = def.Duration
	}
	if c.SpeedReduction == 0 {
		c.SpeedReduction = def.SpeedReduction
	}
	if c.MaxStacks == 0 {
		c.MaxStacks = def.MaxStacks
	}
	if c.Size == 0 {
		c.Size = def.Size
	}
}

func validateTrapConfig(c *TrapConfig) error {
	if c.StartTime < 0 {
		return fmt.Errorf("startTime cannot be negative, got %v", c.StartTime)
	}
	if c.Interval <= 0 || c.Duration <= 0 || c.Size <= 0 {
		return fmt.Errorf("interval, duration and size must be positive, got %v/%v/%v", c.Interval, c.Duration, c.Size)
	}
	if c.SpeedReduction < 0 || c.SpeedReduction > 1 {
		return fmt.Errorf("speedReduction must be within [0, 1], got %v", c.SpeedReduction)
	}
	if c.MaxStacks < 1 {
		return fmt.Errorf("maxStacks must be at least 1, got %d", c.MaxStacks)
	}
	return nil
}
