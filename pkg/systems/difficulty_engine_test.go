package systems

import (
	"math"
	"testing"

	"github.com/gonewx/survivor/pkg/config"
)

func TestCalculatePopulationCap(t *testing.T) {
	spawn := config.DefaultSpawnConfig()
	engine := NewDifficultyEngine(&spawn)

	tests := []struct {
		wave int
		want int
	}{
		{0, 30},
		{1, 40},
		{2, 50},
		{3, 35},
		{9, 50}, // out of range: the raw maximum
	}
	for _, tt := range tests {
		if got := engine.CalculatePopulationCap(tt.wave); got != tt.want {
			t.Errorf("CalculatePopulationCap(%d) = %d, want %d", tt.wave, got, tt.want)
		}
	}
}

func TestTimeUntilNextWave(t *testing.T) {
	spawn := config.DefaultSpawnConfig()
	engine := NewDifficultyEngine(&spawn)

	if got := engine.TimeUntilNextWave(10); got != 50 {
		t.Errorf("TimeUntilNextWave(10) = %v, want 50", got)
	}
	if got := engine.TimeUntilNextWave(200); got != 160 {
		t.Errorf("TimeUntilNextWave(200) = %v, want 160", got)
	}
	if got := engine.TimeUntilNextWave(500); !math.IsInf(got, 1) {
		t.Errorf("boss wave never ends, got %v", got)
	}
	min, max := engine.SpawnIntervalRange(2)
	if min != 0.8 || max != 2.0 {
		t.Errorf("late interval range = [%v, %v]", min, max)
	}
}
