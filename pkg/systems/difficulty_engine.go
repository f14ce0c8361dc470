package systems

import (
	"math"

	"github.com/gonewx/survivor/pkg/config"
)

// DifficultyEngine derives wave and population limits from the spawn schedule.
type DifficultyEngine struct {
	spawn *config.SpawnConfig
}

// NewDifficultyEngine creates an engine over spawn.
func NewDifficultyEngine(spawn *config.SpawnConfig) *DifficultyEngine {
	return &DifficultyEngine{spawn: spawn}
}

// SetSpawnConfig replaces the schedule, e.g. after a hot reload.
func (d *DifficultyEngine) SetSpawnConfig(spawn *config.SpawnConfig) {
	d.spawn = spawn
}

// WaveIndexAt returns the wave that covers elapsed seconds.
func (d *DifficultyEngine) WaveIndexAt(elapsed float64) int {
	return d.spawn.WaveIndexAt(elapsed)
}

// CalculatePopulationCap returns the live-enemy cap of wave i:
// floor(MaxPopulation x PopulationMultiplier).
func (d *DifficultyEngine) CalculatePopulationCap(waveIndex int) int {
	if waveIndex < 0 || waveIndex >= len(d.spawn.Waves) {
		return d.spawn.MaxPopulation
	}
	mult := d.spawn.Waves[waveIndex].PopulationMultiplier
	// guard against 50*0.6 = 29.999999999999996
	return int(math.Floor(float64(d.spawn.MaxPopulation)*mult + 1e-9))
}

// SpawnIntervalRange returns the [min, max] seconds between spawns in wave i.
func (d *DifficultyEngine) SpawnIntervalRange(waveIndex int) (float64, float64) {
	if waveIndex < 0 || waveIndex >= len(d.spawn.Waves) {
		return d.spawn.InitialSpawnInterval, d.spawn.InitialSpawnInterval
	}
	w := &d.spawn.Waves[waveIndex]
	return w.MinInterval, w.MaxInterval
}

// TimeUntilNextWave returns the seconds left in the wave covering elapsed,
// or +Inf for the unbounded last wave.
func (d *DifficultyEngine) TimeUntilNextWave(elapsed float64) float64 {
	i := d.spawn.WaveIndexAt(elapsed)
	if i+1 >= len(d.spawn.Waves) || d.spawn.Waves[i].Unbounded() {
		return math.Inf(1)
	}
	return math.Max(0, d.spawn.WaveStart(i+1)-elapsed)
}
