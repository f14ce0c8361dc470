package systems

import (
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/types"
	"github.com/gonewx/survivor/pkg/utils"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it; tests
// pass a seeded one so runs are reproducible.
type RandomSource interface {
	Float64() float64
}

// Uniform returns a value uniformly distributed in [min, max].
func Uniform(rng RandomSource, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// SelectWeighted picks an index with probability proportional to weights[i].
// Non-positive weights are never picked. Returns -1 when no weight is positive.
func SelectWeighted(rng RandomSource, weights []float64) int {
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}

	randNum := rng.Float64() * total
	cumulativeWeight := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulativeWeight += w
		if randNum < cumulativeWeight {
			return i
		}
	}

	// floating point rounding; fall back to the last positive entry
	return last
}

// SelectEnemyType draws an enemy type from the wave's weight table, iterating
// types in declaration order. A wave with no positive weight yields fallback.
func SelectEnemyType(rng RandomSource, wave *config.WaveConfig, fallback types.EnemyType) types.EnemyType {
	all := types.AllEnemyTypes()
	weights := make([]float64, len(all))
	for i, et := range all {
		weights[i] = wave.Weight(et)
	}

	idx := SelectWeighted(rng, weights)
	if idx < 0 {
		utils.Invariant(false, "[WaveSpawner] wave %s has no positive weight, using %v", wave.Name, fallback)
		return fallback
	}
	return all[idx]
}
