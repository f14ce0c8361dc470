package systems

import (
	"math"
	"testing"

	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/types"
)

func TestSelectWeighted(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		draw    float64
		want    int
	}{
		{"first bucket", []float64{1, 1}, 0.1, 0},
		{"second bucket", []float64{1, 1}, 0.6, 1},
		{"zero weight skipped", []float64{0, 1, 1}, 0.0, 1},
		{"negative weight skipped", []float64{-5, 0, 2}, 0.99, 2},
		{"all zero", []float64{0, 0}, 0.5, -1},
		{"empty", nil, 0.5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectWeighted(&sequenceRandom{values: []float64{tt.draw}}, tt.weights)
			if got != tt.want {
				t.Errorf("SelectWeighted(%v, draw %v) = %d, want %d", tt.weights, tt.draw, got, tt.want)
			}
		})
	}
}

func TestSelectEnemyTypeConverges(t *testing.T) {
	const draws = 10000
	spawn := config.DefaultSpawnConfig()

	for _, wave := range spawn.Waves {
		wave := wave
		t.Run(wave.Name, func(t *testing.T) {
			rng := newSeeded(42)
			counts := make(map[types.EnemyType]int)
			for i := 0; i < draws; i++ {
				counts[SelectEnemyType(rng, &wave, types.EnemyKoreanTeacher)]++
			}
			for _, et := range types.AllEnemyTypes() {
				want := wave.Weight(et)
				got := float64(counts[et]) / draws
				if want == 0 && counts[et] != 0 {
					t.Errorf("%v has zero weight but was drawn %d times", et, counts[et])
				}
				if math.Abs(got-want) > 0.02 {
					t.Errorf("%v frequency %.3f, want %.3f +/- 0.02", et, got, want)
				}
			}
		})
	}
}

func TestSelectEnemyTypeAllZeroFallsBack(t *testing.T) {
	wave := config.WaveConfig{Name: "empty"}
	got := SelectEnemyType(newSeeded(1), &wave, types.EnemyMathTeacher)
	if got != types.EnemyMathTeacher {
		t.Errorf("got %v, want fallback math_teacher", got)
	}
}

func TestUniform(t *testing.T) {
	rng := newSeeded(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(rng, 1.5, 2.5)
		if v < 1.5 || v > 2.5 {
			t.Fatalf("Uniform out of range: %v", v)
		}
	}
	if got := Uniform(rng, 3, 3); got != 3 {
		t.Errorf("degenerate range = %v, want 3", got)
	}
}
