package config

import (
	"testing"

	"github.com/gonewx/survivor/pkg/types"
)

func TestUnlockedPatternsAreSupersets(t *testing.T) {
	cfg := DefaultBossConfig()

	want := map[types.BossPhase]int{
		types.BossPhase1: 2,
		types.BossPhase2: 4,
		types.BossPhase3: 5,
	}
	var previous []types.BossPattern
	for _, phase := range []types.BossPhase{types.BossPhase1, types.BossPhase2, types.BossPhase3} {
		got := cfg.UnlockedPatterns(phase)
		if len(got) != want[phase] {
			t.Errorf("%v unlocks %d patterns, want %d", phase, len(got), want[phase])
		}
		for _, p := range previous {
			found := false
			for _, q := range got {
				if p == q {
					found = true
				}
			}
			if !found {
				t.Errorf("%v lost pattern %v", phase, p)
			}
		}
		previous = got
	}
}

func TestCooldownMultiplier(t *testing.T) {
	cfg := DefaultBossConfig()
	tests := []struct {
		phase types.BossPhase
		want  float64
	}{
		{types.BossPhase1, 1.0},
		{types.BossPhase2, 0.8},
		{types.BossPhase3, 0.6},
		{types.BossPhase(7), 1.0},
	}
	for _, tt := range tests {
		if got := cfg.CooldownMultiplier(tt.phase); got != tt.want {
			t.Errorf("CooldownMultiplier(%v) = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

func TestPatternConfigLookup(t *testing.T) {
	cfg := DefaultBossConfig()
	pc, ok := cfg.PatternConfig(types.PatternSummonMinions)
	if !ok {
		t.Fatal("summon_minions missing")
	}
	if pc.Cooldown != 8 || pc.Magnitude != 2 || pc.UnlockPhase != 3 {
		t.Errorf("summon_minions = %+v", pc)
	}
	if !cfg.AllowPhaseRegression() {
		t.Error("regression is allowed by default")
	}
}
