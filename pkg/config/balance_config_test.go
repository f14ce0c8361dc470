package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/survivor/pkg/embedded"
	"github.com/gonewx/survivor/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadBalanceConfig(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, `
world:
  width: 1024
combat:
  projectilePierce: 2
spawn:
  maxPopulation: 20
boss:
  monotonicPhases: true
`)
		cfg, err := LoadBalanceConfig(path)
		if err != nil {
			t.Fatalf("LoadBalanceConfig failed: %v", err)
		}

		if cfg.World.Width != 1024 || cfg.World.Height != 600 {
			t.Errorf("world = %+v, want 1024x600", cfg.World)
		}
		if cfg.Combat.ProjectilePierce != 2 {
			t.Errorf("projectilePierce = %d, want 2", cfg.Combat.ProjectilePierce)
		}
		if cfg.Combat.ProjectileDamage != 25 {
			t.Errorf("projectileDamage default = %d, want 25", cfg.Combat.ProjectileDamage)
		}
		if cfg.Spawn.MaxPopulation != 20 {
			t.Errorf("maxPopulation = %d, want 20", cfg.Spawn.MaxPopulation)
		}
		if len(cfg.Spawn.Waves) != 4 {
			t.Fatalf("expected default 4 waves, got %d", len(cfg.Spawn.Waves))
		}
		if got := cfg.Spawn.Waves[0].Weight(types.EnemyKoreanTeacher); got != 0.8 {
			t.Errorf("early korean weight = %v, want 0.8", got)
		}
		if cfg.Boss.AllowPhaseRegression() {
			t.Error("monotonicPhases: true should forbid regression")
		}
		if len(cfg.Boss.Patterns) != types.BossPatternCount {
			t.Errorf("expected %d boss patterns, got %d", types.BossPatternCount, len(cfg.Boss.Patterns))
		}
	})

	t.Run("custom waves", func(t *testing.T) {
		path := writeConfig(t, `
spawn:
  defaultEnemyType: math_teacher
  waves:
    - name: only
      duration: 0
      minInterval: 1
      weights:
        principal: 1
`)
		cfg, err := LoadBalanceConfig(path)
		if err != nil {
			t.Fatalf("LoadBalanceConfig failed: %v", err)
		}
		w := cfg.Spawn.Waves[0]
		if w.MaxInterval != 1 {
			t.Errorf("maxInterval default = %v, want minInterval 1", w.MaxInterval)
		}
		if w.PopulationMultiplier != 1 {
			t.Errorf("populationMultiplier default = %v, want 1", w.PopulationMultiplier)
		}
		if w.Weight(types.EnemyPrincipal) != 1 || w.Weight(types.EnemyKoreanTeacher) != 0 {
			t.Errorf("unexpected weights %v", w.Weights)
		}
		if cfg.Spawn.DefaultType() != types.EnemyMathTeacher {
			t.Errorf("DefaultType() = %v, want math_teacher", cfg.Spawn.DefaultType())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBalanceConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}

func TestLoadBalanceConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "world: [", "failed to parse"},
		{"unknown enemy", "spawn:\n  waves:\n    - {name: a, duration: 0, minInterval: 1, weights: {zombie: 1}}\n", "unknown enemy type"},
		{"negative weight", "spawn:\n  waves:\n    - {name: a, duration: 0, minInterval: 1, weights: {math_teacher: -1}}\n", "cannot be negative"},
		{"unbounded middle wave", "spawn:\n  waves:\n    - {name: a, duration: 0, minInterval: 1}\n    - {name: b, duration: 10, minInterval: 1}\n", "only the last wave"},
		{"interval order", "spawn:\n  waves:\n    - {name: a, minInterval: 3, maxInterval: 1}\n", "maxInterval"},
		{"unknown pattern", "boss:\n  patterns:\n    - {name: fireball, cooldown: 1}\n", "unknown boss pattern"},
		{"thresholds", "boss:\n  phase2Threshold: 0.2\n  phase3Threshold: 0.5\n", "phase thresholds"},
		{"bad default type", "spawn:\n  defaultEnemyType: ghost\n", "defaultEnemyType"},
		{"trap slow over 100%", "traps:\n  speedReduction: 1.5\n", "speedReduction"},
		{"negative trap start", "traps:\n  startTime: -1\n", "startTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBalanceConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEmbeddedBalanceConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultBalancePath: &fstest.MapFile{Data: []byte("player:\n  maxHealth: 250\n")},
	})

	cfg, err := LoadEmbeddedBalanceConfig()
	if err != nil {
		t.Fatalf("LoadEmbeddedBalanceConfig failed: %v", err)
	}
	if cfg.Player.MaxHealth != 250 {
		t.Errorf("maxHealth = %d, want 250", cfg.Player.MaxHealth)
	}
}

func TestShippedBalanceFileIsValid(t *testing.T) {
	path := filepath.Join("..", "..", DefaultBalancePath)
	if _, err := os.Stat(path); err != nil {
		t.Skipf("balance file not found: %v", err)
	}
	if _, err := LoadBalanceConfig(path); err != nil {
		t.Fatalf("shipped balance file is invalid: %v", err)
	}
}
