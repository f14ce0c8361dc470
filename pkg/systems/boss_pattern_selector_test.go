package systems

import (
	"testing"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
)

func newTestBoss(t *testing.T, bossCfg *config.BossConfig) (*BossPatternSelector, *ecs.EntityManager, ecs.EntityID) {
	t.Helper()
	em, cfg := newTestWorld(t)
	id := spawnEnemy(t, em, cfg, types.EnemyPrincipal, 400, 300)
	return NewBossPatternSelector(em, bossCfg, newSeeded(1)), em, id
}

func bossOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.BossComponent {
	t.Helper()
	boss, ok := ecs.GetComponent[*components.BossComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no BossComponent", id)
	}
	return boss
}

func TestBossCurrentPhase(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	selector, _, _ := newTestBoss(t, &bossCfg)

	tests := []struct {
		ratio float64
		want  types.BossPhase
	}{
		{1.0, types.BossPhase1},
		{0.71, types.BossPhase1},
		{0.7, types.BossPhase2},
		{0.31, types.BossPhase2},
		{0.3, types.BossPhase3},
		{0.0, types.BossPhase3},
	}
	for _, tt := range tests {
		if got := selector.CurrentPhase(tt.ratio); got != tt.want {
			t.Errorf("CurrentPhase(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestBossUnlockedPatternsGrowWithPhase(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	selector, em, id := newTestBoss(t, &bossCfg)
	boss := bossOf(t, em, id)

	wantCounts := map[types.BossPhase]int{types.BossPhase1: 2, types.BossPhase2: 4, types.BossPhase3: 5}
	var previous []types.BossPattern
	for _, phase := range []types.BossPhase{types.BossPhase1, types.BossPhase2, types.BossPhase3} {
		selector.OnPhaseChange(id, phase)
		if len(boss.Unlocked) != wantCounts[phase] {
			t.Errorf("%v unlocked %d patterns, want %d", phase, len(boss.Unlocked), wantCounts[phase])
		}
		for _, p := range previous {
			if !boss.IsUnlocked(p) {
				t.Errorf("%v lost pattern %v", phase, p)
			}
		}
		previous = append([]types.BossPattern(nil), boss.Unlocked...)
	}
	if !boss.IsUnlocked(types.PatternSummonMinions) {
		t.Error("summon must be available in phase 3")
	}
}

func TestBossPhaseTransitionWindow(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	selector, em, id := newTestBoss(t, &bossCfg)
	cfg := config.DefaultBalanceConfig()

	boss := bossOf(t, em, id)
	boss.Pending = append(boss.Pending, components.PendingBossAttack{Pattern: types.PatternLaserBeam, ExecuteAt: 1})
	selector.OnPhaseChange(id, types.BossPhase2)

	if len(boss.Pending) != 0 {
		t.Error("phase change must drop queued attacks")
	}
	inv, _ := ecs.GetComponent[*components.InvulnerabilityComponent](em, id)
	health := healthOf(t, em, id)
	if !inv.Active || inv.Channel != types.ChannelPhaseTransition || inv.Duration != 2.0 {
		t.Fatalf("transition window = %+v", inv)
	}
	if health.Status != types.StatusInvulnerable {
		t.Errorf("status = %v, want invulnerable", health.Status)
	}

	collision := NewCollisionSystem(em, &cfg.Combat, &cfg.World)
	collision.Update(1.0)
	if !inv.Active {
		t.Fatal("window closed early")
	}
	collision.Update(1.0)
	if inv.Active || health.Status != types.StatusAlive {
		t.Fatalf("window still open after 2s: %+v, %v", inv, health.Status)
	}
	if inv.Duration != cfg.Combat.EnemyInvulnerabilityDuration || inv.Channel != types.ChannelPlayerAttack {
		t.Errorf("regular window not restored: %+v", inv)
	}
}

func TestBossNextPatternCooldowns(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	selector, _, id := newTestBoss(t, &bossCfg)

	steps := []struct {
		now  float64
		want types.BossPattern
		ok   bool
	}{
		{2.9, 0, false},
		{3.0, types.PatternCircularBullets, true},
		{4.0, 0, false},
		{5.0, types.PatternHomingMissiles, true},
		{5.5, 0, false},
		{6.0, types.PatternCircularBullets, true},
	}
	for _, step := range steps {
		got, ok := selector.NextPattern(id, step.now)
		if ok != step.ok || (ok && got != step.want) {
			t.Errorf("NextPattern at %.1fs = (%v, %v), want (%v, %v)", step.now, got, ok, step.want, step.ok)
		}
	}
}

func TestBossCooldownScalesWithPhase(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	selector, em, id := newTestBoss(t, &bossCfg)
	selector.OnPhaseChange(id, types.BossPhase3)
	boss := bossOf(t, em, id)

	for _, p := range types.AllBossPatterns() {
		boss.LastUsed[p] = 10
	}
	// phase 3 multiplier 0.6: circular 1.8s, teleport 2.4s
	if p, ok := selector.NextPattern(id, 11.7); ok {
		t.Fatalf("nothing should be ready at 11.7s, got %v", p)
	}
	if p, ok := selector.NextPattern(id, 11.9); !ok || p != types.PatternCircularBullets {
		t.Fatalf("NextPattern(11.9) = (%v, %v), want circular_bullets", p, ok)
	}
	if p, ok := selector.NextPattern(id, 12.5); !ok || p != types.PatternTeleportStrike {
		t.Fatalf("NextPattern(12.5) = (%v, %v), want teleport_strike", p, ok)
	}
}

func TestBossSelectionFavoursLongestWait(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	selector, em, id := newTestBoss(t, &bossCfg)
	boss := bossOf(t, em, id)

	const trials = 2000
	circular := 0
	for i := 0; i < trials; i++ {
		// circular waited 100s (weight 11), homing 5s (weight 1.5)
		boss.LastUsed[types.PatternCircularBullets] = 0
		boss.LastUsed[types.PatternHomingMissiles] = 95
		p, ok := selector.NextPattern(id, 100)
		if !ok {
			t.Fatal("both patterns should be ready")
		}
		if p == types.PatternCircularBullets {
			circular++
		}
	}
	got := float64(circular) / trials
	if got < 0.84 || got > 0.92 {
		t.Errorf("circular chosen %.3f of the time, want about 0.88", got)
	}
}

func TestBossRegenAndPhaseRegression(t *testing.T) {
	tests := []struct {
		name       string
		monotonic  bool
		wantPhase  types.BossPhase
		wantHealth int
	}{
		{"regression allowed", false, types.BossPhase2, 47},
		{"monotonic phases", true, types.BossPhase3, 47},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bossCfg := config.DefaultBossConfig()
			bossCfg.MonotonicPhases = tt.monotonic
			selector, em, id := newTestBoss(t, &bossCfg)
			boss := bossOf(t, em, id)
			health := healthOf(t, em, id)

			health.ApplyDamage(110) // 40/150
			if !selector.UpdatePhase(id) || boss.Phase != types.BossPhase3 {
				t.Fatalf("boss at 40/150 should enter phase 3, got %v", boss.Phase)
			}
			if selector.UpdateRegen(id, 9.9) {
				t.Fatal("regen before the interval")
			}
			if !selector.UpdateRegen(id, 10) {
				t.Fatal("regen due at 10s")
			}
			if health.Current != tt.wantHealth {
				t.Errorf("health = %d, want %d", health.Current, tt.wantHealth)
			}
			if boss.Phase != tt.wantPhase {
				t.Errorf("phase after regen = %v, want %v", boss.Phase, tt.wantPhase)
			}
		})
	}
}

func TestBossRegenOnlyInPhaseThree(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	selector, em, id := newTestBoss(t, &bossCfg)
	health := healthOf(t, em, id)
	health.ApplyDamage(20)

	if selector.UpdateRegen(id, 100) {
		t.Error("phase 1 boss regenerated")
	}
	if health.Current != 130 {
		t.Errorf("health = %d, want 130", health.Current)
	}
}

func TestBossDeadBossKeepsPhase(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	selector, em, id := newTestBoss(t, &bossCfg)
	healthOf(t, em, id).ApplyDamage(1000)

	if selector.UpdatePhase(id) {
		t.Error("dead boss changed phase")
	}
	if selector.UpdateRegen(id, 100) {
		t.Error("dead boss regenerated")
	}
}

func TestBossHealsBackToPhaseOne(t *testing.T) {
	bossCfg := config.DefaultBossConfig()
	bossCfg.RegenFraction = 0.5
	selector, em, id := newTestBoss(t, &bossCfg)
	boss := bossOf(t, em, id)
	health := healthOf(t, em, id)

	health.ApplyDamage(113) // 37/150, about 25%
	selector.UpdatePhase(id)
	if boss.Phase != types.BossPhase3 {
		t.Fatalf("phase = %v, want phase 3", boss.Phase)
	}

	if !selector.UpdateRegen(id, 10) {
		t.Fatal("regen due at 10s")
	}
	if health.Current != 112 { // about 75%
		t.Fatalf("health = %d, want 112", health.Current)
	}
	if boss.Phase != types.BossPhase1 {
		t.Errorf("phase = %v, want phase 1", boss.Phase)
	}
	if len(boss.Unlocked) != 2 {
		t.Errorf("%d patterns unlocked, want 2", len(boss.Unlocked))
	}
}
