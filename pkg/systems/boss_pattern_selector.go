package systems

import (
	"log"
	"math"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
)

// BossPatternSelector decides the phase and next attack pattern of bosses.
// All per-boss state lives in the boss entity's BossComponent; the selector
// itself only holds configuration and the random source.
type BossPatternSelector struct {
	entityManager *ecs.EntityManager
	bossConfig    *config.BossConfig
	rng           RandomSource
}

// NewBossPatternSelector creates a selector.
func NewBossPatternSelector(em *ecs.EntityManager, boss *config.BossConfig, rng RandomSource) *BossPatternSelector {
	return &BossPatternSelector{
		entityManager: em,
		bossConfig:    boss,
		rng:           rng,
	}
}

// SetConfig swaps the boss tuning.
func (s *BossPatternSelector) SetConfig(boss *config.BossConfig) {
	s.bossConfig = boss
}

// CurrentPhase maps a health ratio to a phase: above Phase2Threshold is phase 1,
// above Phase3Threshold is phase 2, anything else phase 3.
func (s *BossPatternSelector) CurrentPhase(healthRatio float64) types.BossPhase {
	switch {
	case healthRatio > s.bossConfig.Phase2Threshold:
		return types.BossPhase1
	case healthRatio > s.bossConfig.Phase3Threshold:
		return types.BossPhase2
	default:
		return types.BossPhase3
	}
}

// OnPhaseChange moves the boss into newPhase: recomputes unlocked patterns,
// drops queued attacks and opens the transition invulnerability window.
func (s *BossPatternSelector) OnPhaseChange(bossID ecs.EntityID, newPhase types.BossPhase) {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, bossID)
	if !ok {
		return
	}
	old := boss.Phase
	boss.Phase = newPhase
	boss.Unlocked = s.bossConfig.UnlockedPatterns(newPhase)
	boss.Pending = boss.Pending[:0]
	if newPhase == types.BossPhase3 {
		boss.LastRegen = boss.Clock
	}

	if inv, ok := ecs.GetComponent[*components.InvulnerabilityComponent](s.entityManager, bossID); ok {
		inv.OpenFor(s.bossConfig.PhaseTransitionDuration, types.ChannelPhaseTransition)
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, bossID); ok {
			health.SetInvulnerable(true)
		}
	}

	log.Printf("[BossPatternSelector] Boss %d %v -> %v, %d patterns unlocked",
		bossID, old, newPhase, len(boss.Unlocked))
}

// NextPattern picks a pattern whose phase-scaled cooldown has elapsed at now
// (boss clock seconds) and records its use. Patterns that waited longer weigh
// more: 1 + wait/WeightGrowth. Patterns never used count from the boss spawn.
func (s *BossPatternSelector) NextPattern(bossID ecs.EntityID, now float64) (types.BossPattern, bool) {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, bossID)
	if !ok {
		return 0, false
	}

	multiplier := s.bossConfig.CooldownMultiplier(boss.Phase)
	candidates := make([]types.BossPattern, 0, len(boss.Unlocked))
	weights := make([]float64, 0, len(boss.Unlocked))

	for _, p := range boss.Unlocked {
		pc, ok := s.bossConfig.PatternConfig(p)
		if !ok {
			continue
		}
		last, used := boss.LastUsed[p]
		if !used {
			last = boss.SpawnTime
		}
		wait := now - last
		if wait < pc.Cooldown*multiplier {
			continue
		}
		candidates = append(candidates, p)
		weights = append(weights, 1+wait/s.bossConfig.WeightGrowth)
	}

	idx := SelectWeighted(s.rng, weights)
	if idx < 0 {
		return 0, false
	}
	chosen := candidates[idx]
	boss.LastUsed[chosen] = now
	return chosen, true
}

// UpdateRegen heals a phase-3 boss by floor(max x RegenFraction) every
// RegenInterval seconds, then re-evaluates its phase. Reports whether it healed.
func (s *BossPatternSelector) UpdateRegen(bossID ecs.EntityID, now float64) bool {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, bossID)
	if !ok || boss.Phase != types.BossPhase3 {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, bossID)
	if !ok || health.IsDead() {
		return false
	}
	if now-boss.LastRegen < s.bossConfig.RegenInterval {
		return false
	}

	boss.LastRegen = now
	amount := int(math.Floor(float64(health.Maximum) * s.bossConfig.RegenFraction))
	healed := health.Heal(amount)
	log.Printf("[BossPatternSelector] Boss %d regenerated %d hp (%d/%d)", bossID, healed, health.Current, health.Maximum)

	s.UpdatePhase(bossID)
	return true
}

// UpdatePhase re-evaluates the phase from the health ratio and applies a change.
// Moving back to an earlier phase only happens when the config allows it.
func (s *BossPatternSelector) UpdatePhase(bossID ecs.EntityID) bool {
	boss, ok := ecs.GetComponent[*components.BossComponent](s.entityManager, bossID)
	if !ok {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, bossID)
	if !ok || health.IsDead() {
		return false
	}

	phase := s.CurrentPhase(health.Ratio())
	if phase == boss.Phase {
		return false
	}
	if phase < boss.Phase && !s.bossConfig.AllowPhaseRegression() {
		return false
	}
	s.OnPhaseChange(bossID, phase)
	return true
}
