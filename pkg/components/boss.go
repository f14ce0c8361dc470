package components

import "github.com/gonewx/survivor/pkg/types"

// PendingBossAttack is a telegraphed pattern waiting to execute.
type PendingBossAttack struct {
	Pattern   types.BossPattern
	ExecuteAt float64 // boss clock time
}

// BossComponent is the per-boss state of the pattern selector.
// It lives and dies with the boss entity.
type BossComponent struct {
	Phase     types.BossPhase
	Clock     float64 // seconds since the boss spawned
	SpawnTime float64 // clock value at spawn, the baseline for never-used patterns
	LastUsed  map[types.BossPattern]float64
	Unlocked  []types.BossPattern
	Pending   []PendingBossAttack
	LastRegen float64
}

// NewBossComponent returns phase-1 state with the given patterns unlocked.
func NewBossComponent(unlocked []types.BossPattern) *BossComponent {
	return &BossComponent{
		Phase:    types.BossPhase1,
		LastUsed: make(map[types.BossPattern]float64),
		Unlocked: append([]types.BossPattern(nil), unlocked...),
	}
}

// IsUnlocked reports whether p is available in the current phase.
func (b *BossComponent) IsUnlocked(p types.BossPattern) bool {
	for _, u := range b.Unlocked {
		if u == p {
			return true
		}
	}
	return false
}
