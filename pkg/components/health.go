package components

import (
	"github.com/gonewx/survivor/pkg/types"
	"github.com/gonewx/survivor/pkg/utils"
)

// HealthComponent stores hit points and lifecycle status of a combatant.
//
// Fields are exported for reading; mutate only through ApplyDamage, Heal,
// SetMaximum and SetInvulnerable so that 0 <= Current <= Maximum holds and
// StatusDead is entered exactly once.
type HealthComponent struct {
	Current     int
	Maximum     int
	BaseMaximum int // maximum at creation, before level-ups or buffs
	Status      types.EntityStatus
}

// NewHealthComponent returns a full-health, alive component.
func NewHealthComponent(maximum int) *HealthComponent {
	if maximum < 1 {
		utils.Invariant(false, "[Health] maximum %d < 1, clamped", maximum)
		maximum = 1
	}
	return &HealthComponent{
		Current:     maximum,
		Maximum:     maximum,
		BaseMaximum: maximum,
		Status:      types.StatusAlive,
	}
}

// IsDead reports whether the entity has reached zero health.
func (h *HealthComponent) IsDead() bool {
	return h.Status == types.StatusDead
}

// Ratio returns Current / Maximum in [0, 1].
func (h *HealthComponent) Ratio() float64 {
	if h.Maximum <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Maximum)
}

// ApplyDamage subtracts amount, clamped at zero.
// It returns the health actually removed and whether this call killed the entity.
// Dead entities and non-positive amounts are ignored.
func (h *HealthComponent) ApplyDamage(amount int) (applied int, died bool) {
	if h.Status == types.StatusDead || amount <= 0 {
		return 0, false
	}
	applied = amount
	if applied > h.Current {
		applied = h.Current
	}
	h.Current -= applied
	if h.Current == 0 {
		h.Status = types.StatusDead
		return applied, true
	}
	return applied, false
}

// Heal adds amount, clamped at Maximum. Dead entities stay dead.
func (h *HealthComponent) Heal(amount int) int {
	if h.Status == types.StatusDead || amount <= 0 {
		return 0
	}
	healed := amount
	if h.Current+healed > h.Maximum {
		healed = h.Maximum - h.Current
	}
	h.Current += healed
	return healed
}

// SetMaximum changes the maximum and keeps Current within bounds.
func (h *HealthComponent) SetMaximum(maximum int) {
	if maximum < 1 {
		utils.Invariant(false, "[Health] maximum %d < 1, clamped", maximum)
		maximum = 1
	}
	h.Maximum = maximum
	if h.Current > h.Maximum {
		h.Current = h.Maximum
	}
}

// SetInvulnerable mirrors an invulnerability window into Status.
// A dead entity keeps StatusDead.
func (h *HealthComponent) SetInvulnerable(on bool) {
	if h.Status == types.StatusDead {
		return
	}
	if on {
		h.Status = types.StatusInvulnerable
	} else {
		h.Status = types.StatusAlive
	}
}
