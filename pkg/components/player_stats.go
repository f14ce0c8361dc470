package components

// PlayerStatsComponent holds the player's derived stats. ItemSystem rebuilds
// the item part every frame from the inventory; TrapSystem owns the slow.
type PlayerStatsComponent struct {
	MoveSpeed                 float64 // px/s after items, before slows
	DamageMultiplier          float64
	ProjectileSpeedMultiplier float64
	ProjectileSizeMultiplier  float64

	JumpCooldown float64 // 0 when no jump item is carried
	JumpDuration float64
	JumpTimer    float64

	SlowStacks   int
	SlowTimer    float64
	SlowPerStack float64 // fraction of speed lost per stack
}

// NewPlayerStatsComponent returns unmodified stats.
func NewPlayerStatsComponent(moveSpeed float64) *PlayerStatsComponent {
	return &PlayerStatsComponent{
		MoveSpeed:                 moveSpeed,
		DamageMultiplier:          1,
		ProjectileSpeedMultiplier: 1,
		ProjectileSizeMultiplier:  1,
	}
}

// EffectiveMoveSpeed is MoveSpeed reduced by the active slow stacks.
func (s *PlayerStatsComponent) EffectiveMoveSpeed() float64 {
	factor := 1 - float64(s.SlowStacks)*s.SlowPerStack
	if factor < 0 {
		factor = 0
	}
	return s.MoveSpeed * factor
}
