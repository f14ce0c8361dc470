package components

import (
	"math"

	"github.com/gonewx/survivor/pkg/types"
)

// EnemyComponent tags an entity as a hostile combatant.
type EnemyComponent struct {
	Type            types.EnemyType
	Speed           float64 // archetype speed factor, scaled to px/s by the chase system
	AttackPower     int
	ExperienceYield int
	Behavior        EnemyBehavior
}

// EnemyBehavior is the per-archetype behavior record.
// The set of implementations is closed: KoreanTeacherBehavior,
// MathTeacherBehavior and PrincipalBossBehavior.
type EnemyBehavior interface {
	EnemyType() types.EnemyType
	sealedEnemyBehavior()
}

// KoreanTeacherBehavior: slow approach, wide fan attack.
// In range it stops, charges for ChargeTime, then swings a fan toward the
// bearing it locked when the charge started.
type KoreanTeacherBehavior struct {
	AttackRange    float64 // px
	AttackArc      float64 // radians
	ChargeTime     float64 // s
	AttackCooldown float64 // s between the end of one charge and the next
	AttackDuration float64 // s the fan stays out

	Charging      bool
	ChargeTimer   float64
	CooldownTimer float64
	Facing        float64 // radians
}

// MathTeacherBehavior: periodic dash toward the player.
type MathTeacherBehavior struct {
	DashSpeedMultiplier float64
	DashDuration        float64
	DashCooldown        float64
	DashMinDistance     float64
	DashMaxDistance     float64

	Dashing       bool
	DashTimer     float64 // time spent in the current dash
	CooldownTimer float64 // time left before the next dash may start
}

// PrincipalBossBehavior tunes the boss body; pattern state lives in BossComponent.
// A teleport strike jumps at most TeleportRange toward the player, landing
// StrikeOffset short of it, then hits everything within StrikeRadius.
type PrincipalBossBehavior struct {
	TeleportRange  float64
	StrikeOffset   float64
	StrikeRadius   float64
	StrikeDuration float64
}

func (*KoreanTeacherBehavior) EnemyType() types.EnemyType { return types.EnemyKoreanTeacher }
func (*MathTeacherBehavior) EnemyType() types.EnemyType   { return types.EnemyMathTeacher }
func (*PrincipalBossBehavior) EnemyType() types.EnemyType { return types.EnemyPrincipal }

func (*KoreanTeacherBehavior) sealedEnemyBehavior() {}
func (*MathTeacherBehavior) sealedEnemyBehavior()   {}
func (*PrincipalBossBehavior) sealedEnemyBehavior() {}

// NewKoreanTeacherBehavior returns the default fan-attack tuning.
func NewKoreanTeacherBehavior() *KoreanTeacherBehavior {
	return &KoreanTeacherBehavior{
		AttackRange:    80,
		AttackArc:      math.Pi / 2,
		ChargeTime:     1.5,
		AttackCooldown: 3.0,
		AttackDuration: 0.2,
	}
}

// NewMathTeacherBehavior returns the default dash tuning.
func NewMathTeacherBehavior() *MathTeacherBehavior {
	return &MathTeacherBehavior{
		DashSpeedMultiplier: 3.0,
		DashDuration:        1.0,
		DashCooldown:        3.0,
		DashMinDistance:     80,
		DashMaxDistance:     180,
	}
}

// NewPrincipalBossBehavior returns the default boss record.
func NewPrincipalBossBehavior() *PrincipalBossBehavior {
	return &PrincipalBossBehavior{
		TeleportRange:  300,
		StrikeOffset:   60,
		StrikeRadius:   80,
		StrikeDuration: 0.2,
	}
}

// SpeedMultiplier is 0 while charging.
func (b *KoreanTeacherBehavior) SpeedMultiplier() float64 {
	if b.Charging {
		return 0
	}
	return 1
}

// Step advances the fan attack by dt given the distance and bearing to the
// target. It reports whether the charge completed and the fan fires now.
func (b *KoreanTeacherBehavior) Step(dt, distance, bearing float64) bool {
	if b.Charging {
		b.ChargeTimer += dt
		if b.ChargeTimer >= b.ChargeTime {
			b.Charging = false
			b.ChargeTimer = 0
			b.CooldownTimer = b.AttackCooldown
			return true
		}
		return false
	}
	if b.CooldownTimer > 0 {
		b.CooldownTimer -= dt
		if b.CooldownTimer < 0 {
			b.CooldownTimer = 0
		}
		return false
	}
	if distance <= b.AttackRange {
		b.Charging = true
		b.ChargeTimer = 0
		b.Facing = bearing
	}
	return false
}

// SpeedMultiplier is the factor applied on top of the archetype speed this frame.
func (b *MathTeacherBehavior) SpeedMultiplier() float64 {
	if b.Dashing {
		return b.DashSpeedMultiplier
	}
	return 1
}

// Step advances the dash state machine by dt given the distance to the target.
// It reports whether a dash started during this call.
func (b *MathTeacherBehavior) Step(dt, distance float64) bool {
	if b.Dashing {
		b.DashTimer += dt
		if b.DashTimer >= b.DashDuration {
			b.Dashing = false
			b.DashTimer = 0
			b.CooldownTimer = b.DashCooldown
		}
		return false
	}
	if b.CooldownTimer > 0 {
		b.CooldownTimer -= dt
		if b.CooldownTimer < 0 {
			b.CooldownTimer = 0
		}
		return false
	}
	if distance >= b.DashMinDistance && distance <= b.DashMaxDistance {
		b.Dashing = true
		b.DashTimer = 0
		return true
	}
	return false
}
