// Package types defines the shared enumerations of the simulation.
package types

// EnemyType identifies an enemy archetype.
type EnemyType int

const (
	// EnemyUnknown is the zero value and never spawned.
	EnemyUnknown EnemyType = iota

	// EnemyKoreanTeacher is slow and attacks in a wide arc.
	EnemyKoreanTeacher
	// EnemyMathTeacher is fast and dashes at the player.
	EnemyMathTeacher
	// EnemyPrincipal is the boss: high health, phase-driven attack patterns.
	EnemyPrincipal

	enemyTypeEnd
)

// EnemyTypeCount is the size of tables indexed by EnemyType.
const EnemyTypeCount = int(enemyTypeEnd)

var enemyTypeNames = [...]string{
	EnemyUnknown:       "unknown",
	EnemyKoreanTeacher: "korean_teacher",
	EnemyMathTeacher:   "math_teacher",
	EnemyPrincipal:     "principal",
}

// String returns the config key of the type ("korean_teacher", ...).
func (t EnemyType) String() string {
	if t < 0 || t >= enemyTypeEnd {
		return "unknown"
	}
	return enemyTypeNames[t]
}

// Valid reports whether t is a spawnable archetype.
func (t EnemyType) Valid() bool {
	return t > EnemyUnknown && t < enemyTypeEnd
}

// ParseEnemyType maps a config key back to its EnemyType.
func ParseEnemyType(name string) (EnemyType, bool) {
	for t := EnemyKoreanTeacher; t < enemyTypeEnd; t++ {
		if enemyTypeNames[t] == name {
			return t, true
		}
	}
	return EnemyUnknown, false
}

// AllEnemyTypes returns every spawnable type in declaration order.
// Weighted draws iterate in this order so seeded runs are reproducible.
func AllEnemyTypes() []EnemyType {
	return []EnemyType{EnemyKoreanTeacher, EnemyMathTeacher, EnemyPrincipal}
}
