package config

import "github.com/gonewx/survivor/pkg/types"

// EnemyArchetype is the immutable base stat block of an enemy type.
type EnemyArchetype struct {
	Speed           float64
	Health          int
	AttackPower     int
	ExperienceYield int
}

// experience yield is twice the attack power for every archetype
var enemyArchetypes = [types.EnemyTypeCount]EnemyArchetype{
	types.EnemyKoreanTeacher: {Speed: 2.0, Health: 50, AttackPower: 15, ExperienceYield: 30},
	types.EnemyMathTeacher:   {Speed: 4.0, Health: 30, AttackPower: 20, ExperienceYield: 40},
	types.EnemyPrincipal:     {Speed: 3.0, Health: 150, AttackPower: 25, ExperienceYield: 50},
}

// Archetype returns the stat block for t. Unknown types report false.
func Archetype(t types.EnemyType) (EnemyArchetype, bool) {
	if !t.Valid() {
		return EnemyArchetype{}, false
	}
	return enemyArchetypes[t], true
}
