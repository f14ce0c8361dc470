package components

// ExperiencePickupComponent is loot dropped by a dead enemy.
type ExperiencePickupComponent struct {
	Amount int
	Source string // archetype name of the enemy that dropped it
}
