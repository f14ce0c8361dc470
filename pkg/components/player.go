package components

// PlayerComponent holds progression and attack state of the player.
type PlayerComponent struct {
	Level               int
	Experience          int
	NextLevelExperience int
	AttackCooldown      float64 // seconds until the next auto attack
	Facing              float64 // radians, 0 = +X, counter-clockwise with +Y down
	MoveX, MoveY        float64 // unit movement input, zero when idle
	Kills               int
}
