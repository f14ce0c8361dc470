package components

// ProjectileComponent is a player bullet.
// PierceRemaining and BounceRemaining are consumed only by hits that deal damage.
type ProjectileComponent struct {
	Damage          int
	PierceRemaining int
	BounceRemaining int
}
