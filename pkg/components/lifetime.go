package components

// LifetimeComponent expires an entity after MaxLifetime seconds (projectiles, pickups).
type LifetimeComponent struct {
	MaxLifetime     float64
	CurrentLifetime float64
	IsExpired       bool
}
