package components

// PositionComponent is the world-space center of an entity, in pixels.
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent is a per-second displacement applied by MovementSystem.
type VelocityComponent struct {
	VX float64
	VY float64
}
