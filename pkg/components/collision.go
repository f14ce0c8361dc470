package components

// CollisionComponent is a center-aligned axis-aligned box around the entity position.
type CollisionComponent struct {
	Width   float64
	Height  float64
	OffsetX float64 // positive shifts the box right
	OffsetY float64 // positive shifts the box down
}
