package components

import "github.com/gonewx/survivor/pkg/ecs"

// MeleeHitboxComponent is a short-lived arc in front of its owner (baseball bat
// swing, fan attack, boss strike). A target is hit when its distance from the
// hitbox position is within Radius and its bearing is within ArcAngle/2 of
// Facing. Each target is hit at most once per hitbox.
//
// Player hitboxes hit enemies; Hostile hitboxes hit the player.
type MeleeHitboxComponent struct {
	Owner      ecs.EntityID
	Hostile    bool
	Damage     int
	Radius     float64
	ArcAngle   float64 // radians
	Facing     float64 // radians
	Duration   float64
	Timer      float64
	HitTargets map[ecs.EntityID]bool
}

// NewMeleeHitboxComponent returns a swing with an empty hit set.
func NewMeleeHitboxComponent(owner ecs.EntityID, damage int, radius, arc, facing, duration float64) *MeleeHitboxComponent {
	return &MeleeHitboxComponent{
		Owner:      owner,
		Damage:     damage,
		Radius:     radius,
		ArcAngle:   arc,
		Facing:     facing,
		Duration:   duration,
		HitTargets: make(map[ecs.EntityID]bool),
	}
}
