package systems

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/gonewx/survivor/pkg/components"
)

// boundsOf returns the center-aligned box of an entity. The box edges are
// inclusive, so touching boxes overlap.
func boundsOf(pos *components.PositionComponent, col *components.CollisionComponent) cp.BB {
	center := cp.Vector{X: pos.X + col.OffsetX, Y: pos.Y + col.OffsetY}
	return cp.NewBBForExtents(center, col.Width/2, col.Height/2)
}

// checkAABBCollision reports whether two center-aligned boxes overlap.
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {
	return boundsOf(pos1, col1).Intersects(boundsOf(pos2, col2))
}

// normalizeAngle maps an angle to (-Pi, Pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// inArc reports whether target lies within radius of origin and within arc/2
// radians of facing. Angles are measured with atan2 on screen coordinates.
func inArc(origin, target cp.Vector, radius, facing, arc float64) bool {
	if origin.Distance(target) > radius {
		return false
	}
	offset := target.Sub(origin)
	if offset.Length() == 0 {
		return true // standing on the swing origin
	}
	diff := normalizeAngle(offset.ToAngle() - facing)
	return math.Abs(diff) <= arc/2
}

func vectorOf(pos *components.PositionComponent) cp.Vector {
	return cp.Vector{X: pos.X, Y: pos.Y}
}
