package systems

import (
	"github.com/jakecoffman/cp"
)

// SpawnPositionPool is a fixed ring of off-screen spawn points, generated once.
//
// Each point lies margin pixels outside one edge of the width x height screen.
// The edge is chosen with probability proportional to its length, the
// coordinate along the edge is uniform over [-margin, length+margin].
type SpawnPositionPool struct {
	positions []cp.Vector
	cursor    int
}

// NewSpawnPositionPool generates size positions (at least one).
func NewSpawnPositionPool(rng RandomSource, size int, width, height, margin float64) *SpawnPositionPool {
	if size < 1 {
		size = 1
	}
	pool := &SpawnPositionPool{positions: make([]cp.Vector, size)}

	perimeter := 2 * (width + height)
	for i := range pool.positions {
		edge := rng.Float64() * perimeter
		switch {
		case edge < width: // top
			pool.positions[i] = cp.Vector{X: Uniform(rng, -margin, width+margin), Y: -margin}
		case edge < 2*width: // bottom
			pool.positions[i] = cp.Vector{X: Uniform(rng, -margin, width+margin), Y: height + margin}
		case edge < 2*width+height: // left
			pool.positions[i] = cp.Vector{X: -margin, Y: Uniform(rng, -margin, height+margin)}
		default: // right
			pool.positions[i] = cp.Vector{X: width + margin, Y: Uniform(rng, -margin, height+margin)}
		}
	}
	return pool
}

// Next returns the position under the cursor and advances it, wrapping at the end.
func (p *SpawnPositionPool) Next() cp.Vector {
	pos := p.positions[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.positions)
	return pos
}

// Len returns the pool size.
func (p *SpawnPositionPool) Len() int {
	return len(p.positions)
}

// At returns the i-th generated position.
func (p *SpawnPositionPool) At(i int) cp.Vector {
	return p.positions[i]
}
