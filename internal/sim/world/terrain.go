package world

import (
	"math/rand"

	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
	"wildgrid/internal/grid"
)

// Terrain answers the movement questions behaviors ask: can I leave this
// cell that way, which exits are free, and which cells can I see. It is
// backed by the obstacle index; the grid boundary counts as an obstacle.
//
// Visibility is a plain clipped Chebyshev square — line-of-sight occlusion
// belongs to the excluded map layer.
type Terrain struct {
	obstacles *grid.Single
	rng       *rand.Rand
}

func NewTerrain(obstacles *grid.Single, rng *rand.Rand) *Terrain {
	return &Terrain{obstacles: obstacles, rng: rng}
}

// IsObstacle reports whether stepping from (x, y) in the given direction is
// blocked by the boundary or by an obstacle entity.
func (t *Terrain) IsObstacle(x, y int, dir geom.Side) bool {
	dx, dy := dir.Offset()
	nx, ny := x+dx, y+dy
	if !t.obstacles.InBounds(nx, ny) {
		return true
	}
	return t.obstacles.Get(nx, ny) != ecs.None
}

// FreeExitRandomised returns an unblocked direction out of (x, y), chosen
// uniformly among the free ones, or false when the cell is boxed in.
func (t *Terrain) FreeExitRandomised(x, y int) (geom.Side, bool) {
	exits := geom.Exits()
	t.rng.Shuffle(len(exits), func(i, j int) {
		exits[i], exits[j] = exits[j], exits[i]
	})
	for _, s := range exits {
		if !t.IsObstacle(x, y, s) {
			return s, true
		}
	}
	return geom.Here, false
}

// VisibleCells returns the packed coordinates of every in-bounds cell within
// Chebyshev distance radius of (x, y), including the origin.
func (t *Terrain) VisibleCells(x, y, radius int) []uint64 {
	if radius < 0 {
		radius = -radius
	}
	out := make([]uint64, 0, (2*radius+1)*(2*radius+1))
	for cy := y - radius; cy <= y+radius; cy++ {
		for cx := x - radius; cx <= x+radius; cx++ {
			if t.obstacles.InBounds(cx, cy) {
				out = append(out, geom.Pack(cx, cy))
			}
		}
	}
	return out
}
