// Package grid implements the two spatial occupancy indices of the
// simulation: Single (one entity per cell) and Multi (many entities per
// cell). Both hold back-references only; entity state lives in the
// component store.
//
// Out-of-bounds coordinates are never an error anywhere in this package:
// reads treat them as "no occupant" and the ring walks silently clip them.
package grid

import (
	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
)

// Single is a dense single-occupancy index over a fixed width×height grid.
// At most one entity per cell; callers keep an entity in at most one cell by
// removing before re-inserting on relocation.
type Single struct {
	width  int
	height int
	cells  []ecs.ID
}

func NewSingle(width, height int) *Single {
	g := &Single{
		width:  width,
		height: height,
		cells:  make([]ecs.ID, width*height),
	}
	g.Clear()
	return g
}

func (g *Single) Width() int  { return g.width }
func (g *Single) Height() int { return g.height }

// Clear empties every cell.
func (g *Single) Clear() {
	for i := range g.cells {
		g.cells[i] = ecs.None
	}
}

// InBounds is a pure boundary check, independent of cell content.
func (g *Single) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Holds reports whether the cell is in bounds and currently holds id.
func (g *Single) Holds(id ecs.ID, x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.idx(x, y)] == id
}

// Get returns the occupant, or ecs.None for an empty or out-of-bounds cell.
func (g *Single) Get(x, y int) ecs.ID {
	if !g.InBounds(x, y) {
		return ecs.None
	}
	return g.cells[g.idx(x, y)]
}

// Set places id and returns the previous occupant. Out of bounds is a no-op
// returning ecs.None.
func (g *Single) Set(id ecs.ID, x, y int) ecs.ID {
	if !g.InBounds(x, y) {
		return ecs.None
	}
	i := g.idx(x, y)
	old := g.cells[i]
	g.cells[i] = id
	return old
}

// Del empties the cell and returns the previous occupant.
func (g *Single) Del(x, y int) ecs.ID {
	return g.Set(ecs.None, x, y)
}

// IsEmpty reports whether an in-bounds cell has no occupant; out-of-bounds
// cells read as empty.
func (g *Single) IsEmpty(x, y int) bool {
	return g.Get(x, y) == ecs.None
}

// Move relocates the occupant of (oldX, oldY) to (x, y). This is an
// overwrite, not a swap: the destination's previous occupant is returned and
// the caller must treat a valid return as a collision to resolve. ok is
// false, with no mutation, when either endpoint is out of bounds.
func (g *Single) Move(oldX, oldY, x, y int) (prev ecs.ID, ok bool) {
	if !g.InBounds(oldX, oldY) || !g.InBounds(x, y) {
		return ecs.None, false
	}
	src := g.idx(oldX, oldY)
	dst := g.idx(x, y)
	id := g.cells[src]
	g.cells[src] = ecs.None
	prev = g.cells[dst]
	g.cells[dst] = id
	return prev, true
}

// EntitiesAt dereferences a batch of packed coordinates (typically the cells
// visible to an observer) and returns the occupants found. Occupants are
// distinct because each entity sits in at most one cell.
func (g *Single) EntitiesAt(cells []uint64) []ecs.ID {
	out := make([]ecs.ID, 0, 8)
	for _, c := range cells {
		x, y := geom.Unpack(c)
		if id := g.Get(x, y); id != ecs.None {
			out = append(out, id)
		}
	}
	return out
}

// ClosestEntities expands ring by ring from (x, y), collecting occupants,
// and stops at the first ring that yields any. An occupied origin
// short-circuits to that single occupant regardless of maxRadius; an empty
// origin with maxRadius 0 scans nothing. A negative maxRadius is normalized
// by absolute value. Entities within the winning ring come back in
// perimeter-walk order, not sorted by exact distance.
func (g *Single) ClosestEntities(x, y, maxRadius int) []ecs.ID {
	if id := g.Get(x, y); id != ecs.None {
		return []ecs.ID{id}
	}
	if maxRadius == 0 {
		return nil
	}
	maxRadius = geom.AbsInt(maxRadius)

	var out []ecs.ID
	// The cursor starts inside ring 1's north row and, after each full
	// perimeter, ends up inside the next ring's north row.
	curX, curY := x, y-1
	for d := 1; d <= maxRadius; d++ {
		out = g.walkRing(&curX, &curY, x, y, d, out)
		if len(out) > 0 {
			return out
		}
	}
	return out
}

// EntitiesAtRadius collects the occupants of the single ring at exactly
// Chebyshev distance r. r = 0 is the origin cell alone; a negative r yields
// nothing. Never stops early.
func (g *Single) EntitiesAtRadius(x, y, r int) []ecs.ID {
	if r < 0 {
		return nil
	}
	if r == 0 {
		if id := g.Get(x, y); id != ecs.None {
			return []ecs.ID{id}
		}
		return nil
	}
	// Place the cursor where the expanding search would have left it for
	// this ring.
	curX, curY := x-r+1, y-r
	return g.walkRing(&curX, &curY, x, y, r, nil)
}

// EntitiesWithinRadius collects occupants of every ring from 0 up to r,
// appending in ring order: the result is ordered closest-ring-first, with
// perimeter-walk order inside each ring. The result set equals the union of
// EntitiesAtRadius over 0..r.
func (g *Single) EntitiesWithinRadius(x, y, r int) []ecs.ID {
	var out []ecs.ID
	if id := g.Get(x, y); id != ecs.None {
		out = append(out, id)
	}
	curX, curY := x, y-1
	for d := 1; d <= r; d++ {
		out = g.walkRing(&curX, &curY, x, y, d, out)
	}
	return out
}

// walkRing traces the perimeter of the ring at distance d around (x, y):
// east along the north row, south along the east column, west along the
// south row, north along the west column. Cells outside the grid are
// skipped. The cursor is advanced in place so consecutive rings chain; it
// exits positioned within the north row of ring d+1.
func (g *Single) walkRing(curX, curY *int, x, y, d int, out []ecs.ID) []ecs.ID {
	maxX, maxY := x+d, y+d
	minX, minY := x-d, y-d

	for ; *curX < maxX; *curX++ {
		out = g.collect(*curX, *curY, out)
	}
	for ; *curY < maxY; *curY++ {
		out = g.collect(*curX, *curY, out)
	}
	for ; *curX > minX; *curX-- {
		out = g.collect(*curX, *curY, out)
	}
	for ; *curY >= minY; *curY-- {
		out = g.collect(*curX, *curY, out)
	}
	return out
}

func (g *Single) collect(x, y int, out []ecs.ID) []ecs.ID {
	if id := g.Get(x, y); id != ecs.None {
		out = append(out, id)
	}
	return out
}

func (g *Single) idx(x, y int) int { return y*g.width + x }
