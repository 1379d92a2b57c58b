package grid

import (
	"sort"

	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
)

// Multi is a multi-occupancy index: each cell may hold any number of
// entities (stacked dropped items, mostly). Keys are packed coordinates, so
// only occupied cells cost memory. As with Single, keeping an entity under
// at most one key is the caller's job: remove from the old cell before
// adding to the new one.
type Multi struct {
	cells map[uint64]map[ecs.ID]struct{}
}

func NewMulti() *Multi {
	return &Multi{cells: make(map[uint64]map[ecs.ID]struct{})}
}

// Add places id at (x, y).
func (m *Multi) Add(id ecs.ID, x, y int) {
	k := geom.Pack(x, y)
	cell := m.cells[k]
	if cell == nil {
		cell = make(map[ecs.ID]struct{})
		m.cells[k] = cell
	}
	cell[id] = struct{}{}
}

// Del removes id from (x, y); a no-op when absent.
func (m *Multi) Del(id ecs.ID, x, y int) {
	k := geom.Pack(x, y)
	cell := m.cells[k]
	if cell == nil {
		return
	}
	delete(cell, id)
	if len(cell) == 0 {
		delete(m.cells, k)
	}
}

// At returns the entities at (x, y), sorted by ID for deterministic
// iteration. Never nil.
func (m *Multi) At(x, y int) []ecs.ID {
	cell := m.cells[geom.Pack(x, y)]
	out := make([]ecs.ID, 0, len(cell))
	for id := range cell {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CountAt reports how many entities sit at (x, y).
func (m *Multi) CountAt(x, y int) int {
	return len(m.cells[geom.Pack(x, y)])
}
