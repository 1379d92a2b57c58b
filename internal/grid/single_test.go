package grid

import (
	"sort"
	"testing"

	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
)

func TestSingle_SetGetDel(t *testing.T) {
	g := NewSingle(8, 8)

	if got := g.Get(3, 4); got != ecs.None {
		t.Fatalf("fresh cell should be empty, got %d", got)
	}
	if prev := g.Set(7, 3, 4); prev != ecs.None {
		t.Fatalf("set on empty cell returned %d", prev)
	}
	if !g.Holds(7, 3, 4) {
		t.Fatalf("grid does not hold 7 at (3,4)")
	}
	if g.IsEmpty(3, 4) {
		t.Fatalf("occupied cell reads empty")
	}
	if prev := g.Set(9, 3, 4); prev != 7 {
		t.Fatalf("overwrite returned %d, want 7", prev)
	}
	if prev := g.Del(3, 4); prev != 9 {
		t.Fatalf("del returned %d, want 9", prev)
	}
	if !g.IsEmpty(3, 4) {
		t.Fatalf("cell not empty after del")
	}
}

func TestSingle_OutOfBounds(t *testing.T) {
	g := NewSingle(4, 4)

	if g.InBounds(-1, 0) || g.InBounds(0, 4) || g.InBounds(4, 0) {
		t.Fatalf("out-of-bounds coordinate reported in bounds")
	}
	if got := g.Get(-1, 2); got != ecs.None {
		t.Fatalf("out-of-bounds get = %d, want none", got)
	}
	if prev := g.Set(5, 9, 9); prev != ecs.None {
		t.Fatalf("out-of-bounds set returned %d", prev)
	}
	if !g.IsEmpty(-3, -3) {
		t.Fatalf("out-of-bounds cell should read empty")
	}
	if g.Holds(5, 9, 9) {
		t.Fatalf("out-of-bounds set must not store anything")
	}
}

func TestSingle_Move(t *testing.T) {
	g := NewSingle(8, 8)
	g.Set(1, 2, 2)

	prev, ok := g.Move(2, 2, 3, 3)
	if !ok || prev != ecs.None {
		t.Fatalf("move to empty cell: prev=%d ok=%v", prev, ok)
	}
	if !g.Holds(1, 3, 3) || !g.IsEmpty(2, 2) {
		t.Fatalf("entity did not relocate")
	}

	// Moving onto an occupied cell overwrites and surfaces the collision.
	g.Set(2, 4, 4)
	prev, ok = g.Move(3, 3, 4, 4)
	if !ok || prev != 2 {
		t.Fatalf("move onto occupied cell: prev=%d ok=%v, want 2 true", prev, ok)
	}
	if !g.Holds(1, 4, 4) {
		t.Fatalf("mover did not end up on destination")
	}

	prev, ok = g.Move(4, 4, 8, 4)
	if ok || prev != ecs.None {
		t.Fatalf("out-of-bounds move: prev=%d ok=%v", prev, ok)
	}
	if !g.Holds(1, 4, 4) {
		t.Fatalf("failed move must not mutate the grid")
	}
}

func TestSingle_EntitiesAt(t *testing.T) {
	g := NewSingle(8, 8)
	g.Set(10, 1, 1)
	g.Set(11, 2, 5)

	cells := []uint64{
		geom.Pack(1, 1),
		geom.Pack(3, 3), // empty
		geom.Pack(2, 5),
		geom.Pack(20, 20), // out of bounds
	}
	got := g.EntitiesAt(cells)
	if len(got) != 2 || got[0] != 10 || got[1] != 11 {
		t.Fatalf("entitiesAt = %v, want [10 11]", got)
	}
}

func TestSingle_ClosestEntities_OccupiedOrigin(t *testing.T) {
	g := NewSingle(8, 8)
	g.Set(1, 4, 4)
	g.Set(2, 4, 5)

	got := g.ClosestEntities(4, 4, 3)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("occupied origin must short-circuit to itself, got %v", got)
	}
}

func TestSingle_ClosestEntities_StopsAtFirstRing(t *testing.T) {
	g := NewSingle(16, 16)
	g.Set(1, 9, 8) // distance 1
	g.Set(2, 8, 7) // distance 1
	g.Set(3, 8, 5) // distance 3, must not appear

	got := g.ClosestEntities(8, 8, 5)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("closest = %v, want ring-1 occupants [1 2]", got)
	}
}

func TestSingle_ClosestEntities_Limits(t *testing.T) {
	g := NewSingle(16, 16)
	g.Set(1, 8, 5) // distance 3 from (8,8)

	if got := g.ClosestEntities(8, 8, 0); got != nil {
		t.Fatalf("maxRadius 0 with empty origin must scan nothing, got %v", got)
	}
	if got := g.ClosestEntities(8, 8, 2); len(got) != 0 {
		t.Fatalf("radius 2 must not reach distance 3, got %v", got)
	}
	// Negative radius is normalized by absolute value.
	if got := g.ClosestEntities(8, 8, -3); len(got) != 1 || got[0] != 1 {
		t.Fatalf("maxRadius -3 = %v, want [1]", got)
	}
}

func TestSingle_ClosestEntities_ClipsAtBoundary(t *testing.T) {
	g := NewSingle(8, 8)
	g.Set(1, 2, 0)

	// Searching from the corner: most ring cells fall outside the grid and
	// are skipped silently.
	got := g.ClosestEntities(0, 0, 4)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("corner search = %v, want [1]", got)
	}
}

func TestSingle_EntitiesAtRadius(t *testing.T) {
	g := NewSingle(16, 16)
	g.Set(1, 8, 8)  // origin
	g.Set(2, 9, 9)  // distance 1
	g.Set(3, 10, 8) // distance 2
	g.Set(4, 6, 10) // distance 2

	if got := g.EntitiesAtRadius(8, 8, -1); got != nil {
		t.Fatalf("negative radius must yield nothing, got %v", got)
	}
	if got := g.EntitiesAtRadius(8, 8, 0); len(got) != 1 || got[0] != 1 {
		t.Fatalf("radius 0 = %v, want [1]", got)
	}
	if got := g.EntitiesAtRadius(8, 8, 1); len(got) != 1 || got[0] != 2 {
		t.Fatalf("radius 1 = %v, want [2]", got)
	}
	got := g.EntitiesAtRadius(8, 8, 2)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("radius 2 = %v, want [3 4]", got)
	}
}

// The inclusive scan must equal the union of the per-ring scans, ring by
// ring, with no early stop on the first occupied ring.
func TestSingle_EntitiesWithinRadius_UnionOfRings(t *testing.T) {
	g := NewSingle(16, 16)
	g.Set(1, 8, 8)
	g.Set(2, 9, 8)
	g.Set(3, 6, 6)
	g.Set(4, 11, 8)
	g.Set(5, 8, 12)
	g.Set(6, 0, 0) // distance 8, outside every scan below

	for r := 0; r <= 4; r++ {
		var union []ecs.ID
		for d := 0; d <= r; d++ {
			union = append(union, g.EntitiesAtRadius(8, 8, d)...)
		}
		got := g.EntitiesWithinRadius(8, 8, r)

		sort.Slice(union, func(i, j int) bool { return union[i] < union[j] })
		sorted := append([]ecs.ID(nil), got...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		if len(sorted) != len(union) {
			t.Fatalf("r=%d: within = %v, union of rings = %v", r, got, union)
		}
		for i := range sorted {
			if sorted[i] != union[i] {
				t.Fatalf("r=%d: within = %v, union of rings = %v", r, got, union)
			}
		}
	}
}

func TestSingle_EntitiesWithinRadius_RingOrder(t *testing.T) {
	g := NewSingle(16, 16)
	g.Set(9, 8, 8)  // ring 0
	g.Set(7, 9, 9)  // ring 1
	g.Set(5, 10, 8) // ring 2

	got := g.EntitiesWithinRadius(8, 8, 2)
	if len(got) != 3 || got[0] != 9 || got[1] != 7 || got[2] != 5 {
		t.Fatalf("within = %v, want closest-ring-first [9 7 5]", got)
	}
}

// Each ring at distance d has exactly 8*d cells; the chained perimeter walk
// must visit all of them once.
func TestSingle_RingCoverage(t *testing.T) {
	g := NewSingle(32, 32)
	cx, cy := 16, 16
	for d := 1; d <= 4; d++ {
		g.Clear()
		want := 0
		for x := cx - d; x <= cx+d; x++ {
			for y := cy - d; y <= cy+d; y++ {
				if geom.Chebyshev(cx, cy, x, y) == d {
					g.Set(ecs.ID(want+1), x, y)
					want++
				}
			}
		}
		if want != 8*d {
			t.Fatalf("ring %d setup: placed %d, want %d", d, want, 8*d)
		}
		got := g.EntitiesAtRadius(cx, cy, d)
		if len(got) != want {
			t.Fatalf("ring %d: walk found %d occupants, want %d", d, len(got), want)
		}
		seen := map[ecs.ID]bool{}
		for _, id := range got {
			if seen[id] {
				t.Fatalf("ring %d: duplicate occupant %d", d, id)
			}
			seen[id] = true
		}
	}
}
