package world

import (
	"testing"

	"wildgrid/internal/geom"
)

func TestTerrain_BoundaryBlocks(t *testing.T) {
	w := newTestWorld(t, 4, 4)
	tr := w.Terrain()

	if !tr.IsObstacle(0, 0, geom.North) || !tr.IsObstacle(0, 0, geom.West) {
		t.Fatalf("the grid boundary must count as an obstacle")
	}
	if tr.IsObstacle(0, 0, geom.East) || tr.IsObstacle(0, 0, geom.South) {
		t.Fatalf("open cells reported blocked")
	}
}

func TestTerrain_ObstacleBlocks(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	if _, err := w.SpawnObstacle(boulderDef, 3, 2); err != nil {
		t.Fatalf("spawn obstacle: %v", err)
	}
	tr := w.Terrain()

	if !tr.IsObstacle(2, 2, geom.East) {
		t.Fatalf("boulder not reported as blocking")
	}
	if tr.IsObstacle(2, 2, geom.West) {
		t.Fatalf("open cell reported blocked")
	}
}

func TestTerrain_FreeExitRandomised(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	tr := w.Terrain()

	// An open cell always has an exit, and repeated draws stay legal.
	for i := 0; i < 20; i++ {
		dir, ok := tr.FreeExitRandomised(4, 4)
		if !ok || dir == geom.Here {
			t.Fatalf("open cell reported boxed in")
		}
		if tr.IsObstacle(4, 4, dir) {
			t.Fatalf("free exit %v is blocked", dir)
		}
	}

	// Wall the corner off completely.
	for _, cell := range [][2]int{{1, 0}, {1, 1}, {0, 1}} {
		if _, err := w.SpawnObstacle(boulderDef, cell[0], cell[1]); err != nil {
			t.Fatalf("spawn obstacle: %v", err)
		}
	}
	if _, ok := tr.FreeExitRandomised(0, 0); ok {
		t.Fatalf("boxed-in cell reported a free exit")
	}
}

func TestTerrain_VisibleCells(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	tr := w.Terrain()

	// Mid-grid, radius 1: the full 3×3 block, origin included.
	got := tr.VisibleCells(4, 4, 1)
	if len(got) != 9 {
		t.Fatalf("visible cells = %d, want 9", len(got))
	}
	seen := map[uint64]bool{}
	for _, c := range got {
		seen[c] = true
	}
	if !seen[geom.Pack(4, 4)] {
		t.Fatalf("origin missing from its own visibility set")
	}

	// Corner, radius 2: the 5×5 block clips to the 3×3 in-bounds quadrant.
	if got := tr.VisibleCells(0, 0, 2); len(got) != 9 {
		t.Fatalf("clipped visible cells = %d, want 9", len(got))
	}
}

func TestGroups_Membership(t *testing.T) {
	g := NewGroups()
	g.Join(1, 9)
	g.Join(1, 3)
	g.Join(1, 5)
	g.Join(2, 4)

	if g.Size(1) != 3 || g.Size(2) != 1 {
		t.Fatalf("sizes = %d, %d; want 3, 1", g.Size(1), g.Size(2))
	}
	m := g.Members(1)
	if len(m) != 3 || m[0] != 3 || m[1] != 5 || m[2] != 9 {
		t.Fatalf("members = %v, want [3 5 9] sorted", m)
	}

	g.Leave(1, 5)
	if g.Size(1) != 2 {
		t.Fatalf("size after leave = %d, want 2", g.Size(1))
	}
	g.Leave(3, 1) // leaving a group that does not exist is a no-op
	if g.Size(99) != 0 || len(g.Members(99)) != 0 {
		t.Fatalf("unknown group must read empty")
	}
}

func TestStamina_FloorsAndCaps(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	id := mustSpawn(t, w, testSpecies("deer", 3, 8, 6, 14), 2, 2)

	w.stamina.Consume(id, 60) // more than the reserve
	if st, _ := w.StaminaOf(id); st.Value != 0 {
		t.Fatalf("stamina = %v, want floor at 0", st.Value)
	}
	w.stamina.Restore(id, 20)
	if st, _ := w.StaminaOf(id); st.Value != 20 {
		t.Fatalf("stamina = %v, want 20", st.Value)
	}
	w.stamina.Restore(id, 100) // more than the max
	if st, _ := w.StaminaOf(id); st.Value != 50 {
		t.Fatalf("stamina = %v, want cap at max 50", st.Value)
	}

	// Entities without the component are silently exempt.
	rock, _ := w.SpawnObstacle(boulderDef, 5, 5)
	w.stamina.Consume(rock, 10)
	w.stamina.Restore(rock, 10)
}
