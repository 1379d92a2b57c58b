package ecs

import "testing"

func TestStore_CreateDelete(t *testing.T) {
	s := NewStore()

	a := s.Create()
	b := s.Create()
	if a == b {
		t.Fatalf("create handed out the same id twice: %d", a)
	}
	if !s.Alive(a) || !s.Alive(b) {
		t.Fatalf("fresh entities must be alive")
	}
	if s.Count() != 2 {
		t.Fatalf("count = %d, want 2", s.Count())
	}

	s.Delete(a)
	if s.Alive(a) {
		t.Fatalf("deleted entity still alive")
	}
	if s.Count() != 1 {
		t.Fatalf("count after delete = %d, want 1", s.Count())
	}
	s.Delete(a) // double delete is a no-op
	if s.Count() != 1 {
		t.Fatalf("double delete changed the count")
	}

	// Freed ids are recycled.
	c := s.Create()
	if c != a {
		t.Fatalf("create after delete = %d, want recycled %d", c, a)
	}
}

func TestStore_AliveBounds(t *testing.T) {
	s := NewStore()
	s.Create()

	if s.Alive(None) {
		t.Fatalf("none must never be alive")
	}
	if s.Alive(ID(99)) {
		t.Fatalf("never-created id reported alive")
	}
	if !ID(0).Valid() || None.Valid() {
		t.Fatalf("id validity is wrong")
	}
}

func TestTable_AttachDetach(t *testing.T) {
	s := NewStore()
	tab := NewTable[int](s)
	id := s.Create()

	if tab.Has(id) {
		t.Fatalf("component present before attach")
	}
	if _, ok := tab.Get(id); ok {
		t.Fatalf("get on absent component reported ok")
	}
	if tab.Ref(id) != nil {
		t.Fatalf("ref on absent component must be nil")
	}

	tab.Attach(id, 42)
	v, ok := tab.Get(id)
	if !ok || v != 42 {
		t.Fatalf("get = (%d, %v), want (42, true)", v, ok)
	}
	*tab.Ref(id) = 7
	if v, _ := tab.Get(id); v != 7 {
		t.Fatalf("ref mutation not visible, got %d", v)
	}

	tab.Detach(id)
	if tab.Has(id) {
		t.Fatalf("component present after detach")
	}
	tab.Detach(id) // no-op
	tab.Attach(None, 1)
	if tab.Has(None) {
		t.Fatalf("attach to none must be rejected")
	}
}

// A zero-valued component is still a component: presence must be tracked
// independently of the value.
func TestTable_ZeroValuePresence(t *testing.T) {
	s := NewStore()
	tab := NewTable[struct{}](s)
	id := s.Create()

	tab.Attach(id, struct{}{})
	if !tab.Has(id) {
		t.Fatalf("zero-sized marker component not tracked")
	}
}

func TestStore_DeleteClearsTables(t *testing.T) {
	s := NewStore()
	ints := NewTable[int](s)
	strs := NewTable[string](s)

	id := s.Create()
	ints.Attach(id, 5)
	strs.Attach(id, "wolf")

	s.Delete(id)
	if ints.Has(id) || strs.Has(id) {
		t.Fatalf("delete must detach every component")
	}

	// The recycled id starts with no components and no stale values.
	again := s.Create()
	if again != id {
		t.Fatalf("expected id recycling, got %d want %d", again, id)
	}
	if ints.Has(again) || strs.Has(again) {
		t.Fatalf("recycled entity inherited components")
	}
}
