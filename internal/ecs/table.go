package ecs

// Table stores one component kind, indexed densely by entity ID. Zero values
// are never exposed: presence is tracked separately so a component whose zero
// value is meaningful (markers, counters at 0) still round-trips.
type Table[T any] struct {
	data    []T
	present []bool
}

// NewTable registers a component table with the store so that Store.Delete
// detaches the component along with the entity.
func NewTable[T any](s *Store) *Table[T] {
	t := &Table[T]{}
	s.register(t)
	return t
}

// Attach sets the component for id, replacing any previous value.
func (t *Table[T]) Attach(id ID, v T) {
	if id < 0 {
		return
	}
	t.grow(int(id) + 1)
	t.data[id] = v
	t.present[id] = true
}

// Detach removes the component; a no-op when absent.
func (t *Table[T]) Detach(id ID) {
	if id >= 0 && int(id) < len(t.present) {
		var zero T
		t.data[id] = zero
		t.present[id] = false
	}
}

func (t *Table[T]) Has(id ID) bool {
	return id >= 0 && int(id) < len(t.present) && t.present[id]
}

// Get returns a copy of the component.
func (t *Table[T]) Get(id ID) (T, bool) {
	if !t.Has(id) {
		var zero T
		return zero, false
	}
	return t.data[id], true
}

// Ref returns a pointer into the table for in-place mutation, or nil when the
// entity lacks the component. The pointer is invalidated by the next Attach.
func (t *Table[T]) Ref(id ID) *T {
	if !t.Has(id) {
		return nil
	}
	return &t.data[id]
}

func (t *Table[T]) grow(n int) {
	for len(t.data) < n {
		var zero T
		t.data = append(t.data, zero)
		t.present = append(t.present, false)
	}
}

func (t *Table[T]) clear(id ID) { t.Detach(id) }
