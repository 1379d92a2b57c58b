// Package ecs provides a minimal entity/component store: densely assigned
// integer handles plus one typed table per component kind. Systems receive
// explicit *Store and *Table handles; there is no global registry.
package ecs

// ID is an opaque handle into a Store. IDs are assigned densely and reused
// after deletion.
type ID int32

// None marks the absence of an entity, both in component lookups and in the
// spatial indices.
const None ID = -1

func (id ID) Valid() bool { return id >= 0 }

// Store allocates entity IDs and fans Delete out to every registered table.
// Single-threaded by design, like the rest of the simulation.
type Store struct {
	alive  []bool
	free   []ID
	count  int
	tables []clearer
}

type clearer interface {
	clear(ID)
}

func NewStore() *Store {
	return &Store{}
}

// Create returns a fresh or recycled ID.
func (s *Store) Create() ID {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.alive[id] = true
		s.count++
		return id
	}
	id := ID(len(s.alive))
	s.alive = append(s.alive, true)
	s.count++
	return id
}

// Delete releases the ID and detaches all of its components.
func (s *Store) Delete(id ID) {
	if !s.Alive(id) {
		return
	}
	for _, t := range s.tables {
		t.clear(id)
	}
	s.alive[id] = false
	s.free = append(s.free, id)
	s.count--
}

func (s *Store) Alive(id ID) bool {
	return id >= 0 && int(id) < len(s.alive) && s.alive[id]
}

// Count reports the number of live entities.
func (s *Store) Count() int { return s.count }

func (s *Store) register(t clearer) {
	s.tables = append(s.tables, t)
}
