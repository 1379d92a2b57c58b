package world

import (
	"sort"

	"wildgrid/internal/ecs"
)

// Groups is the membership lookup the flocking behavior needs: which
// creatures belong to which herd. Broader group bookkeeping (leadership,
// diplomacy) is out of scope.
type Groups struct {
	members map[int]map[ecs.ID]struct{}
}

func NewGroups() *Groups {
	return &Groups{members: make(map[int]map[ecs.ID]struct{})}
}

func (g *Groups) Join(groupID int, id ecs.ID) {
	set := g.members[groupID]
	if set == nil {
		set = make(map[ecs.ID]struct{})
		g.members[groupID] = set
	}
	set[id] = struct{}{}
}

func (g *Groups) Leave(groupID int, id ecs.ID) {
	set := g.members[groupID]
	if set == nil {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(g.members, groupID)
	}
}

// Members returns the group sorted by ID, so centroid sums are
// deterministic.
func (g *Groups) Members(groupID int) []ecs.ID {
	set := g.members[groupID]
	out := make([]ecs.ID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g *Groups) Size(groupID int) int {
	return len(g.members[groupID])
}
