package world

import (
	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
)

// FlockBehavior pulls a grouped creature toward the centroid of the group
// members it can currently see. Urgency grows with distance from the
// centroid, normalized by sight radius.
type FlockBehavior struct {
	w *World

	// Scratch between Evaluate and Update.
	self   ecs.ID
	cur    Position
	center Position
}

func NewFlockBehavior(w *World) *FlockBehavior {
	return &FlockBehavior{w: w, self: ecs.None}
}

func (b *FlockBehavior) Name() string { return "flock" }

func (b *FlockBehavior) Evaluate(id ecs.ID) float64 {
	w := b.w
	b.self = id

	p, hasPos := w.pos.Get(id)
	sight, hasSight := w.sight.Get(id)
	grp, hasGroup := w.group.Get(id)
	if !hasPos || !hasSight || !hasGroup || !w.speed.Has(id) {
		return 0
	}

	members := w.groups.Members(grp.ID)
	if len(members) < 2 {
		return 0
	}

	visible := w.creatures.EntitiesAt(w.terrain.VisibleCells(p.X, p.Y, sight.Radius))
	inSight := make(map[ecs.ID]struct{}, len(visible))
	for _, v := range visible {
		inSight[v] = struct{}{}
	}

	// Centroid of the *other* visible members; the self must not drag the
	// average toward itself.
	sumX, sumY, count := 0, 0, 0
	for _, member := range members {
		if member == id {
			continue
		}
		if _, seen := inSight[member]; !seen {
			continue
		}
		mp, ok := w.pos.Get(member)
		if !ok {
			continue
		}
		sumX += mp.X
		sumY += mp.Y
		count++
	}
	if count == 0 {
		return 0
	}

	b.cur = p
	b.center = Position{X: geom.FloorDiv(sumX, count), Y: geom.FloorDiv(sumY, count)}

	dist := geom.Chebyshev(p.X, p.Y, b.center.X, b.center.Y)
	if dist == 0 {
		return 0
	}
	return float64(dist) / float64(sight.Radius)
}

func (b *FlockBehavior) Update() float64 {
	dir := geom.SideAt(b.center.X-b.cur.X, b.center.Y-b.cur.Y)
	return stepOrDetour(b.w, b.self, b.cur.X, b.cur.Y, dir)
}
