package world

import (
	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
)

// FleeBehavior makes a herbivore run from the closest visible carnivore.
// The ring scan works outward from the creature, so the first predator
// found is (approximately) the nearest one; urgency is highest when the
// threat is adjacent.
type FleeBehavior struct {
	w *World

	self   ecs.ID
	cur    Position
	threat Position
}

func NewFleeBehavior(w *World) *FleeBehavior {
	return &FleeBehavior{w: w, self: ecs.None}
}

func (b *FleeBehavior) Name() string { return "flee" }

func (b *FleeBehavior) Evaluate(id ecs.ID) float64 {
	w := b.w
	b.self = id

	if !w.herbivore.Has(id) || !w.speed.Has(id) {
		return 0
	}
	p, hasPos := w.pos.Get(id)
	sight, hasSight := w.sight.Get(id)
	if !hasPos || !hasSight {
		return 0
	}

	threat, dist := w.closestMatching(p.X, p.Y, sight.Radius, w.carnivore.Has)
	if threat == ecs.None {
		return 0
	}
	tp, ok := w.pos.Get(threat)
	if !ok {
		return 0
	}
	b.cur = p
	b.threat = tp
	// Adjacent predator → 1.0, fading linearly to the sight edge.
	return float64(sight.Radius-dist+1) / float64(sight.Radius)
}

func (b *FleeBehavior) Update() float64 {
	away := geom.SideAt(b.cur.X-b.threat.X, b.cur.Y-b.threat.Y)
	return stepOrDetour(b.w, b.self, b.cur.X, b.cur.Y, away)
}

// closestMatching scans rings outward from (x, y) for the nearest live
// creature matching the predicate, skipping the origin (that is the asker
// itself). Returns the match and its ring distance, or (None, 0).
func (w *World) closestMatching(x, y, radius int, match func(ecs.ID) bool) (ecs.ID, int) {
	for d := 1; d <= radius; d++ {
		for _, id := range w.creatures.EntitiesAtRadius(x, y, d) {
			if match(id) && !w.dead.Has(id) {
				return id, d
			}
		}
	}
	return ecs.None, 0
}
