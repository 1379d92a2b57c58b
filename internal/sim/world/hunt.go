package world

import (
	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
)

// HuntBehavior drives a carnivore toward the nearest visible herbivore and
// attacks once adjacent.
type HuntBehavior struct {
	w *World

	self ecs.ID
	cur  Position
	prey ecs.ID
	dist int
}

func NewHuntBehavior(w *World) *HuntBehavior {
	return &HuntBehavior{w: w, self: ecs.None, prey: ecs.None}
}

func (b *HuntBehavior) Name() string { return "hunt" }

func (b *HuntBehavior) Evaluate(id ecs.ID) float64 {
	w := b.w
	b.self = id
	b.prey = ecs.None

	if !w.carnivore.Has(id) || !w.speed.Has(id) {
		return 0
	}
	p, hasPos := w.pos.Get(id)
	sight, hasSight := w.sight.Get(id)
	if !hasPos || !hasSight {
		return 0
	}

	prey, dist := w.closestMatching(p.X, p.Y, sight.Radius, w.herbivore.Has)
	if prey == ecs.None {
		return 0
	}
	b.cur = p
	b.prey = prey
	b.dist = dist
	return float64(sight.Radius-dist+1) / float64(sight.Radius)
}

func (b *HuntBehavior) Update() float64 {
	w := b.w
	if b.dist <= 1 {
		delay, ok := w.Commit(w.Attack(b.self, b.prey))
		if !ok {
			return 0
		}
		return delay
	}
	pp, ok := w.pos.Get(b.prey)
	if !ok {
		return 0
	}
	dir := geom.SideAt(pp.X-b.cur.X, pp.Y-b.cur.Y)
	return stepOrDetour(w, b.self, b.cur.X, b.cur.Y, dir)
}
