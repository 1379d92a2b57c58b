package world

import "wildgrid/internal/ecs"

// GrazeBehavior is the idle fallback: amble to a random free neighbouring
// cell. Its score is a low constant so any real urgency outranks it.
type GrazeBehavior struct {
	w    *World
	self ecs.ID
	cur  Position
}

// grazeScore keeps grazing strictly below every distance-normalized urgency
// that actually fires.
const grazeScore = 0.05

func NewGrazeBehavior(w *World) *GrazeBehavior {
	return &GrazeBehavior{w: w, self: ecs.None}
}

func (b *GrazeBehavior) Name() string { return "graze" }

func (b *GrazeBehavior) Evaluate(id ecs.ID) float64 {
	p, ok := b.w.pos.Get(id)
	if !ok || !b.w.speed.Has(id) {
		return 0
	}
	b.self = id
	b.cur = p
	return grazeScore
}

func (b *GrazeBehavior) Update() float64 {
	dir, ok := b.w.terrain.FreeExitRandomised(b.cur.X, b.cur.Y)
	if !ok {
		return 0
	}
	return stepOrDetour(b.w, b.self, b.cur.X, b.cur.Y, dir)
}
