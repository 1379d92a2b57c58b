package world

import "wildgrid/internal/ecs"

// Action is one agent's attempted world mutation. The protocol is two-phase:
//
//	Try  — pure validation plus cost/delay computation. Must not touch world
//	       state; it may only fill the action's own cost, delay and resolved
//	       fields. Returns false when a precondition fails, in which case
//	       the actor incurs no delay and no cost.
//	Do   — the commit, run only after Try returned true. Consumes stamina,
//	       resolves outcomes, mutates components and the spatial indices.
//	       Must leave the world consistent even on its no-effect branches.
//
// Actions are transient: built by a factory on World, validated, optionally
// committed, then discarded.
type Action interface {
	Verb() string
	Actor() ecs.ID
	Target() ecs.ID
	Try() bool
	Do()

	// Cost is the stamina debit on success; Delay the simulated time before
	// the actor may act again. Both are populated by Try.
	Cost() float64
	Delay() float64
}

// actionBase carries the fields every action shares; concrete actions embed
// it and fill cost/delay/target during Try.
type actionBase struct {
	verb   string
	actor  ecs.ID
	target ecs.ID
	cost   float64
	delay  float64
}

func newActionBase(verb string, actor ecs.ID) actionBase {
	return actionBase{verb: verb, actor: actor, target: ecs.None}
}

func (b *actionBase) Verb() string   { return b.verb }
func (b *actionBase) Actor() ecs.ID  { return b.actor }
func (b *actionBase) Target() ecs.ID { return b.target }
func (b *actionBase) Cost() float64  { return b.cost }
func (b *actionBase) Delay() float64 { return b.delay }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
