package world

import (
	"go.uber.org/zap"

	"wildgrid/internal/ecs"
)

// GetAction picks up one item from the actor's cell into its inventory.
// Validation always succeeds; an empty cell makes the commit a harmless
// no-op (the turn is still spent looking down).
type GetAction struct {
	actionBase
	w *World
}

func (w *World) PickUp(actor ecs.ID) *GetAction {
	return &GetAction{actionBase: newActionBase("get", actor), w: w}
}

func (a *GetAction) Try() bool {
	a.cost = 0
	a.delay = a.w.actorDelay(a.actor, itemHandlingCost)
	return true
}

func (a *GetAction) Do() {
	w := a.w
	p := w.pos.Ref(a.actor)
	inv := w.inv.Ref(a.actor)
	if p == nil || inv == nil {
		w.log.Warn("get aborted: missing composition", zap.Int32("actor", int32(a.actor)))
		return
	}
	here := w.items.At(p.X, p.Y)
	if len(here) == 0 {
		return
	}
	itemID := here[0]

	w.items.Del(itemID, p.X, p.Y)
	w.pos.Detach(itemID)
	inv.Items = append(inv.Items, itemID)
	a.target = itemID

	w.msg.Send(a.actor, itemID, GetMsg{Item: w.msg.name(itemID)})
}

// DropAction puts the most recently acquired inventory item onto the
// actor's cell.
type DropAction struct {
	actionBase
	w *World
}

func (w *World) Drop(actor ecs.ID) *DropAction {
	return &DropAction{actionBase: newActionBase("drop", actor), w: w}
}

func (a *DropAction) Try() bool {
	a.cost = 0
	a.delay = a.w.actorDelay(a.actor, itemHandlingCost)
	return true
}

func (a *DropAction) Do() {
	w := a.w
	p := w.pos.Ref(a.actor)
	inv := w.inv.Ref(a.actor)
	if p == nil || inv == nil {
		w.log.Warn("drop aborted: missing composition", zap.Int32("actor", int32(a.actor)))
		return
	}
	if len(inv.Items) == 0 {
		return
	}
	itemID := inv.Items[len(inv.Items)-1]
	inv.Items = inv.Items[:len(inv.Items)-1]

	w.items.Add(itemID, p.X, p.Y)
	w.pos.Attach(itemID, Position{X: p.X, Y: p.Y})
	a.target = itemID

	w.msg.Send(a.actor, itemID, DropMsg{Item: w.msg.name(itemID)})
}

// itemHandlingCost is the base time cost of rummaging: half a step.
const itemHandlingCost = 0.5

// actorDelay derives a delay from the actor's speed attribute and a base
// cost; actors without Speed act instantly (the scheduler's retry delay
// still applies).
func (w *World) actorDelay(actor ecs.ID, baseCost float64) float64 {
	if sp := w.speed.Ref(actor); sp != nil {
		return sp.Value * baseCost
	}
	return 0
}
