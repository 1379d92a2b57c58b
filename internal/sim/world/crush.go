package world

import (
	"go.uber.org/zap"

	"wildgrid/internal/ecs"
)

// CrushAction smashes a crushable obstacle (a boulder, a shell) with a blunt
// weapon, destroying it and leaving rubble behind.
type CrushAction struct {
	actionBase
	w *World

	// Weapon is resolved during Try; exported so callers can report what was
	// swung.
	Weapon ecs.ID
}

func (w *World) Crush(actor, target ecs.ID) *CrushAction {
	a := &CrushAction{actionBase: newActionBase("crush", actor), w: w, Weapon: ecs.None}
	a.target = target
	return a
}

func (a *CrushAction) Try() bool {
	return tryDemolish(a.w, &a.actionBase, &a.Weapon, a.w.crushable.Has, Blunt)
}

func (a *CrushAction) Do() {
	demolish(a.w, &a.actionBase, a.w.crushable.Has, repeatItems("stone", a.w.tun.Crush.Byproducts))
}

// CutAction fells a choppable obstacle (a tree) with a slashing weapon. Same
// economy as crushing; only the damage class and the byproducts differ.
type CutAction struct {
	actionBase
	w *World

	Weapon ecs.ID
}

func (w *World) Cut(actor, target ecs.ID) *CutAction {
	a := &CutAction{actionBase: newActionBase("cut", actor), w: w, Weapon: ecs.None}
	a.target = target
	return a
}

func (a *CutAction) Try() bool {
	return tryDemolish(a.w, &a.actionBase, &a.Weapon, a.w.choppable.Has, Slash)
}

func (a *CutAction) Do() {
	// A felled tree yields one trunk, the rest branches.
	fallback := append([]string{"trunk"}, repeatItems("branch", a.w.tun.Crush.Byproducts-1)...)
	demolish(a.w, &a.actionBase, a.w.choppable.Has, fallback)
}

// tryDemolish validates an obstacle-destruction action: the target must
// carry the required marker and the actor must hold a weapon of the required
// class. Delay is the actor's speed; cost is delay / (strength + offset) —
// the stronger the actor, the cheaper the swing.
func tryDemolish(w *World, b *actionBase, weapon *ecs.ID, marked func(ecs.ID) bool, class DamageClass) bool {
	if !b.target.Valid() || !marked(b.target) {
		return false
	}
	*weapon = w.WeaponOf(b.actor, class)
	if *weapon == ecs.None {
		w.log.Info("no suitable weapon",
			zap.String("verb", b.verb),
			zap.Int32("actor", int32(b.actor)),
			zap.Int32("target", int32(b.target)))
		return false
	}
	sp := w.speed.Ref(b.actor)
	st := w.strength.Ref(b.actor)
	if sp == nil || st == nil {
		return false
	}
	b.delay = sp.Value
	b.cost = b.delay / (float64(st.Value) + w.tun.Crush.StrengthOffset)
	return true
}

// demolish commits the destruction: the obstacle's cell is cleared before
// the entity is removed so no stale reference survives, then the byproducts
// are dropped where it stood. Catalog byproducts win over the fallback list
// when the target carries a Kind.
func demolish(w *World, b *actionBase, marked func(ecs.ID) bool, fallback []string) {
	if !b.target.Valid() || !marked(b.target) {
		return
	}
	p, ok := w.pos.Get(b.target)
	if !ok {
		w.log.Warn("demolish aborted: target has no position",
			zap.String("verb", b.verb), zap.Int32("target", int32(b.target)))
		return
	}

	byproducts := w.byproductsFor(b.target, fallback)

	w.obstacles.Del(p.X, p.Y)
	w.msg.Send(b.actor, b.target, DestroyMsg{Verb: b.verb})
	w.store.Delete(b.target)

	for _, item := range byproducts {
		w.SpawnItem(item, p.X, p.Y)
	}

	w.stamina.Consume(b.actor, b.cost)
}
