package world

import (
	"wildgrid/internal/ecs"
	"wildgrid/internal/geom"
)

// StepAction moves the actor one cell in a compass direction. Movement
// consumes no stamina; its price is paid purely in delay, scaled up for
// diagonal steps.
type StepAction struct {
	actionBase
	w   *World
	dir geom.Side

	toX, toY int
}

func (w *World) Step(actor ecs.ID, dir geom.Side) *StepAction {
	return &StepAction{actionBase: newActionBase("step", actor), w: w, dir: dir}
}

func (a *StepAction) Try() bool {
	if a.dir == geom.Here {
		return false
	}
	w := a.w
	p := w.pos.Ref(a.actor)
	sp := w.speed.Ref(a.actor)
	if p == nil || sp == nil {
		return false
	}
	dx, dy := a.dir.Offset()
	a.toX, a.toY = p.X+dx, p.Y+dy
	if !w.creatures.InBounds(a.toX, a.toY) {
		return false
	}
	if !w.obstacles.IsEmpty(a.toX, a.toY) {
		return false
	}
	if !w.creatures.IsEmpty(a.toX, a.toY) {
		return false
	}
	base := w.tun.Movement.StepCost
	if a.dir.Diagonal() {
		base *= w.tun.Movement.DiagonalFactor
	}
	a.cost = 0
	a.delay = sp.Value * base
	return true
}

func (a *StepAction) Do() {
	w := a.w
	p := w.pos.Ref(a.actor)
	if p == nil {
		return
	}
	// Try verified the destination is empty; the sequential execution model
	// guarantees that still holds, so the overwrite return is always None.
	w.creatures.Move(p.X, p.Y, a.toX, a.toY)
	p.X, p.Y = a.toX, a.toY
}
