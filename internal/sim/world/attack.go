package world

import (
	"go.uber.org/zap"

	"wildgrid/internal/ecs"
)

// AttackAction is a melee strike. Whether or not the blow lands, both sides
// pay stamina: the attacker the full action cost, the defender a small fixed
// fee for being forced to react.
type AttackAction struct {
	actionBase
	w       *World
	targets []ecs.ID
}

// Attack builds a melee action. Exactly one target is valid; the variadic
// form exists so callers with a bad target list are rejected by Try instead
// of panicking here.
func (w *World) Attack(actor ecs.ID, targets ...ecs.ID) *AttackAction {
	return &AttackAction{
		actionBase: newActionBase("attack", actor),
		w:          w,
		targets:    targets,
	}
}

func (a *AttackAction) Try() bool {
	if len(a.targets) != 1 {
		return false
	}
	t := a.targets[0]
	if !t.Valid() || !a.w.health.Has(t) || a.w.dead.Has(t) {
		return false
	}
	sp := a.w.speed.Ref(a.actor)
	if sp == nil {
		return false
	}
	a.target = t
	a.cost = a.w.tun.Combat.AttackCost
	a.delay = sp.Value * a.cost
	return true
}

func (a *AttackAction) Do() {
	w := a.w
	c := w.tun.Combat
	t := a.target

	atkStr := w.strength.Ref(a.actor)
	atkAgi := w.agility.Ref(a.actor)
	defAgi := w.agility.Ref(t)
	defHealth := w.health.Ref(t)
	if atkStr == nil || atkAgi == nil || defAgi == nil || defHealth == nil {
		w.log.Warn("attack aborted: missing composition",
			zap.Int32("actor", int32(a.actor)), zap.Int32("target", int32(t)))
		return
	}

	// Fixed fees are charged on every resolution branch, hit or miss.
	w.stamina.Consume(a.actor, a.cost)
	w.stamina.Consume(t, c.DefenderFee)

	toHit := clamp(
		(float64(atkAgi.Value)-float64(defAgi.Value)+c.ToHitBonus)/c.ToHitDivisor,
		c.MinHitChance, c.MaxHitChance)

	if w.rng.Float64() >= toHit {
		w.msg.Send(a.actor, t, MissMsg{})
		return
	}

	var defArmor int
	if ar := w.armor.Ref(t); ar != nil {
		defArmor = ar.Value
	}
	damage := float64(atkStr.Value) + c.DamageBonus - float64(defArmor)
	if damage < c.MinDamage {
		damage = c.MinDamage
	}
	defHealth.Value -= damage
	w.msg.Send(a.actor, t, HitMsg{Damage: damage, Remaining: defHealth.Value})

	if defHealth.Value <= 0 {
		w.kill(t, a.actor)
	}
}
