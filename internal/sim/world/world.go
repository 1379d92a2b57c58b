// Package world is the simulation core: a bounded tile grid, the entities
// on it, and the action-economy protocol that turns agent intentions into
// world mutations under a stamina-cost/time-delay model.
//
// Everything here is strictly sequential: one agent's full
// decide→validate→commit cycle finishes before the next agent is
// considered, so the shared grids and component tables need no locking.
package world

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"wildgrid/internal/ecs"
	"wildgrid/internal/grid"
	"wildgrid/internal/sim/catalogs"
	"wildgrid/internal/sim/tuning"
)

type Config struct {
	Width  int
	Height int
	Seed   int64

	// Logger may be nil; the world then logs nowhere.
	Logger *zap.Logger
}

// JournalSink receives one record per committed action. Nil disables
// journaling; write failures are logged and otherwise ignored.
type JournalSink interface {
	Write(v any) error
}

// ActionRecord is the journal entry for one committed action.
type ActionRecord struct {
	Turn   uint64  `json:"turn"`
	Clock  float64 `json:"clock"`
	Kind   string  `json:"kind"`
	Actor  int32   `json:"actor"`
	Target int32   `json:"target"`
	Cost   float64 `json:"cost"`
	Delay  float64 `json:"delay"`
}

// World owns the component store, both spatial indices and the collaborator
// systems. Grids are shared mutable state passed by reference to the systems
// that need them — never duplicated.
type World struct {
	cfg Config
	tun tuning.Tuning
	log *zap.Logger
	rng *rand.Rand

	store *ecs.Store

	pos       *ecs.Table[Position]
	health    *ecs.Table[Health]
	stam      *ecs.Table[Stamina]
	strength  *ecs.Table[Strength]
	agility   *ecs.Table[Agility]
	armor     *ecs.Table[Armor]
	speed     *ecs.Table[Speed]
	sight     *ecs.Table[Sight]
	group     *ecs.Table[Group]
	inv       *ecs.Table[Inventory]
	weapon    *ecs.Table[Weapon]
	kind      *ecs.Table[Kind]
	names     *ecs.Table[Name]
	crushable *ecs.Table[Crushable]
	choppable *ecs.Table[Choppable]
	obstacle  *ecs.Table[Obstacle]
	dead      *ecs.Table[Dead]
	herbivore *ecs.Table[Herbivore]
	carnivore *ecs.Table[Carnivore]

	creatures *grid.Single // one creature per cell
	obstacles *grid.Single // one obstacle per cell (trees, boulders)
	items     *grid.Multi  // loose items stack freely

	groups  *Groups
	terrain *Terrain
	stamina *StaminaSystem
	msg     *MessageSystem

	cats *catalogs.Catalogs

	sched   *Scheduler
	journal JournalSink
	turns   uint64
}

func New(cfg Config, tun tuning.Tuning) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("world: invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		cfg:   cfg,
		tun:   tun,
		log:   log,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		store: ecs.NewStore(),

		creatures: grid.NewSingle(cfg.Width, cfg.Height),
		obstacles: grid.NewSingle(cfg.Width, cfg.Height),
		items:     grid.NewMulti(),

		groups: NewGroups(),
		sched:  NewScheduler(),
	}
	w.pos = ecs.NewTable[Position](w.store)
	w.health = ecs.NewTable[Health](w.store)
	w.stam = ecs.NewTable[Stamina](w.store)
	w.strength = ecs.NewTable[Strength](w.store)
	w.agility = ecs.NewTable[Agility](w.store)
	w.armor = ecs.NewTable[Armor](w.store)
	w.speed = ecs.NewTable[Speed](w.store)
	w.sight = ecs.NewTable[Sight](w.store)
	w.group = ecs.NewTable[Group](w.store)
	w.inv = ecs.NewTable[Inventory](w.store)
	w.weapon = ecs.NewTable[Weapon](w.store)
	w.kind = ecs.NewTable[Kind](w.store)
	w.names = ecs.NewTable[Name](w.store)
	w.crushable = ecs.NewTable[Crushable](w.store)
	w.choppable = ecs.NewTable[Choppable](w.store)
	w.obstacle = ecs.NewTable[Obstacle](w.store)
	w.dead = ecs.NewTable[Dead](w.store)
	w.herbivore = ecs.NewTable[Herbivore](w.store)
	w.carnivore = ecs.NewTable[Carnivore](w.store)

	w.terrain = NewTerrain(w.obstacles, w.rng)
	w.stamina = &StaminaSystem{t: w.stam}
	w.msg = &MessageSystem{log: log, names: w.names}
	return w, nil
}

// SetCatalogs attaches item/species definitions; only needed when destroyed
// obstacles should resolve catalog byproducts instead of the built-in ones.
func (w *World) SetCatalogs(c *catalogs.Catalogs) { w.cats = c }

// SetJournal attaches a committed-action sink.
func (w *World) SetJournal(j JournalSink) { w.journal = j }

func (w *World) Store() *ecs.Store      { return w.store }
func (w *World) Creatures() *grid.Single { return w.creatures }
func (w *World) Obstacles() *grid.Single { return w.obstacles }
func (w *World) Items() *grid.Multi      { return w.items }
func (w *World) Groups() *Groups         { return w.groups }
func (w *World) Terrain() *Terrain       { return w.terrain }
func (w *World) Width() int              { return w.cfg.Width }
func (w *World) Height() int             { return w.cfg.Height }

// Clock is the current simulated time, advanced by committed action delays.
func (w *World) Clock() float64 { return w.sched.Now() }

// Turns is the number of committed actions so far.
func (w *World) Turns() uint64 { return w.turns }

// PositionOf reports where an entity currently stands.
func (w *World) PositionOf(id ecs.ID) (Position, bool) { return w.pos.Get(id) }

// HealthOf reports an entity's health.
func (w *World) HealthOf(id ecs.ID) (Health, bool) { return w.health.Get(id) }

// StaminaOf reports an entity's stamina reserve.
func (w *World) StaminaOf(id ecs.ID) (Stamina, bool) { return w.stam.Get(id) }

// NameOf returns the entity's display name, or a #id placeholder.
func (w *World) NameOf(id ecs.ID) string { return w.msg.name(id) }

// Alive reports whether the entity exists and is not marked dead.
func (w *World) Alive(id ecs.ID) bool {
	return w.store.Alive(id) && !w.dead.Has(id)
}

// Commit runs the two-phase action protocol: validate, then apply. A
// rejected action mutates nothing and costs nothing; a committed one is
// journaled and yields the delay before the actor may act again.
func (w *World) Commit(a Action) (delay float64, committed bool) {
	if a == nil || !a.Try() {
		return 0, false
	}
	a.Do()
	w.turns++
	if w.journal != nil {
		rec := ActionRecord{
			Turn:   w.turns,
			Clock:  w.sched.Now(),
			Kind:   a.Verb(),
			Actor:  int32(a.Actor()),
			Target: int32(a.Target()),
			Cost:   a.Cost(),
			Delay:  a.Delay(),
		}
		if err := w.journal.Write(rec); err != nil {
			w.log.Warn("journal write failed", zap.Error(err))
		}
	}
	return a.Delay(), true
}

// kill marks the target dead and clears its occupancy so no stale reference
// survives. The corpse entity itself is kept for scavengers and messages.
func (w *World) kill(target, killer ecs.ID) {
	w.dead.Attach(target, Dead{})
	if p, ok := w.pos.Get(target); ok {
		if w.creatures.Holds(target, p.X, p.Y) {
			w.creatures.Del(p.X, p.Y)
		}
	}
	w.msg.Send(killer, target, KillMsg{})
}
