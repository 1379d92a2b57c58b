package world

import (
	"fmt"

	"wildgrid/internal/ecs"
	"wildgrid/internal/sim/catalogs"
)

// builtinItems cover the byproducts every world can always produce, even
// when no catalogs are attached.
var builtinItems = map[string]catalogs.ItemDef{
	"stone":  {ID: "stone", Glyph: "o", Weapon: &catalogs.WeaponDef{Class: "blunt", Power: 2}},
	"branch": {ID: "branch", Glyph: "/", Weapon: &catalogs.WeaponDef{Class: "blunt", Power: 1}},
	"trunk":  {ID: "trunk", Glyph: "="},
}

func repeatItems(id string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, id)
	}
	return out
}

// SpawnCreature places a creature of the given species on the creature grid.
// Fails when the cell is out of bounds or already occupied; the caller picks
// another cell.
func (w *World) SpawnCreature(def catalogs.SpeciesDef, x, y int) (ecs.ID, error) {
	if !w.creatures.InBounds(x, y) {
		return ecs.None, fmt.Errorf("spawn %s: (%d,%d) out of bounds", def.ID, x, y)
	}
	if !w.creatures.IsEmpty(x, y) {
		return ecs.None, fmt.Errorf("spawn %s: (%d,%d) occupied", def.ID, x, y)
	}
	id := w.store.Create()
	w.names.Attach(id, Name{Value: def.ID})
	w.kind.Attach(id, Kind{ID: def.ID})
	w.pos.Attach(id, Position{X: x, Y: y})
	w.health.Attach(id, Health{Value: def.Health, Max: def.Health})
	w.stam.Attach(id, Stamina{Value: def.Stamina, Max: def.Stamina})
	w.strength.Attach(id, Strength{Value: def.Strength})
	w.agility.Attach(id, Agility{Value: def.Agility})
	w.armor.Attach(id, Armor{Value: def.Armor})
	w.speed.Attach(id, Speed{Value: def.Speed})
	w.sight.Attach(id, Sight{Radius: def.Sight})
	w.inv.Attach(id, Inventory{})
	switch def.Diet {
	case "carnivore":
		w.carnivore.Attach(id, Carnivore{})
	default:
		w.herbivore.Attach(id, Herbivore{})
	}
	w.creatures.Set(id, x, y)
	w.sched.Schedule(id, w.sched.Now())
	return id, nil
}

// JoinGroup puts a creature into a group and tags it with the membership.
func (w *World) JoinGroup(groupID int, id ecs.ID) {
	w.group.Attach(id, Group{ID: groupID})
	w.groups.Join(groupID, id)
}

// SpawnObstacle places a blocking feature (tree, boulder) on the obstacle
// grid.
func (w *World) SpawnObstacle(def catalogs.ItemDef, x, y int) (ecs.ID, error) {
	if !w.obstacles.InBounds(x, y) {
		return ecs.None, fmt.Errorf("spawn %s: (%d,%d) out of bounds", def.ID, x, y)
	}
	if !w.obstacles.IsEmpty(x, y) {
		return ecs.None, fmt.Errorf("spawn %s: (%d,%d) occupied", def.ID, x, y)
	}
	id := w.store.Create()
	w.names.Attach(id, Name{Value: def.ID})
	w.kind.Attach(id, Kind{ID: def.ID})
	w.pos.Attach(id, Position{X: x, Y: y})
	w.obstacle.Attach(id, Obstacle{})
	if def.Crushable {
		w.crushable.Attach(id, Crushable{})
	}
	if def.Choppable {
		w.choppable.Attach(id, Choppable{})
	}
	if def.Health > 0 {
		w.health.Attach(id, Health{Value: def.Health, Max: def.Health})
	}
	w.obstacles.Set(id, x, y)
	return id, nil
}

// SpawnItem drops a loose item of the given definition at (x, y).
func (w *World) SpawnItem(def catalogs.ItemDef, x, y int) ecs.ID {
	id := w.newItem(def)
	w.pos.Attach(id, Position{X: x, Y: y})
	w.items.Add(id, x, y)
	return id
}

// GiveItem creates an item directly inside an actor's inventory. Returns
// ecs.None when the actor has no inventory.
func (w *World) GiveItem(actor ecs.ID, def catalogs.ItemDef) ecs.ID {
	inv := w.inv.Ref(actor)
	if inv == nil {
		return ecs.None
	}
	id := w.newItem(def)
	inv.Items = append(inv.Items, id)
	return id
}

func (w *World) newItem(def catalogs.ItemDef) ecs.ID {
	id := w.store.Create()
	w.names.Attach(id, Name{Value: def.ID})
	w.kind.Attach(id, Kind{ID: def.ID})
	if def.Weapon != nil {
		if class, ok := DamageClassOf(def.Weapon.Class); ok {
			w.weapon.Attach(id, Weapon{Class: class, Power: def.Weapon.Power})
		}
	}
	return id
}

// WeaponOf scans the actor's inventory for a weapon of the required damage
// class, returning the first match or ecs.None.
func (w *World) WeaponOf(actor ecs.ID, class DamageClass) ecs.ID {
	inv := w.inv.Ref(actor)
	if inv == nil {
		return ecs.None
	}
	for _, itemID := range inv.Items {
		if !itemID.Valid() {
			continue
		}
		if wp, ok := w.weapon.Get(itemID); ok && wp.Class == class {
			return itemID
		}
	}
	return ecs.None
}

// byproductsFor resolves what a destroyed obstacle leaves behind: the
// catalog's byproduct list when the target came from a catalog entry that
// declares one, otherwise the fallback list of built-in items.
func (w *World) byproductsFor(target ecs.ID, fallback []string) []catalogs.ItemDef {
	if w.cats != nil {
		if k, ok := w.kind.Get(target); ok {
			if def, ok := w.cats.Items[k.ID]; ok && len(def.Byproducts) > 0 {
				out := make([]catalogs.ItemDef, 0, len(def.Byproducts))
				for _, id := range def.Byproducts {
					out = append(out, w.cats.Items[id])
				}
				return out
			}
		}
	}
	out := make([]catalogs.ItemDef, 0, len(fallback))
	for _, id := range fallback {
		if def, ok := builtinItems[id]; ok {
			out = append(out, def)
		}
	}
	return out
}
