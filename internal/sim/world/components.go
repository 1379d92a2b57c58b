package world

import "wildgrid/internal/ecs"

// DamageClass partitions weapons by how they hurt: crushing an obstacle
// needs a blunt weapon, felling a tree a slashing one.
type DamageClass uint8

const (
	Blunt DamageClass = iota
	Slash
	Point
)

var damageClassNames = map[string]DamageClass{
	"blunt": Blunt,
	"slash": Slash,
	"point": Point,
}

func DamageClassOf(s string) (DamageClass, bool) {
	c, ok := damageClassNames[s]
	return c, ok
}

func (c DamageClass) String() string {
	switch c {
	case Blunt:
		return "blunt"
	case Slash:
		return "slash"
	default:
		return "point"
	}
}

// Components are plain structs attached through ecs tables. The world owns
// one table per kind; systems receive the world handle, never globals.

type Position struct{ X, Y int }

type Health struct{ Value, Max float64 }

type Stamina struct{ Value, Max float64 }

type Strength struct{ Value int }

type Agility struct{ Value int }

// Armor is subtracted from incoming damage (hide, bark, shell).
type Armor struct{ Value int }

// Speed is the actor's base delay per unit action cost; lower acts more
// often.
type Speed struct{ Value float64 }

type Sight struct{ Radius int }

type Group struct{ ID int }

type Inventory struct{ Items []ecs.ID }

type Weapon struct {
	Class DamageClass
	Power int
}

// Kind records which catalog entry an entity was spawned from, so destroyed
// obstacles can resolve their byproducts.
type Kind struct{ ID string }

type Name struct{ Value string }

// Markers.
type (
	Crushable struct{}
	Choppable struct{}
	Obstacle  struct{}
	Dead      struct{}
	Herbivore struct{}
	Carnivore struct{}
)
