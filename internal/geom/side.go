package geom

// Side is one of the eight compass directions, or Here. North is y-1.
type Side uint8

const (
	Here Side = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var sideNames = [...]string{"here", "north", "north-east", "east", "south-east", "south", "south-west", "west", "north-west"}

var sideOffsets = [...][2]int{
	Here:      {0, 0},
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

func (s Side) String() string { return sideNames[s] }

// Offset returns the unit step for this direction.
func (s Side) Offset() (dx, dy int) {
	o := sideOffsets[s]
	return o[0], o[1]
}

func (s Side) Diagonal() bool {
	dx, dy := s.Offset()
	return dx != 0 && dy != 0
}

// Opposite returns the reverse direction; Here is its own opposite.
func (s Side) Opposite() Side {
	if s == Here {
		return Here
	}
	dx, dy := s.Offset()
	return SideAt(-dx, -dy)
}

// Exits lists the eight walkable directions in a fixed order.
func Exits() [8]Side {
	return [8]Side{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// SideAt maps a displacement to the direction of its sign vector, so any
// (dx, dy) pointing roughly toward a goal resolves to one of the eight
// neighbours (or Here for the zero vector).
func SideAt(dx, dy int) Side {
	sx, sy := sign(dx), sign(dy)
	for s := North; s <= NorthWest; s++ {
		o := sideOffsets[s]
		if o[0] == sx && o[1] == sy {
			return s
		}
	}
	return Here
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
