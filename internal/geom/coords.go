// Package geom holds the small coordinate vocabulary shared by the spatial
// indices and the simulation: packed coordinates, the Chebyshev metric and
// the eight compass directions.
package geom

// Pack encodes a grid coordinate into a single key. Visibility sets are
// transmitted as []uint64 so that a sighted creature does not allocate one
// tuple per visible cell per turn. No bounds check: callers own the domain,
// the indices re-check on dereference.
func Pack(x, y int) uint64 {
	return uint64(uint32(int32(x)))<<32 | uint64(uint32(int32(y)))
}

// Unpack is the inverse of Pack.
func Unpack(k uint64) (x, y int) {
	return int(int32(uint32(k >> 32))), int(int32(uint32(k)))
}

// Chebyshev returns the chessboard distance between two cells. Rings in the
// spatial indices are squares of constant Chebyshev distance.
func Chebyshev(x0, y0, x1, y1 int) int {
	dx := AbsInt(x1 - x0)
	dy := AbsInt(y1 - y0)
	if dx > dy {
		return dx
	}
	return dy
}

// FloorDiv rounds toward negative infinity. b > 0.
func FloorDiv(a, b int) int {
	q := a / b
	r := a % b
	if r < 0 {
		q--
	}
	return q
}

func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
