package pathfinding

import (
	"gridnav/pkg/util"
)

// ManhattanDistance is the sum of the absolute coordinate differences. It is
// the tightest admissible estimate for 4-directional movement.
func ManhattanDistance(a, b Position) int {
	return util.Abs(a.Row-b.Row) + util.Abs(a.Col-b.Col)
}

// DiagonalDistance is the Chebyshev distance, the max of the absolute
// coordinate differences. Without diagonal moves it never overestimates
// either, it is just a looser bound than Manhattan.
func DiagonalDistance(a, b Position) int {
	dr := util.Abs(a.Row - b.Row)
	dc := util.Abs(a.Col - b.Col)
	if dr > dc {
		return dr
	}
	return dc
}
