package pathfinding

import (
	"gridnav/pkg/util"
)

// Position identifies one grid cell. Coordinates are signed so that
// out-of-bounds probes (row -1) stay representable and checkable.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Heuristic estimates the remaining cost between two positions. It must not
// overestimate the true cost or A* loses its shortest-path guarantee.
type Heuristic func(a, b Position) int

// SolidFn reports whether the cell at (row, col) is impassable. The bounds
// check happens before the predicate, so it never sees out-of-bounds
// coordinates.
type SolidFn func(row, col int, cells [][]int) bool

// IsSolidCell is the default solidity rule: 1 blocks, anything else is free.
func IsSolidCell(row, col int, cells [][]int) bool {
	return cells[row][col] == 1
}

// GetNeighbors returns the orthogonally adjacent positions of (row, col)
// that are inside the grid and not solid, always in the order up, left,
// down, right. Diagonals are never produced.
func GetNeighbors(row, col int, cells [][]int, isSolid SolidFn) []Position {
	neighbors := make([]Position, 0, 4)
	if row > 0 && !isSolid(row-1, col, cells) {
		neighbors = append(neighbors, Position{Row: row - 1, Col: col})
	}
	if col > 0 && !isSolid(row, col-1, cells) {
		neighbors = append(neighbors, Position{Row: row, Col: col - 1})
	}
	if row < len(cells)-1 && !isSolid(row+1, col, cells) {
		neighbors = append(neighbors, Position{Row: row + 1, Col: col})
	}
	if col < len(cells[0])-1 && !isSolid(row, col+1, cells) {
		neighbors = append(neighbors, Position{Row: row, Col: col + 1})
	}
	return neighbors
}

// ReconstructPath walks the cameFrom chain backward from current until a
// position with no parent is found, then reverses the collected positions so
// the result runs root..current inclusive. It knows nothing about the
// search; any parent-chain map works.
func ReconstructPath(cameFrom map[Position]Position, current Position) []Position {
	path := []Position{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	util.ReverseG(path)
	return path
}

// AStar searches for a shortest path from start to end over a 4-connected
// grid with unit move cost. It returns the path start..end inclusive and
// true, or nil and false when no path exists. Absence of a path is a normal
// outcome, not an error. A start or end that is out of bounds or solid also
// reports not found.
//
// The grid is only read during the search, so concurrent calls over the same
// cells are safe as long as no caller mutates them.
func AStar(start, end Position, cells [][]int, heuristic Heuristic, isSolid SolidFn) ([]Position, bool) {
	if !inBounds(start, cells) || !inBounds(end, cells) {
		return nil, false
	}
	if isSolid(start.Row, start.Col, cells) || isSolid(end.Row, end.Col, cells) {
		return nil, false
	}

	openSet := NewMinHeap[Position]()
	startH := heuristic(start, end)
	openSet.Insert(PriorityQueueNode[Position]{Rank: startH, Tie: startH, Item: start})

	closedSet := make(map[Position]bool)
	cameFrom := make(map[Position]Position)
	gScore := map[Position]int{start: 0}

	for openSet.Size() > 0 {
		current, _ := openSet.ExtractMin()
		if current.Item == end {
			return ReconstructPath(cameFrom, current.Item), true
		}
		closedSet[current.Item] = true

		for _, neighbor := range GetNeighbors(current.Item.Row, current.Item.Col, cells, isSolid) {
			if closedSet[neighbor] {
				continue
			}

			tentativeG := gScore[current.Item] + 1
			oldG, seen := gScore[neighbor]
			if seen && tentativeG >= oldG {
				// already reached at least as cheaply
				continue
			}

			cameFrom[neighbor] = current.Item
			gScore[neighbor] = tentativeG
			h := heuristic(neighbor, end)
			node := PriorityQueueNode[Position]{Rank: tentativeG + h, Tie: h, Item: neighbor}
			if openSet.Contains(neighbor) {
				openSet.DecreaseKey(node)
			} else {
				openSet.Insert(node)
			}
		}
	}
	return nil, false
}

func inBounds(p Position, cells [][]int) bool {
	return p.Row >= 0 && p.Row < len(cells) && p.Col >= 0 && p.Col < len(cells[0])
}

// Engine adapts the package-level search functions behind a value so callers
// can depend on an interface.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) AStar(start, end Position, cells [][]int, heuristic Heuristic, isSolid SolidFn) ([]Position, bool) {
	return AStar(start, end, cells, heuristic, isSolid)
}
