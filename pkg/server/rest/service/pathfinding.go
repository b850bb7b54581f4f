package service

import (
	"context"

	"gridnav/pkg/datastructure"
	"gridnav/pkg/engine/pathfinding"
	"gridnav/pkg/server"
)

const (
	HeuristicManhattan = "manhattan"
	HeuristicChebyshev = "chebyshev"
)

// PathFinder runs one shortest-path search over a grid snapshot.
type PathFinder interface {
	AStar(start, end pathfinding.Position, cells [][]int,
		heuristic pathfinding.Heuristic, isSolid pathfinding.SolidFn) ([]pathfinding.Position, bool)
}

type PathfindingService struct {
	engine PathFinder
}

func NewPathfindingService(engine PathFinder) *PathfindingService {
	return &PathfindingService{engine: engine}
}

// ShortestPath validates the submitted grid snapshot and runs A* on it.
// found=false with a nil error is the normal no-path outcome; errors are
// reserved for invalid input.
func (uc *PathfindingService) ShortestPath(ctx context.Context, cells [][]int,
	start, end pathfinding.Position, heuristicName string) ([]pathfinding.Position, bool, error) {

	grid, err := datastructure.NewGridFromCells(cells)
	if err != nil {
		return nil, false, server.WrapErrorf(err, server.ErrBadParamInput, "invalid grid: %v", err)
	}

	if !grid.InBounds(start.Row, start.Col) {
		return nil, false, server.WrapErrorf(nil, server.ErrBadParamInput,
			"start (%d,%d) is outside the %dx%d grid", start.Row, start.Col, grid.Height, grid.Width)
	}
	if !grid.InBounds(end.Row, end.Col) {
		return nil, false, server.WrapErrorf(nil, server.ErrBadParamInput,
			"end (%d,%d) is outside the %dx%d grid", end.Row, end.Col, grid.Height, grid.Width)
	}

	heuristic, err := resolveHeuristic(heuristicName)
	if err != nil {
		return nil, false, err
	}

	path, found := uc.engine.AStar(start, end, grid.ToCells(), heuristic, pathfinding.IsSolidCell)
	return path, found, nil
}

func resolveHeuristic(name string) (pathfinding.Heuristic, error) {
	switch name {
	case "", HeuristicManhattan:
		return pathfinding.ManhattanDistance, nil
	case HeuristicChebyshev:
		return pathfinding.DiagonalDistance, nil
	default:
		return nil, server.WrapErrorf(nil, server.ErrBadParamInput, "unknown heuristic %q", name)
	}
}
