package service_test

import (
	"context"
	"errors"
	"testing"

	"gridnav/pkg/engine/pathfinding"
	"gridnav/pkg/server"
	"gridnav/pkg/server/rest/service"

	"github.com/stretchr/testify/assert"
)

func newService() *service.PathfindingService {
	return service.NewPathfindingService(pathfinding.NewEngine())
}

func assertBadParam(t *testing.T, err error) {
	t.Helper()
	var ierr *server.Error
	assert.True(t, errors.As(err, &ierr))
	assert.Equal(t, server.ErrBadParamInput, ierr.Code())
}

func TestShortestPath(t *testing.T) {
	corridor := [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}

	t.Run("finds a route with the default heuristic", func(t *testing.T) {
		svc := newService()
		path, found, err := svc.ShortestPath(context.Background(), corridor,
			pathfinding.Position{Row: 1, Col: 1}, pathfinding.Position{Row: 1, Col: 3}, "")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Len(t, path, 7)
		assert.Equal(t, pathfinding.Position{Row: 1, Col: 1}, path[0])
		assert.Equal(t, pathfinding.Position{Row: 1, Col: 3}, path[len(path)-1])
	})

	t.Run("chebyshev heuristic is selectable", func(t *testing.T) {
		svc := newService()
		path, found, err := svc.ShortestPath(context.Background(), corridor,
			pathfinding.Position{Row: 1, Col: 1}, pathfinding.Position{Row: 1, Col: 3},
			service.HeuristicChebyshev)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Len(t, path, 7)
	})

	t.Run("no route is a normal outcome", func(t *testing.T) {
		walled := [][]int{
			{0, 1, 0},
			{0, 1, 0},
			{0, 1, 0},
		}
		svc := newService()
		path, found, err := svc.ShortestPath(context.Background(), walled,
			pathfinding.Position{Row: 0, Col: 0}, pathfinding.Position{Row: 0, Col: 2}, "")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, path)
	})

	t.Run("ragged grid is rejected", func(t *testing.T) {
		svc := newService()
		_, _, err := svc.ShortestPath(context.Background(),
			[][]int{{0, 0, 0}, {0, 0}},
			pathfinding.Position{Row: 0, Col: 0}, pathfinding.Position{Row: 1, Col: 1}, "")
		assertBadParam(t, err)
	})

	t.Run("out of bounds endpoints are rejected", func(t *testing.T) {
		svc := newService()
		_, _, err := svc.ShortestPath(context.Background(),
			[][]int{{0, 0}, {0, 0}},
			pathfinding.Position{Row: 5, Col: 0}, pathfinding.Position{Row: 1, Col: 1}, "")
		assertBadParam(t, err)

		_, _, err = svc.ShortestPath(context.Background(),
			[][]int{{0, 0}, {0, 0}},
			pathfinding.Position{Row: 0, Col: 0}, pathfinding.Position{Row: 0, Col: -2}, "")
		assertBadParam(t, err)
	})

	t.Run("unknown heuristic is rejected", func(t *testing.T) {
		svc := newService()
		_, _, err := svc.ShortestPath(context.Background(),
			[][]int{{0, 0}, {0, 0}},
			pathfinding.Position{Row: 0, Col: 0}, pathfinding.Position{Row: 1, Col: 1}, "euclidean")
		assertBadParam(t, err)
	})
}
