package datastructure_test

import (
	"testing"

	"gridnav/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	t.Run("creates a zero valued grid", func(t *testing.T) {
		grid, err := datastructure.NewGrid[int](3, 2)
		assert.NoError(t, err)
		assert.Equal(t, 3, grid.Width)
		assert.Equal(t, 2, grid.Height)

		value, ok := grid.Get(1, 2)
		assert.True(t, ok)
		assert.Equal(t, 0, value)
	})

	t.Run("rejects non positive dimensions", func(t *testing.T) {
		_, err := datastructure.NewGrid[int](0, 5)
		assert.ErrorIs(t, err, datastructure.ErrInvalidDimension)

		_, err = datastructure.NewGrid[int](5, -1)
		assert.ErrorIs(t, err, datastructure.ErrInvalidDimension)
	})
}

func TestNewGridFromCells(t *testing.T) {
	t.Run("copies a rectangular sequence", func(t *testing.T) {
		rows := [][]int{
			{1, 2, 3},
			{4, 5, 6},
		}
		grid, err := datastructure.NewGridFromCells(rows)
		assert.NoError(t, err)
		assert.Equal(t, 3, grid.Width)
		assert.Equal(t, 2, grid.Height)

		// the grid owns its storage, mutating the source must not leak in
		rows[0][0] = 99
		value, _ := grid.Get(0, 0)
		assert.Equal(t, 1, value)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := datastructure.NewGridFromCells([][]int{})
		assert.ErrorIs(t, err, datastructure.ErrInvalidDimension)

		_, err = datastructure.NewGridFromCells([][]int{{}})
		assert.ErrorIs(t, err, datastructure.ErrInvalidDimension)
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := datastructure.NewGridFromCells([][]int{
			{1, 2, 3},
			{4, 5},
		})
		assert.ErrorIs(t, err, datastructure.ErrRaggedRows)
	})
}

func TestGridAccess(t *testing.T) {
	t.Run("get out of bounds is absent not fatal", func(t *testing.T) {
		grid, _ := datastructure.NewGrid[int](2, 2)
		_, ok := grid.Get(-1, 0)
		assert.False(t, ok)
		_, ok = grid.Get(0, 2)
		assert.False(t, ok)
	})

	t.Run("set returns the previous value", func(t *testing.T) {
		grid, _ := datastructure.NewGrid[int](2, 2)
		grid.Set(1, 1, 7)

		old, ok := grid.Set(1, 1, 9)
		assert.True(t, ok)
		assert.Equal(t, 7, old)

		value, _ := grid.Get(1, 1)
		assert.Equal(t, 9, value)
	})

	t.Run("set out of bounds is a no-op", func(t *testing.T) {
		grid, _ := datastructure.NewGrid[int](2, 2)
		_, ok := grid.Set(5, 5, 1)
		assert.False(t, ok)
	})

	t.Run("fill overwrites every cell", func(t *testing.T) {
		grid, _ := datastructure.NewGrid[int](3, 3)
		grid.Fill(4)
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				value, _ := grid.Get(row, col)
				assert.Equal(t, 4, value)
			}
		}
	})

	t.Run("row exposes the backing storage for in place edits", func(t *testing.T) {
		grid, _ := datastructure.NewGrid[int](3, 3)
		grid.Row(1)[2] = 1

		value, _ := grid.Get(1, 2)
		assert.Equal(t, 1, value)
	})

	t.Run("to cells snapshots without aliasing", func(t *testing.T) {
		grid, _ := datastructure.NewGrid[int](2, 2)
		grid.Set(0, 0, 5)

		cells := grid.ToCells()
		assert.Equal(t, [][]int{{5, 0}, {0, 0}}, cells)

		cells[0][0] = 8
		value, _ := grid.Get(0, 0)
		assert.Equal(t, 5, value)
	})
}
