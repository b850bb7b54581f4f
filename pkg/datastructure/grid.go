package datastructure

import (
	"errors"
)

var (
	ErrInvalidDimension = errors.New("grid dimensions must be positive")
	ErrRaggedRows       = errors.New("all grid rows must have the same length")
)

// Grid is a fixed-size rectangular container of cell values, stored
// row-major. Width and Height never change after construction and the grid
// exclusively owns its backing storage.
type Grid[T any] struct {
	Width  int
	Height int
	cells  [][]T
}

// NewGrid returns a width x height grid with every cell set to the zero
// value of T.
func NewGrid[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	cells := make([][]T, height)
	for row := range cells {
		cells[row] = make([]T, width)
	}
	return &Grid[T]{Width: width, Height: height, cells: cells}, nil
}

// NewGridFromCells copies rows into a new grid. rows must be non-empty and
// rectangular.
func NewGridFromCells[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimension
	}
	width := len(rows[0])
	cells := make([][]T, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, ErrRaggedRows
		}
		cells[i] = make([]T, width)
		copy(cells[i], row)
	}
	return &Grid[T]{Width: width, Height: len(rows), cells: cells}, nil
}

func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

func (g *Grid[T]) Get(row, col int) (T, bool) {
	if !g.InBounds(row, col) {
		var zero T
		return zero, false
	}
	return g.cells[row][col], true
}

// Set overwrites one cell and returns the previous value. Out-of-bounds
// writes are no-ops, not errors.
func (g *Grid[T]) Set(row, col int, value T) (T, bool) {
	if !g.InBounds(row, col) {
		var zero T
		return zero, false
	}
	old := g.cells[row][col]
	g.cells[row][col] = value
	return old, true
}

// Fill overwrites every cell with value.
func (g *Grid[T]) Fill(value T) {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = value
		}
	}
}

// Row returns the backing slice for one row so callers can toggle cells in
// place. row must be in bounds.
func (g *Grid[T]) Row(row int) []T {
	return g.cells[row]
}

// ToCells returns a row-major copy of the grid contents.
func (g *Grid[T]) ToCells() [][]T {
	out := make([][]T, g.Height)
	for row := range g.cells {
		out[row] = make([]T, g.Width)
		copy(out[row], g.cells[row])
	}
	return out
}
