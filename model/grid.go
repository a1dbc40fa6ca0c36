package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/utils"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// MinGridSize is the smallest grid edge NewGrid accepts.
const MinGridSize = utils.MinMapSize

// Grid is a square toroidal board. Every index wraps modulo the grid size,
// so the cell south of the last row is the first row of the same column.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates a new size x size grid with every cell dead
func NewGrid(size int) (*Grid, error) {
	if size < MinGridSize {
		return nil, errors.WithStack(&utils.InvalidSizeError{Size: size, Min: MinGridSize})
	}
	return newGrid(size), nil
}

func newGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the edge length of the grid
func (g *Grid) Size() int {
	return g.size
}

// wrap maps any integer onto [0, size)
func (g *Grid) wrap(i int) int {
	i %= g.size
	if i < 0 {
		i += g.size
	}
	return i
}

func (g *Grid) index(row, col int) int {
	return g.wrap(row)*g.size + g.wrap(col)
}

// Get returns the state of a cell, wrapping both indices
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// IsAlive reports whether the cell at (row, col) is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.Get(row, col) == Alive
}

// Set sets the state of a cell, wrapping both indices
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// Cells exposes the row-major backing slice. Callers must treat it as read-only.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// CountNeighbors counts living cells among the 8 toroidal neighbors of (row, col)
func (g *Grid) CountNeighbors(row, col int) (count int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.cells[g.index(row+dr, col+dc)] == Alive {
				count++
			}
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.size)
	copy(c.cells, g.cells)
	return c
}

// CopyFrom replaces every cell with the cells of src
func (g *Grid) CopyFrom(src *Grid) error {
	if src.size != g.size {
		return errors.Errorf("[CopyFrom] source size %d does not match grid size %d", src.size, g.size)
	}
	copy(g.cells, src.cells)
	return nil
}

// Equal reports whether both grids have the same size and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// reset resizes the grid for reuse, clearing every cell
func (g *Grid) reset(size int) {
	g.size = size
	if cap(g.cells) < size*size {
		g.cells = make([]Cell, size*size)
		return
	}
	g.cells = g.cells[:size*size]
	g.Clear()
}

// String renders the grid as rows of '#' (alive) and '.' (dead)
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for row := range g.size {
		for col := range g.size {
			if g.cells[row*g.size+col] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
