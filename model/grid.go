package model

import (
	"crypto/md5"
	"fmt"
)

// Cell addresses one square of the board
type Cell struct {
	Row int
	Col int
}

// Grid represents one generation of a square, non-wrapping board
type Grid struct {
	side  int
	cells [][]bool
}

// NewGrid creates a side x side grid with every cell dead
func NewGrid(side int) *Grid {
	side = max(0, side)
	cells := make([][]bool, side)
	for i := range cells {
		cells[i] = make([]bool, side)
	}
	return &Grid{
		side:  side,
		cells: cells,
	}
}

// GridFromMatrix builds a grid sized by the outer length of matrix.
// Short rows leave the missing cells dead, long rows are clipped.
func GridFromMatrix(matrix [][]bool) *Grid {
	g := NewGrid(len(matrix))
	for row, values := range matrix {
		for col, alive := range values {
			if col >= g.side {
				break
			}
			g.cells[row][col] = alive
		}
	}
	return g
}

// Side returns the number of rows (and columns) of the grid
func (g *Grid) Side() int {
	return g.side
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.side && col >= 0 && col < g.side
}

// Get returns the state of a cell. Addresses outside the grid panic.
func (g *Grid) Get(row, col int) bool {
	g.mustBeInBounds(row, col)
	return g.cells[row][col]
}

// Set sets a cell to alive (true) or dead (false). Addresses outside the grid panic.
func (g *Grid) Set(row, col int, alive bool) {
	g.mustBeInBounds(row, col)
	g.cells[row][col] = alive
}

func (g *Grid) mustBeInBounds(row, col int) {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("model: cell (%d, %d) outside %dx%d grid", row, col, g.side, g.side))
	}
}

// CountLiveNeighbors counts living cells in the Moore neighborhood of (row, col).
// Neighbors past the edge of the board do not exist and are never counted.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if !g.InBounds(nr, nc) {
				continue
			}
			if g.cells[nr][nc] {
				count++
			}
		}
	}
	return count
}

// CountLiving returns the total number of living cells
func (g *Grid) CountLiving() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Matrix returns a copy of the cell states, indexed [row][col]
func (g *Grid) Matrix() [][]bool {
	matrix := make([][]bool, g.side)
	for i, row := range g.cells {
		matrix[i] = make([]bool, g.side)
		copy(matrix[i], row)
	}
	return matrix
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{side: g.side, cells: g.Matrix()}
}

// Equal reports whether both grids have the same side and the same cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.side != other.side {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%d:", g.side)
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
