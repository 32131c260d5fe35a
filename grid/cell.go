package grid

import (
	"fmt"
	"math"
)

const (
	// Infinity is the G value of a cell the search has not reached yet.
	Infinity = math.MaxInt
	// NoParent marks a cell without a predecessor.
	NoParent = -1
)

// Position identifies a cell by its row and column.
type Position struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell holds the user-authored walkability of a grid square together with
// the attributes the search writes while exploring it.
type Cell struct {
	Walkable bool // Walkable indicates whether the cell may be traversed.
	G        int  // G is the best known cost from the start cell.
	H        int  // H is the heuristic estimate to the end cell.
	F        int  // F is G + H, the open set priority.
	OnPath   bool // OnPath is set on intermediate cells of the last found path.
	Parent   int  // Parent is the arena index of the predecessor, or NoParent.
}

// newCell returns a walkable cell with no search state.
func newCell() Cell {
	return Cell{
		Walkable: true,
		G:        Infinity,
		Parent:   NoParent,
	}
}

// resetSearch clears every search attribute and keeps walkability.
func (c *Cell) resetSearch() {
	c.G = Infinity
	c.H = 0
	c.F = 0
	c.Parent = NoParent
	c.OnPath = false
}

// Reached reports whether the search has assigned the cell a finite cost.
func (c *Cell) Reached() bool {
	return c.G != Infinity
}

// CellView is the read-only state a renderer needs for one cell.
type CellView struct {
	Walkable bool `json:"walkable"`
	IsStart  bool `json:"is_start"`
	IsEnd    bool `json:"is_end"`
	IsOnPath bool `json:"is_on_path"`
}
