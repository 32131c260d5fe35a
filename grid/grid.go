/*
Package grid provides the fixed-size cell matrix the path search runs on.

Cells live in a flat arena addressed by index (row*cols + col). Start and end
are held by the Grid as arena indexes rather than as flags on the cells, so
moving either endpoint is O(1). Walkability is user-authored content; every
other cell attribute is search state and is wiped by ResetSearchState.
*/
package grid

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxDimension bounds both the row and the column count of a grid.
	MaxDimension = 100

	noEndpoint = -1
)

// Grid errors.
var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidCoordinate = errors.New("coordinate is out of the grid")
	ErrEndpointCell      = errors.New("cell is the start or end cell")
	ErrCellBlocked       = errors.New("cell is not walkable")
	ErrInvalidLayout     = errors.New("invalid grid layout")
)

// directions are the orthogonal moves in neighbor order: north, south, west, east.
var directions = [4]Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Layout runes used by String and ApplyLayout.
const (
	RuneFree     = '.'
	RuneObstacle = '#'
	RuneStart    = 'S'
	RuneEnd      = 'E'
	RunePath     = '*'
)

// Grid is a rows x cols matrix of cells with optional start and end cells.
type Grid struct {
	rows  int    // Number of rows
	cols  int    // Number of columns
	cells []Cell // Cell arena, row-major
	start int    // Arena index of the start cell, or noEndpoint
	end   int    // Arena index of the end cell, or noEndpoint
}

// New creates a grid of the given dimensions with every cell walkable.
func New(rows, cols int) (*Grid, error) {
	if min(rows, cols) <= 0 || max(rows, cols) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &Grid{
		rows: rows,
		cols: cols,
	}
	g.Reinitialize()
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index returns the arena index of p.
func (g *Grid) Index(p Position) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCoordinate, p)
	}
	return p.Row*g.cols + p.Col, nil
}

// Position returns the coordinates of the cell at arena index idx.
// idx must be in [0, Size()).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns the cell at p.
func (g *Grid) Cell(p Position) (*Cell, error) {
	idx, err := g.Index(p)
	if err != nil {
		return nil, err
	}
	return &g.cells[idx], nil
}

// At returns the cell at arena index idx. idx must be in [0, Size()).
func (g *Grid) At(idx int) *Cell {
	return &g.cells[idx]
}

// Neighbors returns the in-bounds orthogonal neighbors of p in the order
// north, south, west, east. Walkability is not considered.
func (g *Grid) Neighbors(p Position) ([]Position, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoordinate, p)
	}

	result := make([]Position, 0, len(directions))
	for _, d := range directions {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.InBounds(n) {
			result = append(result, n)
		}
	}
	return result, nil
}

// NeighborIndexes appends the arena indexes of the in-bounds orthogonal
// neighbors of idx to dst, in the same order as Neighbors.
func (g *Grid) NeighborIndexes(dst []int, idx int) []int {
	row, col := idx/g.cols, idx%g.cols
	if row > 0 {
		dst = append(dst, idx-g.cols)
	}
	if row < g.rows-1 {
		dst = append(dst, idx+g.cols)
	}
	if col > 0 {
		dst = append(dst, idx-1)
	}
	if col < g.cols-1 {
		dst = append(dst, idx+1)
	}
	return dst
}

// ResetSearchState wipes the search attributes of every cell.
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].resetSearch()
	}
}

// Reinitialize replaces every cell with a fresh walkable cell and drops the
// start and end cells.
func (g *Grid) Reinitialize() {
	cells := make([]Cell, g.rows*g.cols)
	for i := range cells {
		cells[i] = newCell()
	}
	g.cells = cells
	g.start = noEndpoint
	g.end = noEndpoint
}

// SetWalkable sets the traversability of the cell at p.
// The start and end cells cannot be changed.
func (g *Grid) SetWalkable(p Position, walkable bool) error {
	idx, err := g.Index(p)
	if err != nil {
		return err
	}
	if idx == g.start || idx == g.end {
		return fmt.Errorf("%w: %s", ErrEndpointCell, p)
	}

	g.cells[idx].Walkable = walkable
	return nil
}

// ToggleObstacle flips the walkability of the cell at p.
func (g *Grid) ToggleObstacle(p Position) error {
	c, err := g.Cell(p)
	if err != nil {
		return err
	}
	return g.SetWalkable(p, !c.Walkable)
}

// SetStart makes the walkable cell at p the start cell.
func (g *Grid) SetStart(p Position) error {
	idx, err := g.walkableIndex(p)
	if err != nil {
		return err
	}
	g.start = idx
	return nil
}

// SetEnd makes the walkable cell at p the end cell.
func (g *Grid) SetEnd(p Position) error {
	idx, err := g.walkableIndex(p)
	if err != nil {
		return err
	}
	g.end = idx
	return nil
}

func (g *Grid) walkableIndex(p Position) (int, error) {
	idx, err := g.Index(p)
	if err != nil {
		return 0, err
	}
	if !g.cells[idx].Walkable {
		return 0, fmt.Errorf("%w: %s", ErrCellBlocked, p)
	}
	return idx, nil
}

// Start returns the start cell position, if one is set.
func (g *Grid) Start() (Position, bool) {
	if g.start == noEndpoint {
		return Position{}, false
	}
	return g.Position(g.start), true
}

// End returns the end cell position, if one is set.
func (g *Grid) End() (Position, bool) {
	if g.end == noEndpoint {
		return Position{}, false
	}
	return g.Position(g.end), true
}

// StartIndex returns the arena index of the start cell, if one is set.
func (g *Grid) StartIndex() (int, bool) {
	return g.start, g.start != noEndpoint
}

// EndIndex returns the arena index of the end cell, if one is set.
func (g *Grid) EndIndex() (int, bool) {
	return g.end, g.end != noEndpoint
}

// View returns the render state of the cell at p.
func (g *Grid) View(p Position) (CellView, error) {
	idx, err := g.Index(p)
	if err != nil {
		return CellView{}, err
	}
	return g.view(idx), nil
}

// Views returns the render state of every cell, row by row.
func (g *Grid) Views() [][]CellView {
	views := make([][]CellView, g.rows)
	for row := range views {
		views[row] = make([]CellView, g.cols)
		for col := range views[row] {
			views[row][col] = g.view(row*g.cols + col)
		}
	}
	return views
}

func (g *Grid) view(idx int) CellView {
	c := &g.cells[idx]
	return CellView{
		Walkable: c.Walkable,
		IsStart:  idx == g.start,
		IsEnd:    idx == g.end,
		IsOnPath: c.OnPath,
	}
}

// String provides a textual representation of the grid, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := row*g.cols + col
			c := &g.cells[idx]

			switch {
			case idx == g.start:
				sb.WriteRune(RuneStart)
			case idx == g.end:
				sb.WriteRune(RuneEnd)
			case !c.Walkable:
				sb.WriteRune(RuneObstacle)
			case c.OnPath:
				sb.WriteRune(RunePath)
			default:
				sb.WriteRune(RuneFree)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
