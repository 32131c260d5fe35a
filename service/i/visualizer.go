package i

import (
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
)

// Visualizer is one user's grid and the commands that edit and search it.
// Implementations serialize all commands.
type Visualizer interface {
	// Apply edits the cell at p according to mode.
	Apply(mode dmn.Mode, p grid.Position) error

	// SetStart makes the cell at p the start cell.
	SetStart(p grid.Position) error

	// SetEnd makes the cell at p the end cell.
	SetEnd(p grid.Position) error

	// ToggleObstacle flips the cell at p between free and obstacle.
	ToggleObstacle(p grid.Position) error

	// RunSearch runs A* and marks the found path on the grid.
	RunSearch() (dmn.Outcome, error)

	// Trace runs A* one expansion at a time and returns every step.
	Trace() ([]search.Step, dmn.Outcome, error)

	// ClearAll drops every obstacle and both endpoints.
	ClearAll()

	// LoadPreset replaces the grid content with a named preset layout.
	LoadPreset(name string) error

	// Board returns a render snapshot of the grid.
	Board() dmn.Board
}
