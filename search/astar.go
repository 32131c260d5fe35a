package search

import (
	"errors"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// Search errors.
var (
	ErrMissingEndpoints = errors.New("start or end cell is not set")
	ErrNoPathFound      = errors.New("no path found")
	ErrSearchRunning    = errors.New("search has not finished")
)

// Result contains the outcome of a search.
type Result struct {
	Path     []grid.Position // Path runs from the start cell to the end cell inclusive.
	Expanded int             // Expanded counts cells removed from the open set.
}

// Cost returns the number of moves along the path.
func (r Result) Cost() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Heuristic returns the Manhattan distance between a and b.
func Heuristic(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// FindPath runs A* from the grid's start cell to its end cell.
//
// On success the intermediate path cells are flagged OnPath. It returns
// ErrMissingEndpoints when either endpoint is unset and ErrNoPathFound when
// the end is unreachable; in the latter case the explored search state is
// left on the grid until the next reset.
func FindPath(g *grid.Grid) (Result, error) {
	s, err := NewStepper(g)
	if err != nil {
		return Result{}, err
	}

	for !s.done {
		s.advance()
	}
	return s.Result()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
