// Package search implements A* over a grid.Grid with unit step cost and the
// Manhattan distance heuristic.
//
// It exposes two entry points:
//
//   - FindPath: run the search to completion and get a Result.
//   - Stepper: advance the search one expansion at a time to drive a
//     visualization.
//
// Both mutate the grid's search attributes in place and reset them before
// starting. Walkability and the start and end cells are never changed.
package search
