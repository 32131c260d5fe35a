package search

import (
	"container/heap"
	"slices"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// Step is the state of the search after one expansion.
type Step struct {
	Index   int             `json:"index"`            // Index counts cells removed from the open set.
	Current grid.Position   `json:"current"`          // Current is the cell removed in this step.
	Opened  []grid.Position `json:"opened,omitempty"` // Opened are cells queued or re-keyed in this step.
	Done    bool            `json:"done"`
	Found   bool            `json:"found"`
	Path    []grid.Position `json:"path,omitempty"` // Path is set on the step that reaches the end.
}

// Stepper runs A* one expansion at a time. It must not be used concurrently
// with other mutations of its grid.
type Stepper struct {
	g     *grid.Grid
	start int
	end   int

	open   openSet
	queued []*openItem // queued[idx] is the open set item of cell idx, if any
	closed []bool
	seq    int

	neighbors []int
	opened    []int

	current  int
	expanded int
	done     bool
	found    bool
	path     []grid.Position
}

// NewStepper resets the grid's search state and queues the start cell.
// It returns ErrMissingEndpoints, without touching the grid, when the start
// or end cell is unset.
func NewStepper(g *grid.Grid) (*Stepper, error) {
	start, okStart := g.StartIndex()
	end, okEnd := g.EndIndex()
	if !okStart || !okEnd {
		return nil, ErrMissingEndpoints
	}

	g.ResetSearchState()

	s := &Stepper{
		g:         g,
		start:     start,
		end:       end,
		open:      make(openSet, 0, g.Size()/4+1),
		queued:    make([]*openItem, g.Size()),
		closed:    make([]bool, g.Size()),
		neighbors: make([]int, 0, 4),
		current:   start,
	}

	c := g.At(start)
	c.G = 0
	c.H = s.heuristic(start)
	c.F = c.H
	s.push(start)

	return s, nil
}

// Step advances the search by one expansion and returns a snapshot.
// Once the search is done every call returns the final snapshot again.
func (s *Stepper) Step() Step {
	s.advance()

	snapshot := Step{
		Index:   s.expanded,
		Current: s.g.Position(s.current),
		Done:    s.done,
		Found:   s.found,
		Path:    slices.Clone(s.path),
	}
	if len(s.opened) > 0 {
		snapshot.Opened = make([]grid.Position, len(s.opened))
		for i, idx := range s.opened {
			snapshot.Opened[i] = s.g.Position(idx)
		}
	}
	return snapshot
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool {
	return s.done
}

// Found reports whether the search reached the end cell.
func (s *Stepper) Found() bool {
	return s.found
}

// Expanded returns the number of cells removed from the open set so far.
func (s *Stepper) Expanded() int {
	return s.expanded
}

// Open returns the queued cells in row-major order.
func (s *Stepper) Open() []grid.Position {
	var result []grid.Position
	for idx, item := range s.queued {
		if item != nil {
			result = append(result, s.g.Position(idx))
		}
	}
	return result
}

// Closed returns the finalized cells in row-major order.
func (s *Stepper) Closed() []grid.Position {
	var result []grid.Position
	for idx, closed := range s.closed {
		if closed {
			result = append(result, s.g.Position(idx))
		}
	}
	return result
}

// Result returns the outcome of a finished search. It returns ErrNoPathFound
// when the open set was exhausted, and ErrSearchRunning before the search is done.
func (s *Stepper) Result() (Result, error) {
	if !s.done {
		return Result{Expanded: s.expanded}, ErrSearchRunning
	}
	if !s.found {
		return Result{Expanded: s.expanded}, ErrNoPathFound
	}
	return Result{Path: slices.Clone(s.path), Expanded: s.expanded}, nil
}

func (s *Stepper) advance() {
	s.opened = s.opened[:0]
	if s.done {
		return
	}
	if s.open.Len() == 0 {
		s.done = true
		return
	}

	item := heap.Pop(&s.open).(*openItem)
	current := item.idx
	s.queued[current] = nil
	s.current = current
	s.expanded++

	if current == s.end {
		s.path = s.reconstructPath()
		s.done = true
		s.found = true
		return
	}

	s.closed[current] = true
	cell := s.g.At(current)

	s.neighbors = s.g.NeighborIndexes(s.neighbors[:0], current)
	for _, n := range s.neighbors {
		neighbor := s.g.At(n)
		if !neighbor.Walkable || s.closed[n] {
			continue
		}

		tentativeG := cell.G + 1
		if tentativeG >= neighbor.G {
			continue
		}

		neighbor.Parent = current
		neighbor.G = tentativeG
		neighbor.H = s.heuristic(n)
		neighbor.F = neighbor.G + neighbor.H

		if queued := s.queued[n]; queued != nil {
			queued.f = neighbor.F
			queued.h = neighbor.H
			heap.Fix(&s.open, queued.indexInQueue)
		} else {
			s.push(n)
		}
		s.opened = append(s.opened, n)
	}

	if s.open.Len() == 0 {
		s.done = true
	}
}

func (s *Stepper) push(idx int) {
	c := s.g.At(idx)
	item := &openItem{idx: idx, f: c.F, h: c.H, seq: s.seq}
	s.seq++
	heap.Push(&s.open, item)
	s.queued[idx] = item
}

// reconstructPath follows Parent links from the end cell, flags the cells
// strictly between start and end, and returns the path from start to end.
func (s *Stepper) reconstructPath() []grid.Position {
	var path []grid.Position
	for idx := s.end; idx != grid.NoParent; idx = s.g.At(idx).Parent {
		if idx != s.start && idx != s.end {
			s.g.At(idx).OnPath = true
		}
		path = append(path, s.g.Position(idx))
	}
	slices.Reverse(path)
	return path
}

func (s *Stepper) heuristic(idx int) int {
	return Heuristic(s.g.Position(idx), s.g.Position(s.end))
}
