// Package domain holds the types exchanged between the session service and its callers.
package domain

import (
	"errors"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/grid"
)

// ErrUnknownMode is returned for an edit mode other than start, end or barrier.
var ErrUnknownMode = errors.New("unknown edit mode")

// Mode selects what a cell edit does. It travels with every edit command.
type Mode string

// Edit modes.
const (
	ModeStart   Mode = "start"   // Make the cell the start cell.
	ModeEnd     Mode = "end"     // Make the cell the end cell.
	ModeBarrier Mode = "barrier" // Toggle the cell between free and obstacle.
)

// ParseMode converts s, case-insensitively, to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeStart, ModeEnd, ModeBarrier:
		return m, nil
	default:
		return "", ErrUnknownMode
	}
}

// Status is the kind of result a search run produced.
type Status string

// Search statuses.
const (
	StatusPathFound        Status = "path_found"
	StatusNoPathFound      Status = "no_path_found"
	StatusMissingEndpoints Status = "missing_endpoints"
)

// Outcome is the result of one search run.
type Outcome struct {
	Status   Status          `json:"status"`
	Path     []grid.Position `json:"path,omitempty"` // start to end inclusive, set for StatusPathFound
	Expanded int             `json:"expanded"`
}

// Board is a render snapshot of a grid.
type Board struct {
	Rows  int               `json:"rows"`
	Cols  int               `json:"cols"`
	Start *grid.Position    `json:"start,omitempty"`
	End   *grid.Position    `json:"end,omitempty"`
	Cells [][]grid.CellView `json:"cells"`
	Text  string            `json:"text"`
}

// NewBoard takes a render snapshot of g.
func NewBoard(g *grid.Grid) Board {
	b := Board{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: g.Views(),
		Text:  g.String(),
	}
	if p, ok := g.Start(); ok {
		b.Start = &p
	}
	if p, ok := g.End(); ok {
		b.End = &p
	}
	return b
}

// PresetInfo describes a preset layout without its cells.
type PresetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
