package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/search"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

// ErrPresetNotFound is returned when loading a preset that does not exist.
var ErrPresetNotFound = errors.New("preset not found")

// PresetFinder looks up preset layouts by name.
type PresetFinder interface {
	Find(name string) (config.Preset, bool)
}

// Session owns one grid. The embedded mutex serializes every command, so a
// running search is the only operation on the grid until it returns.
type Session struct {
	id       uuid.UUID
	grid     *grid.Grid
	presets  PresetFinder
	logger   i.Logger
	lastUsed time.Time
	now      func() time.Time
	sync.Mutex
}

var _ i.Visualizer = &Session{}

// NewSession creates a session around an empty rows x cols grid.
// presets may be nil when no preset layouts are available.
func NewSession(id uuid.UUID, rows, cols int, presets PresetFinder, logger i.Logger) (*Session, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:      id,
		grid:    g,
		presets: presets,
		logger:  logger,
		now:     time.Now,
	}
	s.lastUsed = s.now()
	return s, nil
}

// ID returns the session ID.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Apply edits the cell at p according to mode.
func (s *Session) Apply(mode dmn.Mode, p grid.Position) error {
	switch mode {
	case dmn.ModeStart:
		return s.SetStart(p)
	case dmn.ModeEnd:
		return s.SetEnd(p)
	case dmn.ModeBarrier:
		return s.ToggleObstacle(p)
	default:
		return fmt.Errorf("%w: %q", dmn.ErrUnknownMode, mode)
	}
}

// SetStart makes the cell at p the start cell.
func (s *Session) SetStart(p grid.Position) error {
	s.lock()
	defer s.Unlock()
	return s.grid.SetStart(p)
}

// SetEnd makes the cell at p the end cell.
func (s *Session) SetEnd(p grid.Position) error {
	s.lock()
	defer s.Unlock()
	return s.grid.SetEnd(p)
}

// ToggleObstacle flips the cell at p between free and obstacle.
func (s *Session) ToggleObstacle(p grid.Position) error {
	s.lock()
	defer s.Unlock()
	return s.grid.ToggleObstacle(p)
}

// RunSearch runs A* to completion. Missing endpoints and unreachable ends
// are reported through the outcome status; the error is reserved for
// anything else.
func (s *Session) RunSearch() (dmn.Outcome, error) {
	s.lock()
	defer s.Unlock()

	result, err := search.FindPath(s.grid)
	outcome, err := s.outcome(result, err)
	if err == nil {
		s.logOutcome("search", outcome)
	}
	return outcome, err
}

// Trace runs A* one expansion at a time and returns every step taken.
// The grid ends in the same state RunSearch would leave it in.
func (s *Session) Trace() ([]search.Step, dmn.Outcome, error) {
	s.lock()
	defer s.Unlock()

	stepper, err := search.NewStepper(s.grid)
	if err != nil {
		outcome, err := s.outcome(search.Result{}, err)
		return nil, outcome, err
	}

	var steps []search.Step
	for !stepper.Done() {
		steps = append(steps, stepper.Step())
	}

	outcome, err := s.outcome(stepper.Result())
	if err != nil {
		return nil, outcome, err
	}
	s.logOutcome("trace", outcome)
	return steps, outcome, nil
}

// ClearAll drops every obstacle and both endpoints.
func (s *Session) ClearAll() {
	s.lock()
	defer s.Unlock()
	s.grid.Reinitialize()
}

// LoadPreset replaces the grid content with the named preset layout. A layout
// that does not fit leaves the grid as it was.
func (s *Session) LoadPreset(name string) error {
	if s.presets == nil {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	preset, ok := s.presets.Find(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	s.lock()
	defer s.Unlock()
	if err := s.grid.ApplyLayout(preset.Layout); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	return nil
}

// Board returns a render snapshot of the grid.
func (s *Session) Board() dmn.Board {
	s.lock()
	defer s.Unlock()
	return dmn.NewBoard(s.grid)
}

// LastUsed returns when the session last ran a command.
func (s *Session) LastUsed() time.Time {
	s.Lock()
	defer s.Unlock()
	return s.lastUsed
}

// lock acquires the session and records the access time.
func (s *Session) lock() {
	s.Lock()
	s.lastUsed = s.now()
}

func (s *Session) outcome(result search.Result, err error) (dmn.Outcome, error) {
	switch {
	case err == nil:
		return dmn.Outcome{Status: dmn.StatusPathFound, Path: result.Path, Expanded: result.Expanded}, nil
	case errors.Is(err, search.ErrNoPathFound):
		return dmn.Outcome{Status: dmn.StatusNoPathFound, Expanded: result.Expanded}, nil
	case errors.Is(err, search.ErrMissingEndpoints):
		return dmn.Outcome{Status: dmn.StatusMissingEndpoints}, nil
	default:
		return dmn.Outcome{}, err
	}
}

func (s *Session) logOutcome(kind string, o dmn.Outcome) {
	if s.logger == nil {
		return
	}
	s.logger.Info(fmt.Sprintf("session %s %s: %s, expanded %d, path length %d", s.id, kind, o.Status, o.Expanded, len(o.Path)))
}
