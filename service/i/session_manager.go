package i

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// SessionManager creates and tracks per-user visualizer sessions.
type SessionManager interface {
	// Create opens a new session and returns its ID.
	Create() (uuid.UUID, error)

	// Get returns the session with the given ID.
	Get(id uuid.UUID) (Visualizer, error)

	// Delete closes the session with the given ID.
	Delete(id uuid.UUID) error

	// Count returns the number of open sessions.
	Count() int

	// PruneIdle closes sessions unused for longer than maxIdle and returns how many were closed.
	PruneIdle(maxIdle time.Duration) int

	// Presets lists the preset layouts sessions can load.
	Presets() []dmn.PresetInfo

	// Dimensions returns the grid size of every session.
	Dimensions() (rows, cols int)
}
