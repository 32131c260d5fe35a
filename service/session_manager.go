package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/grid"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultGridSize    = 15
	defaultMaxSessions = 1024
)

// Session manager errors.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many open sessions")
)

// Config holds the settings for a SessionManager.
type Config struct {
	Rows        int                   // Grid rows per session, defaults to 15
	Cols        int                   // Grid columns per session, defaults to 15
	MaxSessions int                   // Open session cap, defaults to 1024
	Presets     *config.PresetsConfig // Preset layouts, may be nil
	Logger      i.Logger              // Logger for session events, may be nil
}

// SessionManager keeps the open sessions of this process in memory.
type SessionManager struct {
	rows        int
	cols        int
	maxSessions int
	presets     *config.PresetsConfig
	logger      i.Logger
	sessions    map[uuid.UUID]*Session
	sync.RWMutex
}

var _ i.SessionManager = &SessionManager{}

// NewSessionManager validates c and creates an empty SessionManager.
func NewSessionManager(c *Config) (*SessionManager, error) {
	sm := &SessionManager{
		rows:        c.Rows,
		cols:        c.Cols,
		maxSessions: c.MaxSessions,
		presets:     c.Presets,
		logger:      c.Logger,
		sessions:    make(map[uuid.UUID]*Session),
	}
	if sm.rows == 0 {
		sm.rows = defaultGridSize
	}
	if sm.cols == 0 {
		sm.cols = defaultGridSize
	}
	if sm.maxSessions <= 0 {
		sm.maxSessions = defaultMaxSessions
	}

	if _, err := grid.New(sm.rows, sm.cols); err != nil {
		return nil, err
	}
	if err := sm.checkPresets(); err != nil {
		return nil, err
	}

	return sm, nil
}

// checkPresets rejects preset layouts that would not load into the
// session grid.
func (sm *SessionManager) checkPresets() error {
	if sm.presets == nil {
		return nil
	}
	for _, p := range sm.presets.Presets {
		if err := grid.CheckLayout(sm.rows, sm.cols, p.Layout); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return nil
}

// Create opens a new session and returns its ID.
func (sm *SessionManager) Create() (uuid.UUID, error) {
	sm.Lock()
	defer sm.Unlock()

	if len(sm.sessions) >= sm.maxSessions {
		return uuid.Nil, ErrTooManySessions
	}

	id := uuid.New()
	session, err := NewSession(id, sm.rows, sm.cols, sm.presetFinder(), sm.logger)
	if err != nil {
		return uuid.Nil, err
	}
	sm.sessions[id] = session

	sm.info(fmt.Sprintf("session %s created, %d open", id, len(sm.sessions)))
	return id, nil
}

// Get returns the session with the given ID.
func (sm *SessionManager) Get(id uuid.UUID) (i.Visualizer, error) {
	session, err := sm.session(id)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (sm *SessionManager) session(id uuid.UUID) (*Session, error) {
	sm.RLock()
	defer sm.RUnlock()

	session, ok := sm.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// Delete closes the session with the given ID.
func (sm *SessionManager) Delete(id uuid.UUID) error {
	sm.Lock()
	defer sm.Unlock()

	if _, ok := sm.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(sm.sessions, id)

	sm.info(fmt.Sprintf("session %s closed, %d open", id, len(sm.sessions)))
	return nil
}

// Count returns the number of open sessions.
func (sm *SessionManager) Count() int {
	sm.RLock()
	defer sm.RUnlock()
	return len(sm.sessions)
}

// PruneIdle closes sessions unused for longer than maxIdle. Sessions are
// checked without holding the manager's write lock, so a long search in one
// session does not stall Create and Get.
func (sm *SessionManager) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	sm.RLock()
	sessions := make([]*Session, 0, len(sm.sessions))
	for _, session := range sm.sessions {
		sessions = append(sessions, session)
	}
	sm.RUnlock()

	var idle []*Session
	for _, session := range sessions {
		if session.LastUsed().Before(cutoff) {
			idle = append(idle, session)
		}
	}
	if len(idle) == 0 {
		return 0
	}

	sm.Lock()
	defer sm.Unlock()

	pruned := 0
	for _, session := range idle {
		if sm.sessions[session.id] != session {
			continue
		}
		delete(sm.sessions, session.id)
		pruned++
	}

	if pruned > 0 {
		sm.info(fmt.Sprintf("pruned %d idle sessions, %d open", pruned, len(sm.sessions)))
	}
	return pruned
}

// Presets lists the preset layouts sessions can load.
func (sm *SessionManager) Presets() []dmn.PresetInfo {
	if sm.presets == nil {
		return []dmn.PresetInfo{}
	}

	infos := make([]dmn.PresetInfo, 0, len(sm.presets.Presets))
	for _, p := range sm.presets.Presets {
		infos = append(infos, dmn.PresetInfo{Name: p.Name, Description: p.Description})
	}
	return infos
}

// Dimensions returns the grid size of every session.
func (sm *SessionManager) Dimensions() (rows, cols int) {
	return sm.rows, sm.cols
}

// presetFinder avoids handing sessions a typed nil inside an interface.
func (sm *SessionManager) presetFinder() PresetFinder {
	if sm.presets == nil {
		return nil
	}
	return sm.presets
}

func (sm *SessionManager) info(msg string) {
	if sm.logger != nil {
		sm.logger.Info(msg)
	}
}
