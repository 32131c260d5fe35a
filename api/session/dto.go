// Package sessionapi exposes the grid editing and search commands of a session over HTTP.
package sessionapi

import (
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/search"
)

// CellRequest edits one cell. Row and Col are pointers so zero is accepted
// by the required binding.
type CellRequest struct {
	Row  *int   `json:"row" binding:"required"`
	Col  *int   `json:"col" binding:"required"`
	Mode string `json:"mode" binding:"required"`
}

// SessionResponse is returned when a session is opened.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
}

// SearchResponse is the outcome of a search run and the board it left behind.
type SearchResponse struct {
	dmn.Outcome
	Board dmn.Board `json:"board"`
}

// TraceResponse lists every expansion of a search run.
type TraceResponse struct {
	Steps   []search.Step `json:"steps"`
	Outcome dmn.Outcome   `json:"outcome"`
	Board   dmn.Board     `json:"board"`
}

// PresetsResponse lists the available preset layouts.
type PresetsResponse struct {
	Presets []dmn.PresetInfo `json:"presets"`
}
