package results

import (
	"time"

	"github.com/averycrespi/calc-mcp/internal/session"
)

// NewSessionToolResult represents the result of the new session tool
type NewSessionToolResult struct {
	Message string  `json:"message"`
	Display Display `json:"display"`
}

// CloseSessionToolResult represents the result of the close session tool
type CloseSessionToolResult struct {
	Message   string               `json:"message"`
	Arguments CloseSessionToolArgs `json:"arguments"`
}

// CloseSessionToolArgs represents the arguments for the close session tool
type CloseSessionToolArgs struct {
	SessionID string `json:"session_id"`
}

// ListSessionsToolResult represents the result of the list sessions tool
type ListSessionsToolResult struct {
	Message  string        `json:"message"`
	Sessions []SessionInfo `json:"sessions"`
}

// SessionInfo represents one open session in a listing
type SessionInfo struct {
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`
	Display   Display   `json:"display"`
}

// NewSessionInfo creates a SessionInfo from a session.Info
func NewSessionInfo(info session.Info) SessionInfo {
	return SessionInfo{
		CreatedAt: info.CreatedAt,
		LastUsed:  info.LastUsed,
		Display:   NewDisplay(info.ID, info.State, info.State.Snapshot()),
	}
}
