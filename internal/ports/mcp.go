package ports

import (
	"context"

	"github.com/xvierd/pomodoro-cli/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// MCPStateProvider provides state information to the MCP server.
// This is a driven port (implemented by services layer).
type MCPStateProvider interface {
	// GetTimerState returns the persisted timer snapshot.
	GetTimerState(ctx context.Context) (domain.StateSnapshot, error)

	// GetStats returns today's session count and total work minutes.
	GetStats(ctx context.Context) (domain.DailyStats, error)

	// ListSessions returns the most recent sessions, newest first.
	ListSessions(ctx context.Context, limit int) ([]domain.Session, error)
}
