// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// defaultSessionLimit caps list_sessions when no limit is given.
const defaultSessionLimit = 20

// Server implements the MCP server using mark3labs/mcp-go.
// All tools are read-only; the interactive timer owns the state.
type Server struct {
	server        *server.MCPServer
	stateProvider ports.MCPStateProvider
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewServer creates a new MCP server instance.
func NewServer(stateProvider ports.MCPStateProvider, version string) *Server {
	s := &Server{
		stateProvider: stateProvider,
	}

	s.server = server.NewMCPServer(
		"pomodoro",
		version,
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_timer_state",
			mcp.WithDescription("Get the saved pomodoro timer state: mode, remaining time, completed pomodoros and theme"),
		),
		s.handleGetTimerState,
	)

	s.server.AddTool(
		mcp.NewTool(
			"get_stats",
			mcp.WithDescription("Get today's completed work sessions and the total work time"),
		),
		s.handleGetStats,
	)

	listSessionsTool := mcp.NewTool(
		"list_sessions",
		mcp.WithDescription("List completed sessions, newest first"),
		mcp.WithNumber(
			"limit",
			mcp.Description(fmt.Sprintf("Maximum number of sessions to return (default: %d)", defaultSessionLimit)),
		),
	)
	s.server.AddTool(listSessionsTool, s.handleListSessions)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	return server.ServeStdio(s.server)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

func (s *Server) handleGetTimerState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.stateProvider.GetTimerState(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get timer state: %v", err)), nil
	}

	result := map[string]interface{}{
		"mode":           string(snap.Mode),
		"mode_label":     snap.Mode.Label(),
		"remaining_time": snap.RemainingTime,
		"total_time":     snap.Mode.TotalSeconds(),
		"progress":       snap.Progress(),
		"pomodoro_count": snap.PomodoroCount,
		"next_mode":      string(snap.NextMode()),
		"theme":          string(snap.Theme),
	}

	return jsonResult(result)
}

func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.stateProvider.GetStats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}

	result := map[string]interface{}{
		"today_sessions":     stats.TodaySessions,
		"total_work_minutes": stats.TotalWorkMinutes,
	}

	return jsonResult(result)
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := int(request.GetFloat("limit", defaultSessionLimit))
	if limit < 1 {
		return mcp.NewToolResultError("limit must be at least 1"), nil
	}

	sessions, err := s.stateProvider.ListSessions(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list sessions: %v", err)), nil
	}

	sessionList := make([]map[string]interface{}, 0, len(sessions))
	for _, session := range sessions {
		sessionList = append(sessionList, map[string]interface{}{
			"type":             string(session.Type),
			"duration_minutes": session.DurationMinutes,
			"completed_at":     session.CompletedAt.UTC().Format(time.RFC3339),
		})
	}

	result := map[string]interface{}{
		"sessions":    sessionList,
		"total_count": len(sessionList),
	}

	return jsonResult(result)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
