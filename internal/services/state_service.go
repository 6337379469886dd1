package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// StateService implements the MCPStateProvider interface.
// It reads the persisted snapshot on every call so it reflects whatever
// the interactive timer last saved.
type StateService struct {
	store ports.KeyValueStore
}

// NewStateService creates a new state service.
func NewStateService(store ports.KeyValueStore) *StateService {
	return &StateService{store: store}
}

func (s *StateService) persistence() (*PersistenceService, *domain.TimerState) {
	state := domain.NewTimerState()
	return NewPersistenceService(s.store, state, nil), state
}

// GetTimerState implements ports.MCPStateProvider.
func (s *StateService) GetTimerState(ctx context.Context) (domain.StateSnapshot, error) {
	p, state := s.persistence()
	if _, err := p.LoadState(ctx); err != nil {
		return state.Snapshot(), fmt.Errorf("failed to load timer state: %w", err)
	}
	return state.Snapshot(), nil
}

// GetStats implements ports.MCPStateProvider.
func (s *StateService) GetStats(ctx context.Context) (domain.DailyStats, error) {
	p, _ := s.persistence()
	return p.Stats(ctx)
}

// ListSessions implements ports.MCPStateProvider.
func (s *StateService) ListSessions(ctx context.Context, limit int) ([]domain.Session, error) {
	p, _ := s.persistence()
	sessions, err := p.LoadSessions(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CompletedAt.After(sessions[j].CompletedAt)
	})
	if limit > 0 && len(sessions) > limit {
		return sessions[:limit], nil
	}
	return sessions, nil
}

// Ensure StateService implements MCPStateProvider.
var _ ports.MCPStateProvider = (*StateService)(nil)
