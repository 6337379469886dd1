package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/domain"
	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// Storage keys.
const (
	StateKey    = "pomodoro-state"
	SessionsKey = "pomodoro-sessions"
)

// sessionDateLayout is ISO-8601 UTC with millisecond precision.
const sessionDateLayout = "2006-01-02T15:04:05.000Z"

// persistedState mirrors the stored snapshot. Pointer fields distinguish
// absent keys from zero values.
type persistedState struct {
	Mode          *string `json:"mode,omitempty"`
	RemainingTime *int    `json:"remainingTime,omitempty"`
	PomodoroCount *int    `json:"pomodoroCount,omitempty"`
	Theme         *string `json:"theme,omitempty"`
}

type persistedSession struct {
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	Date     string `json:"date"`
}

// PersistenceService stores the timer snapshot and the session log.
type PersistenceService struct {
	store  ports.KeyValueStore
	state  *domain.TimerState
	logger *log.Logger
	now    func() time.Time
}

// NewPersistenceService creates a persistence service bound to state.
// A nil logger discards output.
func NewPersistenceService(store ports.KeyValueStore, state *domain.TimerState, logger *log.Logger) *PersistenceService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &PersistenceService{
		store:  store,
		state:  state,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for session dates and the
// "today" boundary.
func (s *PersistenceService) SetClock(now func() time.Time) {
	s.now = now
}

// Now returns the current time from the configured clock.
func (s *PersistenceService) Now() time.Time {
	return s.now()
}

// SaveState writes the current snapshot. The running flag is never stored.
func (s *PersistenceService) SaveState(ctx context.Context) error {
	mode := string(s.state.Mode())
	remaining := s.state.RemainingTime()
	count := s.state.PomodoroCount()
	theme := string(s.state.Theme())

	data, err := json.Marshal(persistedState{
		Mode:          &mode,
		RemainingTime: &remaining,
		PomodoroCount: &count,
		Theme:         &theme,
	})
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := s.store.SetItem(ctx, StateKey, string(data)); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// LoadState merges the stored snapshot into the state.
// It returns false with a nil error when nothing has been saved yet.
// On any error the state is left untouched.
func (s *PersistenceService) LoadState(ctx context.Context) (bool, error) {
	raw, ok, err := s.store.GetItem(ctx, StateKey)
	if err != nil {
		return false, fmt.Errorf("failed to load state: %w", err)
	}
	if !ok {
		return false, nil
	}

	var stored *persistedState
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrMalformedState, err)
	}
	if stored == nil {
		return false, fmt.Errorf("%w: stored value is null", domain.ErrMalformedState)
	}

	s.state.ApplyPartial(s.toPatch(*stored))
	return true, nil
}

// toPatch drops fields with unknown enum values or negative numbers and
// clamps the remaining time into the resulting mode's range.
func (s *PersistenceService) toPatch(stored persistedState) domain.StatePatch {
	var patch domain.StatePatch

	mode := s.state.Mode()
	if stored.Mode != nil {
		if m, err := domain.ValidateMode(*stored.Mode); err == nil {
			mode = m
			patch.Mode = &mode
		} else {
			s.logger.Printf("ignoring stored mode: %v", err)
		}
	}

	remaining := s.state.RemainingTime()
	if stored.RemainingTime != nil && *stored.RemainingTime >= 0 {
		remaining = *stored.RemainingTime
	}
	remaining = domain.ClampRemaining(mode, remaining)
	patch.RemainingTime = &remaining

	if stored.PomodoroCount != nil && *stored.PomodoroCount >= 0 {
		count := *stored.PomodoroCount
		patch.PomodoroCount = &count
	}

	if stored.Theme != nil {
		if t, err := domain.ValidateTheme(*stored.Theme); err == nil {
			patch.Theme = &t
		} else {
			s.logger.Printf("ignoring stored theme: %v", err)
		}
	}

	running := false
	patch.IsRunning = &running
	return patch
}

// SaveSession appends a session to the log. Existing records are written
// back as stored, including ones that cannot be decoded. Only a log that
// is not a JSON array is replaced.
func (s *PersistenceService) SaveSession(ctx context.Context, session domain.Session) error {
	entries, err := s.readSessionLog(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrMalformedSessions) {
			return err
		}
		s.logger.Printf("replacing unreadable session log: %v", err)
		entries = nil
	}

	record, err := json.Marshal(persistedSession{
		Type:     string(session.Type),
		Duration: session.DurationMinutes,
		Date:     session.CompletedAt.UTC().Format(sessionDateLayout),
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	entries = append(entries, record)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	if err := s.store.SetItem(ctx, SessionsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// LoadSessions returns the session log in completion order.
// A missing log is empty. A log that is not a JSON array yields an empty
// slice and ErrMalformedSessions. Individual records that cannot be
// decoded are skipped.
func (s *PersistenceService) LoadSessions(ctx context.Context) ([]domain.Session, error) {
	entries, err := s.readSessionLog(ctx)
	if err != nil {
		return []domain.Session{}, err
	}

	sessions := make([]domain.Session, 0, len(entries))
	for i, entry := range entries {
		session, err := decodeSession(entry)
		if err != nil {
			s.logger.Printf("skipping session record %d: %v", i, err)
			continue
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// readSessionLog returns the raw records of the stored log.
func (s *PersistenceService) readSessionLog(ctx context.Context) ([]json.RawMessage, error) {
	raw, ok, err := s.store.GetItem(ctx, SessionsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSessions, err)
	}
	return entries, nil
}

func decodeSession(entry json.RawMessage) (domain.Session, error) {
	var r persistedSession
	if err := json.Unmarshal(entry, &r); err != nil {
		return domain.Session{}, err
	}
	completedAt, err := time.Parse(time.RFC3339Nano, r.Date)
	if err != nil {
		return domain.Session{}, fmt.Errorf("bad date %q", r.Date)
	}
	return domain.Session{
		Type:            domain.Mode(r.Type),
		DurationMinutes: r.Duration,
		CompletedAt:     completedAt,
	}, nil
}

// TodaySessionsCount counts work sessions completed on the current local day.
func (s *PersistenceService) TodaySessionsCount(ctx context.Context) int {
	sessions, err := s.LoadSessions(ctx)
	if err != nil {
		s.logger.Printf("counting today's sessions: %v", err)
	}
	return domain.CountWorkSessionsOn(sessions, s.now())
}

// TotalWorkMinutes sums the durations of all work sessions.
func (s *PersistenceService) TotalWorkMinutes(ctx context.Context) int {
	sessions, err := s.LoadSessions(ctx)
	if err != nil {
		s.logger.Printf("summing work minutes: %v", err)
	}
	return domain.SumWorkMinutes(sessions)
}

// Stats returns both aggregates in one read of the log.
func (s *PersistenceService) Stats(ctx context.Context) (domain.DailyStats, error) {
	sessions, err := s.LoadSessions(ctx)
	now := s.now()
	return domain.DailyStats{
		Date:             now,
		TodaySessions:    domain.CountWorkSessionsOn(sessions, now),
		TotalWorkMinutes: domain.SumWorkMinutes(sessions),
	}, err
}

// ClearAll removes the stored snapshot and the session log.
func (s *PersistenceService) ClearAll(ctx context.Context) error {
	for _, key := range []string{StateKey, SessionsKey} {
		if err := s.store.RemoveItem(ctx, key); err != nil {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}
