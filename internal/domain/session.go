package domain

import (
	"time"
)

// Session is a completed interval recorded in the session log.
// Only work intervals are recorded today.
type Session struct {
	Type            Mode
	DurationMinutes int
	CompletedAt     time.Time
}

// NewWorkSession records a finished work interval at the given time.
func NewWorkSession(completedAt time.Time) Session {
	return Session{
		Type:            ModeWork,
		DurationMinutes: ModeWork.TotalSeconds() / 60,
		CompletedAt:     completedAt,
	}
}

// IsWorkSession returns true if this is a work session.
func (s Session) IsWorkSession() bool {
	return s.Type == ModeWork
}

// DailyStats aggregates the session log for display.
type DailyStats struct {
	Date             time.Time
	TodaySessions    int
	TotalWorkMinutes int
}

// CountWorkSessionsOn counts work sessions completed on the calendar day of
// day, in day's location.
func CountWorkSessionsOn(sessions []Session, day time.Time) int {
	y, m, d := day.Date()
	count := 0
	for _, s := range sessions {
		if !s.IsWorkSession() {
			continue
		}
		sy, sm, sd := s.CompletedAt.In(day.Location()).Date()
		if sy == y && sm == m && sd == d {
			count++
		}
	}
	return count
}

// SumWorkMinutes totals the duration of all work sessions.
func SumWorkMinutes(sessions []Session) int {
	total := 0
	for _, s := range sessions {
		if s.IsWorkSession() {
			total += s.DurationMinutes
		}
	}
	return total
}
