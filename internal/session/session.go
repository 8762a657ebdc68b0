package session

import (
	"errors"
	"time"
)

type State string

const (
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateStopped State = "stopped"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrAlreadyActive  = errors.New("a session is already active")
	ErrNotRunning     = errors.New("session is not running")
	ErrNotPaused      = errors.New("session is not paused")
	ErrAlreadyStopped = errors.New("session is already stopped")
)

// Session is one start-to-stop timer cycle for a (project, activity) pair.
// While running, elapsed time is derived from wall-clock timestamps rather
// than accumulated ticks, so a session keeps accruing even when no process
// is watching it.
type Session struct {
	ID          int64
	Project     string
	Activity    string
	State       State
	StartedAt   time.Time     // last time the session entered StateRunning
	Accumulated time.Duration // time banked before StartedAt
	CreatedAt   time.Time

	now func() time.Time // test hook
}

func New(project, activity string) *Session {
	s := &Session{Project: project, Activity: activity, State: StateRunning}
	s.StartedAt = s.clock()
	s.CreatedAt = s.StartedAt
	return s
}

func (s *Session) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

// Elapsed returns the total tracked duration so far.
func (s *Session) Elapsed() time.Duration {
	if s.State == StateRunning {
		return s.Accumulated + s.clock().Sub(s.StartedAt)
	}
	return s.Accumulated
}

func (s *Session) Pause() error {
	if s.State != StateRunning {
		return ErrNotRunning
	}
	s.Accumulated += s.clock().Sub(s.StartedAt)
	s.State = StatePaused
	return nil
}

func (s *Session) Resume() error {
	if s.State != StatePaused {
		return ErrNotPaused
	}
	s.StartedAt = s.clock()
	s.State = StateRunning
	return nil
}

// Stop finalizes the session from either the running or paused state and
// returns the total elapsed duration.
func (s *Session) Stop() (time.Duration, error) {
	switch s.State {
	case StateRunning:
		s.Accumulated += s.clock().Sub(s.StartedAt)
	case StatePaused:
		// already banked
	case StateStopped:
		return 0, ErrAlreadyStopped
	default:
		return 0, ErrNotRunning
	}
	s.State = StateStopped
	return s.Accumulated, nil
}
