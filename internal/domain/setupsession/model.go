package setupsession

import (
	"sync"
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

// Mode tells whether a session configures a new team or edits a saved setup.
type Mode string

const (
	ModeSetup    Mode = "setup"
	ModeSettings Mode = "settings"
)

// Session owns exactly one teamsetup.State for the lifetime of an editing
// interaction. All access to the state goes through Do.
type Session struct {
	ID        string
	TeamID    string
	Mode      Mode
	CreatedAt time.Time

	mu        sync.Mutex
	state     *teamsetup.State
	expiresAt time.Time
}

func New(id, teamID string, mode Mode, state *teamsetup.State, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        id,
		TeamID:    teamID,
		Mode:      mode,
		CreatedAt: now,
		state:     state,
		expiresAt: now.Add(ttl),
	}
}

// Do runs fn with exclusive access to the session state.
func (s *Session) Do(fn func(state *teamsetup.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt())
}

// Extend pushes the expiry to now+ttl.
func (s *Session) Extend(now time.Time, ttl time.Duration) {
	s.mu.Lock()
	s.expiresAt = now.Add(ttl)
	s.mu.Unlock()
}
