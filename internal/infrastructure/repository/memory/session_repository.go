package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/setupsession"
)

// SessionRepository keeps live editing sessions in process memory. Expiry is
// judged by the caller's clock, see PurgeExpired.
type SessionRepository struct {
	mu    sync.RWMutex
	items map[string]*setupsession.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		items: make(map[string]*setupsession.Session),
	}
}

func (r *SessionRepository) Create(_ context.Context, item *setupsession.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *SessionRepository) Get(_ context.Context, sessionID string) (*setupsession.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[sessionID]
	if !ok {
		return nil, false, nil
	}
	return item, true, nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, sessionID)
	return nil
}

func (r *SessionRepository) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for id, item := range r.items {
		if item.Expired(now) {
			delete(r.items, id)
			purged++
		}
	}
	return purged, nil
}
