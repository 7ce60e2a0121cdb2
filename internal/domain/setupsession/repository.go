package setupsession

import (
	"context"
	"time"
)

// Repository keeps live editing sessions. Expiry is decided by the caller.
type Repository interface {
	Create(ctx context.Context, item *Session) error
	Get(ctx context.Context, sessionID string) (*Session, bool, error)
	Delete(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
