package team

import (
	"context"

	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

// Repository describes team persistence needs from use cases.
// Writes addressed to a missing team return ErrNotFound.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Update(ctx context.Context, item Team) error
	SaveConfiguration(ctx context.Context, teamID string, cfg teamsetup.Snapshot) error
	// RecordResult adds one finished match to the stored stats in a single step
	// and returns the new totals.
	RecordResult(ctx context.Context, teamID string, goalsFor, goalsAgainst int) (Stats, error)
	Delete(ctx context.Context, teamID string) error
}
