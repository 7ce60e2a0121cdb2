package formation

import "context"

// Repository exposes read access to the formation reference table.
type Repository interface {
	List(ctx context.Context) ([]Formation, error)
	ListByGameFormat(ctx context.Context, gameFormatID string) ([]Formation, error)
	GetByID(ctx context.Context, formationID string) (Formation, bool, error)
}
