package gameformat

import "context"

// Repository exposes read access to the game format reference table.
type Repository interface {
	List(ctx context.Context) ([]GameFormat, error)
	GetByID(ctx context.Context, formatID string) (GameFormat, bool, error)
}
