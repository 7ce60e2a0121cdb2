package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
)

type GameFormatRepository struct {
	mu     sync.RWMutex
	items  map[string]gameformat.GameFormat
	orders []string
}

func NewGameFormatRepository(formats []gameformat.GameFormat) *GameFormatRepository {
	items := make(map[string]gameformat.GameFormat, len(formats))
	orders := make([]string, 0, len(formats))

	for _, f := range formats {
		if _, exists := items[f.ID]; !exists {
			orders = append(orders, f.ID)
		}
		items[f.ID] = f.Clone()
	}

	return &GameFormatRepository{
		items:  items,
		orders: orders,
	}
}

func (r *GameFormatRepository) List(_ context.Context) ([]gameformat.GameFormat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameformat.GameFormat, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id].Clone())
	}

	return out, nil
}

func (r *GameFormatRepository) GetByID(_ context.Context, formatID string) (gameformat.GameFormat, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[formatID]
	if !ok {
		return gameformat.GameFormat{}, false, nil
	}

	return f.Clone(), true, nil
}
