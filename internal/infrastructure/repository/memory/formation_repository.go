package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
)

type FormationRepository struct {
	mu    sync.RWMutex
	items []formation.Formation
	index map[string]int
}

func NewFormationRepository(formations []formation.Formation) *FormationRepository {
	items := make([]formation.Formation, 0, len(formations))
	index := make(map[string]int, len(formations))
	for _, f := range formations {
		if _, exists := index[f.ID]; exists {
			items[index[f.ID]] = f.Clone()
			continue
		}
		index[f.ID] = len(items)
		items = append(items, f.Clone())
	}

	return &FormationRepository{
		items: items,
		index: index,
	}
}

func (r *FormationRepository) List(_ context.Context) ([]formation.Formation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formation.Formation, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, f.Clone())
	}
	return out, nil
}

func (r *FormationRepository) ListByGameFormat(_ context.Context, gameFormatID string) ([]formation.Formation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formation.Formation, 0)
	for _, f := range r.items {
		if f.GameFormatID == gameFormatID {
			out = append(out, f.Clone())
		}
	}
	return out, nil
}

func (r *FormationRepository) GetByID(_ context.Context, formationID string) (formation.Formation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[formationID]
	if !ok {
		return formation.Formation{}, false, nil
	}
	return r.items[idx].Clone(), true, nil
}
