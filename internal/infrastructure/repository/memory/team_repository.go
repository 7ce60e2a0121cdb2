package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]team.Team
	orders []string
	now    func() time.Time
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{
		items: make(map[string]team.Team, len(teams)),
		now:   time.Now,
	}
	for _, item := range teams {
		r.items[item.ID] = item.Clone()
		r.orders = append(r.orders, item.ID)
	}
	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id].Clone())
	}
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[teamID]
	if !ok {
		return team.Team{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTaken(item.Name, item.ID) {
		return team.ErrDuplicateName
	}

	now := r.now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return nil
	}
	if r.nameTaken(item.Name, item.ID) {
		return team.ErrDuplicateName
	}

	existing.Name = item.Name
	existing.Description = item.Description
	existing.UpdatedAt = r.now().UTC()
	r.items[item.ID] = existing
	return nil
}

func (r *TeamRepository) SaveConfiguration(_ context.Context, teamID string, cfg teamsetup.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[teamID]
	if !ok {
		return team.ErrNotFound
	}
	copied := cfg.Clone()
	existing.Configuration = &copied
	existing.UpdatedAt = r.now().UTC()
	r.items[teamID] = existing
	return nil
}

func (r *TeamRepository) RecordResult(_ context.Context, teamID string, goalsFor, goalsAgainst int) (team.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[teamID]
	if !ok {
		return team.Stats{}, team.ErrNotFound
	}
	existing.Stats = existing.Stats.Record(goalsFor, goalsAgainst)
	existing.UpdatedAt = r.now().UTC()
	r.items[teamID] = existing
	return existing.Stats, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[teamID]; !ok {
		return nil
	}
	delete(r.items, teamID)
	for idx, id := range r.orders {
		if id == teamID {
			r.orders = append(r.orders[:idx], r.orders[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *TeamRepository) nameTaken(name, exceptID string) bool {
	for id, item := range r.items {
		if id != exceptID && strings.EqualFold(strings.TrimSpace(item.Name), strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}
