package cache

import (
	"context"

	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
	basecache "github.com/riskibarqy/team-manager/internal/platform/cache"
)

const teamKeyPrefix = "team:"

// TeamRepository caches team reads and drops every cached team entry on write.
type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneTeams(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return cloneTeams(items), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamKeyPrefix+"id:"+teamID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item.Clone(), exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value.Clone(), cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	defer r.invalidate(ctx)
	return r.next.Create(ctx, item)
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	defer r.invalidate(ctx)
	return r.next.Update(ctx, item)
}

func (r *TeamRepository) SaveConfiguration(ctx context.Context, teamID string, cfg teamsetup.Snapshot) error {
	defer r.invalidate(ctx)
	return r.next.SaveConfiguration(ctx, teamID, cfg)
}

func (r *TeamRepository) RecordResult(ctx context.Context, teamID string, goalsFor, goalsAgainst int) (team.Stats, error) {
	defer r.invalidate(ctx)
	return r.next.RecordResult(ctx, teamID, goalsFor, goalsAgainst)
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	defer r.invalidate(ctx)
	return r.next.Delete(ctx, teamID)
}

func (r *TeamRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, teamKeyPrefix)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

func cloneTeams(items []team.Team) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
