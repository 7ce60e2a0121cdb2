package cache

import (
	"context"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
	basecache "github.com/riskibarqy/team-manager/internal/platform/cache"
)

type GameFormatRepository struct {
	next  gameformat.Repository
	cache *basecache.Store
}

func NewGameFormatRepository(next gameformat.Repository, cache *basecache.Store) *GameFormatRepository {
	return &GameFormatRepository{next: next, cache: cache}
}

func (r *GameFormatRepository) List(ctx context.Context) ([]gameformat.GameFormat, error) {
	v, err := r.cache.GetOrLoad(ctx, "game_format:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneGameFormats(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]gameformat.GameFormat)
	return cloneGameFormats(items), nil
}

func (r *GameFormatRepository) GetByID(ctx context.Context, formatID string) (gameformat.GameFormat, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "game_format:id:"+formatID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, formatID)
		if err != nil {
			return nil, err
		}
		return cachedGameFormatByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return gameformat.GameFormat{}, false, err
	}

	cached, _ := v.(cachedGameFormatByID)
	return cached.value.Clone(), cached.exists, nil
}

type cachedGameFormatByID struct {
	value  gameformat.GameFormat
	exists bool
}

func cloneGameFormats(items []gameformat.GameFormat) []gameformat.GameFormat {
	out := make([]gameformat.GameFormat, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

type FormationRepository struct {
	next  formation.Repository
	cache *basecache.Store
}

func NewFormationRepository(next formation.Repository, cache *basecache.Store) *FormationRepository {
	return &FormationRepository{next: next, cache: cache}
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	return r.list(ctx, "formation:list", r.next.List)
}

func (r *FormationRepository) ListByGameFormat(ctx context.Context, gameFormatID string) ([]formation.Formation, error) {
	return r.list(ctx, "formation:list:"+gameFormatID, func(ctx context.Context) ([]formation.Formation, error) {
		return r.next.ListByGameFormat(ctx, gameFormatID)
	})
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID string) (formation.Formation, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "formation:id:"+formationID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, formationID)
		if err != nil {
			return nil, err
		}
		return cachedFormationByID{value: item.Clone(), exists: exists}, nil
	})
	if err != nil {
		return formation.Formation{}, false, err
	}

	cached, _ := v.(cachedFormationByID)
	return cached.value.Clone(), cached.exists, nil
}

func (r *FormationRepository) list(
	ctx context.Context,
	key string,
	load func(ctx context.Context) ([]formation.Formation, error),
) ([]formation.Formation, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cloneFormations(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]formation.Formation)
	return cloneFormations(items), nil
}

type cachedFormationByID struct {
	value  formation.Formation
	exists bool
}

// Formations carry position slices, so cached values are never handed out directly.
func cloneFormations(items []formation.Formation) []formation.Formation {
	out := make([]formation.Formation, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
