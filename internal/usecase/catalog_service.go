package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
)

const defaultCatalogWarmupWorkers = 4

type CatalogService struct {
	formatRepo    gameformat.Repository
	formationRepo formation.Repository
	warmupWorkers int
	logger        *logging.Logger
}

func NewCatalogService(
	formatRepo gameformat.Repository,
	formationRepo formation.Repository,
	warmupWorkers int,
	logger *logging.Logger,
) *CatalogService {
	if warmupWorkers <= 0 {
		warmupWorkers = defaultCatalogWarmupWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &CatalogService{
		formatRepo:    formatRepo,
		formationRepo: formationRepo,
		warmupWorkers: warmupWorkers,
		logger:        logger,
	}
}

func (s *CatalogService) ListGameFormats(ctx context.Context) ([]gameformat.GameFormat, error) {
	items, err := s.formatRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list game formats: %w", err)
	}

	return items, nil
}

func (s *CatalogService) GetGameFormat(ctx context.Context, formatID string) (gameformat.GameFormat, error) {
	formatID = strings.TrimSpace(formatID)
	if formatID == "" {
		return gameformat.GameFormat{}, fmt.Errorf("%w: game format id is required", ErrInvalidInput)
	}

	item, exists, err := s.formatRepo.GetByID(ctx, formatID)
	if err != nil {
		return gameformat.GameFormat{}, fmt.Errorf("get game format: %w", err)
	}
	if !exists {
		return gameformat.GameFormat{}, fmt.Errorf("%w: game format=%s", ErrNotFound, formatID)
	}

	return item, nil
}

// ListFormations returns the formations of one game format, or every formation
// when formatID is empty.
func (s *CatalogService) ListFormations(ctx context.Context, formatID string) ([]formation.Formation, error) {
	formatID = strings.TrimSpace(formatID)
	if formatID == "" {
		items, err := s.formationRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list formations: %w", err)
		}
		return items, nil
	}

	if _, err := s.GetGameFormat(ctx, formatID); err != nil {
		return nil, err
	}

	items, err := s.formationRepo.ListByGameFormat(ctx, formatID)
	if err != nil {
		return nil, fmt.Errorf("list formations by game format: %w", err)
	}

	return items, nil
}

func (s *CatalogService) GetFormation(ctx context.Context, formationID string) (formation.Formation, error) {
	formationID = strings.TrimSpace(formationID)
	if formationID == "" {
		return formation.Formation{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	item, exists, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		return formation.Formation{}, fmt.Errorf("get formation: %w", err)
	}
	if !exists {
		return formation.Formation{}, fmt.Errorf("%w: formation=%s", ErrNotFound, formationID)
	}

	return item, nil
}

// Catalog loads both reference tables for a new editing session.
func (s *CatalogService) Catalog(ctx context.Context) (teamsetup.Catalog, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Catalog")
	defer span.End()

	formats, err := s.ListGameFormats(ctx)
	if err != nil {
		recordSpanError(span, err)
		return teamsetup.Catalog{}, err
	}
	formations, err := s.ListFormations(ctx, "")
	if err != nil {
		recordSpanError(span, err)
		return teamsetup.Catalog{}, err
	}

	return teamsetup.NewCatalog(formats, formations), nil
}

// Warmup reads every game format's formations once so a caching repository is
// populated before traffic arrives.
func (s *CatalogService) Warmup(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Warmup")
	defer span.End()

	formats, err := s.ListGameFormats(ctx)
	if err != nil {
		recordSpanError(span, err)
		return err
	}
	if _, err := s.ListFormations(ctx, ""); err != nil {
		recordSpanError(span, err)
		return err
	}
	if len(formats) == 0 {
		return nil
	}

	pool, err := ants.NewPool(min(s.warmupWorkers, len(formats)))
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers sync.WaitGroup
		mu      sync.Mutex
		errs    []error
	)
	for _, item := range formats {
		formatID := item.ID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			formations, err := s.formationRepo.ListByGameFormat(ctx, formatID)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("warm formations for %s: %w", formatID, err))
				mu.Unlock()
				return
			}
			s.logger.DebugContext(ctx, "catalog warmed", "game_format_id", formatID, "formations", len(formations))
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit warmup task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if err := errors.Join(errs...); err != nil {
		recordSpanError(span, err)
		return err
	}

	s.logger.InfoContext(ctx, "catalog warmup finished", "game_formats", len(formats))
	return nil
}
