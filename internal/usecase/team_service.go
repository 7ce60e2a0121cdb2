package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/platform/id"
	"github.com/sourcegraph/conc/pool"
)

type CreateTeamInput struct {
	Name        string
	Description string
}

type UpdateTeamInput struct {
	Name        string
	Description string
}

type RecordResultInput struct {
	GoalsFor     int
	GoalsAgainst int
}

// TeamDetails is a team plus the catalog entries its saved configuration points at.
// GameFormat and Formation stay nil when not configured or no longer in the catalog.
type TeamDetails struct {
	Team       team.Team
	GameFormat *gameformat.GameFormat
	Formation  *formation.Formation
}

type TeamService struct {
	teamRepo      team.Repository
	formatRepo    gameformat.Repository
	formationRepo formation.Repository
	idGen         id.Generator
}

func NewTeamService(
	teamRepo team.Repository,
	formatRepo gameformat.Repository,
	formationRepo formation.Repository,
	idGen id.Generator,
) *TeamService {
	return &TeamService{
		teamRepo:      teamRepo,
		formatRepo:    formatRepo,
		formationRepo: formationRepo,
		idGen:         idGen,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) GetDetails(ctx context.Context, teamID string) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetDetails")
	defer span.End()

	item, err := s.Get(ctx, teamID)
	if err != nil {
		recordSpanError(span, err)
		return TeamDetails{}, err
	}

	details := TeamDetails{Team: item}
	if !item.HasConfiguration() {
		return details, nil
	}

	cfg := item.Configuration
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		format, exists, err := s.formatRepo.GetByID(ctx, cfg.GameFormatID)
		if err != nil {
			return fmt.Errorf("get game format: %w", err)
		}
		if exists {
			details.GameFormat = &format
		}
		return nil
	})
	if cfg.FormationID != "" {
		p.Go(func(ctx context.Context) error {
			item, exists, err := s.formationRepo.GetByID(ctx, cfg.FormationID)
			if err != nil {
				return fmt.Errorf("get formation: %w", err)
			}
			if exists {
				details.Formation = &item
			}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		recordSpanError(span, err)
		return TeamDetails{}, err
	}

	return details, nil
}

func (s *TeamService) Stats(ctx context.Context, teamID string) (team.Stats, error) {
	item, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Stats{}, err
	}

	return item.Stats, nil
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:          teamID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, mapTeamWriteError("create team", err)
	}

	return s.Get(ctx, teamID)
}

func (s *TeamService) Update(ctx context.Context, teamID string, input UpdateTeamInput) (team.Team, error) {
	item, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Description = strings.TrimSpace(input.Description)
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, mapTeamWriteError("update team", err)
	}

	return s.Get(ctx, item.ID)
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	item, err := s.Get(ctx, teamID)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

// RecordResult adds one finished match to the team's cumulative stats.
func (s *TeamService) RecordResult(ctx context.Context, teamID string, input RecordResultInput) (team.Stats, error) {
	if input.GoalsFor < 0 || input.GoalsAgainst < 0 {
		return team.Stats{}, fmt.Errorf("%w: goals must not be negative", ErrInvalidInput)
	}

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Stats{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	stats, err := s.teamRepo.RecordResult(ctx, teamID, input.GoalsFor, input.GoalsAgainst)
	if errors.Is(err, team.ErrNotFound) {
		return team.Stats{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	if err != nil {
		return team.Stats{}, fmt.Errorf("record team result: %w", err)
	}

	return stats, nil
}

func mapTeamWriteError(op string, err error) error {
	if errors.Is(err, team.ErrDuplicateName) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
