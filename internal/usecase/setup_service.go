package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/setupsession"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/domain/teamsetup"
	"github.com/riskibarqy/team-manager/internal/platform/id"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
)

const defaultSetupSessionTTL = 30 * time.Minute

// ConfigurationPublisher pushes a saved configuration to a remote system of record.
type ConfigurationPublisher interface {
	PublishTeamConfiguration(ctx context.Context, teamID string, cfg teamsetup.Snapshot) error
}

// SessionView is what callers see of a session after every operation.
type SessionView struct {
	SessionID     string
	TeamID        string
	Mode          setupsession.Mode
	Phase         teamsetup.Phase
	Configuration teamsetup.Snapshot
	Formations    []formation.Formation
	ExpiresAt     time.Time
}

type SetupServiceOption func(*SetupService)

func WithSetupSessionTTL(ttl time.Duration) SetupServiceOption {
	return func(s *SetupService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithConfigurationPublisher(publisher ConfigurationPublisher) SetupServiceOption {
	return func(s *SetupService) {
		s.publisher = publisher
	}
}

// WithPositionIDGenerator sets the generator for positions added without an id.
// Session ids are used when unset.
func WithPositionIDGenerator(gen id.Generator) SetupServiceOption {
	return func(s *SetupService) {
		if gen != nil {
			s.positionIDGen = gen
		}
	}
}

func WithSetupLogger(logger *logging.Logger) SetupServiceOption {
	return func(s *SetupService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type SetupService struct {
	catalog       *CatalogService
	teamRepo      team.Repository
	sessionRepo   setupsession.Repository
	idGen         id.Generator
	positionIDGen id.Generator
	publisher     ConfigurationPublisher
	logger        *logging.Logger
	ttl           time.Duration
	now           func() time.Time
}

func NewSetupService(
	catalog *CatalogService,
	teamRepo team.Repository,
	sessionRepo setupsession.Repository,
	idGen id.Generator,
	opts ...SetupServiceOption,
) *SetupService {
	s := &SetupService{
		catalog:     catalog,
		teamRepo:    teamRepo,
		sessionRepo: sessionRepo,
		idGen:       idGen,
		logger:      logging.Default(),
		ttl:         defaultSetupSessionTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.positionIDGen == nil {
		s.positionIDGen = idGen
	}
	return s
}

// Start opens an editing session for teamID. A team with a saved configuration
// resumes from it in settings mode; otherwise the session starts empty.
func (s *SetupService) Start(ctx context.Context, teamID string) (SessionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SetupService.Start")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return SessionView{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	teamItem, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		recordSpanError(span, err)
		return SessionView{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return SessionView{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		recordSpanError(span, err)
		return SessionView{}, err
	}

	state := teamsetup.New(catalog)
	mode := setupsession.ModeSetup
	if teamItem.HasConfiguration() {
		state.Restore(*teamItem.Configuration)
		mode = setupsession.ModeSettings
	}

	sessionID, err := s.idGen.NewID()
	if err != nil {
		return SessionView{}, fmt.Errorf("generate session id: %w", err)
	}

	session := setupsession.New(sessionID, teamID, mode, state, s.now().UTC(), s.ttl)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		recordSpanError(span, err)
		return SessionView{}, fmt.Errorf("create setup session: %w", err)
	}

	s.logger.InfoContext(ctx, "setup session started", "session_id", sessionID, "team_id", teamID, "mode", string(mode))
	return s.view(session), nil
}

func (s *SetupService) Get(ctx context.Context, sessionID string) (SessionView, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}

	return s.view(session), nil
}

func (s *SetupService) SelectGameFormat(ctx context.Context, sessionID, formatID string) (SessionView, error) {
	formatID = strings.TrimSpace(formatID)
	if formatID == "" {
		return SessionView{}, fmt.Errorf("%w: game format id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, sessionID, func(state *teamsetup.State) {
		state.SelectGameFormat(formatID)
	})
}

func (s *SetupService) SelectFormation(ctx context.Context, sessionID, formationID string) (SessionView, error) {
	formationID = strings.TrimSpace(formationID)
	if formationID == "" {
		return SessionView{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, sessionID, func(state *teamsetup.State) {
		state.SelectFormation(formationID)
	})
}

func (s *SetupService) UpdatePosition(ctx context.Context, sessionID, positionID string, update formation.PositionUpdate) (SessionView, error) {
	positionID = strings.TrimSpace(positionID)
	if positionID == "" {
		return SessionView{}, fmt.Errorf("%w: position id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, sessionID, func(state *teamsetup.State) {
		state.UpdatePosition(positionID, update)
	})
}

// AddPosition appends p to the working positions, generating an id when p has none.
func (s *SetupService) AddPosition(ctx context.Context, sessionID string, p formation.Position) (SessionView, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		generated, err := s.positionIDGen.NewID()
		if err != nil {
			return SessionView{}, fmt.Errorf("generate position id: %w", err)
		}
		p.ID = generated
	}

	return s.mutate(ctx, sessionID, func(state *teamsetup.State) {
		state.AddPosition(p)
	})
}

func (s *SetupService) RemovePosition(ctx context.Context, sessionID, positionID string) (SessionView, error) {
	positionID = strings.TrimSpace(positionID)
	if positionID == "" {
		return SessionView{}, fmt.Errorf("%w: position id is required", ErrInvalidInput)
	}

	return s.mutate(ctx, sessionID, func(state *teamsetup.State) {
		state.RemovePosition(positionID)
	})
}

func (s *SetupService) Reset(ctx context.Context, sessionID string) (SessionView, error) {
	return s.mutate(ctx, sessionID, func(state *teamsetup.State) {
		state.Reset()
	})
}

// Save validates the session's configuration against the catalog, stores it on
// the team and publishes it when a publisher is configured. A failed publish
// leaves the stored configuration in place.
func (s *SetupService) Save(ctx context.Context, sessionID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SetupService.Save")
	defer span.End()

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return team.Team{}, err
	}

	var snap teamsetup.Snapshot
	session.Do(func(state *teamsetup.State) {
		snap = state.Snapshot()
	})

	if err := s.validateConfiguration(ctx, snap); err != nil {
		recordSpanError(span, err)
		return team.Team{}, err
	}

	if err := s.teamRepo.SaveConfiguration(ctx, session.TeamID, snap); err != nil {
		recordSpanError(span, err)
		if errors.Is(err, team.ErrNotFound) {
			return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, session.TeamID)
		}
		return team.Team{}, fmt.Errorf("save team configuration: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishTeamConfiguration(ctx, session.TeamID, snap); err != nil {
			recordSpanError(span, err)
			s.logger.WarnContext(ctx, "publish team configuration failed", "team_id", session.TeamID, "session_id", session.ID, "error", err)
			return team.Team{}, fmt.Errorf("%w: publish team configuration: %v", ErrDependencyUnavailable, err)
		}
	}

	teamItem, exists, err := s.teamRepo.GetByID(ctx, session.TeamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, session.TeamID)
	}

	s.logger.InfoContext(ctx, "team configuration saved",
		"team_id", session.TeamID,
		"game_format_id", snap.GameFormatID,
		"formation_id", snap.FormationID,
		"positions", len(snap.Positions),
	)
	return teamItem, nil
}

func (s *SetupService) Discard(ctx context.Context, sessionID string) error {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete setup session: %w", err)
	}

	return nil
}

// PurgeExpired drops sessions idle past their TTL.
func (s *SetupService) PurgeExpired(ctx context.Context) (int, error) {
	purged, err := s.sessionRepo.PurgeExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("purge expired setup sessions: %w", err)
	}
	if purged > 0 {
		s.logger.InfoContext(ctx, "expired setup sessions purged", "count", purged)
	}

	return purged, nil
}

func (s *SetupService) mutate(ctx context.Context, sessionID string, fn func(state *teamsetup.State)) (SessionView, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return SessionView{}, err
	}

	session.Do(fn)
	return s.view(session), nil
}

func (s *SetupService) getSession(ctx context.Context, sessionID string) (*setupsession.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	session, exists, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get setup session: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: setup session=%s", ErrNotFound, sessionID)
	}

	now := s.now().UTC()
	if session.Expired(now) {
		if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
			s.logger.WarnContext(ctx, "delete expired setup session failed", "session_id", sessionID, "error", err)
		}
		return nil, fmt.Errorf("%w: setup session=%s expired", ErrNotFound, sessionID)
	}

	session.Extend(now, s.ttl)
	return session, nil
}

func (s *SetupService) view(session *setupsession.Session) SessionView {
	out := SessionView{
		SessionID: session.ID,
		TeamID:    session.TeamID,
		Mode:      session.Mode,
	}
	session.Do(func(state *teamsetup.State) {
		out.Phase = state.Phase()
		out.Configuration = state.Snapshot()
		out.Formations = state.FormationsForSelectedFormat()
	})
	out.ExpiresAt = session.ExpiresAt()
	return out
}

func (s *SetupService) validateConfiguration(ctx context.Context, snap teamsetup.Snapshot) error {
	if snap.GameFormatID == "" {
		return fmt.Errorf("%w: game format is not selected", ErrInvalidInput)
	}
	if snap.FormationID == "" {
		return fmt.Errorf("%w: formation is not selected", ErrInvalidInput)
	}

	if _, exists, err := s.catalog.formatRepo.GetByID(ctx, snap.GameFormatID); err != nil {
		return fmt.Errorf("get game format: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: unknown game format %s", ErrInvalidInput, snap.GameFormatID)
	}

	item, exists, err := s.catalog.formationRepo.GetByID(ctx, snap.FormationID)
	if err != nil {
		return fmt.Errorf("get formation: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: unknown formation %s", ErrInvalidInput, snap.FormationID)
	}
	if item.GameFormatID != snap.GameFormatID {
		return fmt.Errorf("%w: formation %s does not belong to game format %s", ErrInvalidInput, snap.FormationID, snap.GameFormatID)
	}

	if len(snap.Positions) == 0 {
		return fmt.Errorf("%w: at least one position is required", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(snap.Positions))
	for _, p := range snap.Positions {
		if p.ID == "" {
			return fmt.Errorf("%w: position id is required", ErrInvalidInput)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate position id %s", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}
