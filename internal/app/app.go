package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/team-manager/external/graphql"
	"github.com/riskibarqy/team-manager/internal/config"
	"github.com/riskibarqy/team-manager/internal/domain/formation"
	"github.com/riskibarqy/team-manager/internal/domain/gameformat"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/team-manager/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/team-manager/internal/platform/cache"
	idgen "github.com/riskibarqy/team-manager/internal/platform/id"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
	"github.com/riskibarqy/team-manager/internal/usecase"
	"github.com/sourcegraph/conc"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App is the assembled HTTP service plus the background work it owns.
type App struct {
	cfg            config.Config
	logger         *logging.Logger
	server         *http.Server
	db             *sqlx.DB
	catalogService *usecase.CatalogService
	setupService   *usecase.SetupService
}

type repositories struct {
	formats    gameformat.Repository
	formations formation.Repository
	teams      team.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{cfg: cfg, logger: logger}

	repos, err := a.buildRepositories(ctx)
	if err != nil {
		return nil, err
	}

	ids := idgen.NewRandomGenerator()
	a.catalogService = usecase.NewCatalogService(repos.formats, repos.formations, cfg.CatalogWarmupWorkers, logger.Named("catalog"))
	teamService := usecase.NewTeamService(repos.teams, repos.formats, repos.formations, idgen.NewPrefixedGenerator("team_", ids))

	setupOpts := []usecase.SetupServiceOption{
		usecase.WithSetupSessionTTL(cfg.SetupSessionTTL),
		usecase.WithSetupLogger(logger.Named("setup")),
		usecase.WithPositionIDGenerator(idgen.NewPrefixedGenerator("pos_", ids)),
	}
	if cfg.TeamGraphQL.Enabled {
		publisher, err := graphql.NewPublisher(graphql.PublisherConfig{
			Endpoint:       cfg.TeamGraphQL.Endpoint,
			Token:          cfg.TeamGraphQL.Token,
			Timeout:        cfg.TeamGraphQL.Timeout,
			CircuitBreaker: cfg.TeamGraphQL.CircuitBreaker,
		}, logger.Named("graphql"))
		if err != nil {
			a.closeDB()
			return nil, fmt.Errorf("build team graphql publisher: %w", err)
		}
		setupOpts = append(setupOpts, usecase.WithConfigurationPublisher(publisher))
	}
	a.setupService = usecase.NewSetupService(a.catalogService, repos.teams, memory.NewSessionRepository(), idgen.NewPrefixedGenerator("ses_", ids), setupOpts...)

	handler := httpapi.NewHandler(a.catalogService, teamService, a.setupService, logger)
	a.server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) buildRepositories(ctx context.Context) (repositories, error) {
	var repos repositories

	if a.cfg.DBEnabled {
		db, err := openDB(a.cfg)
		if err != nil {
			return repositories{}, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return repositories{}, fmt.Errorf("ping database: %w", err)
		}
		a.db = db
		a.logger.Info("database connected", "url", redactedDatabaseURL(databaseURL(a.cfg)))

		if a.cfg.DBSeedOnStart {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				a.closeDB()
				return repositories{}, fmt.Errorf("seed database: %w", err)
			}
			a.logger.Info("database seeded")
		}

		repos = repositories{
			formats:    postgres.NewGameFormatRepository(db),
			formations: postgres.NewFormationRepository(db),
			teams:      postgres.NewTeamRepository(db),
		}
	} else {
		catalog := memory.SeedCatalog()
		repos = repositories{
			formats:    memory.NewGameFormatRepository(catalog.GameFormats),
			formations: memory.NewFormationRepository(catalog.Formations),
			teams:      memory.NewTeamRepository(memory.SeedTeams()),
		}
		a.logger.Info("using in-memory repositories", "reason", "DB_ENABLED=false")
	}

	if !a.cfg.CacheEnabled {
		return repos, nil
	}

	store := basecache.NewStore(a.cfg.CacheTTL)
	return repositories{
		formats:    cache.NewGameFormatRepository(repos.formats, store),
		formations: cache.NewFormationRepository(repos.formations, store),
		teams:      cache.NewTeamRepository(repos.teams, store),
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := databaseURL(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(databaseName(dsn)),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return db, nil
}

// Run serves HTTP and keeps the background loops alive until ctx is cancelled,
// then shuts everything down within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	if err := a.catalogService.Warmup(ctx); err != nil {
		a.logger.Warn("catalog warmup failed", "error", err)
	}

	loopCtx, stopLoops := context.WithCancel(ctx)
	defer stopLoops()

	var wg conc.WaitGroup
	wg.Go(func() {
		a.purgeSessions(loopCtx)
	})

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.cfg.HTTPAddr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		runErr = fmt.Errorf("http server failed: %w", err)
	}

	stopLoops()
	wg.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("graceful shutdown failed: %w", err))
	}
	a.closeDB()

	a.logger.Info("http server stopped")
	return runErr
}

func (a *App) purgeSessions(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.SetupSessionPurgeEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.setupService.PurgeExpired(ctx); err != nil {
				a.logger.Warn("purge setup sessions failed", "error", err)
			}
		}
	}
}

func (a *App) closeDB() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("close database failed", "error", err)
	}
	a.db = nil
}
