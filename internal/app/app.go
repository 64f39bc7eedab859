package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/paddle-roster/external/tenniscores"
	"github.com/riskibarqy/paddle-roster/internal/config"
	"github.com/riskibarqy/paddle-roster/internal/domain/club"
	"github.com/riskibarqy/paddle-roster/internal/domain/clubdirectory"
	"github.com/riskibarqy/paddle-roster/internal/domain/matchhistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/member"
	"github.com/riskibarqy/paddle-roster/internal/domain/partnerstats"
	"github.com/riskibarqy/paddle-roster/internal/domain/ratinghistory"
	"github.com/riskibarqy/paddle-roster/internal/domain/roster"
	"github.com/riskibarqy/paddle-roster/internal/domain/syncrun"
	"github.com/riskibarqy/paddle-roster/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/paddle-roster/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/paddle-roster/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/paddle-roster/internal/infrastructure/scheduler"
	"github.com/riskibarqy/paddle-roster/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/paddle-roster/internal/platform/cache"
	idgen "github.com/riskibarqy/paddle-roster/internal/platform/id"
	"github.com/riskibarqy/paddle-roster/internal/platform/logging"
	"github.com/riskibarqy/paddle-roster/internal/platform/resilience"
	"github.com/riskibarqy/paddle-roster/internal/usecase"
)

const (
	jobRosterSync   = "roster-sync"
	jobRankingsSync = "rankings-sync"
)

type repositories struct {
	directory clubdirectory.Repository
	clubs     club.Repository
	rosters   roster.Repository
	history   ratinghistory.Repository
	matches   matchhistory.Repository
	partners  partnerstats.Repository
	members   member.Repository
	runs      syncrun.Repository
}

// App holds the wired services shared by the API server and the sync CLI.
type App struct {
	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB

	QueryService        *usecase.QueryService
	RosterSyncService   *usecase.RosterSyncService
	MatchHistoryService *usecase.MatchHistoryService
	DirectoryService    *usecase.ClubDirectoryService
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{cfg: cfg, logger: logger}

	var repos repositories
	if strings.TrimSpace(cfg.DBURL) != "" {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.db = db
		repos = postgresRepositories(db)
		logger.Info("storage configured", "backend", "postgres", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		repos = memoryRepositories()
		logger.Warn("storage configured", "backend", "memory", "reason", "DB_URL empty")
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore[any](cfg.CacheTTL)
		repos.rosters = cache.NewRosterRepository(repos.rosters, store)
		repos.clubs = cache.NewClubRepository(repos.clubs, store)
	}

	a.DirectoryService = usecase.NewClubDirectoryService(repos.directory)
	if err := a.DirectoryService.Seed(ctx, memory.SeedClubDirectory()); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("seed club directory: %w", err)
	}

	client := tenniscores.NewClient(tenniscores.ClientConfig{
		BaseURL:         cfg.TenniscoresBaseURL,
		Timeout:         cfg.TenniscoresTimeout,
		RequestInterval: cfg.ScrapeRequestInterval,
		Logger:          logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.TenniscoresCircuitEnabled,
			FailureThreshold: cfg.TenniscoresCircuitFailureCount,
			OpenTimeout:      cfg.TenniscoresCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.TenniscoresCircuitHalfOpenMaxReq,
		},
	})
	source := tenniscores.NewSource(client, tenniscores.SourceConfig{
		StandingsPath: cfg.TenniscoresStandingsPath,
		Leagues:       cfg.ScrapeLeagues,
		TeamParam:     cfg.ScrapeTeamParam,
	})
	ids := idgen.NewRandomGenerator("run")

	a.QueryService = usecase.NewQueryService(
		repos.rosters,
		repos.clubs,
		repos.directory,
		repos.history,
		repos.matches,
		repos.partners,
		repos.members,
		repos.runs,
	)
	a.RosterSyncService = usecase.NewRosterSyncService(
		source,
		repos.directory,
		repos.clubs,
		repos.rosters,
		repos.history,
		repos.runs,
		ids,
		logger,
	)
	a.MatchHistoryService = usecase.NewMatchHistoryService(
		source,
		repos.rosters,
		repos.matches,
		repos.partners,
		repos.runs,
		ids,
		usecase.MatchHistoryConfig{Cooldown: cfg.MatchScrapeCooldown},
		logger,
	)

	return a, nil
}

func (a *App) NewHTTPServer(logger *slog.Logger) (*http.Server, error) {
	handler := httpapi.NewHandler(a.QueryService, a.RosterSyncService, a.MatchHistoryService, a.DirectoryService, a.logger)
	router := httpapi.NewRouter(handler, logger, a.cfg.CORSAllowedOrigins, a.cfg.InternalJobToken)

	server := &http.Server{
		Addr:         a.cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// NewScheduler registers the weekly roster and rankings jobs. It returns nil when scheduling is disabled.
func (a *App) NewScheduler() (*scheduler.Scheduler, error) {
	if !a.cfg.SchedulerEnabled {
		a.logger.Info("scheduler disabled", "reason", "SCHEDULER_ENABLED=false")
		return nil, nil
	}

	s, err := scheduler.New(a.cfg.SchedulerLocation, a.logger)
	if err != nil {
		return nil, err
	}

	jobs := []scheduler.Job{
		{
			Name: jobRosterSync,
			Spec: a.cfg.ScheduleRosterSync,
			Run: func(ctx context.Context) error {
				_, err := a.RosterSyncService.RunRosterSync(ctx, syncrun.TriggerSchedule)
				return err
			},
		},
		{
			Name: jobRankingsSync,
			Spec: a.cfg.ScheduleRankingsSync,
			Run: func(ctx context.Context) error {
				_, err := a.MatchHistoryService.RunRankingsSync(ctx, syncrun.TriggerSchedule)
				return err
			},
		},
	}
	for _, job := range jobs {
		if err := s.Register(job); err != nil {
			_ = s.Stop()
			return nil, err
		}
	}

	return s, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn, err := DatabaseURL(cfg)
	if err != nil {
		return nil, err
	}
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func postgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		directory: postgres.NewClubDirectoryRepository(db),
		clubs:     postgres.NewClubRepository(db),
		rosters:   postgres.NewRosterRepository(db),
		history:   postgres.NewRatingHistoryRepository(db),
		matches:   postgres.NewMatchHistoryRepository(db),
		partners:  postgres.NewPartnerStatsRepository(db),
		members:   postgres.NewMemberRepository(db),
		runs:      postgres.NewSyncRunRepository(db),
	}
}

func memoryRepositories() repositories {
	return repositories{
		directory: memory.NewClubDirectoryRepository(nil),
		clubs:     memory.NewClubRepository(),
		rosters:   memory.NewRosterRepository(),
		history:   memory.NewRatingHistoryRepository(),
		matches:   memory.NewMatchHistoryRepository(),
		partners:  memory.NewPartnerStatsRepository(),
		members:   memory.NewMemberRepository(nil),
		runs:      memory.NewSyncRunRepository(),
	}
}
