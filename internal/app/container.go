package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"innosphere/internal/config"
	"innosphere/internal/database"
	dbpostgres "innosphere/internal/database/postgres"
	"innosphere/internal/infrastructure/backend"
	"innosphere/internal/infrastructure/cache"
	"innosphere/internal/infrastructure/storage"
	"innosphere/internal/ledger"
	"innosphere/internal/pkg/jwt"
	"innosphere/internal/repository"
	"innosphere/internal/seeder"
	"innosphere/internal/usecase"
	"innosphere/internal/ws"
)

// Container holds every long-lived dependency. Handlers and routes are
// wired in bootstrap.go from these.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis

	Backend backend.Client
	Storage storage.Client
	Ledger  ledger.Ledger

	Hub      *ws.Hub
	Notifier *ws.Notifier

	JWT jwt.Service

	Applications usecase.ApplicationListUsecase
	Actions      usecase.ApplicationActionUsecase
	Ratings      usecase.RatingUsecase
	Resumes      usecase.ResumeUsecase
	Profiles     usecase.ProfileUsecase
	Auth         usecase.AuthUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{
		Config: cfg,
		Logger: logger,
		Cache:  cache.NewRedis(logger),
	}

	c.Backend = backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	if c.Backend == nil {
		return nil, fmt.Errorf("backend base URL is required")
	}
	c.Storage = storage.NewClient(cfg.Storage.BaseURL, cfg.Storage.Timeout, logger)

	rated, err := c.buildLedger(cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Ledger = rated

	c.Hub = ws.NewHub(logger)
	c.Notifier = ws.NewNotifier(c.Hub)

	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	c.Applications = usecase.NewApplicationListUsecase(c.Backend, seeder.FallbackApplications, c.Ledger, c.Cache, logger)
	c.Actions = usecase.NewApplicationActionUsecase(c.Backend, c.Cache, c.Notifier, logger)
	c.Ratings = usecase.NewRatingUsecase(c.Backend, c.Backend, c.Ledger, c.Cache, c.Notifier, logger)
	c.Resumes = usecase.NewResumeUsecase(c.Backend, c.Storage, logger)
	c.Profiles = usecase.NewProfileUsecase(c.Backend, c.Storage, c.Notifier, logger)
	c.Auth = usecase.NewAuthUsecase(c.Backend, c.JWT, c.Ledger)

	return c, nil
}

func (c *Container) buildLedger(cfg config.Config, logger *log.Logger) (ledger.Ledger, error) {
	if cfg.Ledger.Backend != config.LedgerBackendPostgres {
		return ledger.NewFileLedger(cfg.Ledger.FilePath, logger), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect ledger database: %w", err)
	}
	c.DB = db

	pg := repository.NewPostgresRatingLedger(db, logger)
	if err := pg.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure ledger schema: %w", err)
	}
	return pg, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
