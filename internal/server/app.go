// Package server wires the gatekeeper components together and runs them:
// migrations, revocation registry restore, bootstrap accounts, the registry
// sweeper, the metrics endpoint and the gRPC server.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/metrics"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/revocation"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"

	gs "github.com/dmitrijs2005/gatekeeper/internal/server/grpc"
)

// seams for tests
var (
	openDB               = repomanager.OpenPostgres
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	registry     *revocation.Registry
	metrics      *metrics.Metrics
	tokenService *services.TokenService
	userService  *services.UserService
	bootstrapper *services.Bootstrapper
	ready        chan struct{}
}

// NewApp validates c, connects to the database and builds every component.
// It fails before touching the database when the configuration is unsafe.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	key, err := c.SigningKey()
	if err != nil {
		return nil, err
	}

	hasher, err := auth.NewHasher(c.PasswordHasher)
	if err != nil {
		return nil, err
	}

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	registry := revocation.New()
	m := metrics.New()
	m.RegisterRegistrySize(registry.Len)

	ts := services.NewTokenService(db, rm, auth.NewSigner(key, c.TokenIssuer), registry, c, logger, m)
	us := services.NewUserService(db, rm, hasher, ts, auth.NewGate(), logger, m)
	bs := services.NewBootstrapper(db, rm, hasher, c, logger)

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		repomanager:  rm,
		registry:     registry,
		metrics:      m,
		tokenService: ts,
		userService:  us,
		bootstrapper: bs,
		ready:        make(chan struct{}),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.tokenService, app.metrics)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)

	if err := app.metrics.Serve(ctx, app.config.MetricsAddr); err != nil {
		app.logger.Error(ctx, "metrics server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startSweeper(ctx context.Context) {
	app.registry.Run(ctx, app.config.RevocationSweepInterval, func(n int) {
		app.metrics.Swept(n)
		if n > 0 {
			app.logger.Debug(ctx, "revocation registry swept", "evicted", n, "remaining", app.registry.Len())
		}
	})
}

// Ready is closed once Run has restored the registry, ensured the bootstrap
// accounts and started serving.
func (app *App) Ready() <-chan struct{} {
	return app.ready
}

// Run restores the registry, ensures the bootstrap accounts and serves
// until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	if _, err := app.tokenService.Restore(ctx); err != nil {
		return fmt.Errorf("restoring revocation registry: %w", err)
	}

	if err := app.bootstrapper.EnsureDefaults(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startSweeper(ctx)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	close(app.ready)

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return nil
}
