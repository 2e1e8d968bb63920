// Package server initializes and runs the wanttogo server.
// It selects the account store, builds the services, and runs the web UI
// and the gRPC API side by side until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/wanttogo/internal/logging"
	"github.com/dmitrijs2005/wanttogo/internal/server/auth"
	"github.com/dmitrijs2005/wanttogo/internal/server/catalog"
	"github.com/dmitrijs2005/wanttogo/internal/server/config"
	"github.com/dmitrijs2005/wanttogo/internal/server/media"
	"github.com/dmitrijs2005/wanttogo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/wanttogo/internal/server/services"
	"github.com/dmitrijs2005/wanttogo/internal/server/sessions"
	"github.com/dmitrijs2005/wanttogo/internal/server/web"

	gs "github.com/dmitrijs2005/wanttogo/internal/server/grpc"
)

// dbConnectAttempts bounds startup pings while postgres comes up.
const dbConnectAttempts = 10

type App struct {
	config       *config.Config
	logger       logging.Logger
	repoManager  repomanager.RepositoryManager
	sessions     *sessions.Manager
	throttle     auth.LoginThrottle
	userService  *services.UserService
	listService  *services.ListService
	destinations *services.DestinationService
}

// openStore is a seam for tests.
var openStore = func(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.Storage {
	case config.StorageMemory:
		return repomanager.NewMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN, dbConnectAttempts)
		if err != nil {
			return nil, err
		}
		m, err := repomanager.NewPostgresRepositoryManager(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}
}

func NewApp(c *config.Config) (*App, error) {

	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	return newApp(context.Background(), c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	hasher, err := auth.NewSecretHasher(c.PasswordHasher)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(c.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("catalog load error: %w", err)
	}

	rm, err := openStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	resolver := media.NewResolver(media.Config{
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		TTL:          c.MediaURLTTL,
	})

	sm := sessions.NewManager(sessions.NewMemoryStore(), c.SessionTTL, logger)
	us := services.NewUserService(rm, hasher, sm, c, logger)
	ls := services.NewListService(rm, logger)
	ds := services.NewDestinationService(cat, ls, resolver, logger)

	return &App{
		config:       c,
		logger:       logger,
		repoManager:  rm,
		sessions:     sm,
		throttle:     auth.NewLoginThrottle(c.LoginAttemptsPerMinute),
		userService:  us,
		listService:  ls,
		destinations: ds,
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

	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.userService, app.destinations, app.listService, app.throttle)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := web.NewServer(web.Options{
		Address:        app.config.HTTPAddr,
		CookieName:     app.config.CookieName,
		CookieTTL:      app.config.SessionTTL,
		SecureCookie:   app.config.SecureCookie,
		RequestTimeout: app.config.RequestTimeout,
	}, app.userService, app.listService, app.destinations, app.throttle, app.repoManager, app.logger)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives, or a server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "http", app.config.HTTPAddr, "grpc", app.config.GRPCAddr, "storage", app.config.Storage)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.sessions.Run(ctx, app.config.SessionSweepInterval)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, "store close failed", "error", err)
	}
	app.logger.Info(context.Background(), "Stopped")
}
