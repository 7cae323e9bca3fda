package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ekpss/quizapp/internal/bookmark"
	"github.com/ekpss/quizapp/internal/config"
	"github.com/ekpss/quizapp/internal/httpserver"
	"github.com/ekpss/quizapp/internal/httpserver/deps"
	"github.com/ekpss/quizapp/internal/index"
	"github.com/ekpss/quizapp/internal/logger"
	"github.com/ekpss/quizapp/internal/redis"
	"github.com/ekpss/quizapp/internal/scheduler"
	"github.com/ekpss/quizapp/internal/store/memory"
	redisstore "github.com/ekpss/quizapp/internal/store/redis"
	"github.com/ekpss/quizapp/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *index.Catalog
	reloader    *scheduler.ContentReloader
}

// stores groups the backends picked by QUIZAPP_STORE
type stores struct {
	bookmarks bookmark.Store
	health    deps.Pinger
	content   scheduler.ContentStore // nil when content is not persisted
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize memory catalog
	catalog := index.NewCatalog()

	var (
		redisClient *goredis.Client
		st          stores
	)
	switch cfg.Store {
	case config.StoreRedis:
		// Initialize Redis early - fail fast if unavailable
		client, err := redis.New(ctx, redis.OptionsFromConfig(cfg), loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client

		store := redisstore.NewStore(client, loggerClient.With(logger.Component("redis_store")))
		st = stores{bookmarks: store, health: store, content: store}

		// Try to sync content from Redis to memory on startup
		syncer := scheduler.NewRedisSyncer(store, catalog, loggerClient)
		if err := syncer.Sync(ctx); err != nil {
			loggerClient.Warn("failed to sync from redis on startup, will load from content file",
				logger.Error(err))
		}

	case config.StoreMemory:
		loggerClient.Warn("memory store selected, bookmarks are lost on restart")
		store := memory.NewStore(loggerClient.With(logger.Component("memory_store")))
		st = stores{bookmarks: store, health: store}

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	bookmarks := bookmark.NewService(st.bookmarks, loggerClient.With(logger.Component("bookmarks")))

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	reloader := scheduler.NewContentReloader(
		cfg.ContentFile,
		st.content,
		catalog,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Build:         version.Get(),
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		RateBurst:     cfg.RateBurst,
		RatePerMin:    cfg.RatePerMin,
		StoreKind:     cfg.Store,
		ContentFile:   cfg.ContentFile,
		Store:         st.health,
		Bookmarks:     bookmarks,
		Catalog:       catalog,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     catalog,
		reloader:    reloader,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("🚀 starting quizapp",
		logger.String("build", version.Get().String()),
		logger.String("listen", a.cfg.ListenPort),
		logger.String("store", a.cfg.Store))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start content reloader (loads content and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start content reloader: %w", err)
	}
	a.logger.Info("content reloader started",
		logger.Int("subjects", a.catalog.Count()),
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop reloader
	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", logger.Error(err))
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ quizapp stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
