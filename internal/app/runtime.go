package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/cooper-xs/cf-daily-tracker/internal/config"
	"github.com/cooper-xs/cf-daily-tracker/internal/constants"
	"github.com/cooper-xs/cf-daily-tracker/internal/health"
	"github.com/cooper-xs/cf-daily-tracker/internal/server"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/cache"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/codeforces"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/prefs"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/system"
	"github.com/cooper-xs/cf-daily-tracker/internal/service/tracker"
	"github.com/cooper-xs/cf-daily-tracker/internal/util"
)

// App: 서비스 전체 수명주기를 관리하는 컨테이너
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	cacheSvc  *cache.Service
	queue     *codeforces.RateLimitedQueue
	apiServer *http.Server
}

// New: 설정을 읽어 전체 서비스 그래프를 조립한다.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := util.EnableFileLoggingWithLevel(util.LogConfig{
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, "tracker.log", cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	health.Init(cfg.Version)

	cacheSvc, err := cache.NewCacheService(cache.Config{
		Host:     cfg.Valkey.Host,
		Port:     cfg.Valkey.Port,
		Password: cfg.Valkey.Password,
		DB:       cfg.Valkey.DB,
	}, logger)
	if err != nil {
		return nil, err
	}

	if err := cacheSvc.WaitUntilReady(ctx, constants.ValkeyConfig.ReadyTimeout); err != nil {
		_ = cacheSvc.Close()
		return nil, err
	}

	queue := codeforces.NewRateLimitedQueue(cfg.Codeforces.MinInterval, logger)
	apiClient := codeforces.NewAPIClient(cfg.Codeforces.BaseURL, cfg.Codeforces.Timeout, queue, logger)
	codeforcesSvc := codeforces.NewService(apiClient, cacheSvc, logger)

	prefsSvc := prefs.NewService(cacheSvc, logger)
	trackerSvc := tracker.NewService(codeforcesSvc, prefsSvc, logger)
	systemSvc := system.NewCollector()

	apiHandler := server.NewAPIHandler(trackerSvc, codeforcesSvc, prefsSvc, cacheSvc, systemSvc, logger)
	router, err := ProvideAPIRouter(ctx, cfg, logger, apiHandler)
	if err != nil {
		_ = cacheSvc.Close()
		queue.Close()
		return nil, err
	}

	return &App{
		cfg:       cfg,
		logger:    logger,
		cacheSvc:  cacheSvc,
		queue:     queue,
		apiServer: ProvideAPIServer(ProvideAPIAddr(cfg), router),
	}, nil
}

// Run: 서버를 띄우고 종료 신호가 올 때까지 대기한다.
// SIGINT/SIGTERM 을 받으면 제한 시간 안에 우아하게 내려간다.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("api_server_starting",
		slog.String("addr", a.apiServer.Addr),
		slog.String("version", a.cfg.Version))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutdown_signal_received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ServerTimeout.Shutdown)
		defer cancel()
		if err := a.apiServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", slog.Any("error", err))
		}

		a.queue.Close()
		if err := a.cacheSvc.Close(); err != nil {
			a.logger.Warn("cache close failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info("api_server_stopped")
	return nil
}
