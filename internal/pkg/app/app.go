package app

import (
	"context"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"os"
	"os/signal"
	"phoneforward/internal/app/adapters/events"
	"phoneforward/internal/app/adapters/forwarding"
	router "phoneforward/internal/app/adapters/http"
	"phoneforward/internal/app/adapters/metrics"
	"phoneforward/internal/app/domain/forward"
	"phoneforward/internal/app/infrastructure/config"
	"phoneforward/internal/app/infrastructure/storage"
	"phoneforward/pkg/logger"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	log     *logger.SlogLogger
	manager *config.Manager
	hub     *events.Hub
	svc     *forwarding.Service
	router  *router.Router
}

func New(configPath string) (*App, error) {
	manager, err := config.New(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := manager.Get()
	log := logger.New(cfg.App.LogFile)
	log.SetLogLevel(cfg.App.LogLevel)
	if cfg.App.GinMode != "" {
		gin.SetMode(cfg.App.GinMode)
	}

	prometheus.MustRegister(metrics.OperationTime)

	httpLog := logger.NewPrefixedLogger(log, "http")
	hub := events.New(logger.NewPrefixedLogger(httpLog, "events"))
	svc := forwarding.New(
		logger.NewPrefixedLogger(log, "forwarding"),
		forward.New(forward.WithNodeLimit(cfg.Engine.MaxNodes)),
		storage.NewCache[[]string](cfg.Cache.Capacity, cfg.Cache.TTL()),
		forwarding.WithEvents(hub),
	)
	if err := svc.Seed(cfg.Forwards); err != nil {
		return nil, err
	}

	log.Info("Config loaded", "path", manager.Path())
	return &App{
		log:     log,
		manager: manager,
		hub:     hub,
		svc:     svc,
		router:  router.NewRouter(httpLog, manager, svc, hub),
	}, nil
}

// Run serves HTTP until SIGINT or SIGTERM. SIGHUP reloads the config.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.router.Run()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	for {
		select {
		case err := <-errCh:
			return err
		case sig := <-signals:
			if sig == syscall.SIGHUP {
				a.reload()
				continue
			}

			a.log.Info("Shutting down", "signal", sig.String())
			a.hub.Close()

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			err := a.router.Shutdown(ctx)
			cancel()
			return err
		}
	}
}

// reload applies log level, limiter, auth token and node limit in place.
// Other changed settings are reported and wait for a restart.
func (a *App) reload() {
	prev := a.manager.Get()
	if err := a.manager.Reload(); err != nil {
		a.log.Error("Error reloading config", err)
		return
	}
	cfg := a.manager.Get()

	a.log.SetLogLevel(cfg.App.LogLevel)
	a.router.Reload()
	a.svc.SetNodeLimit(cfg.Engine.MaxNodes)

	if sections := config.RestartRequired(prev, cfg); len(sections) > 0 {
		a.log.Warn("Config changes need a restart", "sections", sections)
	}
	a.log.Info("Config reloaded", "path", a.manager.Path(), "log_level", a.log.GetLogLevel())
}
