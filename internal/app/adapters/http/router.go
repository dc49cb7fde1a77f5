package http

import (
	"context"
	"errors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"phoneforward/internal/app/adapters/http/handlers"
	"phoneforward/internal/app/adapters/http/middlewares"
	"phoneforward/internal/app/infrastructure/config"
	"phoneforward/internal/app/ports"
	"phoneforward/pkg/logger"
	"time"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares
	server      *http.Server

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, fwd ports.ForwardingPort, events http.Handler) *Router {
	cfg := manager.Get()

	r := &Router{
		router:      gin.New(),
		handlers:    handlers.New(log, fwd, events),
		middlewares: middlewares.New(cfg.Limiter.Rate(), cfg.App.AuthToken),
		log:         log,
		manager:     manager,
	}
	r.server = r.newServer(cfg.App.Addr, r.router)
	r.router.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		r.router.Use(gin.Logger())
	}

	pprof.Register(r.router.Group("/", r.middlewares.Admin(false)))

	r.router.GET("/metrics", r.middlewares.Admin(true), gin.WrapH(promhttp.Handler()))
	r.router.GET("/ping", r.handlers.Ping)

	api := r.router.Group("/api", r.middlewares.RateLimit())
	api.GET("/forwards", r.handlers.ListForwards)
	api.GET("/numbers/:number", r.handlers.GetNumber)
	api.GET("/numbers/:number/reverse", r.handlers.ReverseNumber)
	api.GET("/numbers/:number/preimage", r.handlers.PreimageNumber)
	api.GET("/events", r.handlers.Events)

	auth := api.Group("", r.middlewares.Auth())
	auth.POST("/forwards", r.handlers.AddForward)
	auth.DELETE("/forwards", r.handlers.ClearForwards)
	auth.DELETE("/forwards/:prefix", r.handlers.RemoveForward)

	return r
}

// Reload applies the limiter and auth token from the current config.
func (r *Router) Reload() {
	cfg := r.manager.Get()
	r.middlewares.Apply(cfg.Limiter.Rate(), cfg.App.AuthToken)
	r.log.Info("HTTP settings reloaded",
		"rate_limit", cfg.Limiter.Requests > 0,
		"auth", cfg.App.AuthToken != "",
	)
}

func (r *Router) Handler() http.Handler {
	return r.router
}

func (r *Router) Run() error {
	r.log.Info("HTTP server listening", "addr", r.server.Addr)

	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}
