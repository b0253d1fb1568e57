package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	logger "github.com/sirupsen/logrus"

	"github.com/wellywell/leadrelay/internal/config"
	"github.com/wellywell/leadrelay/internal/handlers"
	"github.com/wellywell/leadrelay/internal/metrics"
)

const (
	compressLevel     = 5
	readHeaderTimeout = 10 * time.Second
)

type Middleware interface {
	Handle(h http.Handler) http.Handler
}

type Router struct {
	server *http.Server
	router *chi.Mux
}

func NewRouter(conf *config.ServerConfig, h *handlers.HandlerSet, middlewares ...Middleware) *Router {

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger.StandardLogger(), NoColor: true}))
	r.Use(metrics.Instrument)
	r.Use(middleware.Compress(compressLevel))
	for _, m := range middlewares {
		r.Use(m.Handle)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: conf.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding"},
		MaxAge:         300,
	}))

	r.Post("/api/order", h.HandlePostOrder)
	r.Get("/api/orders", h.HandleGetOrders)
	r.Get("/healthz", handlers.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	// API paths keep their 405s; only unknown paths reach the front end
	if conf.StaticDir != "" {
		r.NotFound(http.FileServer(http.Dir(conf.StaticDir)).ServeHTTP)
	}

	return &Router{
		router: r,
		server: &http.Server{
			Addr:              conf.ListenAddress(),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// ListenAndServe blocks until the server fails or Shutdown is called.
// A shutdown is not reported as an error.
func (r *Router) ListenAndServe() error {
	logger.Infof("Listening on %s", r.server.Addr)
	err := r.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}
