package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/openautomate/website/internal/assets"
	"github.com/openautomate/website/internal/config"
	"github.com/openautomate/website/internal/handlers"
	"github.com/openautomate/website/internal/i18n"
	"github.com/openautomate/website/internal/logger"
	"github.com/openautomate/website/internal/metrics"
	"github.com/openautomate/website/internal/middleware"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for building the router
type RouterParams struct {
	fx.In

	Handler *handlers.Handler
	Config  *config.Config
	Log     *zap.Logger
}

// NewRouter wires middleware and every route of the website.
func NewRouter(p RouterParams) http.Handler {
	h := p.Handler

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if p.Config.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(metrics.Middleware)

	r.NotFound(h.NotFound)

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", metrics.Handler())

	r.With(middleware.StaticCache).
		Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets.Static()))))

	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)

	for _, path := range handlers.AuthPaths {
		r.Get(path, h.AuthRedirect)
	}

	r.Group(func(r chi.Router) {
		r.Use(i18n.Negotiated)
		pages(r, h)
	})

	r.Route("/{"+i18n.URLParam+"}", func(r chi.Router) {
		r.Use(i18n.PrefixedWith(http.HandlerFunc(h.NotFound)))
		r.Get("/sitemap.xml", h.Sitemap)
		pages(r, h)
	})

	return r
}

func pages(r chi.Router, h *handlers.Handler) {
	r.Get("/", h.LandingPage)
	r.Get("/about", h.AboutPage)
	r.Get("/guide", h.GuidePage)
	r.Get("/contact", h.ContactPage)
	r.Post("/contact", h.SubmitContact)
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router http.Handler, cfg *config.Config, log *zap.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				zap.String("address", server.Addr),
				zap.String("environment", cfg.Environment),
				zap.String("site_url", cfg.SiteURL),
				zap.String("orchestrator_url", cfg.OrchestratorURL),
			)

			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
