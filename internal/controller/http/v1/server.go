package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/Pavel771123/nataliya/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      handler,
		},
	}
}

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Leads     *LeadsHandler
	Export    *ExportHandler
	Portfolio *PortfolioHandler
}

// NewRouter mounts the submission endpoint and the public catalog. The lead feed, its exports and
// the catalog import are mounted only when apiToken is set.
func NewRouter(log *slog.Logger, apiToken string, h Handlers, limiter RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.With(RateLimit(log, limiter)).Post("/leads", h.Leads.SubmitLead)

		r.Get("/projects", h.Portfolio.ListProjects)
		r.Get("/projects/{slug}", h.Portfolio.GetProject)
		r.Get("/project-categories", h.Portfolio.ListCategories)
		r.Get("/samples", h.Portfolio.ListSamples)
		r.Get("/samples/{slug}", h.Portfolio.GetSample)
		r.Get("/pages/{slug}", h.Portfolio.GetPage)

		if apiToken == "" {
			return
		}

		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(apiToken))

			r.Get("/leads", h.Leads.ListLeads)
			r.Get("/leads/export.csv", h.Export.ExportCSV)
			r.Get("/leads/export.pdf", h.Export.ExportPDF)
			r.Get("/leads/{id}/file", h.Leads.GetLeadFile)

			r.Post("/projects/import", h.Portfolio.ImportProjects)
		})
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
