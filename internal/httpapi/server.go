// Package httpapi serves the ticketdash JSON API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

// Server hosts the HTTP API on top of a Store.
type Server struct {
	store contract.Store
	cfg   *contract.Config
	log   zerolog.Logger
}

// New wires a Server from its dependencies.
func New(cfg *contract.Config, store contract.Store, log zerolog.Logger) *Server {
	return &Server{store: store, cfg: cfg, log: log}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// 1. Shared middleware
	r.Use(chimiddleware.RealIP)
	r.Use(s.logRequests)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// 2. API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/portfolios", func(r chi.Router) {
			r.Get("/", s.listPortfolios)
			r.Post("/", s.createPortfolio)
			r.Get("/{id}", s.getPortfolio)
			r.Put("/{id}", s.updatePortfolio)
			r.Delete("/{id}", s.deletePortfolio)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.listProjects)
			r.Post("/", s.createProject)
			r.Get("/{id}", s.getProject)
			r.Put("/{id}", s.updateProject)
			r.Delete("/{id}", s.deleteProject)
			r.Get("/{id}/statistics", s.projectQuickStats)
			r.Get("/{id}/performance-statistics", s.valueSummary(performanceAPI))
			r.Get("/{id}/project-availability", s.valueSummary(availabilityAPI))
		})

		r.Route("/records", func(r chi.Router) {
			r.Get("/", s.listRecords)
			r.Post("/", s.createRecord)
			r.Delete("/", s.deleteAllRecords)
			r.Get("/aggregated", s.aggregatedRecords)
			r.Get("/project/{projectId}", s.projectRecords)
			r.Delete("/{id}", s.deleteRecord)
		})

		r.Get("/dashboard", s.dashboard)
		r.Get("/statistics/compare", s.compareStatistics)

		r.Route("/project-statistics/{projectId}", func(r chi.Router) {
			r.Get("/", s.projectStatistics)
			r.Get("/compare", s.compareProjectPeriods)
		})

		s.valueRoutes(r, "/performance-statistics", performanceAPI)
		s.valueRoutes(r, "/project-availability", availabilityAPI)

		r.Get("/portfolio-statistics", s.portfolioStatistics)
	})

	return r
}

// Run serves the API until ctx is canceled, then drains open connections.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Str("backend", string(s.cfg.Backend)).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info().Msg("server stopped")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// valueRoutes registers the shared performance/availability route family.
// The static /delete route is matched ahead of /{id} by the router.
func (s *Server) valueRoutes(r chi.Router, pattern string, api valueAPI) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", s.listValues(api))
		r.Post("/", s.saveValues(api))
		r.Delete("/", s.deleteAllValues(api))
		r.Get("/project/{id}", s.projectValues(api))
		r.Get("/dashboard", s.valueDashboard(api))
		r.Delete("/delete", s.deleteValuesScoped(api))
		r.Delete("/{id}", s.deleteValue(api))
	})
}

// valueAPI carries the per-kind surface differences: the wrapper key for
// list responses and the wording of mutation messages.
type valueAPI struct {
	kind     schema.ValueKind
	listKey  string
	singular string
	plural   string
}

var (
	performanceAPI = valueAPI{
		kind:     schema.PerformanceKind,
		listKey:  "records",
		singular: "Performance statistic",
		plural:   "performance statistics",
	}
	availabilityAPI = valueAPI{
		kind:     schema.AvailabilityKind,
		listKey:  "data",
		singular: "Project availability record",
		plural:   "project availability records",
	}
)
