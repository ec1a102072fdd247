// Package api wires the GeneMatch HTTP routes.
package api

import (
	"log"
	"net/http"
	"time"

	"github.com/aria-lang/genematch/api/handlers"
	"github.com/aria-lang/genematch/api/middleware"
	"github.com/aria-lang/genematch/internal/catalog"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Config controls router construction.
type Config struct {
	Workers   int           // alignment workers per match request
	Timeout   time.Duration // per-request timeout; 0 disables it
	AccessLog *log.Logger   // nil disables access logging
	ScanLog   *log.Logger   // receives skipped record messages
}

// NewRouter returns the GeneMatch API router serving cat.
func NewRouter(cat *catalog.Catalog, cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.AccessLog != nil {
		r.Use(middleware.NewLogger(cfg.AccessLog))
	}
	r.Use(chimiddleware.Recoverer)
	if cfg.Timeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.Timeout))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	ch := handlers.NewCatalog(cat, cfg.Workers, cfg.ScanLog)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", ch.InfoHandler)
		r.Post("/match", ch.MatchHandler)

		r.Route("/alignment", func(r chi.Router) {
			r.Post("/global", handlers.GlobalAlignHandler)
			r.Post("/score", handlers.AlignmentScoreHandler)
		})
	})

	return r
}
