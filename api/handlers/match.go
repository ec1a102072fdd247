package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/aria-lang/genematch/internal/catalog"
	"github.com/aria-lang/genematch/internal/report"
	"github.com/aria-lang/genematch/internal/scan"
	"github.com/aria-lang/genematch/internal/sequence"
	"github.com/aria-lang/genematch/internal/stats"
)

// Catalog serves best-match queries against one loaded catalog.
type Catalog struct {
	cat     *catalog.Catalog
	workers int
	logger  *log.Logger
}

// NewCatalog creates catalog handlers. A nil logger discards output.
func NewCatalog(cat *catalog.Catalog, workers int, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Catalog{cat: cat, workers: workers, logger: logger}
}

// MatchRequest represents a best-match request.
type MatchRequest struct {
	Sequence string         `json:"sequence"`
	Scoring  *SchemeRequest `json:"scoring,omitempty"`
	Strict   bool           `json:"strict,omitempty"`
}

// MatchResponse represents the response for a best-match request.
type MatchResponse struct {
	CatalogID string `json:"catalog_id"`
	report.MatchResult
}

// CatalogResponse describes the loaded catalog.
type CatalogResponse struct {
	ID      string                 `json:"id"`
	Source  string                 `json:"source"`
	Format  string                 `json:"format"`
	Records int                    `json:"records"`
	Stats   *stats.CollectionStats `json:"stats,omitempty"`
}

// MatchHandler handles best-match requests.
func (h *Catalog) MatchHandler(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sc, err := req.Scoring.scheme()
	if err != nil {
		writeError(w, http.StatusBadRequest, "scoring: "+err.Error())
		return
	}

	query, err := sequence.New(req.Sequence)
	if err != nil {
		writeError(w, http.StatusBadRequest, "sequence: "+err.Error())
		return
	}

	opts := []scan.Option{scan.WithWorkers(h.workers), scan.WithLogger(h.logger)}
	if req.Strict {
		opts = append(opts, scan.WithPolicy(scan.RejectRun))
	}

	res, err := scan.New(opts...).Best(r.Context(), h.cat.Records, query, sc)
	if err != nil {
		var recErr *scan.RecordError
		if errors.As(err, &recErr) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if r.Context().Err() != nil {
			// Deadline responses belong to the timeout middleware; a cancelled
			// client is gone.
			h.logger.Printf("match aborted: %v", err)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if res.Best == nil {
		writeError(w, http.StatusNotFound, "no matching sequence found")
		return
	}

	writeJSON(w, http.StatusOK, MatchResponse{
		CatalogID:   h.cat.ID.String(),
		MatchResult: report.ToMatchResult(res),
	})
}

// InfoHandler describes the loaded catalog.
func (h *Catalog) InfoHandler(w http.ResponseWriter, r *http.Request) {
	resp := CatalogResponse{
		ID:      h.cat.ID.String(),
		Source:  h.cat.Source,
		Format:  h.cat.Format.String(),
		Records: h.cat.Len(),
	}
	if h.cat.Len() > 0 {
		s, err := h.cat.Summary()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Stats = s
	}
	writeJSON(w, http.StatusOK, resp)
}
