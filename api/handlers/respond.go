// Package handlers provides HTTP handlers for the GeneMatch API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/genematch/internal/alignment"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// SchemeRequest carries optional scoring parameters. All three fields are
// required when the object is present.
type SchemeRequest struct {
	Match    int `json:"match"`
	Mismatch int `json:"mismatch"`
	Gap      int `json:"gap"`
}

// scheme returns the requested scoring scheme, or the default when r is nil.
func (r *SchemeRequest) scheme() (alignment.ScoringScheme, error) {
	if r == nil {
		return alignment.DefaultScheme(), nil
	}
	return alignment.NewScoringScheme(r.Match, r.Mismatch, r.Gap)
}
