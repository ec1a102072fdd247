package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/genematch/internal/alignment"
	"github.com/aria-lang/genematch/internal/sequence"
)

// AlignmentRequest represents an alignment request.
type AlignmentRequest struct {
	Sequence1 string         `json:"sequence1"`
	Sequence2 string         `json:"sequence2"`
	Scoring   *SchemeRequest `json:"scoring,omitempty"`
}

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	MatchLine   string  `json:"match_line"`
	Score       int     `json:"score"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score int `json:"score"`
}

// decodeAlignment parses and validates an alignment request. On failure it
// writes the error response and returns ok == false.
func decodeAlignment(w http.ResponseWriter, r *http.Request) (s1, s2 *sequence.Sequence, sc alignment.ScoringScheme, ok bool) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, nil, sc, false
	}

	sc, err := req.Scoring.scheme()
	if err != nil {
		writeError(w, http.StatusBadRequest, "scoring: "+err.Error())
		return nil, nil, sc, false
	}

	s1, err = sequence.New(req.Sequence1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "sequence1: "+err.Error())
		return nil, nil, sc, false
	}

	s2, err = sequence.New(req.Sequence2)
	if err != nil {
		writeError(w, http.StatusBadRequest, "sequence2: "+err.Error())
		return nil, nil, sc, false
	}

	return s1, s2, sc, true
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	s1, s2, sc, ok := decodeAlignment(w, r)
	if !ok {
		return
	}

	a, err := alignment.Global(s1, s2, sc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AlignmentResponse{
		AlignedSeq1: a.AlignedQuery,
		AlignedSeq2: a.AlignedTarget,
		MatchLine:   a.MatchLine(),
		Score:       a.Score,
		Identity:    a.Identity,
		CIGAR:       a.ToCIGAR(),
		Matches:     a.MatchCount(),
		Mismatches:  a.MismatchCount(),
		Gaps:        a.TotalGaps(),
	})
}

// AlignmentScoreHandler handles score-only alignment requests.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	s1, s2, sc, ok := decodeAlignment(w, r)
	if !ok {
		return
	}

	score, err := alignment.ScoreOnly(s1, s2, sc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ScoreResponse{Score: score})
}
