// Package web is the thin HTTP surface over the extraction-and-scoring
// pipeline. It does no feature logic of its own.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"phishvet-poc/ensemble"
	"phishvet-poc/pipeline"
)

// requestTimeout bounds one full extraction-and-scoring pass, live
// lookups included.
const requestTimeout = 10 * time.Second

type CheckRequest struct {
	URL string `json:"url"`
}

type CheckResponse struct {
	URL        string                `json:"url"`
	Label      string                `json:"label"`
	Confidence float64               `json:"confidence"`
	Models     []ensemble.ModelScore `json:"models"`
	Metadata   pipeline.Metadata     `json:"metadata"`
	Timestamp  string                `json:"timestamp"`
}

// Server wires the pipeline and the ensemble scorer into HTTP handlers.
type Server struct {
	pipe   *pipeline.Pipeline
	scorer *ensemble.Scorer
}

func NewServer(pipe *pipeline.Pipeline, scorer *ensemble.Scorer) *Server {
	return &Server{pipe: pipe, scorer: scorer}
}

// CheckHandler classifies one URL. Malformed URLs still produce a verdict
// (the extractor degrades to its documented fallback); only vector-shape
// violations and model failures surface as errors.
func (s *Server) CheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CheckRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.URL == "" {
		http.Error(w, "url required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	extraction, err := s.pipe.Extract(ctx, req.URL)
	if err != nil {
		log.Errorf("[CHECK] extraction failed for %q: %v", req.URL, err)
		http.Error(w, "feature extraction failed", http.StatusInternalServerError)
		return
	}

	verdict, err := s.scorer.Score(extraction.Vector)
	if err != nil {
		log.Errorf("[CHECK] scoring failed for %q: %v", req.URL, err)
		http.Error(w, "scoring failed", http.StatusInternalServerError)
		return
	}

	resp := CheckResponse{
		URL:        req.URL,
		Label:      verdict.Label,
		Confidence: verdict.Confidence,
		Models:     verdict.Models,
		Metadata:   extraction.Meta,
		Timestamp:  time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)

	log.Infof("[CHECK] %s -> %s (%.2f%%)", req.URL, verdict.Label, verdict.Confidence)
}

// IndexHandler serves the static landing page.
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "index.html")
}
