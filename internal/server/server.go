// Package server implements the peptigraph HTTP API.
//
// Endpoints:
//
//	POST /v1/convert        convert a sequence, store and return the result
//	GET  /v1/convert/{id}   replay a stored conversion
//	GET  /v1/convert        list recent conversions
//	GET  /healthz           liveness probe
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/peptikit/peptigraph/internal/server/history"
	"github.com/peptikit/peptigraph/pkg/errors"
	"github.com/peptikit/peptigraph/pkg/pipeline"
)

// Config wires the server's collaborators.
type Config struct {
	Runner  *pipeline.Runner
	History history.Store
	Logger  *log.Logger
}

// Server is the peptigraph HTTP API.
type Server struct {
	runner  *pipeline.Runner
	history history.Store
	logger  *log.Logger
	router  chi.Router
}

// New creates a server. A nil history store falls back to the in-memory
// backend, a nil logger to the package default.
func New(cfg Config) *Server {
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.History == nil {
		cfg.History = history.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{
		runner:  cfg.Runner,
		history: cfg.History,
		logger:  cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Get("/convert", s.handleList)
		r.Get("/convert/{id}", s.handleGet)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// convertResponse is the reply to POST /v1/convert.
type convertResponse struct {
	ID           string `json:"id"`
	SMILES       string `json:"smiles"`
	AtomCount    int    `json:"atom_count"`
	SequenceHash string `json:"sequence_hash"`
	Cached       bool   `json:"cached"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "decode request: %v", err))
		return
	}
	// Artifacts are served by the CLI only; the API returns SMILES.
	opts.Formats = nil

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	entry := &history.Entry{
		ID:         uuid.NewString(),
		Sequence:   opts.Sequence,
		Notation:   opts.Notation,
		Cyclize:    opts.Cyclize,
		CrossLinks: opts.CrossLinks,
		SMILES:     result.SMILES,
		AtomCount:  result.AtomCount,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.history.Put(r.Context(), entry); err != nil {
		s.logger.Error("store conversion", "err", err)
	}

	writeJSON(w, http.StatusOK, convertResponse{
		ID:           entry.ID,
		SMILES:       result.SMILES,
		AtomCount:    result.AtomCount,
		SequenceHash: result.SequenceHash,
		Cached:       result.CacheInfo.ConvertHit,
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry, err := s.history.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if entry == nil {
		writeError(w, errors.New(errors.ErrCodeNotFound, "conversion %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.history.List(r.Context(), 50)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []*history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnknownResidue,
		errors.ErrCodeInvalidCrossLink,
		errors.ErrCodeDuplicateCrossLink,
		errors.ErrCodeTooManyCrossLinks,
		errors.ErrCodeInvalidSequence,
		errors.ErrCodeInvalidPosition,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
