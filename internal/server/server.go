// Package server exposes the analysis pipeline over HTTP. Analyses run
// asynchronously: POST answers immediately with a run ID and a bounded
// number of jobs execute in the background.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/sells-group/intel-cli/internal/model"
	"github.com/sells-group/intel-cli/internal/pipeline"
	"github.com/sells-group/intel-cli/internal/store"
)

// Executor runs the pipeline for an existing run record.
type Executor interface {
	Execute(ctx context.Context, run *model.Run) (*pipeline.Result, error)
}

// Server handles the HTTP API.
type Server struct {
	executor Executor
	store    store.Store
	jobs     *semaphore.Weighted
}

// New creates a Server. maxJobs bounds concurrently executing analyses.
func New(executor Executor, st store.Store, maxJobs int) *Server {
	if maxJobs <= 0 {
		maxJobs = 4
	}
	return &Server{
		executor: executor,
		store:    st,
		jobs:     semaphore.NewWeighted(int64(maxJobs)),
	}
}

// Routes builds the router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Route("/v1/analyses", func(r chi.Router) {
		r.Post("/", s.handleCreateAnalysis)
		r.Get("/{id}", s.handleGetAnalysis)
		r.Get("/{id}/report", s.handleGetReport)
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("server: shutting down")
		srv.Shutdown(context.Background())
	}()

	zap.L().Info("server: listening", zap.Int("port", port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createAnalysisRequest struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req createAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company := model.CompanyIdentity{Name: req.Name, URL: req.URL}
	if !company.Valid() {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	run, err := s.store.CreateRun(r.Context(), company)
	if err != nil {
		zap.L().Error("server: create run failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create run")
		return
	}

	// Execute in the background, bounded by the job semaphore. The run
	// record carries progress; clients poll GET /v1/analyses/{id}.
	go func() {
		ctx := context.Background()
		if err := s.jobs.Acquire(ctx, 1); err != nil {
			return
		}
		defer s.jobs.Release(1)

		if _, err := s.executor.Execute(ctx, run); err != nil {
			zap.L().Error("server: analysis failed",
				zap.String("run_id", run.ID),
				zap.Error(err),
			)
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{
		"id":     run.ID,
		"status": string(run.Status),
	})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := s.store.GetRun(r.Context(), id)
	if eris.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		zap.L().Error("server: get run failed", zap.String("run_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}

	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := s.store.GetRun(r.Context(), id)
	if eris.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		zap.L().Error("server: get run failed", zap.String("run_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}

	if run.Status != model.RunStatusComplete {
		writeJSON(w, http.StatusConflict, map[string]string{
			"error":  "analysis not complete",
			"status": string(run.Status),
		})
		return
	}

	key := run.Company.URL
	if key == "" {
		key = run.Company.Name
	}
	profile, err := s.store.GetProfile(r.Context(), key)
	if eris.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		zap.L().Error("server: get profile failed", zap.String("run_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
