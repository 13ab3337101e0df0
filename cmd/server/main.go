package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"wikiglance/internal/app"
	"wikiglance/internal/httputil"
	"wikiglance/internal/orchestrator"
	"wikiglance/internal/search"
)

type submitRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}

type resultItem struct {
	Title string `json:"title"`
	// SnippetHTML is untrusted markup from the search index; consumers must
	// sanitize it before rendering.
	SnippetHTML string `json:"snippet_html"`
	URL         string `json:"url"`
}

type stateResponse struct {
	Round        string       `json:"round"`
	Query        string       `json:"query"`
	SearchPhase  string       `json:"search_phase"`
	SummaryPhase string       `json:"summary_phase"`
	Results      []resultItem `json:"results"`
	TotalMatches *int         `json:"total_matches,omitempty"`
	EmptyResults bool         `json:"empty_results"`
	Summary      string       `json:"summary"`
	Error        string       `json:"error"`
}

type displayModeRequest struct {
	Dark bool `json:"dark"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	r := httputil.NewRouter(deps.Log)
	r.Post("/api/query", submitHandler(deps))
	r.Get("/api/state", stateHandler(deps))
	r.Get("/api/prefs/display-mode", getDisplayModeHandler(deps))
	r.Put("/api/prefs/display-mode", setDisplayModeHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", deps.Config.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server stopped", "err", err)
	}
	if err := deps.Prefs.Close(); err != nil {
		deps.Log.Warn("failed to close preference store", "err", err)
	}
	if err := deps.Recorder.Close(); err != nil {
		deps.Log.Warn("failed to close history recorder", "err", err)
	}
}

// submitHandler starts a new round. The response arrives on /api/state; this
// endpoint only acknowledges that the round was accepted.
func submitHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		round := deps.Orchestrator.Submit(r.Context(), req.Query)
		if round == uuid.Nil {
			httputil.Fail(deps.Log, w, "query must not be blank", nil, http.StatusBadRequest)
			return
		}
		httputil.WriteJSON(w, http.StatusAccepted, map[string]any{
			"round": round.String(),
			"query": deps.Orchestrator.Snapshot().Query,
		})
	}
}

// stateHandler renders the current round snapshot.
func stateHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := deps.Orchestrator.Snapshot()

		resp := stateResponse{
			Query:        snap.Query,
			SearchPhase:  string(snap.SearchPhase),
			SummaryPhase: string(snap.SummaryPhase),
			Results:      []resultItem{},
			Summary:      snap.Summary,
			Error:        snap.ErrorMessage,
		}
		if snap.Round != uuid.Nil {
			resp.Round = snap.Round.String()
		}
		if snap.Search != nil {
			for _, item := range snap.Search.Items {
				resp.Results = append(resp.Results, resultItem{
					Title:       item.Title,
					SnippetHTML: item.SnippetHTML,
					URL:         search.ArticleURL(deps.Config.ArticleBaseURL, item.PageID),
				})
			}
			if snap.Search.HasTotal {
				total := snap.Search.TotalMatches
				resp.TotalMatches = &total
			}
		}
		// Empty results are a valid settled state, distinct from failure.
		resp.EmptyResults = snap.SearchPhase == orchestrator.PhaseDone && len(resp.Results) == 0

		httputil.WriteJSON(w, http.StatusOK, resp)
	}
}

func getDisplayModeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dark, err := deps.Prefs.DarkMode(r.Context())
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to read display mode", err, http.StatusInternalServerError)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"dark": dark})
	}
}

func setDisplayModeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req displayModeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := deps.Prefs.SetDarkMode(r.Context(), req.Dark); err != nil {
			httputil.Fail(deps.Log, w, "failed to persist display mode", err, http.StatusInternalServerError)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"dark": req.Dark})
	}
}
