// Package orchestrator coordinates one query round: two independently-failing
// upstream calls (search index, summary generation) whose completions settle
// into a single race-free view. A new submission supersedes the previous round
// immediately; late completions from a superseded round are discarded.
package orchestrator

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"wikiglance/internal/history"
	"wikiglance/internal/notify"
	"wikiglance/internal/search"
	"wikiglance/internal/summary"
)

// Phase is the lifecycle marker of one sub-request, tracked independently
// for search and summary.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePending Phase = "pending"
	PhaseDone    Phase = "done"
	PhaseFailed  Phase = "failed"
)

func (p Phase) settled() bool { return p == PhaseDone || p == PhaseFailed }

// RoundState is the working state of the in-flight or most recently completed
// round. Exactly one is live at a time.
type RoundState struct {
	Round        uuid.UUID
	Query        string
	SearchPhase  Phase
	SummaryPhase Phase
	Search       *search.Outcome
	Summary      string
	ErrorMessage string
}

// Options configures an Orchestrator. Zero values fall back to defaults.
type Options struct {
	Limit               int    // result cap per search, default 10
	SearchErrorMessage  string // shown when search fails; always wins the error slot
	SummaryErrorMessage string // shown when only the summary fails
	Notifier            notify.Notifier
	Recorder            history.Recorder
}

// Orchestrator owns the single live RoundState. Completions from the two
// client goroutines interleave arbitrarily; the mutex serializes mutation so
// no partial state is ever observable.
type Orchestrator struct {
	log     *slog.Logger
	search  search.Client
	summary summary.Client
	opts    Options

	mu         sync.Mutex
	state      RoundState
	searchErr  error
	summaryErr error
}

// New builds an Orchestrator around the two clients.
func New(log *slog.Logger, searchClient search.Client, summaryClient summary.Client, opts Options) *Orchestrator {
	if opts.Limit <= 0 {
		opts.Limit = 10
	}
	if opts.SearchErrorMessage == "" {
		opts.SearchErrorMessage = "Search is unavailable right now. Please try again."
	}
	if opts.SummaryErrorMessage == "" {
		opts.SummaryErrorMessage = "No summary available for this query."
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Noop{}
	}
	if opts.Recorder == nil {
		opts.Recorder = history.Noop{}
	}
	return &Orchestrator{
		log:     log,
		search:  searchClient,
		summary: summaryClient,
		opts:    opts,
		state:   RoundState{SearchPhase: PhaseIdle, SummaryPhase: PhaseIdle},
	}
}

// Submit starts a new round for query and returns its identifier, or uuid.Nil
// if the query trims to empty (a no-op; state is unchanged). A fresh
// RoundState with both phases pending and prior outcomes cleared is installed
// before either client call is issued, and control returns to the caller
// immediately. The two calls run as independent goroutines, detached from the
// caller's cancellation; one failing never prevents the other from settling.
func (o *Orchestrator) Submit(ctx context.Context, query string) uuid.UUID {
	query = strings.TrimSpace(query)
	if query == "" {
		return uuid.Nil
	}

	round := uuid.New()
	o.mu.Lock()
	o.searchErr, o.summaryErr = nil, nil
	o.state = RoundState{
		Round:        round,
		Query:        query,
		SearchPhase:  PhasePending,
		SummaryPhase: PhasePending,
	}
	o.mu.Unlock()
	o.log.Info("round started", "round", round, "query", query)

	callCtx := context.WithoutCancel(ctx)
	go o.runSearch(callCtx, round, query)
	go o.runSummary(callCtx, round, query)
	return round
}

// Snapshot returns a copy of the current RoundState. The items slice is
// cloned so readers never alias orchestrator-owned memory.
func (o *Orchestrator) Snapshot() RoundState {
	o.mu.Lock()
	defer o.mu.Unlock()
	snap := o.state
	if o.state.Search != nil {
		outCopy := *o.state.Search
		outCopy.Items = slices.Clone(o.state.Search.Items)
		snap.Search = &outCopy
	}
	return snap
}

func (o *Orchestrator) runSearch(ctx context.Context, round uuid.UUID, query string) {
	out, err := o.search.Search(ctx, query, o.opts.Limit)

	o.mu.Lock()
	if o.state.Round != round {
		o.mu.Unlock()
		o.log.Info("discarding stale search result", "round", round, "current", o.currentRound())
		return
	}
	if err != nil {
		o.searchErr = err
		o.state.SearchPhase = PhaseFailed
		// Search failure is user-blocking: its message always wins the slot,
		// even over an earlier summary failure.
		o.state.ErrorMessage = o.opts.SearchErrorMessage
		o.log.Error("search failed", "round", round, "err", err)
	} else {
		o.state.SearchPhase = PhaseDone
		o.state.Search = &out
	}
	o.afterSettle(round, query, notify.SourceSearch, o.state.SearchPhase)
}

func (o *Orchestrator) runSummary(ctx context.Context, round uuid.UUID, query string) {
	text, err := o.summary.Summarize(ctx, query)

	o.mu.Lock()
	if o.state.Round != round {
		o.mu.Unlock()
		o.log.Info("discarding stale summary result", "round", round, "current", o.currentRound())
		return
	}
	if err != nil {
		o.summaryErr = err
		o.state.SummaryPhase = PhaseFailed
		// Soft degradation: never overwrite a search error, never hide results.
		if o.state.ErrorMessage == "" {
			o.state.ErrorMessage = o.opts.SummaryErrorMessage
		}
		o.log.Warn("summary failed", "round", round, "err", err)
	} else {
		o.state.SummaryPhase = PhaseDone
		o.state.Summary = text
	}
	o.afterSettle(round, query, notify.SourceSummary, o.state.SummaryPhase)
}

// afterSettle is entered with the mutex held and releases it. It captures
// whatever must leave the lock (event, completed-round record) and performs
// the side effects outside it; neither may block or fail the round.
func (o *Orchestrator) afterSettle(round uuid.UUID, query, source string, phase Phase) {
	event := notify.Event{Round: round, Query: query, Source: source, Phase: string(phase)}

	var record *history.Round
	if o.state.SearchPhase.settled() && o.state.SummaryPhase.settled() {
		rec := history.Round{ID: round, Query: query, SummaryChars: len(o.state.Summary)}
		if o.state.Search != nil {
			rec.ResultCount = len(o.state.Search.Items)
			rec.TotalMatches = o.state.Search.TotalMatches
		}
		if o.searchErr != nil {
			rec.SearchError = o.searchErr.Error()
		}
		if o.summaryErr != nil {
			rec.SummaryError = o.summaryErr.Error()
		}
		record = &rec
	}
	o.mu.Unlock()

	ctx := context.Background()
	if err := o.opts.Notifier.Publish(ctx, event); err != nil {
		o.log.Warn("failed to publish round event", "round", round, "err", err)
	}
	if record != nil {
		if err := o.opts.Recorder.Record(ctx, *record); err != nil {
			o.log.Warn("failed to record round", "round", round, "err", err)
		}
	}
}

// currentRound is only for log context; callers must not hold the mutex.
func (o *Orchestrator) currentRound() uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Round
}
