package notify

import (
	"context"

	"github.com/google/uuid"
)

// Event sources.
const (
	SourceSearch  = "search"
	SourceSummary = "summary"
)

// Event is one phase settlement within a round, published so out-of-process
// observers can follow state changes.
type Event struct {
	Round  uuid.UUID `json:"round"`
	Query  string    `json:"query"`
	Source string    `json:"source"` // "search" or "summary"
	Phase  string    `json:"phase"`  // "done" or "failed"
}

// Notifier publishes round state-change events.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

// Noop discards all events. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
