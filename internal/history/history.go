package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Round is the audit record of one completed round: both sub-requests have
// settled, successfully or not. Never read on the query path; this is not a
// cache.
type Round struct {
	ID           uuid.UUID
	Query        string
	ResultCount  int
	TotalMatches int
	SummaryChars int
	SearchError  string
	SummaryError string
	CreatedAt    time.Time
}

// Recorder persists completed rounds.
type Recorder interface {
	Record(ctx context.Context, round Round) error
	Close() error
}

// Noop discards all records. Used when no database is configured.
type Noop struct{}

func (Noop) Record(context.Context, Round) error { return nil }
func (Noop) Close() error                        { return nil }
