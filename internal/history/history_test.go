package history

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = Noop{}
	if err := r.Record(context.Background(), Round{ID: uuid.New(), Query: "q"}); err != nil {
		t.Errorf("noop must never fail, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("noop close must never fail, got %v", err)
	}
}
