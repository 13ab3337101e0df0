package notify

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestNoopPublish(t *testing.T) {
	if err := (Noop{}).Publish(context.Background(), Event{}); err != nil {
		t.Errorf("noop must never fail, got %v", err)
	}
}

func TestEventJSONShape(t *testing.T) {
	e := Event{Round: uuid.New(), Query: "alan turing", Source: SourceSearch, Phase: "done"}
	body, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"round", "query", "source", "phase"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected %q in event payload", key)
		}
	}
}

func TestNATSRequiresSource(t *testing.T) {
	n := &natsNotifier{}
	if err := n.Publish(context.Background(), Event{Round: uuid.New()}); err == nil {
		t.Error("expected error for event without source")
	}
}
