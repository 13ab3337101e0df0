package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// NewNATS constructs a thin NATS-based notifier.
func NewNATS(log *slog.Logger, nc *nats.Conn) Notifier {
	return &natsNotifier{log: log, nc: nc}
}

type natsNotifier struct {
	log *slog.Logger
	nc  *nats.Conn
}

func (n *natsNotifier) Publish(_ context.Context, event Event) error {
	if event.Source == "" {
		return fmt.Errorf("event source required")
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := n.nc.Publish("rounds."+event.Source, body); err != nil {
		return err
	}
	n.log.Debug("published round event", "round", event.Round, "source", event.Source, "phase", event.Phase)
	return nil
}
