package upstream

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusError(t *testing.T) {
	err := &StatusError{Service: "wikipedia", StatusCode: 503}
	if got := err.Error(); got != "wikipedia: unexpected status 503" {
		t.Errorf("unexpected message: %q", got)
	}
	wrapped := fmt.Errorf("search failed: %w", err)
	if !IsStatus(wrapped) {
		t.Error("expected IsStatus to see through wrapping")
	}
	if IsStatus(ErrMalformedResponse) {
		t.Error("sentinel should not match StatusError")
	}
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("gemini: %w: no candidates", ErrMalformedResponse)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Error("expected errors.Is match for ErrMalformedResponse")
	}
}
