package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrMalformedResponse indicates a success status whose body does not match
// the expected contract. Distinct from "no results", which is a valid outcome.
var ErrMalformedResponse = errors.New("malformed upstream response")

// ErrEmptyQuery indicates a blank or whitespace-only query. Callers fail fast
// with this before any network call is made.
var ErrEmptyQuery = errors.New("query is empty")

// StatusError reports a non-success HTTP status from an upstream service.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Service, e.StatusCode)
}

// IsStatus reports whether err is (or wraps) a StatusError.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

const defaultRequestTimeout = 15 * time.Second

// NewHTTPClient returns the default client used for upstream calls. The
// orchestration core imposes no deadline of its own; the timeout lives here,
// at the transport.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultRequestTimeout}
}
