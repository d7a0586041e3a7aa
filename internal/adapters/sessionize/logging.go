package sessionize

import (
	"log/slog"
	"net/http"
	"time"
)

type loggingTransport struct {
	logger *slog.Logger
	next   http.RoundTripper
}

// NewLoggingTransport logs each outgoing request with method, host, path,
// status, and duration. It does not log request or response bodies.
func NewLoggingTransport(logger *slog.Logger, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{logger: logger, next: next}
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(r)
	duration := time.Since(start)
	if err != nil {
		t.logger.Error("sessionize request failed",
			"method", r.Method,
			"host", r.URL.Host,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	t.logger.Info("sessionize request",
		"method", r.Method,
		"host", r.URL.Host,
		"path", r.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)
	return resp, nil
}
