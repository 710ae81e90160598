package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/clique360/backend/pkg/logger"
)

// APIKeyRoundTripper injects the provider API key header, propagates the
// request id, and logs the outbound call.
type APIKeyRoundTripper struct {
	Transport http.RoundTripper
	Header    string
	Key       string
}

func NewAPIKeyRoundTripper(transport http.RoundTripper, header, key string) *APIKeyRoundTripper {
	return &APIKeyRoundTripper{Transport: transport, Header: header, Key: key}
}

func (t *APIKeyRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if t.Key != "" {
		r.Header.Set(t.Header, t.Key)
	}

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response", "response", fmt.Sprintf("%s %s %d", r.Method, r.URL.Redacted(), resp.StatusCode))

	return resp, nil
}
