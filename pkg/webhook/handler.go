package webhook

import (
	"context"
	"net/http"

	"github.com/AroraShreshth/wasender/pkg/api"
	"github.com/AroraShreshth/wasender/pkg/events"
)

// Handler is the single entry point the host application calls per inbound
// webhook request. It orchestrates adapter → verifier → decoder and holds no
// mutable state, so one Handler serves concurrent requests without locking.
type Handler struct {
	verifier Verifier
	secret   string
}

// Option configures a Handler.
type Option func(*Handler)

// WithVerifier swaps the signature scheme. The default is the plain
// shared-secret equality check.
func WithVerifier(v Verifier) Option {
	return func(h *Handler) {
		h.verifier = v
	}
}

// NewHandler builds a handler around the configured webhook secret.
func NewHandler(secret string, opts ...Option) *Handler {
	h := &Handler{secret: secret}
	for _, opt := range opts {
		opt(h)
	}
	if h.verifier == nil {
		h.verifier = NewSecretVerifier(secret)
	}
	return h
}

// Handle authenticates and decodes one inbound request. Failures are
// *api.Error values:
//
//   - webhook secret never configured: reported before any request
//     inspection, status 0
//   - signature missing or mismatched: status 401, no body parsing attempted
//   - body unreadable, malformed JSON or missing type: status 400
//
// Unrecognized event kinds are not failures; they decode into an Event whose
// Type is the verbatim unknown string.
func (h *Handler) Handle(ctx context.Context, adapter Adapter) (*events.Event, error) {
	if h.secret == "" {
		return nil, api.NewError("webhook secret not configured", 0)
	}

	signature, ok := adapter.GetHeader(SignatureHeader)
	if !ok || signature == "" {
		return nil, api.NewError("missing webhook signature", http.StatusUnauthorized)
	}

	body, err := adapter.GetRawBody(ctx)
	if err != nil {
		return nil, api.NewError("unable to read request body", http.StatusBadRequest)
	}

	if !h.verifier.Verify(signature, body) {
		return nil, api.NewError("invalid webhook signature", http.StatusUnauthorized)
	}

	evt, err := events.Decode(body)
	if err != nil {
		return nil, api.NewError(err.Error(), http.StatusBadRequest)
	}

	return evt, nil
}

// HandleRequest is a convenience for plain net/http hosts.
func (h *Handler) HandleRequest(r *http.Request) (*events.Event, error) {
	return h.Handle(r.Context(), NewRequestAdapter(r))
}
