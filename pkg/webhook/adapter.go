// Package webhook authenticates inbound WaSender event notifications and
// decodes them into typed events. It performs no logging, no retries and no
// network I/O of its own; every call is independent and safe to run
// concurrently.
package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Adapter abstracts the host HTTP framework so verification and decoding
// never touch framework-specific request objects.
type Adapter interface {
	// GetHeader looks up a request header case-insensitively. The second
	// return is false when the header is absent.
	GetHeader(name string) (string, bool)

	// GetRawBody returns the request body exactly as received on the wire,
	// before any JSON decoding or middleware mutation. Byte-for-byte
	// fidelity is a hard requirement: a re-serialized body breaks any
	// signature scheme computed over the original payload.
	GetRawBody(ctx context.Context) ([]byte, error)
}

// RequestAdapter adapts a *net/http.Request. The body is read once and
// cached so repeated calls observe identical bytes.
type RequestAdapter struct {
	req *http.Request

	once    sync.Once
	body    []byte
	readErr error
}

// NewRequestAdapter wraps an inbound request. The adapter takes over the
// request body; the caller must not read it separately.
func NewRequestAdapter(r *http.Request) *RequestAdapter {
	return &RequestAdapter{req: r}
}

func (a *RequestAdapter) GetHeader(name string) (string, bool) {
	values, ok := a.req.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (a *RequestAdapter) GetRawBody(ctx context.Context) ([]byte, error) {
	a.once.Do(func() {
		if a.req.Body == nil {
			a.body = []byte{}
			return
		}
		defer a.req.Body.Close()
		a.body, a.readErr = io.ReadAll(a.req.Body)
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.readErr != nil {
		return nil, fmt.Errorf("webhook: read request body: %w", a.readErr)
	}
	return a.body, nil
}
