package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AroraShreshth/wasender/pkg/api"
)

// capturedRequest records what the test server saw for assertions after the
// call returns.
type capturedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   []byte
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Auth = r.Header.Get("Authorization")
		captured.Body, _ = io.ReadAll(r.Body)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL), WithAPIKey("session-key"), WithPersonalToken("personal-token")}, opts...)
	return New(opts...), captured
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestSendTextUsesSessionScope(t *testing.T) {
	c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":true,"data":{"msgId":"ABC123","status":"sent"}}`)
	})

	resp, err := c.SendText(context.Background(), "123456789", "hello")
	require.NoError(t, err)

	assert.Equal(t, "ABC123", resp.Data.MessageID)
	assert.Equal(t, "sent", resp.Data.Status)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/send-message", captured.Path)
	assert.Equal(t, "Bearer session-key", captured.Auth)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(captured.Body, &payload))
	assert.Equal(t, "123456789", payload["to"])
	assert.Equal(t, "hello", payload["text"])
	assert.NotContains(t, payload, "imageUrl")
}

func TestSendMessageRequiresRecipient(t *testing.T) {
	called := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.SendMessage(context.Background(), MessagePayload{Text: "orphan"})
	require.Error(t, err)
	assert.False(t, called, "no request should be issued without a recipient")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.StatusCode)
}

func TestSessionLifecycleUsesAccountScope(t *testing.T) {
	c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":true,"data":[{"id":7,"name":"main","status":"connected"}]}`)
	})

	resp, err := c.ListSessions(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Data, 1)
	assert.Equal(t, 7, resp.Data[0].ID)
	assert.Equal(t, "connected", resp.Data[0].Status)
	assert.Equal(t, "/whatsapp-sessions", captured.Path)
	assert.Equal(t, "Bearer personal-token", captured.Auth)
}

func TestStatusUsesSessionScope(t *testing.T) {
	c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":true,"data":{"status":"connected"}}`)
	})

	resp, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "connected", resp.Data.Status)
	assert.Equal(t, "Bearer session-key", captured.Auth)
}

func TestMissingCredentialFailsBeforeIO(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL)) // no credentials at all
	_, err := c.SendText(context.Background(), "123", "hi")
	require.Error(t, err)
	_, err = c.ListSessions(context.Background())
	require.Error(t, err)
	assert.False(t, called)
}

func TestRateLimitReflection(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Limit", "100")
		w.Header().Set("X-RateLimit-Remaining", "99")
		w.Header().Set("X-RateLimit-Reset", "1767225600")
		writeJSON(w, 200, `{"success":true,"data":{"msgId":"X","status":"sent"}}`)
	})

	resp, err := c.SendText(context.Background(), "123", "hi")
	require.NoError(t, err)
	require.NotNil(t, resp.RateLimit)
	assert.Equal(t, 100, resp.RateLimit.Limit)
	assert.Equal(t, 99, resp.RateLimit.Remaining)
	assert.Equal(t, int64(1767225600), resp.RateLimit.Reset)
}

func TestRateLimitNilWithoutHeaders(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":true,"data":{"msgId":"X"}}`)
	})

	resp, err := c.SendText(context.Background(), "123", "hi")
	require.NoError(t, err)
	assert.Nil(t, resp.RateLimit)
}

func TestRetryOn429HonorsRetryAfter(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			writeJSON(w, 429, `{"success":false,"message":"rate limit exceeded"}`)
			return
		}
		writeJSON(w, 200, `{"success":true,"data":{"msgId":"RETRIED","status":"sent"}}`)
	}, WithRetryPolicy(RetryPolicy{Enabled: true, MaxRetries: 2}))

	start := time.Now()
	resp, err := c.SendText(context.Background(), "123", "hi")
	require.NoError(t, err)

	assert.Equal(t, "RETRIED", resp.Data.MessageID)
	assert.Equal(t, int32(2), calls.Load())
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestRetryDisabledSurfaces429(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "30")
		w.Header().Set("X-RateLimit-Limit", "100")
		w.Header().Set("X-RateLimit-Remaining", "0")
		writeJSON(w, 429, `{"success":false,"message":"rate limit exceeded"}`)
	})

	_, err := c.SendText(context.Background(), "123", "hi")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsRateLimited())
	assert.Equal(t, "rate limit exceeded", apiErr.Message)
	assert.Equal(t, 30, apiErr.RetryAfter)
	require.NotNil(t, apiErr.RateLimit)
	assert.Equal(t, 0, apiErr.RateLimit.Remaining)
}

func TestRetryBudgetExhausted(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0")
		writeJSON(w, 429, `{"success":false,"message":"still throttled"}`)
	}, WithRetryPolicy(RetryPolicy{Enabled: true, MaxRetries: 1}))

	// Retry-After of 0 falls back to the default wait; keep the budget at one
	// retry so the test stays fast.
	_, err := c.SendText(context.Background(), "123", "hi")
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsRateLimited())
}

func TestValidationErrorFields(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 422, `{"success":false,"message":"validation failed","errors":{"to":["The to field is required."]}}`)
	})

	_, err := c.SendMessage(context.Background(), MessagePayload{To: "bad", Text: "x"})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "validation failed", apiErr.Message)
	assert.Equal(t, []string{"The to field is required."}, apiErr.Errors["to"])
}

func TestUnauthorizedError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 401, `{"success":false,"message":"Unauthenticated."}`)
	})

	_, err := c.Status(context.Background())
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "Unauthenticated.", apiErr.Message)
}

func TestNonEnvelopeBodyDecodesBare(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"status":"connected"}`)
	})

	resp, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "connected", resp.Data.Status)
}

func TestContextCancellation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":true,"data":{}}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Status(ctx)
	require.Error(t, err)

	var apiErr *api.Error
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
}

func TestSessionCRUDPaths(t *testing.T) {
	c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":true,"data":{"id":3,"name":"renamed"}}`)
	})

	enabled := true
	_, err := c.UpdateSession(context.Background(), 3, SessionParams{Name: "renamed", WebhookEnabled: &enabled})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, captured.Method)
	assert.Equal(t, "/whatsapp-sessions/3", captured.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(captured.Body, &body))
	assert.Equal(t, "renamed", body["name"])
	assert.Equal(t, true, body["webhook_enabled"])
	assert.NotContains(t, body, "account_protection", "unset pointer fields must be omitted")

	_, err = c.DeleteSession(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, captured.Method)
	assert.Equal(t, "/whatsapp-sessions/3", captured.Path)
}

func TestContactAndGroupPathsEscapeJIDs(t *testing.T) {
	c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":true,"data":{}}`)
	})

	_, err := c.GetContact(context.Background(), "123456789@s.whatsapp.net")
	require.NoError(t, err)
	assert.Equal(t, "/contacts/123456789@s.whatsapp.net", captured.Path)
	assert.Equal(t, "Bearer session-key", captured.Auth)

	_, err = c.GetGroupMetadata(context.Background(), "1203630@g.us")
	require.NoError(t, err)
	assert.Equal(t, "/groups/1203630@g.us/metadata", captured.Path)
}

func TestWebhookHandlerFromClientConfig(t *testing.T) {
	c := New(WithAPIKey("k"), WithWebhookSecret("hook-secret"))
	h := c.WebhookHandler()
	require.NotNil(t, h)
	assert.Equal(t, "hook-secret", c.WebhookSecret())
}
