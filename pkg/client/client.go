// Package client implements the outbound WaSender REST API: message sending,
// session lifecycle, contact and group operations. Every call returns the
// decoded payload together with the rate-limit snapshot reflected from the
// response headers; failures surface as *api.Error.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/AroraShreshth/wasender/pkg/api"
)

// DefaultBaseURL is the hosted WaSender API endpoint.
const DefaultBaseURL = "https://www.wasenderapi.com/api"

// defaultRetryWait applies when a 429 response carries no Retry-After hint.
const defaultRetryWait = 2 * time.Second

// RetryPolicy bounds the retry loop for rate-limited calls. Only HTTP 429
// triggers a retry; every other failure is surfaced immediately.
type RetryPolicy struct {
	Enabled    bool
	MaxRetries int
}

// tokenScope selects which bearer token authenticates a call. Per-session
// operations (sending, contacts, groups) use the session API key; session
// lifecycle management uses the account-scoped personal access token.
type tokenScope int

const (
	scopeSession tokenScope = iota
	scopeAccount
)

// Client talks to the WaSender REST API. It is stateless between calls and
// safe for concurrent use.
type Client struct {
	rest          *resty.Client
	apiKey        string
	personalToken string
	webhookSecret string
	retry         RetryPolicy
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, e.g. for a self-hosted gateway.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.rest.SetBaseURL(url) }
}

// WithAPIKey sets the session-scoped key used for messaging, contact and
// group operations.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithPersonalToken sets the account-scoped token used for session
// lifecycle management.
func WithPersonalToken(token string) Option {
	return func(c *Client) { c.personalToken = token }
}

// WithWebhookSecret records the shared webhook secret so WebhookHandler can
// be built from the same configuration object.
func WithWebhookSecret(secret string) Option {
	return func(c *Client) { c.webhookSecret = secret }
}

// WithRetryPolicy enables the bounded retry-on-429 loop.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retry = p }
}

// WithHTTPClient swaps the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.rest = resty.NewWithClient(hc).SetBaseURL(c.rest.BaseURL) }
}

// New builds a Client. With no options it points at the hosted API with
// retries disabled and no credentials; calls requiring a missing credential
// fail before any I/O.
func New(opts ...Option) *Client {
	c := &Client{
		rest: resty.New().SetBaseURL(DefaultBaseURL),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rest.SetHeader("Accept", "application/json")
	return c
}

// WebhookSecret returns the configured webhook secret, empty when unset.
func (c *Client) WebhookSecret() string {
	return c.webhookSecret
}

// Response pairs a decoded payload with the rate-limit counters the server
// reported alongside it. RateLimit is nil when the response carried no
// rate-limit headers.
type Response[T any] struct {
	Data      T
	RateLimit *api.RateLimitInfo
}

// wireEnvelope is the server's uniform response wrapper.
type wireEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    json.RawMessage     `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (c *Client) token(scope tokenScope) (string, error) {
	switch scope {
	case scopeAccount:
		if c.personalToken == "" {
			return "", api.NewError("personal access token not configured", 0)
		}
		return c.personalToken, nil
	default:
		if c.apiKey == "" {
			return "", api.NewError("api key not configured", 0)
		}
		return c.apiKey, nil
	}
}

// do executes one authenticated call, retrying on 429 when the policy allows
// it. The decoded data field lands in out when out is non-nil.
func (c *Client) do(ctx context.Context, scope tokenScope, method, path string, body, out any) (*api.RateLimitInfo, error) {
	token, err := c.token(scope)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if c.retry.Enabled && c.retry.MaxRetries > 0 {
		attempts += c.retry.MaxRetries
	}

	var rateLimit *api.RateLimitInfo
	for attempt := 0; attempt < attempts; attempt++ {
		req := c.rest.R().
			SetContext(ctx).
			SetAuthToken(token)
		if body != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(body)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			return nil, &api.Error{Message: fmt.Sprintf("request failed: %v", err)}
		}

		rateLimit = api.ParseRateLimit(resp.Header())

		if resp.StatusCode() == http.StatusTooManyRequests && attempt+1 < attempts {
			wait := time.Duration(api.ParseRetryAfter(resp.Header())) * time.Second
			if wait <= 0 {
				wait = defaultRetryWait
			}
			select {
			case <-ctx.Done():
				return rateLimit, &api.Error{Message: ctx.Err().Error()}
			case <-time.After(wait):
			}
			continue
		}

		if resp.IsError() {
			return rateLimit, decodeAPIError(resp, rateLimit)
		}

		if out != nil {
			if err := decodeData(resp.Body(), out); err != nil {
				return rateLimit, &api.Error{Message: err.Error(), StatusCode: resp.StatusCode()}
			}
		}
		return rateLimit, nil
	}

	// Unreachable: the loop always returns on its final attempt.
	return rateLimit, &api.Error{Message: "retry loop exhausted"}
}

// decodeData unwraps the {success, data} envelope, falling back to the bare
// body for endpoints that return the payload directly.
func decodeData(body []byte, out any) error {
	var env wireEnvelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(body, out)
}

// decodeAPIError shapes a non-2xx response into *api.Error.
func decodeAPIError(resp *resty.Response, rateLimit *api.RateLimitInfo) *api.Error {
	apiErr := &api.Error{
		Message:    http.StatusText(resp.StatusCode()),
		StatusCode: resp.StatusCode(),
		RetryAfter: api.ParseRetryAfter(resp.Header()),
		RateLimit:  rateLimit,
	}

	var env wireEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil {
		if env.Message != "" {
			apiErr.Message = env.Message
		}
		if len(env.Errors) > 0 {
			apiErr.Errors = env.Errors
		}
	}
	return apiErr
}
