package client

import (
	"context"
	"fmt"
	"net/http"
)

// Session describes one remote WhatsApp connection. Its connect/disconnect/
// QR-scan state machine is owned entirely by the remote server; this client
// only reflects it.
type Session struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	PhoneNumber       string   `json:"phone_number"`
	Status            string   `json:"status"` // "connected", "disconnected", "need_scan"
	APIKey            string   `json:"api_key,omitempty"`
	WebhookURL        string   `json:"webhook_url,omitempty"`
	WebhookEnabled    bool     `json:"webhook_enabled,omitempty"`
	WebhookEvents     []string `json:"webhook_events,omitempty"`
	AccountProtection bool     `json:"account_protection,omitempty"`
	LogMessages       bool     `json:"log_messages,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
	UpdatedAt         string   `json:"updated_at,omitempty"`
}

// SessionParams is the create/update request body. Zero-valued optional
// fields are omitted so partial updates leave server-side values untouched.
type SessionParams struct {
	Name              string   `json:"name,omitempty"`
	PhoneNumber       string   `json:"phone_number,omitempty"`
	WebhookURL        string   `json:"webhook_url,omitempty"`
	WebhookEnabled    *bool    `json:"webhook_enabled,omitempty"`
	WebhookEvents     []string `json:"webhook_events,omitempty"`
	AccountProtection *bool    `json:"account_protection,omitempty"`
	LogMessages       *bool    `json:"log_messages,omitempty"`
}

// ConnectResult reports the outcome of a connect request. QRCode is set when
// the session still needs pairing.
type ConnectResult struct {
	Status string `json:"status"`
	QRCode string `json:"qrCode,omitempty"`
}

// QRCode is a pairing code for a session awaiting its first scan.
type QRCode struct {
	QRCode string `json:"qrCode"`
}

// SessionStatus is the connection state as reported for the session-scoped
// API key.
type SessionStatus struct {
	Status string `json:"status"`
}

// All session lifecycle endpoints use the account-scoped personal token.

// ListSessions returns every session on the account.
func (c *Client) ListSessions(ctx context.Context) (*Response[[]Session], error) {
	var sessions []Session
	rl, err := c.do(ctx, scopeAccount, http.MethodGet, "/whatsapp-sessions", nil, &sessions)
	if err != nil {
		return nil, err
	}
	return &Response[[]Session]{Data: sessions, RateLimit: rl}, nil
}

// CreateSession provisions a new session.
func (c *Client) CreateSession(ctx context.Context, params SessionParams) (*Response[Session], error) {
	var session Session
	rl, err := c.do(ctx, scopeAccount, http.MethodPost, "/whatsapp-sessions", params, &session)
	if err != nil {
		return nil, err
	}
	return &Response[Session]{Data: session, RateLimit: rl}, nil
}

// GetSession fetches one session by id.
func (c *Client) GetSession(ctx context.Context, id int) (*Response[Session], error) {
	var session Session
	rl, err := c.do(ctx, scopeAccount, http.MethodGet, fmt.Sprintf("/whatsapp-sessions/%d", id), nil, &session)
	if err != nil {
		return nil, err
	}
	return &Response[Session]{Data: session, RateLimit: rl}, nil
}

// UpdateSession applies a partial update to a session.
func (c *Client) UpdateSession(ctx context.Context, id int, params SessionParams) (*Response[Session], error) {
	var session Session
	rl, err := c.do(ctx, scopeAccount, http.MethodPut, fmt.Sprintf("/whatsapp-sessions/%d", id), params, &session)
	if err != nil {
		return nil, err
	}
	return &Response[Session]{Data: session, RateLimit: rl}, nil
}

// DeleteSession removes a session permanently.
func (c *Client) DeleteSession(ctx context.Context, id int) (*Response[struct{}], error) {
	rl, err := c.do(ctx, scopeAccount, http.MethodDelete, fmt.Sprintf("/whatsapp-sessions/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &Response[struct{}]{RateLimit: rl}, nil
}

// ConnectSession asks the server to bring the session online. When the
// session was never paired the result carries a QR code to scan.
func (c *Client) ConnectSession(ctx context.Context, id int) (*Response[ConnectResult], error) {
	var result ConnectResult
	rl, err := c.do(ctx, scopeAccount, http.MethodPost, fmt.Sprintf("/whatsapp-sessions/%d/connect", id), nil, &result)
	if err != nil {
		return nil, err
	}
	return &Response[ConnectResult]{Data: result, RateLimit: rl}, nil
}

// GetSessionQRCode fetches the current pairing code for a session in the
// need_scan state.
func (c *Client) GetSessionQRCode(ctx context.Context, id int) (*Response[QRCode], error) {
	var code QRCode
	rl, err := c.do(ctx, scopeAccount, http.MethodGet, fmt.Sprintf("/whatsapp-sessions/%d/qrcode", id), nil, &code)
	if err != nil {
		return nil, err
	}
	return &Response[QRCode]{Data: code, RateLimit: rl}, nil
}

// DisconnectSession takes the session offline without unpairing it.
func (c *Client) DisconnectSession(ctx context.Context, id int) (*Response[Session], error) {
	var session Session
	rl, err := c.do(ctx, scopeAccount, http.MethodPost, fmt.Sprintf("/whatsapp-sessions/%d/disconnect", id), nil, &session)
	if err != nil {
		return nil, err
	}
	return &Response[Session]{Data: session, RateLimit: rl}, nil
}

// Status reports the connection state for the session the configured API
// key belongs to. Session scope.
func (c *Client) Status(ctx context.Context) (*Response[SessionStatus], error) {
	var status SessionStatus
	rl, err := c.do(ctx, scopeSession, http.MethodGet, "/status", nil, &status)
	if err != nil {
		return nil, err
	}
	return &Response[SessionStatus]{Data: status, RateLimit: rl}, nil
}
