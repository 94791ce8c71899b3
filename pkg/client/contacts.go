package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ContactInfo is one entry of the session's contact book.
type ContactInfo struct {
	JID          string `json:"jid"`
	Name         string `json:"name,omitempty"`
	Notify       string `json:"notify,omitempty"`
	VerifiedName string `json:"verifiedName,omitempty"`
	ImgURL       string `json:"imgUrl,omitempty"`
	Status       string `json:"status,omitempty"`
	IsBusiness   bool   `json:"isBusiness,omitempty"`
	IsBlocked    bool   `json:"isBlocked,omitempty"`
}

// ProfilePicture is the public profile picture URL of a contact.
type ProfilePicture struct {
	ImgURL string `json:"imgUrl"`
}

// All contact endpoints use the session-scoped API key.

// ListContacts returns the session's contact book.
func (c *Client) ListContacts(ctx context.Context) (*Response[[]ContactInfo], error) {
	var contacts []ContactInfo
	rl, err := c.do(ctx, scopeSession, http.MethodGet, "/contacts", nil, &contacts)
	if err != nil {
		return nil, err
	}
	return &Response[[]ContactInfo]{Data: contacts, RateLimit: rl}, nil
}

// GetContact fetches one contact by jid or phone number.
func (c *Client) GetContact(ctx context.Context, jid string) (*Response[ContactInfo], error) {
	var contact ContactInfo
	rl, err := c.do(ctx, scopeSession, http.MethodGet, contactPath(jid, ""), nil, &contact)
	if err != nil {
		return nil, err
	}
	return &Response[ContactInfo]{Data: contact, RateLimit: rl}, nil
}

// GetContactProfilePicture fetches the contact's profile picture URL.
func (c *Client) GetContactProfilePicture(ctx context.Context, jid string) (*Response[ProfilePicture], error) {
	var picture ProfilePicture
	rl, err := c.do(ctx, scopeSession, http.MethodGet, contactPath(jid, "profile-picture"), nil, &picture)
	if err != nil {
		return nil, err
	}
	return &Response[ProfilePicture]{Data: picture, RateLimit: rl}, nil
}

// BlockContact blocks the contact for this session.
func (c *Client) BlockContact(ctx context.Context, jid string) (*Response[struct{}], error) {
	rl, err := c.do(ctx, scopeSession, http.MethodPost, contactPath(jid, "block"), nil, nil)
	if err != nil {
		return nil, err
	}
	return &Response[struct{}]{RateLimit: rl}, nil
}

// UnblockContact lifts a block.
func (c *Client) UnblockContact(ctx context.Context, jid string) (*Response[struct{}], error) {
	rl, err := c.do(ctx, scopeSession, http.MethodPost, contactPath(jid, "unblock"), nil, nil)
	if err != nil {
		return nil, err
	}
	return &Response[struct{}]{RateLimit: rl}, nil
}

func contactPath(jid, suffix string) string {
	path := fmt.Sprintf("/contacts/%s", url.PathEscape(jid))
	if suffix != "" {
		path += "/" + suffix
	}
	return path
}
