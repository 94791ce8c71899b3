package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/AroraShreshth/wasender/pkg/events"
)

// GroupSummary is one entry of the session's group list.
type GroupSummary struct {
	JID     string `json:"jid"`
	Subject string `json:"subject"`
	Size    int    `json:"size,omitempty"`
}

// ParticipantChange names the members affected by an add or remove request.
type ParticipantChange struct {
	Participants []string `json:"participants"`
}

// GroupSettings toggles group permissions. Nil fields are left unchanged.
type GroupSettings struct {
	Announce *bool `json:"announce,omitempty"` // only admins may send
	Restrict *bool `json:"restrict,omitempty"` // only admins may edit group info
}

// All group endpoints use the session-scoped API key.

// ListGroups returns every group the session participates in.
func (c *Client) ListGroups(ctx context.Context) (*Response[[]GroupSummary], error) {
	var groups []GroupSummary
	rl, err := c.do(ctx, scopeSession, http.MethodGet, "/groups", nil, &groups)
	if err != nil {
		return nil, err
	}
	return &Response[[]GroupSummary]{Data: groups, RateLimit: rl}, nil
}

// GetGroupMetadata fetches full metadata for one group.
func (c *Client) GetGroupMetadata(ctx context.Context, jid string) (*Response[events.GroupMetadata], error) {
	var meta events.GroupMetadata
	rl, err := c.do(ctx, scopeSession, http.MethodGet, groupPath(jid, "metadata"), nil, &meta)
	if err != nil {
		return nil, err
	}
	return &Response[events.GroupMetadata]{Data: meta, RateLimit: rl}, nil
}

// GetGroupParticipants lists the group's members.
func (c *Client) GetGroupParticipants(ctx context.Context, jid string) (*Response[[]events.GroupParticipant], error) {
	var participants []events.GroupParticipant
	rl, err := c.do(ctx, scopeSession, http.MethodGet, groupPath(jid, "participants"), nil, &participants)
	if err != nil {
		return nil, err
	}
	return &Response[[]events.GroupParticipant]{Data: participants, RateLimit: rl}, nil
}

// AddGroupParticipants invites members into the group.
func (c *Client) AddGroupParticipants(ctx context.Context, jid string, participants []string) (*Response[[]events.GroupParticipant], error) {
	return c.changeParticipants(ctx, jid, "participants/add", participants)
}

// RemoveGroupParticipants removes members from the group.
func (c *Client) RemoveGroupParticipants(ctx context.Context, jid string, participants []string) (*Response[[]events.GroupParticipant], error) {
	return c.changeParticipants(ctx, jid, "participants/remove", participants)
}

func (c *Client) changeParticipants(ctx context.Context, jid, action string, participants []string) (*Response[[]events.GroupParticipant], error) {
	var result []events.GroupParticipant
	body := ParticipantChange{Participants: participants}
	rl, err := c.do(ctx, scopeSession, http.MethodPost, groupPath(jid, action), body, &result)
	if err != nil {
		return nil, err
	}
	return &Response[[]events.GroupParticipant]{Data: result, RateLimit: rl}, nil
}

// UpdateGroupSettings changes group permissions.
func (c *Client) UpdateGroupSettings(ctx context.Context, jid string, settings GroupSettings) (*Response[events.GroupMetadata], error) {
	var meta events.GroupMetadata
	rl, err := c.do(ctx, scopeSession, http.MethodPut, groupPath(jid, "settings"), settings, &meta)
	if err != nil {
		return nil, err
	}
	return &Response[events.GroupMetadata]{Data: meta, RateLimit: rl}, nil
}

func groupPath(jid, suffix string) string {
	path := fmt.Sprintf("/groups/%s", url.PathEscape(jid))
	if suffix != "" {
		path += "/" + suffix
	}
	return path
}
