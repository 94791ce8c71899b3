package client

import (
	"context"
	"net/http"

	"github.com/AroraShreshth/wasender/pkg/api"
	"github.com/AroraShreshth/wasender/pkg/events"
)

// MessagePayload is the discriminated send payload. Exactly one content
// field should be set; To is always required. The server infers the message
// kind from which field is present.
type MessagePayload struct {
	To   string `json:"to"`
	Text string `json:"text,omitempty"`

	ImageURL    string `json:"imageUrl,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
	DocumentURL string `json:"documentUrl,omitempty"`
	AudioURL    string `json:"audioUrl,omitempty"`
	StickerURL  string `json:"stickerUrl,omitempty"`
	FileName    string `json:"fileName,omitempty"`

	Contact  *ContactCard `json:"contact,omitempty"`
	Location *LocationPin `json:"location,omitempty"`
}

// ContactCard is the contact-card message content.
type ContactCard struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// LocationPin is the location message content.
type LocationPin struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// SendResult is the server's acknowledgement of an accepted message.
type SendResult struct {
	MessageID string             `json:"msgId,omitempty"`
	Status    string             `json:"status,omitempty"`
	Key       *events.MessageKey `json:"key,omitempty"`
}

// SendMessage submits one message with an explicit payload shape. Session
// scope.
func (c *Client) SendMessage(ctx context.Context, payload MessagePayload) (*Response[SendResult], error) {
	if payload.To == "" {
		return nil, api.NewError("message recipient is required", 0)
	}

	var result SendResult
	rl, err := c.do(ctx, scopeSession, http.MethodPost, "/send-message", payload, &result)
	if err != nil {
		return nil, err
	}
	return &Response[SendResult]{Data: result, RateLimit: rl}, nil
}

// SendText sends a plain text message.
func (c *Client) SendText(ctx context.Context, to, text string) (*Response[SendResult], error) {
	return c.SendMessage(ctx, MessagePayload{To: to, Text: text})
}

// SendImage sends an image by URL with an optional caption.
func (c *Client) SendImage(ctx context.Context, to, imageURL, caption string) (*Response[SendResult], error) {
	return c.SendMessage(ctx, MessagePayload{To: to, ImageURL: imageURL, Text: caption})
}

// SendVideo sends a video by URL with an optional caption.
func (c *Client) SendVideo(ctx context.Context, to, videoURL, caption string) (*Response[SendResult], error) {
	return c.SendMessage(ctx, MessagePayload{To: to, VideoURL: videoURL, Text: caption})
}

// SendDocument sends a document by URL. fileName sets the name shown to the
// recipient.
func (c *Client) SendDocument(ctx context.Context, to, documentURL, fileName string) (*Response[SendResult], error) {
	return c.SendMessage(ctx, MessagePayload{To: to, DocumentURL: documentURL, FileName: fileName})
}

// SendAudio sends an audio clip by URL.
func (c *Client) SendAudio(ctx context.Context, to, audioURL string) (*Response[SendResult], error) {
	return c.SendMessage(ctx, MessagePayload{To: to, AudioURL: audioURL})
}

// SendSticker sends a sticker by URL.
func (c *Client) SendSticker(ctx context.Context, to, stickerURL string) (*Response[SendResult], error) {
	return c.SendMessage(ctx, MessagePayload{To: to, StickerURL: stickerURL})
}

// SendContactCard shares a contact card.
func (c *Client) SendContactCard(ctx context.Context, to string, card ContactCard) (*Response[SendResult], error) {
	return c.SendMessage(ctx, MessagePayload{To: to, Contact: &card})
}

// SendLocation shares a location pin.
func (c *Client) SendLocation(ctx context.Context, to string, pin LocationPin) (*Response[SendResult], error) {
	return c.SendMessage(ctx, MessagePayload{To: to, Location: &pin})
}
