package client

import "github.com/AroraShreshth/wasender/pkg/webhook"

// WebhookHandler builds a webhook entry point from this client's configured
// secret. Handling still fails with "not configured" when no secret was set,
// matching the standalone webhook.NewHandler behavior.
func (c *Client) WebhookHandler(opts ...webhook.Option) *webhook.Handler {
	return webhook.NewHandler(c.webhookSecret, opts...)
}
