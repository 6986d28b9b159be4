package slacklog

import (
	"context"
	"net/http"

	"github.com/slack-go/slack"
)

// WebhookTransport delivers messages by POSTing to a pre-authenticated
// incoming-webhook URL. Username and icon are configured server-side on the
// webhook itself, so the transport sends only text and attachments.
type WebhookTransport struct {
	url    string
	client *http.Client
}

// NewWebhookTransport creates a webhook transport.
// Returns ErrMissingWebhookURL if url is empty.
func NewWebhookTransport(url string, opts ...TransportOption) (*WebhookTransport, error) {
	if url == "" {
		return nil, ErrMissingWebhookURL
	}
	cfg := newTransportConfig(opts)
	return &WebhookTransport{url: url, client: cfg.httpClient}, nil
}

// Send implements Transport.
func (t *WebhookTransport) Send(ctx context.Context, msg Message) error {
	payload := &slack.WebhookMessage{Text: msg.Text}
	if msg.Attachment != nil {
		payload.Attachments = []slack.Attachment{toSlackAttachment(*msg.Attachment)}
	}
	if err := slack.PostWebhookCustomHTTPContext(ctx, t.url, t.client, payload); err != nil {
		return classify(err)
	}
	return nil
}
