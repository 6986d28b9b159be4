package slacklog

import (
	"context"

	"github.com/slack-go/slack"
)

// APITransport delivers messages through the Slack Web API (chat.postMessage)
// using a bearer token. Unlike the webhook variant it can address a channel
// and override the sender identity per message.
type APITransport struct {
	client  *slack.Client
	channel string
}

// NewAPITransport creates an API transport posting to the given channel.
// Returns ErrMissingToken or ErrMissingChannel when either is empty; both
// are required before any send is attempted.
func NewAPITransport(token, channel string, opts ...TransportOption) (*APITransport, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	if channel == "" {
		return nil, ErrMissingChannel
	}

	cfg := newTransportConfig(opts)
	clientOpts := []slack.Option{slack.OptionHTTPClient(cfg.httpClient)}
	if cfg.apiBaseURL != "" {
		clientOpts = append(clientOpts, slack.OptionAPIURL(cfg.apiBaseURL))
	}

	return &APITransport{
		client:  slack.New(token, clientOpts...),
		channel: channel,
	}, nil
}

// Send implements Transport.
func (t *APITransport) Send(ctx context.Context, msg Message) error {
	opts := []slack.MsgOption{slack.MsgOptionText(msg.Text, false)}
	if msg.Username != "" {
		opts = append(opts, slack.MsgOptionUsername(msg.Username))
	}
	// Icon URL wins over emoji; the handler guarantees at most one is set
	// but transports constructed directly get the same precedence.
	switch {
	case msg.IconURL != "":
		opts = append(opts, slack.MsgOptionIconURL(msg.IconURL))
	case msg.IconEmoji != "":
		opts = append(opts, slack.MsgOptionIconEmoji(msg.IconEmoji))
	}
	if msg.Attachment != nil {
		opts = append(opts, slack.MsgOptionAttachments(toSlackAttachment(*msg.Attachment)))
	}

	if _, _, err := t.client.PostMessageContext(ctx, t.channel, opts...); err != nil {
		return classify(err)
	}
	return nil
}
