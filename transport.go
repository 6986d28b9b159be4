package slacklog

import (
	"context"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// Attachment is a transport-agnostic secondary message block. Fallback and
// Color are always set by the trace builder; Text carries the code-fenced
// stack trace and is empty for records without an error.
type Attachment struct {
	Fallback string
	Color    string
	Text     string
}

// Message is a fully-prepared chat message ready for delivery. Identity
// fields are resolved once at handler construction; the webhook transport
// ignores them since webhook identity is configured server-side.
type Message struct {
	Text       string
	Username   string
	IconURL    string
	IconEmoji  string
	Attachment *Attachment
}

// Transport defines the minimal interface that delivery variants implement.
// Implementations perform a single best-effort attempt per message: no
// retries, no queuing.
type Transport interface {
	// Send delivers a message. Returned errors wrap ErrSendFailed and a
	// kind sentinel where the cause is recognizable.
	Send(ctx context.Context, msg Message) error
}

// TransportOption configures a transport at construction.
type TransportOption func(*transportConfig)

type transportConfig struct {
	httpClient *http.Client
	apiBaseURL string
}

// WithHTTPClient sets a custom HTTP client, e.g. to bound request latency
// with a tighter timeout. Defaults to a client with a 10 second timeout.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(c *transportConfig) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithAPIBaseURL overrides the Slack API base URL on the API transport.
// Useful for testing against a local server. Must end with a slash.
func WithAPIBaseURL(url string) TransportOption {
	return func(c *transportConfig) {
		if url != "" {
			c.apiBaseURL = url
		}
	}
}

func newTransportConfig(opts []TransportOption) transportConfig {
	cfg := transportConfig{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func toSlackAttachment(att Attachment) slack.Attachment {
	return slack.Attachment{
		Fallback: att.Fallback,
		Color:    att.Color,
		Text:     att.Text,
	}
}
