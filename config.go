package slacklog

// Config holds transport configuration.
// Embed this in your app config for env parsing with caarlos0/env.
// Exactly one transport variant is selected: the webhook when WebhookURL is
// set, otherwise the API client from Token and Channel.
type Config struct {
	WebhookURL string `env:"SLACK_WEBHOOK_URL"`
	Token      string `env:"SLACK_TOKEN"`
	Channel    string `env:"SLACK_CHANNEL"`
}

// NewFromConfig builds the transport variant selected by cfg and wraps it
// in a handler. Returns ErrMissingTransport when no variant is configured,
// or the variant's own configuration error when it is incomplete.
func NewFromConfig(cfg Config, opts ...Option) (*Handler, error) {
	transport, err := cfg.transport()
	if err != nil {
		return nil, err
	}
	return NewHandler(transport, opts...), nil
}

func (cfg Config) transport() (Transport, error) {
	switch {
	case cfg.WebhookURL != "":
		return NewWebhookTransport(cfg.WebhookURL)
	case cfg.Token != "" || cfg.Channel != "":
		return NewAPITransport(cfg.Token, cfg.Channel)
	default:
		return nil, ErrMissingTransport
	}
}
