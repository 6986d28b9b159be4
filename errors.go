package slacklog

import "errors"

// Configuration errors, returned at construction time. They are never
// silenced: a handler with an unusable transport must fail fast.
var (
	// ErrMissingWebhookURL is returned when the webhook transport is
	// constructed without a URL.
	ErrMissingWebhookURL = errors.New("slacklog: webhook URL is required")

	// ErrMissingToken is returned when the API transport is constructed
	// without a bearer token.
	ErrMissingToken = errors.New("slacklog: API token is required")

	// ErrMissingChannel is returned when the API transport is constructed
	// without a destination channel.
	ErrMissingChannel = errors.New("slacklog: channel is required")

	// ErrMissingTransport is returned when no transport variant can be
	// selected from the configuration.
	ErrMissingTransport = errors.New("slacklog: no transport configured")
)

// Delivery errors, returned per send attempt. Every delivery failure wraps
// ErrSendFailed plus, when the cause is recognizable, one of the kind
// sentinels below. WithFailSilent discards all of them.
var (
	// ErrSendFailed indicates message delivery failed.
	ErrSendFailed = errors.New("slacklog: failed to send message")

	// ErrAuthFailed indicates Slack rejected the credentials.
	ErrAuthFailed = errors.New("slacklog: authentication rejected")

	// ErrRateLimited indicates Slack throttled the request.
	ErrRateLimited = errors.New("slacklog: rate limited")

	// ErrNetworkFailure indicates the request never completed.
	ErrNetworkFailure = errors.New("slacklog: network failure")

	// ErrInvalidPayload indicates Slack rejected the message payload.
	ErrInvalidPayload = errors.New("slacklog: invalid payload")
)
