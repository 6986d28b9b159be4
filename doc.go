// Package slacklog forwards log records from log/slog to Slack.
//
// The package provides a slog.Handler that renders each record into a plain
// message, attaches the stack trace of an error-valued attribute as a
// color-coded attachment, and delivers the result over one of two transport
// variants: a pre-authenticated incoming webhook or the Slack Web API with a
// bearer token. Delivery is a single synchronous best-effort attempt per
// record; batching, retries and rate limiting are left to the caller.
//
// # Quick Start
//
// Create a transport, wrap it in a handler, and register it alongside the
// console handler:
//
//	transport, err := slacklog.NewWebhookTransport(os.Getenv("SLACK_WEBHOOK_URL"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	slackHandler := slacklog.NewHandler(transport,
//	    slacklog.WithLevel(slog.LevelError),
//	    slacklog.WithUsername("Logging Alerts"),
//	)
//
//	console := slog.NewJSONHandler(os.Stdout, nil)
//	logger := slog.New(slacklog.NewMultiHandler(console, slackHandler))
//
//	logger.Error("disk full", slog.Any("error", err))
//
// # Transports
//
// The webhook variant posts text and attachments to a fixed URL; sender
// identity is whatever the webhook is configured with server-side. The API
// variant posts to a named channel and can override username and icon:
//
//	transport, err := slacklog.NewAPITransport(token, "#alerts")
//
// Both validate their configuration at construction and return a single
// best-effort delivery error per send, classified into ErrAuthFailed,
// ErrRateLimited, ErrNetworkFailure, ErrInvalidPayload or a bare
// ErrSendFailed, each wrapping the transport's own error.
//
// # Flagged Forwarding
//
// Instead of forwarding everything at or above a level, compose the handler
// with FilterHandler to forward only explicitly flagged records:
//
//	h := slacklog.NewFilterHandler(slackHandler)
//	logger := slog.New(slacklog.NewMultiHandler(console, h))
//
//	logger.Info("deploy finished", slacklog.Notify())
//
// # Failure Policy
//
// By default a delivery error is returned from Handle and surfaces on
// slog's handler-error path. With WithFailSilent the error is discarded:
// the alert is lost, but a Slack outage can never raise inside the host
// application's logging call. WithSuppressDelivery renders messages without
// sending anything, for dry runs and tests.
package slacklog
