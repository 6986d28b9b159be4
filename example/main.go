package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrymomot/slacklog"
)

func main() {
	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	// Transport from environment: SLACK_WEBHOOK_URL, or SLACK_TOKEN with
	// SLACK_CHANNEL for the API variant.
	slackHandler, err := slacklog.NewFromConfig(slacklog.Config{
		WebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
		Token:      os.Getenv("SLACK_TOKEN"),
		Channel:    os.Getenv("SLACK_CHANNEL"),
	},
		slacklog.WithLevel(slog.LevelError),
		slacklog.WithUsername("Logging Alerts"),
		slacklog.WithFailSilent(true),
	)
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slacklog.NewMultiHandler(console, slackHandler))

	logger.Debug("Test DEBUG")
	logger.Info("Test INFO")
	logger.Warn("Test WARNING")
	logger.Error("Test ERROR")

	// Error with a captured cause: the message goes to the channel, the
	// trace lands in the attachment.
	cause := errors.New("no space left on device")
	logger.Error("disk full",
		slog.String("logger", "storage"),
		slog.Any("error", fmt.Errorf("flush segment: %w", cause)),
	)
}
