package slacklog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiHandler_FanOut(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	counting := &countingHandler{}

	logger := slog.New(NewMultiHandler(console, counting))
	logger.Info("hello", slog.String("k", "v"))

	require.Contains(t, buf.String(), "hello")
	require.Equal(t, 1, counting.count)
}

func TestMultiHandler_RespectsPerHandlerLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slack := NewHandler(&MockTransport{}, WithSuppressDelivery(true))

	logger := slog.New(NewMultiHandler(console, slack))

	// Below the Slack handler's default Error threshold: only the console
	// handler sees it, and Handle still succeeds.
	logger.Debug("local only")
	require.Contains(t, buf.String(), "local only")
}
