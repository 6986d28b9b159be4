package slacklog

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// callerPC captures the caller's program counter the way slog.Logger does
// when it constructs a record.
func callerPC() uintptr {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	return pcs[0]
}

func TestBuildAttachment_WithError(t *testing.T) {
	t.Parallel()

	r := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	att := buildAttachment(r, errors.New("no space"), "fallback text", 0)

	require.Equal(t, "fallback text", att.Fallback)
	require.Equal(t, ErrorColor, att.Color)
	require.Equal(t, "```*errors.errorString: no space```", att.Text)
}

func TestBuildAttachment_WithoutError(t *testing.T) {
	t.Parallel()

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "start", 0)
	att := buildAttachment(r, nil, "start message", 0)

	require.Equal(t, "start message", att.Fallback)
	require.Equal(t, InfoColor, att.Color)
	require.Empty(t, att.Text)
}

func TestBuildAttachment_UnknownLevelUsesDefaultColor(t *testing.T) {
	t.Parallel()

	r := slog.NewRecord(time.Now(), slog.Level(2), "odd", 0)
	att := buildAttachment(r, nil, "odd", 0)

	require.Equal(t, DefaultColor, att.Color)
}

func TestRenderTrace_UnwrapChain(t *testing.T) {
	t.Parallel()

	cause := errors.New("no space")
	err := fmt.Errorf("flush segment: %w", cause)

	trace := renderTrace(err, 0)

	lines := strings.Split(trace, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "*fmt.wrapError: flush segment: no space", lines[0])
	require.Equal(t, "caused by: *errors.errorString: no space", lines[1])
}

func TestRenderTrace_SourceFrame(t *testing.T) {
	t.Parallel()

	r := slog.NewRecord(time.Now(), slog.LevelError, "boom", callerPC())

	trace := renderTrace(errors.New("x"), r.PC)
	require.Contains(t, trace, "\nat ")
	require.Contains(t, trace, "trace_test.go")
}

func TestBuildAttachment_TraceLimit(t *testing.T) {
	t.Parallel()

	r := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	att := buildAttachment(r, errors.New(strings.Repeat("x", 100)), "f", 30)

	inner := strings.TrimSuffix(strings.TrimPrefix(att.Text, traceFence), traceFence)
	require.Equal(t, 31, len([]rune(inner))) // 30 runes + truncation mark
	require.True(t, strings.HasPrefix(att.Text, traceFence))
	require.True(t, strings.HasSuffix(att.Text, traceFence))
}
