package slacklog

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

const traceFence = "```"

// buildAttachment produces the attachment for a record. Fallback and color
// are always set so severity coding survives even for records without an
// error; the fenced trace text is added only when err is non-nil.
func buildAttachment(r slog.Record, err error, fallback string, traceLimit int) Attachment {
	att := Attachment{
		Fallback: fallback,
		Color:    ColorFor(r.Level),
	}
	if err != nil {
		att.Text = traceFence + truncate(renderTrace(err, r.PC), traceLimit) + traceFence
	}
	return att
}

// renderTrace formats an error as a multi-line block: the error's type and
// message, the unwrap chain, and the source location captured by the record.
func renderTrace(err error, pc uintptr) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%T: %v", err, err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(&b, "\ncaused by: %T: %v", cause, cause)
	}
	if pc != 0 {
		frames := runtime.CallersFrames([]uintptr{pc})
		if frame, _ := frames.Next(); frame.File != "" {
			fmt.Fprintf(&b, "\nat %s:%d (%s)", frame.File, frame.Line, frame.Function)
		}
	}
	return b.String()
}
