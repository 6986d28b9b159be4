package slacklog

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Formatter renders a record into the primary message text. The handler
// passes the logger component (from the "logger" attr, if any) and the
// remaining attributes with group-qualified keys. The record's error attr
// is withheld by the handler, so the rendered text can never leak a stack
// trace; that belongs in the attachment.
type Formatter func(r slog.Record, logger string, attrs []slog.Attr) string

// DefaultTimeFormat is the timestamp layout used by the default formatter.
const DefaultTimeFormat = time.RFC3339

// DefaultFormatter renders "LEVEL:    <time> (logger) message key=value".
// The level prefix is padded to a fixed width so messages align in the
// channel. Zero-time records omit the timestamp.
func DefaultFormatter(timeFormat string) Formatter {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	return func(r slog.Record, logger string, attrs []slog.Attr) string {
		var b strings.Builder
		fmt.Fprintf(&b, "%-9s", levelName(r.Level)+":")
		if !r.Time.IsZero() {
			b.WriteByte(' ')
			b.WriteString(r.Time.Format(timeFormat))
		}
		if logger != "" {
			fmt.Fprintf(&b, " (%s)", logger)
		}
		b.WriteByte(' ')
		b.WriteString(r.Message)
		for _, a := range attrs {
			fmt.Fprintf(&b, " %s=%s", a.Key, a.Value)
		}
		return b.String()
	}
}

// truncate caps s at limit runes, marking the cut. Non-positive limits
// disable truncation.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
