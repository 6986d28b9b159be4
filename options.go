package slacklog

import "log/slog"

// Option configures the handler.
type Option func(*handlerOptions)

// WithLevel sets the minimum level the handler forwards.
// Defaults to slog.LevelError.
func WithLevel(level slog.Leveler) Option {
	return func(o *handlerOptions) {
		if level != nil {
			o.level = level
		}
	}
}

// WithStackTrace controls whether a trace attachment accompanies the
// message. Defaults to true.
func WithStackTrace(enabled bool) Option {
	return func(o *handlerOptions) {
		o.stackTrace = enabled
	}
}

// WithUsername sets the sender name shown in the channel.
// Defaults to "Logging Alerts". Webhook endpoints may ignore it.
func WithUsername(username string) Option {
	return func(o *handlerOptions) {
		if username != "" {
			o.username = username
		}
	}
}

// WithIconURL sets the sender icon image. Takes precedence over an emoji
// icon and suppresses the default emoji.
func WithIconURL(url string) Option {
	return func(o *handlerOptions) {
		o.iconURL = url
	}
}

// WithIconEmoji sets the sender icon emoji, e.g. ":rotating_light:".
// Defaults to DefaultEmoji when neither icon option is given.
func WithIconEmoji(emoji string) Option {
	return func(o *handlerOptions) {
		o.iconEmoji = emoji
	}
}

// WithFailSilent discards delivery errors instead of returning them from
// Handle. The forwarded alert is lost, but a Slack outage can never surface
// inside the host application's logging path. Defaults to false.
func WithFailSilent(enabled bool) Option {
	return func(o *handlerOptions) {
		o.failSilent = enabled
	}
}

// WithSuppressDelivery short-circuits sending while still rendering the
// message: a dry-run switch for local development and tests.
// Defaults to false.
func WithSuppressDelivery(enabled bool) Option {
	return func(o *handlerOptions) {
		o.suppressDelivery = enabled
	}
}

// WithFormatter replaces the default message formatter. Custom formatters
// receive attrs with the error attr already withheld, so the no-trace
// invariant holds regardless of implementation.
func WithFormatter(f Formatter) Option {
	return func(o *handlerOptions) {
		if f != nil {
			o.formatter = f
		}
	}
}

// WithTimeFormat sets the timestamp layout used by the default formatter.
// Ignored when WithFormatter is given. Defaults to DefaultTimeFormat.
func WithTimeFormat(layout string) Option {
	return func(o *handlerOptions) {
		if layout != "" {
			o.timeFormat = layout
		}
	}
}

// WithMessageLimit caps the rendered message length in runes.
// Non-positive disables the cap. Defaults to unlimited.
func WithMessageLimit(limit int) Option {
	return func(o *handlerOptions) {
		o.messageLimit = limit
	}
}

// WithTraceLimit caps the trace text length in runes before fencing.
// Non-positive disables the cap. Defaults to 8000, under Slack's attachment
// text limit.
func WithTraceLimit(limit int) Option {
	return func(o *handlerOptions) {
		o.traceLimit = limit
	}
}

// WithErrorKeys sets the attribute keys inspected for an error value to
// render as the trace attachment. Defaults to "error" and "err".
func WithErrorKeys(keys ...string) Option {
	return func(o *handlerOptions) {
		if len(keys) > 0 {
			o.errorKeys = keys
		}
	}
}
