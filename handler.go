package slacklog

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

const (
	// DefaultUsername is the sender name used when none is configured.
	DefaultUsername = "Logging Alerts"

	// DefaultEmoji is the sender icon used when neither an icon URL nor an
	// explicit emoji is configured.
	DefaultEmoji = ":heavy_exclamation_mark:"

	// loggerKey names the attribute rendered as the logger component.
	loggerKey = "logger"
)

// Handler is a slog.Handler that forwards records to Slack through a
// Transport. Each record is an independent best-effort send performed
// synchronously on the calling goroutine; the handler holds no mutable
// state across calls and is safe for concurrent use.
type Handler struct {
	transport Transport
	opts      handlerOptions
	attrs     []slog.Attr // group-qualified, accumulated via WithAttrs
	groups    []string
}

type handlerOptions struct {
	level            slog.Leveler
	stackTrace       bool
	username         string
	iconURL          string
	iconEmoji        string
	failSilent       bool
	suppressDelivery bool
	formatter        Formatter
	timeFormat       string
	messageLimit     int
	traceLimit       int
	errorKeys        []string
}

// NewHandler creates a handler delivering through t, which must be a
// constructed transport (see NewWebhookTransport, NewAPITransport or
// NewFromConfig, which validate their configuration up front).
func NewHandler(t Transport, opts ...Option) *Handler {
	o := handlerOptions{
		level:      slog.LevelError,
		stackTrace: true,
		username:   DefaultUsername,
		traceLimit: 8000,
		errorKeys:  []string{"error", "err"},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.formatter == nil {
		o.formatter = DefaultFormatter(o.timeFormat)
	}
	if o.iconEmoji == "" && o.iconURL == "" {
		o.iconEmoji = DefaultEmoji
	}
	return &Handler{transport: t, opts: o}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level.Level()
}

// Handle implements slog.Handler. It renders the message, optionally builds
// the trace attachment, and performs a single delivery attempt. With
// suppressed delivery the message is still rendered but never sent. Delivery
// errors are swallowed when fail-silent is set; otherwise they surface on
// slog's handler-error path.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	attrs, errVal, logger := h.collect(r)
	text := truncate(h.opts.formatter(r, logger, attrs), h.opts.messageLimit)

	if h.opts.suppressDelivery {
		return nil
	}
	if h.transport == nil {
		return ErrMissingTransport
	}

	msg := Message{
		Text:      text,
		Username:  h.opts.username,
		IconURL:   h.opts.iconURL,
		IconEmoji: h.opts.iconEmoji,
	}
	if h.opts.stackTrace {
		att := buildAttachment(r, errVal, text, h.opts.traceLimit)
		msg.Attachment = &att
	}

	if err := h.transport.Send(ctx, msg); err != nil {
		if h.opts.failSilent {
			return nil
		}
		return err
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		h2.attrs = append(h2.attrs, slog.Attr{Key: joinKey(prefix, a.Key), Value: a.Value})
	}
	return h2
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}

func (h *Handler) clone() *Handler {
	return &Handler{
		transport: h.transport,
		opts:      h.opts,
		attrs:     slices.Clip(h.attrs),
		groups:    slices.Clip(h.groups),
	}
}

// collect flattens handler and record attributes into a single qualified
// list, splitting out the first error-valued attr (routed to the attachment)
// and the logger component. The notify flag is routing metadata and is
// dropped from the rendered output.
func (h *Handler) collect(r slog.Record) (attrs []slog.Attr, errVal error, logger string) {
	for _, a := range h.attrs {
		h.visit(a, "", &attrs, &errVal, &logger)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		h.visit(a, prefix, &attrs, &errVal, &logger)
		return true
	})
	return attrs, errVal, logger
}

func (h *Handler) visit(a slog.Attr, prefix string, out *[]slog.Attr, errOut *error, loggerOut *string) {
	if a.Equal(slog.Attr{}) {
		return
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = joinKey(prefix, a.Key)
		}
		for _, g := range v.Group() {
			h.visit(g, p, out, errOut, loggerOut)
		}
		return
	}
	switch {
	case a.Key == NotifyKey:
		return
	case a.Key == loggerKey && v.Kind() == slog.KindString:
		*loggerOut = v.String()
		return
	case slices.Contains(h.opts.errorKeys, a.Key):
		if err, ok := v.Any().(error); ok {
			if *errOut == nil {
				*errOut = err
			}
			return
		}
	}
	*out = append(*out, slog.Attr{Key: joinKey(prefix, a.Key), Value: v})
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
