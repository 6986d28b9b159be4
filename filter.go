package slacklog

import (
	"context"
	"log/slog"
)

// NotifyKey is the attribute key that marks a record as explicitly flagged
// for forwarding:
//
//	logger.Info("deploy finished", slacklog.Notify())
const NotifyKey = "notify_slack"

// Notify returns the attribute that flags a record for forwarding.
func Notify() slog.Attr {
	return slog.Bool(NotifyKey, true)
}

// Eligible reports whether a record carries the notify flag. Absent flag or
// a false value means not eligible.
func Eligible(r slog.Record) bool {
	eligible := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == NotifyKey && a.Value.Kind() == slog.KindBool && a.Value.Bool() {
			eligible = true
			return false
		}
		return true
	})
	return eligible
}

// FilterHandler forwards only explicitly flagged records to the wrapped
// handler. Compose it around a Handler to get "forward only tagged records"
// semantics instead of (or on top of) level-threshold filtering:
//
//	h := slacklog.NewFilterHandler(slackHandler)
type FilterHandler struct {
	next   slog.Handler
	notify bool // set when the flag arrived via WithAttrs
}

// NewFilterHandler wraps next with notify-flag filtering.
func NewFilterHandler(next slog.Handler) *FilterHandler {
	return &FilterHandler{next: next}
}

func (h *FilterHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *FilterHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.notify && !Eligible(r) {
		return nil
	}
	return h.next.Handle(ctx, r)
}

func (h *FilterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	notify := h.notify
	for _, a := range attrs {
		if a.Key == NotifyKey && a.Value.Kind() == slog.KindBool && a.Value.Bool() {
			notify = true
		}
	}
	return &FilterHandler{next: h.next.WithAttrs(attrs), notify: notify}
}

func (h *FilterHandler) WithGroup(name string) slog.Handler {
	return &FilterHandler{next: h.next.WithGroup(name), notify: h.notify}
}
