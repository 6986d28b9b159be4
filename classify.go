package slacklog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/slack-go/slack"
)

// Slack API error codes that indicate rejected credentials.
var authErrorCodes = []string{
	"invalid_auth",
	"not_authed",
	"token_revoked",
	"token_expired",
	"account_inactive",
	"missing_scope",
	"not_allowed_token_type",
}

// Slack API error codes that indicate a malformed or unacceptable payload.
var payloadErrorCodes = []string{
	"invalid_payload",
	"invalid_arguments",
	"invalid_blocks",
	"msg_too_long",
	"no_text",
	"channel_not_found",
	"user_not_found",
}

// classify wraps a transport error with ErrSendFailed and a kind sentinel.
// Unrecognized causes wrap ErrSendFailed alone.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var rateLimited *slack.RateLimitedError
	if errors.As(err, &rateLimited) {
		return errors.Join(ErrSendFailed, ErrRateLimited, err)
	}

	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.Join(ErrSendFailed, ErrAuthFailed, err)
		case http.StatusTooManyRequests:
			return errors.Join(ErrSendFailed, ErrRateLimited, err)
		case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
			return errors.Join(ErrSendFailed, ErrInvalidPayload, err)
		}
		return errors.Join(ErrSendFailed, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return errors.Join(ErrSendFailed, ErrNetworkFailure, err)
	}

	msg := err.Error()
	for _, code := range authErrorCodes {
		if strings.Contains(msg, code) {
			return errors.Join(ErrSendFailed, ErrAuthFailed, err)
		}
	}
	for _, code := range payloadErrorCodes {
		if strings.Contains(msg, code) {
			return errors.Join(ErrSendFailed, ErrInvalidPayload, err)
		}
	}
	if strings.Contains(msg, "rate_limited") || strings.Contains(msg, "ratelimited") {
		return errors.Join(ErrSendFailed, ErrRateLimited, err)
	}

	return errors.Join(ErrSendFailed, err)
}
