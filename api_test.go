package slacklog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAPITransport_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewAPITransport("", "#alerts")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = NewAPITransport("xoxb-token", "")
	require.ErrorIs(t, err, ErrMissingChannel)

	transport, err := NewAPITransport("xoxb-token", "#alerts")
	require.NoError(t, err)
	require.NotNil(t, transport)
}

// slackAPIServer fakes chat.postMessage, capturing the posted form.
func slackAPIServer(t *testing.T, response string, form *url.Values) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err == nil && form != nil {
			*form = r.PostForm
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
}

func TestAPITransport_Send(t *testing.T) {
	t.Parallel()

	var form url.Values
	srv := slackAPIServer(t, `{"ok":true,"channel":"C123","ts":"1"}`, &form)
	defer srv.Close()

	transport, err := NewAPITransport("xoxb-token", "#alerts",
		WithAPIBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	err = transport.Send(context.Background(), Message{
		Text:      "ERROR: disk full",
		Username:  "Logging Alerts",
		IconEmoji: DefaultEmoji,
		Attachment: &Attachment{
			Fallback: "ERROR: disk full",
			Color:    ErrorColor,
			Text:     "```trace```",
		},
	})

	require.NoError(t, err)
	require.Equal(t, "#alerts", form.Get("channel"))
	require.Equal(t, "ERROR: disk full", form.Get("text"))
	require.Equal(t, "Logging Alerts", form.Get("username"))
	require.Equal(t, DefaultEmoji, form.Get("icon_emoji"))
	require.Contains(t, form.Get("attachments"), ErrorColor)
}

func TestAPITransport_Send_AuthError(t *testing.T) {
	t.Parallel()

	srv := slackAPIServer(t, `{"ok":false,"error":"invalid_auth"}`, nil)
	defer srv.Close()

	transport, err := NewAPITransport("xoxb-bad", "#alerts",
		WithAPIBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	err = transport.Send(context.Background(), Message{Text: "x"})
	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, ErrAuthFailed)
}

func TestAPITransport_Send_ChannelNotFound(t *testing.T) {
	t.Parallel()

	srv := slackAPIServer(t, `{"ok":false,"error":"channel_not_found"}`, nil)
	defer srv.Close()

	transport, err := NewAPITransport("xoxb-token", "#missing",
		WithAPIBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	err = transport.Send(context.Background(), Message{Text: "x"})
	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestAPITransport_Send_IconURLWinsOverEmoji(t *testing.T) {
	t.Parallel()

	var form url.Values
	srv := slackAPIServer(t, `{"ok":true}`, &form)
	defer srv.Close()

	transport, err := NewAPITransport("xoxb-token", "#alerts",
		WithAPIBaseURL(srv.URL+"/"))
	require.NoError(t, err)

	err = transport.Send(context.Background(), Message{
		Text:      "x",
		IconURL:   "https://example.com/icon.png",
		IconEmoji: ":boom:",
	})

	require.NoError(t, err)
	require.Equal(t, "https://example.com/icon.png", form.Get("icon_url"))
	require.Empty(t, form.Get("icon_emoji"))
}
