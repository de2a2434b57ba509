package channel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSender_Send(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"hi"}}`))
	}))
	defer server.Close()

	sender, err := NewTelegramSender("123:abc", testLogger(), bot.WithServerURL(server.URL))
	require.NoError(t, err)

	err = sender.SendTelegram(context.Background(), 42, "Closest known wildfire")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "/sendMessage"), path)
}

func TestTelegramSender_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer server.Close()

	sender, err := NewTelegramSender("123:abc", testLogger(), bot.WithServerURL(server.URL))
	require.NoError(t, err)

	err = sender.SendTelegram(context.Background(), 42, "text")

	require.Error(t, err)
	assert.ErrorContains(t, err, "chat_id 42")
}
