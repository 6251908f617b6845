package discord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
)

func TestWebhook_PushNotify(t *testing.T) {
	var received string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := New(logger.NewDev(), srv.URL)
	err := w.PushNotify(context.Background(), "position opened")
	require.NoError(t, err)
	assert.Equal(t, "application/json", received)
}

func TestWebhook_EmptyURLIsNoop(t *testing.T) {
	w := New(logger.NewDev(), "")
	assert.NoError(t, w.PushNotify(context.Background(), "hello"))
}
