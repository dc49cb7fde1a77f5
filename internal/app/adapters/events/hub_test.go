package events

import (
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http/httptest"
	"phoneforward/internal/app/ports"
	"phoneforward/pkg/logger"
	"strings"
	"testing"
	"time"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_Publish(t *testing.T) {
	hub := New(logger.NewWriter(io.Discard))
	srv := httptest.NewServer(hub)
	defer srv.Close()

	first, second := dial(t, srv), dial(t, srv)
	require.Eventually(t, func() bool { return hub.Subscribers() == 2 }, time.Second, 10*time.Millisecond)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	hub.Publish(ports.Event{Type: ports.EventAdd, From: "12", To: "34", At: at})

	for _, conn := range []*websocket.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		var got ports.Event
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, ports.EventAdd, got.Type)
		assert.Equal(t, "12", got.From)
		assert.Equal(t, "34", got.To)
		assert.True(t, at.Equal(got.At))
	}
}

func TestHub_Disconnect(t *testing.T) {
	hub := New(logger.NewWriter(io.Discard))
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Subscribers() == 0 }, time.Second, 10*time.Millisecond)

	assert.NotPanics(t, func() { hub.Publish(ports.Event{Type: ports.EventRemove, From: "1"}) })
}

func TestHub_Close(t *testing.T) {
	hub := New(logger.NewWriter(io.Discard))
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Zero(t, hub.Subscribers())

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure))
}
