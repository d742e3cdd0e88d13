package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dial(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()
	registered := make(chan struct{})
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(userID, conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	<-registered
	return client
}

func TestHub_Notify(t *testing.T) {
	hub := NewHub(zap.NewNop())
	client := dial(t, hub, "user-1")
	require.True(t, hub.Connected("user-1"))

	require.NoError(t, hub.Notify("user-1", EventOrderPlaced, OrderPlacedPayload{OrderID: "o1", ProductID: "p1", Title: "Mug"}))

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		Event string             `json:"event"`
		Data  OrderPlacedPayload `json:"data"`
	}
	require.NoError(t, client.ReadJSON(&msg))
	assert.Equal(t, EventOrderPlaced, msg.Event)
	assert.Equal(t, "Mug", msg.Data.Title)
}

func TestHub_NotifyDisconnected(t *testing.T) {
	hub := NewHub(zap.NewNop())
	assert.NoError(t, hub.Notify("nobody", EventCartAdded, CartAddedPayload{ProductID: "p1"}))
	assert.False(t, hub.Connected("nobody"))
}
