package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mikios34/storefront-backend/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// Socket upgrades to WS and registers the shopper's connection. Events are
// server to client only; inbound frames are read and dropped.
func (h *WSHandler) Socket() gin.HandlerFunc {
	return func(c *gin.Context) {
		// auth middleware should run before this handler
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "user_id missing in context"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		h.hub.Register(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(userID, conn)
				break
			}
		}
	}
}
