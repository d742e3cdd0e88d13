package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event names pushed to shoppers.
const (
	EventOrderPlaced = "order.placed"
	EventCartAdded   = "cart.added"
	EventOrderStatus = "order.status"
)

// Notifier pushes events to a connected user. *Hub satisfies it.
type Notifier interface {
	Notify(userID string, event string, payload any) error
}

// Hub tracks one websocket connection per user. A new connection replaces
// the previous one.
type Hub struct {
	mu     sync.RWMutex
	byUser map[string]*wsConn
	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{byUser: make(map[string]*wsConn), logger: logger}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byUser[userID]; ok {
		old.conn.Close()
	}
	h.byUser[userID] = &wsConn{conn: conn}
}

// Unregister drops the user's connection if it is still conn.
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byUser[userID]; ok && c.conn == conn {
		c.conn.Close()
		delete(h.byUser, userID)
	}
}

// Connected reports whether the user has a live connection.
func (h *Hub) Connected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.byUser[userID]
	return ok
}

// Notify sends a typed event payload to the user if connected.
func (h *Hub) Notify(userID string, event string, payload any) error {
	h.mu.RLock()
	wc, ok := h.byUser[userID]
	h.mu.RUnlock()
	if !ok {
		h.logger.Debug("ws: user not connected; drop event", zap.String("user_id", userID), zap.String("event", event))
		return nil
	}
	msg := map[string]any{"event": event, "data": payload}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if err := wc.conn.WriteJSON(msg); err != nil {
		h.logger.Warn("ws: write failed", zap.String("user_id", userID), zap.String("event", event), zap.Error(err))
		return err
	}
	return nil
}

// OrderPlacedPayload is sent when the buy flow places an order.
type OrderPlacedPayload struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
}

// CartAddedPayload is sent when a product is added to the cart.
type CartAddedPayload struct {
	ProductID string `json:"product_id"`
}

// OrderStatusPayload is sent when fulfilment moves an order forward.
type OrderStatusPayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
