package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Role separates the DM editing window from the sanitized player display.
type Role string

const (
	RoleDM     Role = "dm"
	RolePlayer Role = "player"
)

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]Role
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]Role)}
}

func (h *Hub) Add(conn *websocket.Conn, role Role) {
	h.mu.Lock()
	h.clients[conn] = role
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Broadcast sends a message to every connected window.
func (h *Hub) Broadcast(message []byte) {
	h.send(message, func(Role) bool { return true })
}

// BroadcastTo sends a message only to windows of the given role.
func (h *Hub) BroadcastTo(role Role, message []byte) {
	h.send(message, func(r Role) bool { return r == role })
}

func (h *Hub) send(message []byte, match func(Role) bool) {
	h.mu.Lock()
	for conn, role := range h.clients {
		if !match(role) {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}
