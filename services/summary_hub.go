package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// SummaryHub pushes tracker updates to connected websocket clients so the
// dashboard can re-render without polling. One hub per process; the tracker
// is single-profile so there is no per-user fan-out.
type SummaryHub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func NewSummaryHub() *SummaryHub {
	return &SummaryHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *SummaryHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *SummaryHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// Broadcast sends {"kind": kind, "payload": payload} to every client.
// Write errors are ignored; dead connections are reaped on their next read.
func (h *SummaryHub) Broadcast(kind string, payload any) {
	msg, err := json.Marshal(map[string]any{"kind": kind, "payload": payload})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		_ = conn.WriteMessage(websocket.TextMessage, msg)
	}
}

func (h *SummaryHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
