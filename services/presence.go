// services/presence.go - Online presence tracking over WebSocket
package services

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// PresenceHub tracks connected clients for the online-players counter.
type PresenceHub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]string // conn -> username
}

var Presence = &PresenceHub{
	clients: make(map[*websocket.Conn]string),
}

func (h *PresenceHub) add(conn *websocket.Conn, username string) {
	h.mu.Lock()
	h.clients[conn] = username
	h.mu.Unlock()
	h.broadcastCount()
}

func (h *PresenceHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	h.broadcastCount()
}

// Count returns the number of connected clients.
func (h *PresenceHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Usernames returns the connected usernames, duplicates included.
func (h *PresenceHub) Usernames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.clients))
	for _, name := range h.clients {
		names = append(names, name)
	}
	return names
}

type presenceMessage struct {
	Type      string `json:"type"`
	Online    int    `json:"online"`
	Timestamp int64  `json:"timestamp"`
}

func (h *PresenceHub) broadcastCount() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := presenceMessage{
		Type:      "presence",
		Online:    len(h.clients),
		Timestamp: time.Now().Unix(),
	}

	for conn := range h.clients {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("presence broadcast failed: %v", err)
		}
	}
}

// PresenceHandler is the WebSocket endpoint handler. It registers the
// connection, answers pings, and unregisters on disconnect.
func PresenceHandler(c *websocket.Conn) {
	username := "Guest"
	if name, ok := c.Locals("username").(string); ok && name != "" {
		username = name
	}

	Presence.add(c, username)
	defer func() {
		Presence.remove(c)
		c.Close()
	}()

	for {
		var msg map[string]interface{}
		if err := c.ReadJSON(&msg); err != nil {
			return
		}

		if msg["type"] == "ping" {
			_ = c.WriteJSON(presenceMessage{
				Type:      "presence",
				Online:    Presence.Count(),
				Timestamp: time.Now().Unix(),
			})
		}
	}
}
