package websocket

import (
	"log"
	"sync"

	"careerhub/models"

	"github.com/gorilla/websocket"
)

// Client represents a connection subscribed to gamification updates.
type Client struct {
	Conn    *websocket.Conn
	Email   string
	writeMu sync.Mutex
}

// SafeWriteJSON serializes writes to the underlying connection.
func (c *Client) SafeWriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// Hub broadcasts gamification events to all connected clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	log.Printf("Gamification client registered. Total clients: %d", len(h.clients))
}

// Unregister removes a client and closes its connection.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
	client.Conn.Close()
	log.Printf("Gamification client unregistered. Total clients: %d", len(h.clients))
}

// Broadcast sends a gamification event to every connected client.
func (h *Hub) Broadcast(event models.GamificationEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	message := map[string]interface{}{
		"type":      event.Type,
		"email":     event.Email,
		"timestamp": event.Timestamp,
	}

	if event.BadgeID != "" {
		message["badgeId"] = event.BadgeID
		message["badgeName"] = event.BadgeName
	}
	if event.Points != 0 {
		message["points"] = event.Points
		message["newPoints"] = event.NewPoints
	}
	if event.Action != "" {
		message["action"] = event.Action
	}

	for client := range h.clients {
		if err := client.SafeWriteJSON(message); err != nil {
			log.Printf("Error broadcasting gamification event to client: %v", err)
			go h.Unregister(client)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
