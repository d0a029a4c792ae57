package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	// TreeUpdated tells clients their cached view of the folder tree is
	// stale. It carries no entity details: one signal covers every view.
	TreeUpdated NotificationType = "tree_updated"
)

// Notification represents a WebSocket notification
type Notification struct {
	Type NotificationType `json:"type"`
}

// Client represents a WebSocket client connection
type Client struct {
	Conn *websocket.Conn
}

// Hub broadcasts tree invalidation notifications to every connected
// client; the browser side refetches whatever it is showing.
type Hub struct {
	clients    map[*Client]bool
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
}

var (
	instance *Hub
	once     sync.Once
)

// GetHub returns the singleton notification hub
func GetHub() *Hub {
	once.Do(func() {
		instance = &Hub{
			clients:    make(map[*Client]bool),
			register:   make(chan *Client),
			unregister: make(chan *Client),
		}
		go instance.run()
	})
	return instance
}

// run starts the hub
func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			delete(h.clients, client)
			h.mu.Unlock()
		}
	}
}

// RegisterClient registers a new WebSocket client
func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

// UnregisterClient unregisters a WebSocket client
func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// NotifyTreeChanged broadcasts a tree_updated notification to all
// connected clients. Failed writes are skipped; the client's read loop
// will unregister it.
func (h *Hub) NotifyTreeChanged() {
	h.broadcast(&Notification{Type: TreeUpdated})
}

func (h *Hub) broadcast(notification *Notification) {
	data, err := json.Marshal(notification)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if err := client.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			continue
		}
	}
}
