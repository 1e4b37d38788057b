package realtime

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/teamhub/teamhub/pkg/logger"
	"github.com/teamhub/teamhub/pkg/metrics"
)

// Event is a message pushed to connected clients
type Event struct {
	Type      string      `json:"type"`
	Channel   string      `json:"channel,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Client represents a connected websocket client
type Client struct {
	ID            string
	UserID        uint
	Hub           *Hub
	Send          chan *Event
	subscriptions map[string]bool
	mu            sync.RWMutex
}

// Subscribe adds the client to a channel
func (c *Client) Subscribe(channel string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscriptions[channel] = true
}

// Unsubscribe removes the client from a channel
func (c *Client) Unsubscribe(channel string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subscriptions, channel)
}

func (c *Client) subscribed(channel string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subscriptions[channel]
}

// Hub maintains active client connections and channel fan-out
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
	mu         sync.RWMutex
	stopped    bool
}

// NewHub creates a hub; call Start before use
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		broadcast:  make(chan *Event, 256),
	}
}

// Start begins the hub's event loop
func (h *Hub) Start() {
	go h.run()
	logger.Info("realtime hub started")
}

// Stop closes all client connections
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopped {
		return
	}
	h.stopped = true

	for id, client := range h.clients {
		close(client.Send)
		delete(h.clients, id)
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.fanOut(event)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	metrics.WSConnected()

	logger.Info("client connected",
		zap.String("client_id", client.ID),
		zap.Uint("user_id", client.UserID),
		zap.Int("total", len(h.clients)),
	)

	client.Send <- &Event{
		Type:      "welcome",
		Data:      map[string]interface{}{"client_id": client.ID},
		Timestamp: time.Now(),
	}
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	delete(h.clients, client.ID)
	close(client.Send)
	metrics.WSDisconnected()

	logger.Info("client disconnected",
		zap.String("client_id", client.ID),
		zap.Int("total", len(h.clients)),
	)
}

// fanOut delivers an event to every subscriber of its channel; events
// without a channel go to everyone.
func (h *Hub) fanOut(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, client := range h.clients {
		if event.Channel != "" && !client.subscribed(event.Channel) {
			continue
		}

		select {
		case client.Send <- event:
		default:
			// Send buffer full, drop rather than block the hub
			logger.Warn("dropping event", zap.String("client_id", id), zap.String("type", event.Type))
		}
	}
}

// Broadcast queues an event for channel fan-out. Never blocks.
func (h *Hub) Broadcast(channel, eventType string, data interface{}) {
	event := &Event{
		Type:      eventType,
		Channel:   channel,
		Data:      data,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- event:
	default:
		logger.Warn("broadcast queue full, dropping event", zap.String("type", eventType))
	}
}

// SendToUser delivers an event to every connection of a user
func (h *Hub) SendToUser(userID uint, eventType string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event := &Event{Type: eventType, Data: data, Timestamp: time.Now()}
	for _, client := range h.clients {
		if client.UserID != userID {
			continue
		}
		select {
		case client.Send <- event:
		default:
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
