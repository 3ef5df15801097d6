package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/teapotframework/teabrew/pkg/metrics"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// subscribeAll receives events for every resource.
	subscribeAll = "*"
)

// createUpgrader creates a WebSocket upgrader with origin validation.
func createUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowAll := len(allowedOrigins) == 1 && allowedOrigins[0] == "*"

	originSet := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		originSet[origin] = true
	}

	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			// If no origins configured, accept same-origin clients only.
			if len(allowedOrigins) == 0 {
				return r.Header.Get("Origin") == ""
			}

			// Allow all origins if configured with "*".
			if allowAll {
				return true
			}

			// Check if origin is in allowed list.
			origin := r.Header.Get("Origin")

			return originSet[origin]
		},
	}
}

// MessageType represents the type of WebSocket message.
type MessageType string

const (
	// Server -> Client messages.
	MessageTypeEntityCreated MessageType = "entity_created"
	MessageTypeEntityUpdated MessageType = "entity_updated"
	MessageTypeEntityDeleted MessageType = "entity_deleted"
	MessageTypeSubscribed    MessageType = "subscribed"
	MessageTypeUnsubscribed  MessageType = "unsubscribed"
	MessageTypePong          MessageType = "pong"

	// Client -> Server messages.
	MessageTypeSubscribe   MessageType = "subscribe"
	MessageTypeUnsubscribe MessageType = "unsubscribe"
	MessageTypePing        MessageType = "ping"
)

// Message represents a WebSocket message. Resource names a collection
// such as teapots or brews, or "*" for everything.
type Message struct {
	Type     MessageType `json:"type"`
	Resource string      `json:"resource,omitempty"`
	Payload  any         `json:"payload,omitempty"`
}

// Hub maintains the set of active clients and broadcasts entity change
// events to them.
type Hub struct {
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
	upgrader websocket.Upgrader

	// Registered clients.
	clients map[*Client]bool

	// Clients subscribed to specific resources.
	subscriptions map[string]map[*Client]bool

	// Register requests from clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Broadcast messages to resource subscribers.
	resourceBroadcast chan *resourceMessage

	mu sync.Mutex
}

type resourceMessage struct {
	resource string
	msg      *Message
}

// NewHub creates a new WebSocket hub.
func NewHub(log logrus.FieldLogger, m *metrics.Metrics, allowedOrigins []string) *Hub {
	return &Hub{
		log:               log.WithField("component", "events"),
		metrics:           m,
		upgrader:          createUpgrader(allowedOrigins),
		clients:           make(map[*Client]bool),
		subscriptions:     make(map[string]map[*Client]bool),
		register:          make(chan *Client),
		unregister:        make(chan *Client),
		resourceBroadcast: make(chan *resourceMessage, 256),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run(ctx context.Context) {
	h.log.Info("Starting event hub")

	for {
		select {
		case <-ctx.Done():
			h.log.Info("Stopping event hub")

			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.setClientGauge()
			h.mu.Unlock()

			h.log.WithField("client", client.id).Debug("Client registered")

		case client := <-h.unregister:
			h.mu.Lock()

			if _, ok := h.clients[client]; ok {
				h.dropClientLocked(client)
			}

			h.mu.Unlock()

			h.log.WithField("client", client.id).Debug("Client unregistered")

		case rm := <-h.resourceBroadcast:
			h.mu.Lock()

			sent := make(map[*Client]bool)

			for _, key := range []string{rm.resource, subscribeAll} {
				for client := range h.subscriptions[key] {
					if sent[client] {
						continue
					}

					sent[client] = true

					select {
					case client.send <- rm.msg:
					default:
						h.dropClientLocked(client)
					}
				}
			}

			h.mu.Unlock()
		}
	}
}

// dropClientLocked removes a client from every map and closes its send
// channel. The hub mutex must be held.
func (h *Hub) dropClientLocked(client *Client) {
	delete(h.clients, client)

	for resource, clients := range h.subscriptions {
		delete(clients, client)

		if len(clients) == 0 {
			delete(h.subscriptions, resource)
		}
	}

	close(client.send)
	h.setClientGauge()
}

// setClientGauge publishes the connected client count. The hub mutex
// must be held.
func (h *Hub) setClientGauge() {
	if h.metrics != nil {
		h.metrics.SetEventClients(float64(len(h.clients)))
	}
}

// Subscribe adds a client to a resource's subscription list.
func (h *Hub) Subscribe(client *Client, resource string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscriptions[resource]; !ok {
		h.subscriptions[resource] = make(map[*Client]bool)
	}

	h.subscriptions[resource][client] = true

	h.log.WithFields(logrus.Fields{
		"client":   client.id,
		"resource": resource,
	}).Debug("Client subscribed to resource")
}

// Unsubscribe removes a client from a resource's subscription list.
func (h *Hub) Unsubscribe(client *Client, resource string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.subscriptions[resource]; ok {
		delete(clients, client)

		if len(clients) == 0 {
			delete(h.subscriptions, resource)
		}
	}

	h.log.WithFields(logrus.Fields{
		"client":   client.id,
		"resource": resource,
	}).Debug("Client unsubscribed from resource")
}

// BroadcastEntityChange sends an entity change event to all clients
// subscribed to the resource or to everything.
func (h *Hub) BroadcastEntityChange(eventType MessageType, resource string, payload any) {
	rm := &resourceMessage{
		resource: resource,
		msg: &Message{
			Type:     eventType,
			Resource: resource,
			Payload:  payload,
		},
	}

	select {
	case h.resourceBroadcast <- rm:
	default:
		h.log.Warn("Broadcast channel full, dropping event")
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Client represents a WebSocket client connection.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan *Message
}

// NewClient creates a new WebSocket client.
func NewClient(hub *Hub, conn *websocket.Conn, id string) *Client {
	return &Client{
		id:   id,
		hub:  hub,
		conn: conn,
		send: make(chan *Message, 256),
	}
}

// ReadPump pumps messages from the websocket connection to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithError(err).Warn("WebSocket read error")
			}

			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			c.hub.log.WithError(err).Warn("Failed to parse WebSocket message")

			continue
		}

		c.handleMessage(&msg)
	}
}

// WritePump pumps messages from the hub to the websocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if !ok {
				// The hub closed the channel.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			data, err := json.Marshal(msg)
			if err != nil {
				c.hub.log.WithError(err).Warn("Failed to marshal WebSocket message")

				continue
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage handles incoming messages from the client.
func (c *Client) handleMessage(msg *Message) {
	switch msg.Type {
	case MessageTypeSubscribe:
		if msg.Resource != "" {
			c.hub.Subscribe(c, msg.Resource)
			c.send <- &Message{
				Type:     MessageTypeSubscribed,
				Resource: msg.Resource,
			}
		}

	case MessageTypeUnsubscribe:
		if msg.Resource != "" {
			c.hub.Unsubscribe(c, msg.Resource)
			c.send <- &Message{
				Type:     MessageTypeUnsubscribed,
				Resource: msg.Resource,
			}
		}

	case MessageTypePing:
		c.send <- &Message{Type: MessageTypePong, Payload: map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}}

	default:
		c.hub.log.WithField("type", msg.Type).Warn("Unknown message type")
	}
}

// handleWebSocket godoc
//
//	@Summary		Entity change event stream
//	@Description	Upgrades the connection to a WebSocket. Clients subscribe to a resource collection ("teapots", "teas", "brews", "steeps") or "*" and receive entity_created, entity_updated and entity_deleted events.
//	@Tags			events
//	@Success		101	{string}	string	"Switching Protocols"
//	@Router			/ws [get]
func (s *server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("Failed to upgrade WebSocket")

		return
	}

	// Generate client ID.
	clientID := r.Header.Get("X-Request-ID")
	if clientID == "" {
		clientID = uuid.NewString()
	}

	client := NewClient(s.hub, conn, clientID)
	s.hub.register <- client

	// Start pumps.
	go client.WritePump()
	go client.ReadPump()
}
