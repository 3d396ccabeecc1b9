package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/grantsphere/internal/app/models/dto"
)

// Message types
const (
	MessageTypeState  = "state"
	MessageTypeError  = "error"
	MessageTypeClosed = "closed"
)

// Message represents a message sent over WebSocket
type Message struct {
	// Type of message: "state", "error" or "closed"
	Type string `json:"type"`

	// Session this message belongs to
	SessionID string `json:"sessionId"`

	// Snapshot of the session for state messages
	State *dto.BrowseState `json:"state,omitempty"`

	// Error for error messages
	Error *dto.ErrorDetail `json:"error,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// Hub maintains the set of active clients and broadcasts session snapshots
// to the clients subscribed to that session
type Hub struct {
	// Registered clients organized by session ID
	clients map[string]map[*Client]bool

	// Channel for outbound session messages
	broadcast chan *Message

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed once Run returns
	done chan struct{}

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// Run starts the hub, handling client registrations and broadcasts until ctx
// is cancelled
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			h.logger.Info().Msg("WebSocket hub stopped")
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessionID := client.sessionID
	if _, ok := h.clients[sessionID]; !ok {
		h.clients[sessionID] = make(map[*Client]bool)
	}
	h.clients[sessionID][client] = true

	h.logger.Info().
		Str("sessionID", sessionID).
		Str("addr", client.remoteAddr()).
		Msg("Client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	sessionID := client.sessionID
	clients, ok := h.clients[sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, sessionID)
	}

	h.logger.Info().
		Str("sessionID", sessionID).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

// broadcastMessage sends a message to all clients of its session. A closed
// message also disconnects them.
func (h *Hub) broadcastMessage(message *Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessionID := message.SessionID
	clients, ok := h.clients[sessionID]
	if !ok {
		h.logger.Debug().
			Str("sessionID", sessionID).
			Msg("No clients in session for broadcast")
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("sessionID", sessionID).
			Msg("Failed to marshal message for broadcast")
		return
	}

	for client := range clients {
		select {
		case client.send <- data:
		default:
			// Slow or gone; drop the client rather than block the hub
			h.removeLocked(client)
		}
	}

	if message.Type == MessageTypeClosed {
		for client := range h.clients[sessionID] {
			h.removeLocked(client)
		}
	}

	h.logger.Debug().
		Str("sessionID", sessionID).
		Str("type", message.Type).
		Msg("Message broadcasted to session")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}

// send queues a message for broadcast. It gives up once the hub has stopped.
func (h *Hub) send(message *Message) {
	select {
	case h.broadcast <- message:
	case <-h.done:
	}
}

// join registers a client. It reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish broadcasts a session snapshot to the session's subscribers
func (h *Hub) Publish(sessionID string, state *dto.BrowseState) {
	if h.GetClientsCount(sessionID) == 0 {
		return
	}
	h.send(&Message{
		Type:      MessageTypeState,
		SessionID: sessionID,
		State:     state,
		Timestamp: time.Now(),
	})
}

// CloseSession notifies and disconnects every subscriber of a session
func (h *Hub) CloseSession(sessionID string) {
	if h.GetClientsCount(sessionID) == 0 {
		return
	}
	h.send(&Message{
		Type:      MessageTypeClosed,
		SessionID: sessionID,
		Timestamp: time.Now(),
	})
}

// GetClientsCount returns the number of connected clients for a session
func (h *Hub) GetClientsCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.clients[sessionID]; ok {
		return len(clients)
	}
	return 0
}
