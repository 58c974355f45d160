package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/abrezinsky/skinvault/internal/logger"
	"github.com/abrezinsky/skinvault/internal/models"
	"github.com/abrezinsky/skinvault/internal/services"
)

// Message types sent to clients
const (
	TypeSessionState   = "session_state"
	TypeSessionExpired = "session_expired"
	TypeError          = "error"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // LAN tool, any origin
	},
}

// SessionProvider is the part of the loadout service the hub needs
type SessionProvider interface {
	GetSession(ctx context.Context, id string) (*services.SessionState, error)
	PruneIdleSessions(maxIdle time.Duration) int
}

// envelope is a message addressed to one session's clients, or to everyone
// when sessionID is empty
type envelope struct {
	sessionID string
	msg       models.WSMessage
}

// Hub maintains the set of active clients and routes messages to them
type Hub struct {
	log        logger.Logger
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	sessions   SessionProvider
}

// Client is a middleman between the websocket connection and the hub
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan models.WSMessage
	sessionID string
}

// New creates a new Hub instance with injected dependencies
func New(log logger.Logger, sessions SessionProvider) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan envelope),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		sessions:   sessions,
	}
}

// Start begins the hub's main loop in a goroutine
func (h *Hub) Start() {
	go h.run()
}

// run handles client registration/unregistration and message routing
func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug("Client connected", "session", client.sessionID, "total_clients", total)

			if client.sessionID != "" {
				go h.sendInitialState(client)
			}

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug("Client disconnected", "session", client.sessionID, "total_clients", total)

		case env := <-h.broadcast:
			h.mutex.RLock()
			for client := range h.clients {
				if env.sessionID != "" && client.sessionID != env.sessionID {
					continue
				}
				select {
				case client.send <- env.msg:
				default:
					// Client's send channel is full, unregister
					go func(c *Client) {
						h.unregister <- c
					}(client)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// sendInitialState pushes the current session state to a newly connected client
func (h *Hub) sendInitialState(client *Client) {
	msg := models.WSMessage{Type: TypeSessionState}
	state, err := h.sessions.GetSession(context.Background(), client.sessionID)
	if err != nil {
		msg = models.WSMessage{Type: TypeError, Payload: map[string]string{"error": err.Error()}}
	} else {
		msg.Payload = state
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if !h.clients[client] {
		return
	}
	select {
	case client.send <- msg:
	default:
	}
}

// BroadcastMessage sends a message to all connected clients
func (h *Hub) BroadcastMessage(msgType string, payload any) {
	h.broadcast <- envelope{msg: models.WSMessage{Type: msgType, Payload: payload}}
}

// SendToSession sends a message to the clients watching one session
func (h *Hub) SendToSession(sessionID, msgType string, payload any) {
	h.broadcast <- envelope{
		sessionID: sessionID,
		msg:       models.WSMessage{Type: msgType, Payload: payload},
	}
}

// BroadcastSession implements services.SessionBroadcaster
func (h *Hub) BroadcastSession(state *services.SessionState) {
	h.SendToSession(state.ID, TypeSessionState, state)
}

// SessionClosed implements services.SessionBroadcaster
func (h *Hub) SessionClosed(id string) {
	h.SendToSession(id, TypeSessionExpired, map[string]string{"id": id})
}

// ClientCount returns the number of connected clients, optionally only those
// watching sessionID
func (h *Hub) ClientCount(sessionID string) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	if sessionID == "" {
		return len(h.clients)
	}
	var n int
	for client := range h.clients {
		if client.sessionID == sessionID {
			n++
		}
	}
	return n
}

// watchedSessions returns the distinct session IDs clients are subscribed to
func (h *Hub) watchedSessions() []string {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	seen := make(map[string]bool)
	var ids []string
	for client := range h.clients {
		if client.sessionID != "" && !seen[client.sessionID] {
			seen[client.sessionID] = true
			ids = append(ids, client.sessionID)
		}
	}
	return ids
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("WebSocket error", "error", err)
			}
			break
		}

		// Clients only listen; incoming messages are logged and dropped
		var msg models.WSMessage
		if err := json.Unmarshal(message, &msg); err == nil {
			c.hub.log.Debug("Received message", "type", msg.Type, "session", c.sessionID)
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			msgBytes, err := json.Marshal(message)
			if err != nil {
				c.hub.log.Error("Failed to encode message", "type", message.Type, "error", err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msgBytes); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs handles websocket requests from clients. The optional session query
// parameter subscribes the client to one cooker session.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("WebSocket upgrade error", "error", err)
		return
	}

	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan models.WSMessage, 256),
		sessionID: r.URL.Query().Get("session"),
	}
	h.register <- client

	// Allow collection of memory referenced by the caller by doing all work in new goroutines
	go client.writePump()
	go client.readPump()
}

// StartSessionPruning drops idle sessions every interval until ctx is cancelled
func (h *Hub) StartSessionPruning(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Info("Session pruning stopped")
			return
		case <-ticker.C:
			h.pruneSessions(maxIdle)
		}
	}
}

// pruneSessions removes idle sessions and tells their watchers
func (h *Hub) pruneSessions(maxIdle time.Duration) {
	if h.sessions.PruneIdleSessions(maxIdle) == 0 {
		return
	}

	ctx := context.Background()
	for _, id := range h.watchedSessions() {
		if _, err := h.sessions.GetSession(ctx, id); err == services.ErrSessionNotFound {
			h.SessionClosed(id)
		}
	}
}
