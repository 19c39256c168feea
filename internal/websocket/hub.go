package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/arnish-ai/arnish/domain/repositories"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer. Audio payloads are base64
	// encoded, so allow a generous limit.
	maxMessageSize = 2 * 1024 * 1024

	// Upper bound on one unit's external calls (decode, transcription,
	// possibly a corrective pass, reply generation with retries).
	unitTimeout = 120 * time.Second
)

// Time allowed to read the next pong message from the peer, and the ping
// cadence below it. Variables so tests can shrink the keepalive window.
var (
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub maintains the set of active clients.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	converter   repositories.AudioConverter
	transcriber repositories.Transcriber
	responder   repositories.Responder

	logger *zap.Logger
}

// NewHub creates a new WebSocket hub.
func NewHub(
	converter repositories.AudioConverter,
	transcriber repositories.Transcriber,
	responder repositories.Responder,
	logger *zap.Logger,
) *Hub {
	return &Hub{
		clients:     make(map[string]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		converter:   converter,
		transcriber: transcriber,
		responder:   responder,
		logger:      logger,
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			h.logger.Info("Client connected", zap.String("clientID", client.id))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("Client disconnected", zap.String("clientID", client.id))
		}
	}
}

// Client is a middleman between one websocket connection and its session.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte

	// Connection identifier, for logs only.
	id string

	session *Session
	logger  *zap.Logger
}

// HandleWebSocket upgrades the request and starts the connection's pumps.
func HandleWebSocket(hub *Hub, c echo.Context, logger *zap.Logger) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", zap.Error(err))
		return err
	}

	client := &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, 256),
		id:      uuid.NewString(),
		session: NewSession(hub.converter, hub.transcriber, hub.responder, logger),
		logger:  logger,
	}

	client.hub.register <- client

	go client.writePump()
	go client.readPump()

	client.emit(ConnectedEvent{Type: EventConnected, Message: welcomeMessage})

	return nil
}

// emit marshals an event and queues it for delivery. A full send buffer
// drops the event rather than blocking the pipeline.
func (c *Client) emit(event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("Failed to marshal event", zap.Error(err))
		return
	}
	select {
	case c.send <- payload:
	default:
		c.logger.Warn("Send buffer full, dropping event", zap.String("clientID", c.id))
	}
}

// readPump pumps messages from the websocket connection into the session.
// Units are processed strictly sequentially: the next message is not read
// until the current unit's events have been emitted.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Unit processing can outlive pongWait; refresh the deadline so a
		// slow unit does not expire the connection before the next read.
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", zap.Error(err))
			}
			break
		}

		switch messageType {
		case websocket.TextMessage:
			ctx, cancel := context.WithTimeout(context.Background(), unitTimeout)
			c.session.HandleMessage(ctx, message, c.emit)
			cancel()
		default:
			c.logger.Warn("Ignoring non-text message", zap.Int("type", messageType))
		}
	}
}

// writePump pumps queued events to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Error("Failed to write message", zap.Error(err))
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
