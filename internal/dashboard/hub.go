// Package dashboard broadcasts JSON frames to connected WebSocket clients:
// a {type:"state"} frame on every fast tick and a {type:"activity"} frame on
// notable events (§6 outbound dashboard WS).
//
// Grounded on the named-channel pub/sub of internal/libs/channel/channel.go,
// fed into a small gorilla/websocket hub -- the teacher has no WS surface of
// its own, so the hub/client/writePump shape here is the idiomatic-Go
// pattern used throughout the retrieval pack's WS-serving examples
// (broadcast loop -> per-client buffered send channel -> independent write
// goroutine), generalized to this project's two frame types.
package dashboard

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/anvh2/polymarket-btc15/internal/libs/channel"
	"github.com/anvh2/polymarket-btc15/internal/libs/logger"
	"github.com/anvh2/polymarket-btc15/internal/models"
)

const (
	writeTimeout   = 5 * time.Second
	clientSendCap  = 32
	stateTopic     = "state"
	activityTopic  = "activity"
)

// Frame is the outbound WS envelope.
type Frame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub fans out state/activity frames to every connected client.
type Hub struct {
	log      *logger.Logger
	fanout   *channel.Channel
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan Frame
}

func New(log *logger.Logger) *Hub {
	return &Hub{
		log:      log,
		fanout:   channel.New(),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:  make(map[*client]struct{}),
	}
}

// PublishState enqueues a {type:"state"} frame, non-blocking (§5 "a slow
// consumer... drops behind without blocking the producer").
func (h *Hub) PublishState(state models.DashboardState) {
	h.publish(stateTopic, Frame{Type: "state", Payload: state})
}

// PublishActivity enqueues a {type:"activity"} frame.
func (h *Hub) PublishActivity(event models.ActivityEvent) {
	h.publish(activityTopic, Frame{Type: "activity", Payload: event})
}

func (h *Hub) publish(topic string, frame Frame) {
	select {
	case h.fanout.Get(topic) <- frame:
	default:
		h.log.Warn("dashboard fanout full, dropping frame", zap.String("topic", topic))
	}
}

// Run drains both topic channels and broadcasts to every connected client
// until stop is closed.
func (h *Hub) Run(stop <-chan struct{}) {
	stateC := h.fanout.Get(stateTopic)
	activityC := h.fanout.Get(activityTopic)

	for {
		select {
		case <-stop:
			return
		case v := <-stateC:
			h.broadcast(v.(Frame))
		case v := <-activityC:
			h.broadcast(v.(Frame))
		}
	}
}

func (h *Hub) broadcast(frame Frame) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- frame:
		default:
			h.log.Warn("dashboard client send buffer full, dropping client")
			h.removeLocked(c)
		}
	}
}

func (h *Hub) removeLocked(c *client) {
	delete(h.clients, c)
	close(c.send)
	c.conn.Close()
}

// ServeWS upgrades the request and registers the connection as a broadcast
// target until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("dashboard websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan Frame, clientSendCap)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) writePump(c *client) {
	for frame := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		data, err := json.Marshal(frame)
		if err != nil {
			continue
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			h.removeLocked(c)
			h.mu.Unlock()
			return
		}
	}
}

// readPump exists only to detect client disconnects; the dashboard never
// accepts inbound commands over this socket.
func (h *Hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				h.removeLocked(c)
			}
			h.mu.Unlock()
			return
		}
	}
}
