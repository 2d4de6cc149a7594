// Package live streams decoded observations to websocket subscribers.
package live

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/couchcryptid/metar-etl/internal/domain"
	"github.com/couchcryptid/metar-etl/internal/observability"
)

const writeTimeout = 5 * time.Second

// Hub fans observations out to websocket subscribers. It implements
// pipeline.BatchLoader and http.Handler.
//
// Each subscriber has a bounded queue. A subscriber whose queue is full when
// an observation arrives is disconnected; the pipeline never waits on it.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}

	buffer   int
	upgrader websocket.Upgrader
	metrics  *observability.Metrics
	logger   *slog.Logger
}

type client struct {
	conn    *websocket.Conn
	send    chan []byte
	station string // empty subscribes to every station
}

// NewHub creates a hub with a per-subscriber queue of buffer messages.
// metrics may be nil.
func NewHub(buffer int, metrics *observability.Metrics, logger *slog.Logger) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		buffer:  buffer,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		metrics: metrics,
		logger:  logger,
	}
}

// ServeHTTP upgrades the request and subscribes the connection. The
// optional station query parameter restricts the feed to one station.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		conn:    conn,
		send:    make(chan []byte, h.buffer),
		station: strings.ToUpper(r.URL.Query().Get("station")),
	}
	h.add(c)
	h.logger.Info("live subscriber connected", "remote", r.RemoteAddr, "station", c.station)

	go c.writePump()
	h.readPump(c)
}

// LoadBatch queues each observation for every matching subscriber.
func (h *Hub) LoadBatch(_ context.Context, events []domain.OutputEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ev := range events {
		for c := range h.clients {
			if c.station != "" && c.station != ev.Headers["station"] {
				continue
			}
			select {
			case c.send <- ev.Value:
			default:
				h.logger.Warn("live subscriber too slow, dropping", "station", c.station)
				h.removeLocked(c)
			}
		}
	}
	return nil
}

// Subscribers returns the number of connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	h.setGauge()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked closes the client's queue, which stops its write pump.
func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.setGauge()
}

func (h *Hub) setGauge() {
	if h.metrics != nil {
		h.metrics.LiveSubscribers.Set(float64(len(h.clients)))
	}
}

// readPump discards inbound messages until the peer goes away.
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
