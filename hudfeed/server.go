// Package hudfeed serves HUD snapshots to remote viewers over HTTP and websocket
package hudfeed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/core"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/status"
)

// ContentType is the media type of encoded snapshots
const ContentType = "application/msgpack"

// SnapshotSource provides the current HUD state; *engine.GameContext implements it
type SnapshotSource interface {
	Snapshot() engine.HUDSnapshot
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Read-only feed, any origin may watch
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// client is one websocket viewer
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Server publishes HUD snapshots
type Server struct {
	source   SnapshotSource
	metrics  *status.Registry
	router   *mux.Router
	interval time.Duration

	mu      sync.Mutex
	clients map[*client]struct{}

	httpServer *http.Server
	listener   net.Listener

	done     chan struct{}
	stopOnce sync.Once
}

// NewServer creates a feed over source broadcasting every interval
// metrics may be nil, which disables /stats
func NewServer(source SnapshotSource, metrics *status.Registry, interval time.Duration) *Server {
	if interval <= 0 {
		interval = constants.HUDBroadcastInterval
	}
	s := &Server{
		source:   source,
		metrics:  metrics,
		interval: interval,
		clients:  make(map[*client]struct{}),
		done:     make(chan struct{}),
	}

	r := mux.NewRouter()
	r.HandleFunc("/hud", s.handleSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)
	if metrics != nil {
		r.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	}
	s.router = r
	return s
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr and begins broadcasting; serving continues in the background
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("hud feed listen %s: %w", addr, err)
	}
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: constants.HUDWriteTimeout,
	}

	core.Go(func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("hud feed serve: %v", err)
		}
	})
	core.Go(s.broadcastLoop)

	log.Printf("hud feed listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops broadcasting, disconnects viewers and closes the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.done) })

	s.mu.Lock()
	for c := range s.clients {
		s.dropLocked(c)
	}
	s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("hud feed shutdown: %w", err)
	}
	return nil
}

// ClientCount returns the number of connected viewers
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// encode marshals the current snapshot
func (s *Server) encode() ([]byte, error) {
	snap := s.source.Snapshot()
	return msgpack.Marshal(&snap)
}

// handleSnapshot serves one snapshot
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := s.encode()
	if err != nil {
		log.Printf("hud feed encode: %v", err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// handleStats serves the run counters
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	data, err := msgpack.Marshal(s.metrics.Snapshot())
	if err != nil {
		log.Printf("hud feed encode stats: %v", err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(data)
}

// setViewersLocked publishes the viewer count; caller holds mu
func (s *Server) setViewersLocked() {
	if s.metrics != nil {
		s.metrics.Ints.Get(status.HUDViewers).Store(int64(len(s.clients)))
	}
}

// handleWebSocket upgrades a viewer and starts its pumps
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("hud feed upgrade: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, constants.HUDClientBuffer)}

	// First frame is queued before registration so viewers need not wait a broadcast
	if data, err := s.encode(); err == nil {
		c.send <- data
	}

	s.mu.Lock()
	select {
	case <-s.done:
		s.mu.Unlock()
		conn.Close()
		return
	default:
	}
	s.clients[c] = struct{}{}
	s.setViewersLocked()
	s.mu.Unlock()

	core.Go(func() { s.writePump(c) })
	core.Go(func() { s.readPump(c) })
}

// broadcastLoop pushes a snapshot to every viewer each interval
func (s *Server) broadcastLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.broadcast()
		}
	}
}

// broadcast sends the current snapshot; viewers with a full buffer are dropped
func (s *Server) broadcast() {
	if s.ClientCount() == 0 {
		return
	}
	data, err := s.encode()
	if err != nil {
		log.Printf("hud feed encode: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			log.Printf("hud feed: dropping slow viewer")
			s.dropLocked(c)
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	s.dropLocked(c)
	s.mu.Unlock()
}

// dropLocked removes a viewer; closing send makes its writer say goodbye
func (s *Server) dropLocked(c *client) {
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
	s.setViewersLocked()
}

// readPump discards viewer messages and tracks pongs for keepalive
func (s *Server) readPump(c *client) {
	defer func() {
		s.drop(c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(constants.HUDReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(constants.HUDReadTimeout))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("hud feed read: %v", err)
			}
			return
		}
	}
}

// writePump sends queued snapshots and periodic pings
func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(constants.HUDPingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(constants.HUDWriteTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				log.Printf("hud feed write: %v", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(constants.HUDWriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
