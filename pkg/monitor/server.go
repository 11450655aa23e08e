package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"digital.vasic.chronoassert/pkg/logging"
)

const (
	writeWait      = 5 * time.Second
	clientBacklog  = 32
	readLimitBytes = 512
)

// Server streams collector events to WebSocket clients on /events
// and serves aggregate statistics on /stats.
type Server struct {
	mu        sync.RWMutex
	collector *EventCollector
	clients   map[*client]struct{}
	upgrader  websocket.Upgrader
	addr      string
	server    *http.Server
	logger    logging.Logger
	routes    map[string]http.Handler
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer creates a server for collector. Events emitted by the
// collector from now on are broadcast to every connected client.
func NewServer(
	addr string,
	collector *EventCollector,
	logger logging.Logger,
) *Server {
	s := &Server{
		addr:      addr,
		collector: collector,
		clients:   make(map[*client]struct{}),
		routes:    make(map[string]http.Handler),
		logger:    logging.OrNull(logger),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	collector.OnEvent(s.broadcastEvent)
	return s
}

// Handle registers an additional route. It must be called before
// Start or Handler.
func (s *Server) Handle(pattern string, h http.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[pattern] = h
}

// Handler returns the HTTP handler serving /events, /stats, /health
// and any routes added with Handle.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.mu.RLock()
	for pattern, h := range s.routes {
		mux.Handle(pattern, h)
	}
	s.mu.RUnlock()
	mux.HandleFunc("/events", s.handleEvents)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Start serves until ctx is cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		_ = s.Stop(shutdownCtx)
	}()

	s.logger.Info("monitor listening", logging.StringField("addr", s.addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop disconnects all clients and shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	for c := range s.clients {
		s.removeLocked(c)
	}
	srv := s.server
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", logging.ErrorField(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientBacklog)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	go s.writeLoop(c)
	s.readLoop(c)
}

// readLoop discards client messages and detects disconnects.
func (s *Server) readLoop(c *client) {
	defer func() {
		s.mu.Lock()
		s.removeLocked(c)
		s.mu.Unlock()
	}()

	c.conn.SetReadLimit(readLimitBytes)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writeLoop(c *client) {
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.logger.Debug("websocket write failed", logging.ErrorField(err))
			_ = c.conn.Close()
			return
		}
	}
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
	_ = c.conn.Close()
}

// removeLocked must be called with s.mu held.
func (s *Server) removeLocked(c *client) {
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.collector.Stats())
}

func (s *Server) broadcastEvent(event AssertionEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			// Client too slow, skip
		}
	}
}
