// Package server implements the development server: it serves the built site
// from the output directory and pushes live-reload notifications to connected
// browsers over WebSocket whenever the site is rebuilt.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/scribedocs/scribe/internal/config"
	"github.com/scribedocs/scribe/internal/logging"
)

// reloadScript is injected before </body> of every served HTML document.
const reloadScript = `<script>
(function() {
  var ws = new WebSocket("ws://" + window.location.host + "/ws");
  ws.onmessage = function(event) {
    var message = JSON.parse(event.data);
    if (message.type === "full_reload") {
      window.location.reload();
    }
  };
})();
</script>`

// Server serves the built output directory with live reload.
type Server struct {
	cfg       config.ServerConfig
	outputDir string
	logger    logging.Logger

	httpServer *http.Server

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New creates a development server over the given output directory.
func New(cfg config.ServerConfig, outputDir string, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Server{
		cfg:       cfg,
		outputDir: outputDir,
		logger:    logger.WithComponent("server"),
		clients:   make(map[*client]struct{}),
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
}

// Start runs the HTTP server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/", s.handleStatic)

	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "development server listening", "addr", s.Addr())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// NotifyReload broadcasts a full-reload message to all connected clients.
func (s *Server) NotifyReload() {
	s.broadcast([]byte(`{"type":"full_reload"}`))
}

func (s *Server) broadcast(msg []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- msg:
		default:
			// Slow client, drop the message
		}
	}
}

// handleStatic serves files from the output directory, injecting the
// live-reload script into HTML documents. Directory requests resolve to
// index.html.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	upath := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if strings.Contains(upath, "..") {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}

	full := filepath.Join(s.outputDir, filepath.FromSlash(upath))
	if info, err := os.Stat(full); err == nil && info.IsDir() {
		full = filepath.Join(full, "index.html")
	}
	if upath == "." {
		full = filepath.Join(s.outputDir, "index.html")
	}

	if !strings.HasSuffix(full, ".html") {
		http.ServeFile(w, r, full)
		return
	}

	data, err := os.ReadFile(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	doc := string(data)
	if idx := strings.LastIndex(doc, "</body>"); idx >= 0 {
		doc = doc[:idx] + reloadScript + doc[idx:]
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns(),
	})
	if err != nil {
		s.logger.Warn(r.Context(), err, "websocket upgrade failed")
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 16),
	}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	go s.writePump(c)
	go s.readPump(c)
}

// originPatterns allows the server's own host alongside any configured
// origins.
func (s *Server) originPatterns() []string {
	patterns := []string{s.Addr(), "localhost:*", "127.0.0.1:*"}
	for _, origin := range s.cfg.AllowedOrigins {
		patterns = append(patterns, strings.TrimPrefix(strings.TrimPrefix(origin, "http://"), "https://"))
	}
	return patterns
}

func (s *Server) writePump(c *client) {
	ctx := context.Background()
	for msg := range c.send {
		writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := c.conn.Write(writeCtx, websocket.MessageText, msg)
		cancel()
		if err != nil {
			s.dropClient(c)
			return
		}
	}
}

// readPump drains the connection so close frames are processed; the dev
// server never expects messages from the browser.
func (s *Server) readPump(c *client) {
	ctx := context.Background()
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			s.dropClient(c)
			return
		}
	}
}

func (s *Server) dropClient(c *client) {
	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

// ClientCount returns the number of connected live-reload clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
