package ws

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"framed-chat/services"
)

// Server exposes the websocket endpoint plus the small HTTP surface around
// it: a liveness greeting and the static client bundle.
type Server struct {
	log        *slog.Logger
	hub        *Hub
	chat       services.IChatService
	upgrader   websocket.Upgrader
	bufferSize int
	staticDir  string
}

func NewServer(log *slog.Logger, hub *Hub, chat services.IChatService,
	allowedOrigins []string, bufferSize int, staticDir string) *Server {
	return &Server{
		log:  log,
		hub:  hub,
		chat: chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(log, allowedOrigins),
		},
		bufferSize: bufferSize,
		staticDir:  staticDir,
	}
}

// originChecker enforces the configured cross-origin allow-list.
// An empty list means no restriction (local development).
func originChecker(log *slog.Logger, allowed []string) func(*http.Request) bool {
	allowedSet := make(Set, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		if len(allowedSet) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		if _, ok := allowedSet[origin]; ok {
			return true
		}
		log.Warn("Rejected cross-origin upgrade", "origin", origin)
		return false
	}
}

// Routes builds the HTTP mux: liveness at /, websocket at /ws, and the
// client bundle under /app/ when a static dir is configured.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/ws", s.handleWS)
	if s.staticDir != "" {
		mux.Handle("/app/", http.StripPrefix("/app/", http.FileServer(http.Dir(s.staticDir))))
	}
	return mux
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, "Hello, World!")
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sock, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Upgrade failed", "error", err)
		return
	}
	conn := newConnection(s.log, sock, s.hub, s.chat, s.bufferSize)
	conn.run(r.Context())
}
