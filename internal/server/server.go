// Package server exposes the advisor over WebSocket so external clients
// can request stay-or-fold recommendations.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/bot"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/deck"
)

// Server is the WebSocket advisor server. Each connection gets its own
// bot, so concurrent clients never share simulation state.
type Server struct {
	addr     string
	budget   time.Duration
	seed     int64
	workers  int
	upgrader websocket.Upgrader
	logger   *log.Logger
	mu       sync.Mutex
	conns    map[*websocket.Conn]bool
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a new advisor server
func NewServer(addr string, budget time.Duration, seed int64, workers int, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	return &Server{
		addr:    addr,
		budget:  budget,
		seed:    seed,
		workers: workers,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// For development, allow all origins
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
		conns:  make(map[*websocket.Conn]bool),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler returns the HTTP handler serving /ws and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start starts the server and blocks
func (s *Server) Start() error {
	s.logger.Info("Starting advisor server", "addr", s.addr, "budget", s.budget)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Stop closes all active connections
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	return nil
}

// handleWebSocket upgrades the connection and serves advise requests
// until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = true
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("Client connected", "remote", conn.RemoteAddr(), "total", total)

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		_ = conn.Close()
		s.logger.Info("Client disconnected", "remote", conn.RemoteAddr())
	}()

	advisor := bot.New(
		bot.WithLogger(s.logger),
		bot.WithSeed(s.seed),
		bot.WithWorkers(s.workers))

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Error("Read error", "error", err)
			}
			return
		}

		switch msg.Type {
		case MessageAdvise:
			s.handleAdvise(conn, advisor, msg.Data)
		default:
			s.sendError(conn, fmt.Sprintf("unknown message type: %s", msg.Type))
		}
	}
}

// handleAdvise runs one simulation for the client's known cards.
func (s *Server) handleAdvise(conn *websocket.Conn, advisor *bot.PokerBot, data json.RawMessage) {
	var req AdviseData
	if err := json.Unmarshal(data, &req); err != nil {
		s.sendError(conn, fmt.Sprintf("invalid advise request: %s", err))
		return
	}

	hole, err := deck.ParseCards(req.Hole)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("invalid hole cards: %s", err))
		return
	}
	var board []deck.Card
	if req.Board != "" {
		if board, err = deck.ParseCards(req.Board); err != nil {
			s.sendError(conn, fmt.Sprintf("invalid board cards: %s", err))
			return
		}
	}

	if err := advisor.SetKnownCards(hole, board); err != nil {
		s.sendError(conn, err.Error())
		return
	}

	budget := s.budget
	if req.BudgetMs > 0 {
		budget = time.Duration(req.BudgetMs) * time.Millisecond
	}

	advice, err := advisor.Advise(budget)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("simulation failed: %s", err))
		return
	}

	s.send(conn, MessageAdvice, AdviceData{
		Phase:    advice.Phase.String(),
		WinRate:  advice.WinRate,
		Trials:   advice.Trials,
		Wins:     advice.Wins,
		Decision: advice.Verdict.String(),
	})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s *Server) send(conn *websocket.Conn, messageType MessageType, data interface{}) {
	msg, err := NewMessage(messageType, data)
	if err != nil {
		s.logger.Error("Failed to build message", "type", messageType, "error", err)
		return
	}
	if err := conn.WriteJSON(msg); err != nil {
		s.logger.Error("Failed to write message", "type", messageType, "error", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, message string) {
	s.send(conn, MessageError, ErrorData{Message: message})
}
