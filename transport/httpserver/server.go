// Package httpserver exposes an agent over HTTP for remote play: a
// request/response move endpoint plus a websocket spectator stream.
package httpserver

import (
	"encoding/json"
	"net/http"

	"nogoagent/agent"
	"nogoagent/board"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// moveRequest is the JSON body POSTed to /move: the full 81-cell board,
// flattened row-major, using 0/1/2 for empty/black/white.
type moveRequest struct {
	Cells [board.N]int `json:"cells"`
}

// moveResponse carries the chosen placement, or the resignation sentinel if
// none could be found. Episodes is always zero: the agent returns only the
// placement, so no search diagnostics reach the server.
type moveResponse struct {
	Cell     int    `json:"cell"`
	Color    string `json:"color"`
	Resigned bool   `json:"resigned"`
	Episodes int64  `json:"episodes"`
}

// Server wires an *agent.Agent behind chi's router and fans every accepted
// move out to connected spectators over websocket.
type Server struct {
	agent *agent.Agent
	log   *zap.Logger
	hub   *spectatorHub
	mux   *chi.Mux
}

// New constructs a Server for a.
func New(a *agent.Agent, log *zap.Logger) *Server {
	s := &Server{
		agent: a,
		log:   log,
		hub:   newSpectatorHub(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(zapAccessLog(log))
	r.Post("/move", s.handleMove)
	r.Get("/watch", s.handleWatch)
	s.mux = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b := decodeBoard(req.Cells)
	p := s.agent.TakeAction(b)

	resp := moveResponse{Resigned: p.IsSentinel()}
	if !p.IsSentinel() {
		resp.Cell = int(p.Cell)
		resp.Color = p.Color.String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)

	s.hub.publish(spectatorEvent{
		ID:       uuid.NewString(),
		Resigned: resp.Resigned,
		Cell:     resp.Cell,
		Color:    resp.Color,
	})
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("spectator upgrade failed", zap.Error(err))
		return
	}
	s.hub.serve(conn)
}

// decodeBoard replays cells onto a fresh board in ascending cell order.
// Placements are replayed through TryPlace rather than trusted verbatim, so
// a malicious or buggy client cannot hand the engine an impossible board.
func decodeBoard(cells [board.N]int) board.Board {
	var b board.Board
	for i, v := range cells {
		switch v {
		case 1:
			b, _ = b.TryPlace(board.Cell(i), board.Black)
		case 2:
			b, _ = b.TryPlace(board.Cell(i), board.White)
		}
	}
	return b
}

func zapAccessLog(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
			)
		})
	}
}
