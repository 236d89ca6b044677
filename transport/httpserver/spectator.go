package httpserver

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// spectatorEvent is broadcast to every connected spectator whenever /move
// accepts a request, mirroring the move actually returned to the caller.
type spectatorEvent struct {
	ID       string `json:"id"`
	Cell     int    `json:"cell"`
	Color    string `json:"color"`
	Resigned bool   `json:"resigned"`
}

type spectatorClient struct {
	conn *websocket.Conn
	send chan []byte
}

// spectatorHub fans broadcast events out to every connected spectator,
// dropping a client's message if it falls behind rather than blocking the
// publisher.
type spectatorHub struct {
	mu      sync.Mutex
	clients map[*spectatorClient]struct{}
}

func newSpectatorHub() *spectatorHub {
	return &spectatorHub{clients: make(map[*spectatorClient]struct{})}
}

func (h *spectatorHub) publish(event spectatorEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

func (h *spectatorHub) register(c *spectatorClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *spectatorHub) unregister(c *spectatorClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// serve registers conn as a spectator and blocks until it disconnects,
// writing every published event and discarding anything the client sends.
func (h *spectatorHub) serve(conn *websocket.Conn) {
	c := &spectatorClient{conn: conn, send: make(chan []byte, 16)}
	h.register(c)

	go func() {
		defer conn.Close()
		for msg := range c.send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.unregister(c)
			return
		}
	}
}
