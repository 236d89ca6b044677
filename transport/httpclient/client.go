// Package httpclient is the counterpart to transport/httpserver: it lets a
// match-driving process request a move from an agent running remotely.
package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"nogoagent/board"
	"nogoagent/placement"
)

// Client requests moves from one remote agent's HTTP server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client targeting baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: &http.Client{}}
}

type moveRequest struct {
	Cells [board.N]int `json:"cells"`
}

type moveResponse struct {
	Cell     int    `json:"cell"`
	Color    string `json:"color"`
	Resigned bool   `json:"resigned"`
	Episodes int64  `json:"episodes"`
}

// RequestMove posts the board to the remote agent's /move endpoint and
// returns the placement it chose.
func (c *Client) RequestMove(b board.Board) (placement.Placement, error) {
	req := moveRequest{}
	for i := 0; i < board.N; i++ {
		switch b.Occupant(board.Cell(i)) {
		case board.Black:
			req.Cells[i] = 1
		case board.White:
			req.Cells[i] = 2
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return placement.Placement{}, err
	}

	resp, err := c.http.Post(c.baseURL+"/move", "application/json", bytes.NewReader(body))
	if err != nil {
		return placement.Placement{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return placement.Placement{}, fmt.Errorf("httpclient: remote agent returned status %d", resp.StatusCode)
	}

	var mr moveResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return placement.Placement{}, err
	}

	if mr.Resigned {
		return placement.Resign, nil
	}

	color, err := parseColor(mr.Color)
	if err != nil {
		return placement.Placement{}, err
	}
	return placement.Placement{Cell: board.Cell(mr.Cell), Color: color}, nil
}

func parseColor(s string) (board.Color, error) {
	switch s {
	case "black":
		return board.Black, nil
	case "white":
		return board.White, nil
	default:
		return board.Empty, fmt.Errorf("httpclient: invalid color %q", s)
	}
}
