// Package agent wraps the search engine behind the match-driving protocol:
// a flat name=value configuration line and an open/close episode lifecycle.
package agent

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nogoagent/board"
)

// Ploy selects which move-picking strategy an agent uses.
type Ploy int

const (
	// RandomPloy places a uniformly random legal move.
	RandomPloy Ploy = iota
	// MCTSPloy runs the tree search engine.
	MCTSPloy
)

// Config is the parsed form of a flat "key=value key=value ..." line, the
// same grammar the match-driving framework this agent plugs into feeds a
// player at startup.
type Config struct {
	Name   string
	Role   board.Color
	Seed   uint64
	Ploy   Ploy
	T      time.Duration
	SMax   int
	TestID string
}

// invalidNameChars mirrors the framework's own name validation: a name
// carrying any of these characters would break its protocol framing.
const invalidNameChars = "[]():; "

// ParseConfig parses args, a whitespace-separated sequence of key=value
// pairs, into a Config. Unset keys fall back to the framework's own
// defaults: name=random, role is required, ploy=random unless "mcts".
func ParseConfig(args string) (Config, error) {
	raw := map[string]string{"name": "random", "role": "unknown"}
	for _, pair := range strings.Fields(args) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return Config{}, fmt.Errorf("agent: malformed argument %q, want key=value", pair)
		}
		raw[key] = value
	}

	cfg := Config{Name: raw["name"], TestID: raw["testId"]}
	if cfg.TestID == "" {
		cfg.TestID = raw["Test"]
	}

	if strings.ContainsAny(cfg.Name, invalidNameChars) {
		return Config{}, fmt.Errorf("agent: invalid name %q", cfg.Name)
	}

	switch raw["role"] {
	case "black":
		cfg.Role = board.Black
	case "white":
		cfg.Role = board.White
	default:
		return Config{}, fmt.Errorf("agent: invalid role %q", raw["role"])
	}

	if raw["ploy"] == "mcts" {
		cfg.Ploy = MCTSPloy
	} else {
		cfg.Ploy = RandomPloy
	}

	if s, ok := raw["seed"]; ok {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("agent: invalid seed %q: %w", s, err)
		}
		cfg.Seed = seed
	} else {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if t, ok := raw["T"]; ok {
		millis, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return Config{}, fmt.Errorf("agent: invalid T %q: %w", t, err)
		}
		cfg.T = time.Duration(millis * float64(time.Millisecond))
	}

	s, ok := raw["S"]
	if !ok {
		s, ok = raw["S_MAX"]
	}
	if ok {
		sMax, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, fmt.Errorf("agent: invalid S %q: %w", s, err)
		}
		cfg.SMax = sMax
	}

	return cfg, nil
}
