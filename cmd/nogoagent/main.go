// Command nogoagent is the stdin/stdout shell a match-driving framework
// spawns one of per game: it reads a single configuration line, then
// alternates reading the opponent's placements and writing its own.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"nogoagent/agent"
	"nogoagent/board"
	"nogoagent/placement"

	"github.com/rs/zerolog"
)

func main() {
	verbose := flag.Bool("v", false, "log search diagnostics to stderr")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.WarnLevel)
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		log.Fatal().Msg("expected a configuration line on stdin, got EOF")
	}

	cfg, err := agent.ParseConfig(scanner.Text())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	a := agent.New(cfg, log)
	a.OpenEpisode()
	defer a.CloseEpisode()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var b board.Board
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}

		b, err = applyOpponentLine(b, line, a.Role().Opponent())
		if err != nil {
			log.Fatal().Err(err).Str("line", line).Msg("malformed opponent move")
		}

		move := a.TakeAction(b)
		if move == placement.Resign {
			fmt.Fprintln(out, "-1,-1")
			out.Flush()
			return
		}

		b, _ = b.TryPlace(move.Cell, move.Color)
		fmt.Fprintln(out, move.Cell.String())
		out.Flush()
	}
}

// applyOpponentLine parses a "x,y" cell and applies it for color, or treats
// the line "pass" as the opponent resigning their turn without a placement.
func applyOpponentLine(b board.Board, line string, color board.Color) (board.Board, error) {
	if line == "pass" || line == "resign" {
		return b, nil
	}

	x, y, err := parseCell(line)
	if err != nil {
		return b, err
	}

	after, legal := b.TryPlace(board.CellAt(x, y), color)
	if legal != board.Legal {
		return b, fmt.Errorf("illegal opponent move at %s", line)
	}
	return after, nil
}

func parseCell(line string) (x, y int, err error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y, got %q", line)
	}
	x, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	y, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
