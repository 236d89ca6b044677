// Command nogoserver starts an agent's HTTP front end for remote play.
package main

import (
	"flag"
	"net/http"
	"os"

	"nogoagent/agent"
	"nogoagent/transport/httpserver"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	config := flag.String("config", "name=server role=black ploy=mcts", "agent configuration line")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := agent.ParseConfig(*config)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	a := agent.New(cfg, log)
	a.OpenEpisode()
	defer a.CloseEpisode()

	zapLog, err := zap.NewProduction()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize access logger")
	}
	defer zapLog.Sync()

	srv := httpserver.New(a, zapLog)
	log.Info().Str("addr", *addr).Msg("listening")
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
