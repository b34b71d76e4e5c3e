package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"

	"github.com/RenzoDavila27/Truco-AI/internal/config"
	"github.com/RenzoDavila27/Truco-AI/internal/console"
	"github.com/RenzoDavila27/Truco-AI/internal/engine"
	"github.com/RenzoDavila27/Truco-AI/internal/observation"
	"github.com/RenzoDavila27/Truco-AI/internal/player"
	"github.com/RenzoDavila27/Truco-AI/internal/simulation"
)

// watched draws the board with both hands face up before its agent
// decides, and logs the agent's observation vector at debug level.
type watched struct {
	player.Player
	g      *engine.Game
	r      *console.Renderer
	logger *slog.Logger
}

func (w watched) ChooseAction(v engine.View, mask engine.Mask) (engine.Action, error) {
	w.logger.Debug("observation", "seat", v.Seat, "obs", observation.Encode(v))
	if err := w.r.Board(w.g.FullView(v.Seat)); err != nil {
		return 0, err
	}
	return w.Player.ChooseAction(v, mask)
}

func runWatch(ctx context.Context, args []string) error {
	cfg, err := config.ParseWatchConfig(flag.NewFlagSet("watch", flag.ExitOnError), args)
	if err != nil {
		return err
	}
	lang, logger, seed, err := setup(cfg.Common)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	g := engine.NewGame(engine.WithRand(rng), engine.WithLogger(logger))
	r := console.NewRenderer(os.Stdout, lang, [2]string{"J0 " + cfg.Agent0, "J1 " + cfg.Agent1})

	var seats [2]player.Player
	for i, name := range []string{cfg.Agent0, cfg.Agent1} {
		agent, err := player.New(name, rng)
		if err != nil {
			return err
		}
		seats[i] = watched{Player: agent, g: g, r: r, logger: logger}
	}
	_, err = simulation.PlayMatch(ctx, g, seats, r)
	return err
}
