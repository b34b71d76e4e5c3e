package main

import (
	"context"
	"flag"
	"math/rand"
	"os"

	"github.com/RenzoDavila27/Truco-AI/internal/config"
	"github.com/RenzoDavila27/Truco-AI/internal/console"
	"github.com/RenzoDavila27/Truco-AI/internal/engine"
	"github.com/RenzoDavila27/Truco-AI/internal/player"
	"github.com/RenzoDavila27/Truco-AI/internal/simulation"
)

func runPlay(ctx context.Context, args []string) error {
	cfg, err := config.ParsePlayConfig(flag.NewFlagSet("play", flag.ExitOnError), args)
	if err != nil {
		return err
	}
	lang, logger, seed, err := setup(cfg.Common)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	opponent, err := player.New(cfg.Opponent, rng)
	if err != nil {
		return err
	}
	g := engine.NewGame(engine.WithRand(rng), engine.WithLogger(logger))
	r := console.NewRenderer(os.Stdout, lang, [2]string{})
	human := &console.Human{PlayerName: "human", Renderer: r}
	if cfg.Reveal {
		human.Peek = g.FullView
	}

	seat := engine.Player(cfg.Seat)
	var seats [2]player.Player
	seats[seat] = human
	seats[seat.Other()] = opponent

	res, err := simulation.PlayMatch(ctx, g, seats, r)
	if err != nil {
		return err
	}
	logger.Info("match finished", "winner", res.Winner, "points_j0", res.Points[0], "points_j1", res.Points[1], "hands", res.HandsPlayed)
	return nil
}
