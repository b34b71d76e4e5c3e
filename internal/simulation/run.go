package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"runtime"

	"github.com/RenzoDavila27/Truco-AI/internal/engine"
	"github.com/RenzoDavila27/Truco-AI/internal/player"
	"golang.org/x/sync/errgroup"
)

// Config describes a series of matches between two registered agents.
type Config struct {
	Agents [2]string
	Games  int
	// Workers bounds concurrent matches, 0 means GOMAXPROCS.
	Workers int
	Seed    int64
	Logger  *slog.Logger
}

// Summary aggregates a series.
type Summary struct {
	Agents         [2]string
	Games          int
	Wins           [2]int
	Ties           int
	AvgPoints      [2]float64
	AvgHandsPlayed float64
	AvgHandsWon    [2]float64
	Results        []Result
}

// Run plays cfg.Games matches. Match i runs on its own engine seeded with
// cfg.Seed+i, so a series is reproducible regardless of scheduling.
func Run(ctx context.Context, cfg Config) (Summary, error) {
	if cfg.Games < 0 {
		return Summary{}, fmt.Errorf("games must not be negative, got %d", cfg.Games)
	}
	for _, name := range cfg.Agents {
		if _, err := player.New(name, nil); err != nil {
			return Summary{}, err
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, cfg.Games)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range cfg.Games {
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			g := engine.NewGame(engine.WithRand(rng), engine.WithLogger(logger.With("game", i+1)))
			var seats [2]player.Player
			for s, name := range cfg.Agents {
				p, err := player.New(name, rng)
				if err != nil {
					return err
				}
				seats[s] = p
			}
			res, err := PlayMatch(ctx, g, seats)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			res.Game = i + 1
			res.Agents = cfg.Agents
			results[i] = res
			logger.Info("match finished", "game", res.Game, "winner", res.Winner,
				"points_j0", res.Points[0], "points_j1", res.Points[1], "hands", res.HandsPlayed)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	return Summarize(cfg.Agents, results), nil
}

// Summarize aggregates results.
func Summarize(agents [2]string, results []Result) Summary {
	s := Summary{Agents: agents, Games: len(results), Results: results}
	var points, handsWon [2]int
	hands := 0
	for _, r := range results {
		switch r.Winner {
		case WinnerPlayer0:
			s.Wins[0]++
		case WinnerPlayer1:
			s.Wins[1]++
		default:
			s.Ties++
		}
		for i := range 2 {
			points[i] += r.Points[i]
			handsWon[i] += r.HandsWon[i]
		}
		hands += r.HandsPlayed
	}
	if s.Games == 0 {
		return s
	}
	n := float64(s.Games)
	for i := range 2 {
		s.AvgPoints[i] = float64(points[i]) / n
		s.AvgHandsWon[i] = float64(handsWon[i]) / n
	}
	s.AvgHandsPlayed = float64(hands) / n
	return s
}

// WinRate is player 0's share of matches, ties counted as half.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return (float64(s.Wins[0]) + 0.5*float64(s.Ties)) / float64(s.Games)
}

// WilsonCI95 bounds player 0's win rate with a Wilson score interval.
func (s Summary) WilsonCI95() (low, high float64) {
	if s.Games <= 0 {
		return 0, 1
	}
	z := 1.96
	n := float64(s.Games)
	p := s.WinRate()
	den := 1 + (z*z)/n
	center := p + (z*z)/(2*n)
	half := z * math.Sqrt((p*(1-p))/n+(z*z)/(4*n*n))
	return (center - half) / den, (center + half) / den
}
