// Package config reads the settings of the truco commands from the
// environment and the command line, flags taking precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
)

// Common holds the settings shared by every subcommand.
type Common struct {
	Lang     string `env:"TRUCO_LANG" envDefault:"es"`
	LogLevel string `env:"TRUCO_LOG_LEVEL" envDefault:"warn"`
	// Seed drives the deck and the agents; 0 picks one from the clock.
	Seed int64 `env:"TRUCO_SEED" envDefault:"0"`
}

func (c *Common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.Lang, "lang", c.Lang, "Language for table text: es or en")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level: debug, info, warn or error")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed, 0 for a clock based one")
}

// PlayConfig configures a human against an agent.
type PlayConfig struct {
	Common
	Seat     int    `env:"TRUCO_HUMAN_SEAT" envDefault:"0"`
	Opponent string `env:"TRUCO_OPPONENT" envDefault:"rational"`
	Reveal   bool   `env:"TRUCO_REVEAL" envDefault:"false"`
}

// ParsePlayConfig parses environment and flags into PlayConfig.
func ParsePlayConfig(fs *flag.FlagSet, args []string) (PlayConfig, error) {
	var cfg PlayConfig
	if err := ParseEnv(&cfg); err != nil {
		return PlayConfig{}, err
	}
	cfg.register(fs)
	fs.IntVar(&cfg.Seat, "seat", cfg.Seat, "Seat of the human player, 0 or 1")
	fs.StringVar(&cfg.Opponent, "opponent", cfg.Opponent, "Agent to play against")
	fs.BoolVar(&cfg.Reveal, "reveal", cfg.Reveal, "Show the opponent's cards")
	if err := parseArgs(fs, args); err != nil {
		return PlayConfig{}, err
	}
	if cfg.Seat != 0 && cfg.Seat != 1 {
		return PlayConfig{}, fmt.Errorf("seat must be 0 or 1, got %d", cfg.Seat)
	}
	return cfg, nil
}

// WatchConfig configures a rendered match between two agents.
type WatchConfig struct {
	Common
	Agent0 string `env:"TRUCO_AGENT_0" envDefault:"random"`
	Agent1 string `env:"TRUCO_AGENT_1" envDefault:"rational"`
}

// ParseWatchConfig parses environment and flags into WatchConfig.
func ParseWatchConfig(fs *flag.FlagSet, args []string) (WatchConfig, error) {
	var cfg WatchConfig
	if err := ParseEnv(&cfg); err != nil {
		return WatchConfig{}, err
	}
	cfg.register(fs)
	fs.StringVar(&cfg.Agent0, "agent0", cfg.Agent0, "Agent for seat J0")
	fs.StringVar(&cfg.Agent1, "agent1", cfg.Agent1, "Agent for seat J1")
	if err := parseArgs(fs, args); err != nil {
		return WatchConfig{}, err
	}
	return cfg, nil
}

// SimulateConfig configures a series of agent matches.
type SimulateConfig struct {
	Common
	Agent0        string `env:"TRUCO_AGENT_0" envDefault:"random"`
	Agent1        string `env:"TRUCO_AGENT_1" envDefault:"rational"`
	Games         int    `env:"TRUCO_GAMES" envDefault:"100"`
	Workers       int    `env:"TRUCO_WORKERS" envDefault:"0"`
	OutputCSV     string `env:"TRUCO_OUTPUT_CSV"`
	OutputSummary string `env:"TRUCO_OUTPUT_SUMMARY"`
}

// ParseSimulateConfig parses environment and flags into SimulateConfig.
func ParseSimulateConfig(fs *flag.FlagSet, args []string) (SimulateConfig, error) {
	var cfg SimulateConfig
	if err := ParseEnv(&cfg); err != nil {
		return SimulateConfig{}, err
	}
	cfg.register(fs)
	fs.StringVar(&cfg.Agent0, "agent0", cfg.Agent0, "Agent for seat J0")
	fs.StringVar(&cfg.Agent1, "agent1", cfg.Agent1, "Agent for seat J1")
	fs.IntVar(&cfg.Games, "games", cfg.Games, "Number of matches to play")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Matches played at once, 0 for one per CPU")
	fs.StringVar(&cfg.OutputCSV, "csv", cfg.OutputCSV, "Per match CSV file (default <agent0>vs<agent1>results.csv)")
	fs.StringVar(&cfg.OutputSummary, "summary", cfg.OutputSummary, "Summary file (default <agent0>vs<agent1>summary.txt)")
	if err := parseArgs(fs, args); err != nil {
		return SimulateConfig{}, err
	}
	if cfg.Games < 0 {
		return SimulateConfig{}, fmt.Errorf("games must not be negative, got %d", cfg.Games)
	}
	if cfg.Workers < 0 {
		return SimulateConfig{}, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.OutputCSV == "" {
		cfg.OutputCSV = fmt.Sprintf("%svs%sresults.csv", cfg.Agent0, cfg.Agent1)
	}
	if cfg.OutputSummary == "" {
		cfg.OutputSummary = fmt.Sprintf("%svs%ssummary.txt", cfg.Agent0, cfg.Agent1)
	}
	return cfg, nil
}

func parseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}
