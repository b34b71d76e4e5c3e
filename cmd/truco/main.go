package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/RenzoDavila27/Truco-AI/internal/config"
	"github.com/RenzoDavila27/Truco-AI/internal/console"
	"github.com/RenzoDavila27/Truco-AI/internal/i18n"
	"golang.org/x/text/language"
)

const usage = `usage: truco <command> [flags]

commands:
  play      play against an agent
  watch     watch two agents play one match
  simulate  play a series of matches and write the reports

run "truco <command> -h" for the flags of a command`

func main() {
	if err := config.LoadDotEnv(); err != nil {
		config.Exitf("truco: %v", err)
	}
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "play":
		err = runPlay(ctx, args)
	case "watch":
		err = runWatch(ctx, args)
	case "simulate", "simulation":
		err = runSimulate(ctx, args)
	case "-h", "--help", "help":
		fmt.Println(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		stop()
		config.Exitf("truco %s: %v", cmd, err)
	}
}

// setup resolves the settings every command shares. A zero seed is
// replaced by one taken from the clock and logged so the run can be repeated.
func setup(c config.Common) (language.Tag, *slog.Logger, int64, error) {
	lang, err := i18n.Parse(c.Lang)
	if err != nil {
		return lang, nil, 0, err
	}
	logger, err := console.NewLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return lang, nil, 0, err
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "lang", lang.String())
	return lang, logger, seed, nil
}
