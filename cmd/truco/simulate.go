package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/RenzoDavila27/Truco-AI/internal/config"
	"github.com/RenzoDavila27/Truco-AI/internal/i18n"
	"github.com/RenzoDavila27/Truco-AI/internal/simulation"
	"github.com/pterm/pterm"
)

func runSimulate(ctx context.Context, args []string) error {
	cfg, err := config.ParseSimulateConfig(flag.NewFlagSet("simulate", flag.ExitOnError), args)
	if err != nil {
		return err
	}
	lang, logger, seed, err := setup(cfg.Common)
	if err != nil {
		return err
	}
	p := i18n.NewPrinter(lang)

	spinner, _ := pterm.DefaultSpinner.Start(p.Sprintf("simulate.running", cfg.Games, cfg.Agent0, cfg.Agent1))
	summary, err := simulation.Run(ctx, simulation.Config{
		Agents:  [2]string{cfg.Agent0, cfg.Agent1},
		Games:   cfg.Games,
		Workers: cfg.Workers,
		Seed:    seed,
		Logger:  logger,
	})
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success()

	if err := writeFile(cfg.OutputCSV, func(f *os.File) error {
		return simulation.WriteCSV(f, summary.Results)
	}); err != nil {
		return err
	}
	pterm.Success.Println(p.Sprintf("summary.saved", cfg.OutputCSV))

	if err := writeFile(cfg.OutputSummary, func(f *os.File) error {
		return simulation.WriteSummary(f, summary, lang)
	}); err != nil {
		return err
	}
	pterm.Success.Println(p.Sprintf("summary.saved_report", cfg.OutputSummary))

	return simulation.WriteSummary(os.Stdout, summary, lang)
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
