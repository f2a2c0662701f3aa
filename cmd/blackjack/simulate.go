package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

type SimulateCmd struct {
	Config  string `short:"c" default:"blackjack.hcl" help:"HCL config file for the dealer rule and logging"`
	Rounds  int    `short:"n" default:"10000" help:"Number of rounds to play"`
	Players int    `short:"p" default:"1" help:"Players per round (1-6)"`
	StandOn int    `default:"17" help:"Total the simulated players stand on"`
	Workers int    `short:"w" default:"0" help:"Parallel workers (0 uses every CPU)"`
	Seed    int64  `help:"Base seed (0 uses the config seed or the clock)"`
	Debug   bool   `help:"Write debug logs"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.Config, err)
	}

	logger, closeLog, err := setupLogger(cfg, c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	simConfig := simulator.Config{
		Rounds:     c.Rounds,
		Players:    c.Players,
		StandOn:    c.StandOn,
		Workers:    c.Workers,
		Seed:       randutil.ResolveSeed(cfg.Seed),
		DealerRule: cfg.DealerRule(),
		Logger:     logger,
	}

	start := time.Now()
	result, err := simulator.New(simConfig).Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, result, simConfig)
	fmt.Printf("\nSeed: %d • %s\n", simConfig.Seed, time.Since(start).Round(time.Millisecond))
	return nil
}
