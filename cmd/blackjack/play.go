package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/session"
	"github.com/lox/blackjack/internal/tui"
	"github.com/muesli/termenv"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#2E7D32")).
	Padding(0, 1).
	Bold(true)

type PlayCmd struct {
	Config  string `short:"c" default:"blackjack.hcl" help:"HCL config file (missing file uses defaults)"`
	Players int    `short:"p" help:"Number of players (1-6); asked when not set"`
	Seed    int64  `help:"Seed for the shuffle (0 uses the config seed or the clock)"`
	Pace    string `help:"Delay between dealer steps, e.g. 500ms or 0"`
	NoColor bool   `help:"Disable colours"`
	TUI     bool   `name:"tui" help:"Use the full screen interface"`
	Debug   bool   `help:"Write debug logs"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.Config, err)
	}

	logger, closeLog, err := setupLogger(cfg, c.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Display.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	seed := randutil.ResolveSeed(cfg.Seed)
	logger.Info("Starting game", "seed", seed, "players", cfg.Table.Players, "tui", cfg.Display.TUI)

	sessionConfig := session.Config{
		Players:    cfg.Table.Players,
		PlayerName: cfg.PlayerName,
		DealerName: cfg.Table.DealerName,
		DealerRule: cfg.DealerRule(),
		Logger:     logger,
	}

	if cfg.Display.TUI {
		err = runTUI(ctx, cancel, seed, sessionConfig, logger)
	} else {
		err = runConsole(ctx, cfg, seed, sessionConfig, logger)
	}
	if isQuit(err) {
		logger.Info("Player quit", "reason", err)
		return nil
	}
	return err
}

// applyFlags lets command line flags override the config file
func (c *PlayCmd) applyFlags(cfg *config.Config) {
	if c.Players != 0 {
		cfg.Table.Players = c.Players
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Pace != "" {
		cfg.Display.Pace = c.Pace
	}
	if c.NoColor {
		cfg.Display.NoColor = true
	}
	if c.TUI {
		cfg.Display.TUI = true
	}
}

func runConsole(ctx context.Context, cfg *config.Config, seed int64, sc session.Config, logger *log.Logger) error {
	fmt.Println(titleStyle.Render("♠ ♥ Blackjack ♦ ♣"))
	fmt.Println()

	display := console.NewDisplay(ctx, os.Stdout, console.DisplayOptions{
		NoColor: cfg.Display.NoColor,
		Pacer:   console.NewPacer(nil, cfg.Pace()),
		Logger:  logger,
	})
	prompter := console.NewPrompter(os.Stdin, os.Stdout, logger)
	defer prompter.Close()
	table := console.NewTable(prompter, display)

	return session.New(table, randutil.New(seed), sc).Run(ctx)
}

func runTUI(ctx context.Context, cancel context.CancelFunc, seed int64, sc session.Config, logger *log.Logger) error {
	model := tui.NewTUIModel(logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	bridge := tui.NewBridge(program, model, logger)

	done := make(chan error, 1)
	go func() {
		err := session.New(bridge, randutil.New(seed), sc).Run(ctx)
		model.SendQuitSignal()
		done <- err
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		cancel()
		return fmt.Errorf("running TUI: %w", err)
	}

	// The program can exit first (ctrl+c); stop the session and collect it
	cancel()
	return <-done
}

func isQuit(err error) bool {
	return errors.Is(err, console.ErrInputClosed) ||
		errors.Is(err, tui.ErrQuit) ||
		errors.Is(err, context.Canceled)
}
