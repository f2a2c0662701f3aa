// Package config loads and writes the HCL table configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
)

// DefaultFile is the config path used when none is given
const DefaultFile = "blackjack.hcl"

const (
	defaultPace    = "500ms"
	defaultLevel   = "info"
	defaultLogFile = "blackjack.log"
)

// Config represents the complete table configuration
type Config struct {
	Seed    int64            `hcl:"seed,optional"`
	Table   *TableSettings   `hcl:"table,block"`
	Dealer  *DealerSettings  `hcl:"dealer,block"`
	Display *DisplaySettings `hcl:"display,block"`
	Log     *LogSettings     `hcl:"log,block"`
}

// TableSettings controls who sits at the table
type TableSettings struct {
	Players     int      `hcl:"players,optional"` // 0 asks interactively
	PlayerNames []string `hcl:"player_names,optional"`
	DealerName  string   `hcl:"dealer_name,optional"`
}

// DealerSettings controls the dealer's fixed policy
type DealerSettings struct {
	Threshold   int  `hcl:"threshold,optional"`
	StandOnSoft bool `hcl:"stand_on_soft,optional"`
}

// DisplaySettings controls console output
type DisplaySettings struct {
	Pace    string `hcl:"pace,optional"`
	NoColor bool   `hcl:"no_color,optional"`
	TUI     bool   `hcl:"tui,optional"`
}

// LogSettings controls the diagnostic log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Table: &TableSettings{
			PlayerNames: []string{},
			DealerName:  game.DefaultDealerName,
		},
		Dealer: &DealerSettings{
			Threshold: game.DefaultDealerThreshold,
		},
		Display: &DisplaySettings{
			Pace: defaultPace,
		},
		Log: &LogSettings{
			Level: defaultLevel,
			File:  defaultLogFile,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills missing blocks and zero values
func (c *Config) applyDefaults() {
	def := Default()

	if c.Table == nil {
		c.Table = def.Table
	}
	if c.Table.DealerName == "" {
		c.Table.DealerName = def.Table.DealerName
	}
	if c.Table.PlayerNames == nil {
		c.Table.PlayerNames = []string{}
	}

	if c.Dealer == nil {
		c.Dealer = def.Dealer
	}
	if c.Dealer.Threshold == 0 {
		c.Dealer.Threshold = def.Dealer.Threshold
	}

	if c.Display == nil {
		c.Display = def.Display
	}
	if c.Display.Pace == "" {
		c.Display.Pace = def.Display.Pace
	}

	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	c.applyDefaults()

	if c.Table.Players < 0 || c.Table.Players > game.MaxPlayers {
		return fmt.Errorf("table: players must be between 1 and %d, or 0 to ask", game.MaxPlayers)
	}
	if c.Table.Players > 0 && len(c.Table.PlayerNames) > c.Table.Players {
		return fmt.Errorf("table: %d player names given for %d players", len(c.Table.PlayerNames), c.Table.Players)
	}
	if len(c.Table.PlayerNames) > game.MaxPlayers {
		return fmt.Errorf("table: at most %d player names are allowed", game.MaxPlayers)
	}

	// Check the names seats will actually get, defaults included. When the
	// count is asked at the table any count up to the maximum must work.
	seats := c.Table.Players
	if seats == 0 {
		seats = game.MaxPlayers
	}
	seen := map[string]bool{c.Table.DealerName: true}
	for i := 0; i < seats; i++ {
		name := c.PlayerName(i)
		if name == "" {
			return fmt.Errorf("table: player names must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("table: player name %q is used twice or by the dealer", name)
		}
		seen[name] = true
	}

	if c.Dealer.Threshold < 1 || c.Dealer.Threshold >= game.BustLimit {
		return fmt.Errorf("dealer: threshold must be between 1 and %d", game.BustLimit-1)
	}

	pace, err := time.ParseDuration(c.Display.Pace)
	if err != nil {
		return fmt.Errorf("display: invalid pace %q: %w", c.Display.Pace, err)
	}
	if pace < 0 {
		return fmt.Errorf("display: pace must not be negative")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

// PlayerName returns the configured name for seat i (zero based), or
// "Player N" when none is set.
func (c *Config) PlayerName(i int) string {
	if c.Table != nil && i < len(c.Table.PlayerNames) {
		return c.Table.PlayerNames[i]
	}
	return fmt.Sprintf("Player %d", i+1)
}

// DealerRule returns the dealer policy described by the config
func (c *Config) DealerRule() game.DealerRule {
	if c.Dealer == nil {
		return game.DefaultDealerRule()
	}
	return game.DealerRule{Threshold: c.Dealer.Threshold, StandOnSoft: c.Dealer.StandOnSoft}
}

// Pace returns the display delay. Invalid values fall back to no pacing;
// Validate reports them.
func (c *Config) Pace() time.Duration {
	if c.Display == nil {
		return 0
	}
	d, err := time.ParseDuration(c.Display.Pace)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// LogLevel returns the parsed log level, defaulting to info
func (c *Config) LogLevel() log.Level {
	if c.Log == nil {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Encode renders the configuration as formatted HCL
func (c *Config) Encode() []byte {
	out := *c
	out.applyDefaults()

	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(&out, f.Body())
	return hclwrite.Format(f.Bytes())
}

// Write stores the configuration as HCL, replacing any existing file
// atomically.
func Write(filename string, cfg *Config) error {
	if err := fileutil.WriteFileAtomic(filename, cfg.Encode(), 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", filename, err)
	}
	return nil
}
