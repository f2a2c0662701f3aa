// Package simulator plays many blackjack rounds with rule-based players and
// aggregates the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// DefaultStandOn is the total simulated players stand on by default
const DefaultStandOn = 17

// Config holds configuration for running simulations
type Config struct {
	Rounds     int
	Players    int
	StandOn    int // Players hit below this total and stay on it or above
	Workers    int
	Seed       int64
	DealerRule game.DealerRule
	Logger     *log.Logger
}

// Result is the aggregate of a simulation run
type Result struct {
	Rounds      int
	DealerBusts int // Rounds in which the dealer busted
	Stats       statistics.Statistics
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration. Zero values fall
// back to one player, standing on 17, one worker per CPU and the default
// dealer rule.
func New(config Config) *Simulator {
	if config.Players == 0 {
		config.Players = 1
	}
	if config.StandOn == 0 {
		config.StandOn = DefaultStandOn
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.DealerRule.Threshold == 0 {
		config.DealerRule = game.DefaultDealerRule()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Validate checks the configuration
func (s *Simulator) Validate() error {
	switch {
	case s.config.Rounds <= 0:
		return errors.New("rounds must be positive")
	case s.config.Players < 1 || s.config.Players > game.MaxPlayers:
		return fmt.Errorf("players must be between 1 and %d", game.MaxPlayers)
	case s.config.StandOn < 2 || s.config.StandOn > game.BustLimit:
		return fmt.Errorf("stand-on total must be between 2 and %d", game.BustLimit)
	}
	return nil
}

// Run plays every round across the configured workers. Round i is seeded
// from (Seed, i) so the result does not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	workers := min(s.config.Workers, s.config.Rounds)
	logger := s.config.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"players", s.config.Players,
		"stand_on", s.config.StandOn,
		"workers", workers,
		"seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *Result, workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			partial := &Result{}
			for i := w; i < s.config.Rounds; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := s.playRound(ctx, i, partial); err != nil {
					return err
				}
			}

			select {
			case results <- partial:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	total := &Result{}
	for partial := range results {
		total.Rounds += partial.Rounds
		total.DealerBusts += partial.DealerBusts
		total.Stats.Merge(&partial.Stats)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := total.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete", "rounds", total.Rounds, "mean", total.Stats.Mean())
	return total, nil
}

// playRound plays round i and adds it to partial
func (s *Simulator) playRound(ctx context.Context, i int, partial *Result) error {
	seed := randutil.Derive(s.config.Seed, i)
	player := game.DealerRule{Threshold: s.config.StandOn - 1}

	seats := make([]game.Seat, s.config.Players)
	for p := range seats {
		seats[p] = game.Seat{Name: fmt.Sprintf("Bot %d", p+1), Agent: player}
	}

	r, err := game.NewRound(randutil.New(seed), seats,
		game.WithDealerRule(s.config.DealerRule),
		game.WithLogger(s.config.Logger))
	if err != nil {
		return err
	}

	result, err := r.Play(ctx)
	if err != nil {
		return fmt.Errorf("round %d (seed %d): %w", i, seed, err)
	}

	partial.Rounds++
	if result.Dealer.Status == game.Busted {
		partial.DealerBusts++
	}
	for seat, res := range result.Results {
		partial.Stats.Add(statistics.HandResult{
			Seed:      seed,
			Seat:      seat + 1,
			Outcome:   res.Outcome,
			Reason:    res.Reason,
			Points:    res.Player.Points,
			Blackjack: res.Player.Blackjack,
		})
	}
	return nil
}

// PrintSummary writes a summary of simulation results
func PrintSummary(w io.Writer, result *Result, config Config) {
	stats := &result.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS: %d rounds, %d players standing on %d ===\n",
		result.Rounds, stats.Hands/max(result.Rounds, 1), config.StandOn)
	fmt.Fprintf(w, "Hands played: %d\n", stats.Hands)
	fmt.Fprintf(w, "Wins: %d (%.1f%%)\n", stats.Wins, stats.Rate(stats.Wins)*100)
	fmt.Fprintf(w, "Losses: %d (%.1f%%)\n", stats.Losses, stats.Rate(stats.Losses)*100)
	fmt.Fprintf(w, "Ties: %d (%.1f%%)\n", stats.Ties, stats.Rate(stats.Ties)*100)

	fmt.Fprintf(w, "\n=== BUSTS ===\n")
	fmt.Fprintf(w, "Player busts: %d (%.1f%% of hands)\n", stats.PlayerBusts, stats.Rate(stats.PlayerBusts)*100)
	if result.Rounds > 0 {
		fmt.Fprintf(w, "Dealer busts: %d (%.1f%% of rounds)\n",
			result.DealerBusts, float64(result.DealerBusts)/float64(result.Rounds)*100)
	}
	fmt.Fprintf(w, "Blackjacks: %d (%.1f%% of hands)\n", stats.Blackjacks, stats.Rate(stats.Blackjacks)*100)

	fmt.Fprintf(w, "\n=== EVEN MONEY ===\n")
	fmt.Fprintf(w, "Mean: %.4f units/hand\n", stats.Mean())
	fmt.Fprintf(w, "Std Error: %.4f units\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] units/hand\n", low, high)

	fmt.Fprintf(w, "\n=== SEAT ANALYSIS ===\n")
	for seat := 1; seat <= game.MaxPlayers; seat++ {
		if ss := stats.SeatResults[seat]; ss.Hands > 0 {
			fmt.Fprintf(w, "Seat %d: %d hands, %.3f units/hand\n", seat, ss.Hands, stats.SeatMean(seat))
		}
	}
}
