package simulator

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	s := New(Config{Rounds: 10})
	assert.Equal(t, 1, s.config.Players)
	assert.Equal(t, DefaultStandOn, s.config.StandOn)
	assert.Positive(t, s.config.Workers)
	assert.Equal(t, game.DefaultDealerRule(), s.config.DealerRule)
	assert.NotNil(t, s.config.Logger)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config Config
		errMsg string
	}{
		{name: "no rounds", config: Config{}, errMsg: "rounds must be positive"},
		{name: "too many players", config: Config{Rounds: 1, Players: 7}, errMsg: "players must be between 1 and 6"},
		{name: "stand on above 21", config: Config{Rounds: 1, StandOn: 22}, errMsg: "stand-on total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config).Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRunAccountsForEveryHand(t *testing.T) {
	t.Parallel()

	result, err := New(Config{
		Rounds:  200,
		Players: 3,
		Workers: 4,
		Seed:    12345,
		Logger:  quietLogger(),
	}).Run(context.Background())
	require.NoError(t, err)

	stats := result.Stats
	assert.Equal(t, 200, result.Rounds)
	assert.Equal(t, 600, stats.Hands)
	assert.Equal(t, stats.Hands, stats.Wins+stats.Losses+stats.Ties)
	assert.LessOrEqual(t, result.DealerBusts, result.Rounds)
	for seat := 1; seat <= 3; seat++ {
		assert.Equal(t, 200, stats.SeatResults[seat].Hands)
	}
	assert.NoError(t, stats.Validate())
}

func TestRunIsIndependentOfWorkerCount(t *testing.T) {
	t.Parallel()

	run := func(workers int) *Result {
		result, err := New(Config{
			Rounds:  120,
			Players: 2,
			StandOn: 15,
			Workers: workers,
			Seed:    99,
			Logger:  quietLogger(),
		}).Run(context.Background())
		require.NoError(t, err)
		return result
	}

	assert.Equal(t, run(1), run(5))
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{Rounds: 1000, Workers: 2, Logger: quietLogger()}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayersStandingOnTwoNeverBust(t *testing.T) {
	t.Parallel()

	// Players standing on 2 never hit, so they never bust
	result, err := New(Config{Rounds: 100, StandOn: 2, Seed: 7, Logger: quietLogger()}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.PlayerBusts)
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	config := Config{Rounds: 50, Players: 2, Seed: 3, Logger: quietLogger()}
	result, err := New(config).Run(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, result, New(config).config)

	out := buf.String()
	assert.Contains(t, out, "=== RESULTS: 50 rounds, 2 players standing on 17 ===")
	assert.Contains(t, out, "Hands played: 100")
	assert.Contains(t, out, "Dealer busts:")
	assert.Contains(t, out, "Seat 1: 50 hands")
	assert.Contains(t, out, "Seat 2: 50 hands")
}
