package statistics

import (
	"testing"

	"github.com/lox/blackjack/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsEmpty(t *testing.T) {
	t.Parallel()

	var s Statistics
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.StdDev())
	assert.Equal(t, 0.0, s.StdError())
	assert.Equal(t, 0.0, s.Rate(s.Wins))
	assert.Error(t, s.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	t.Parallel()

	var s Statistics
	s.Add(HandResult{Seat: 1, Outcome: game.Win, Reason: game.HigherTotal, Points: 20})
	s.Add(HandResult{Seat: 2, Outcome: game.Win, Reason: game.DealerBusted, Points: 15, Blackjack: false})
	s.Add(HandResult{Seat: 1, Outcome: game.Lose, Reason: game.PlayerBusted, Points: 25})
	s.Add(HandResult{Seat: 2, Outcome: game.Tie, Reason: game.EqualTotal, Points: 21, Blackjack: true})

	require.NoError(t, s.Validate())
	assert.Equal(t, 4, s.Hands)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.Ties)
	assert.Equal(t, 1, s.PlayerBusts)
	assert.Equal(t, 1, s.DealerBusts)
	assert.Equal(t, 1, s.Blackjacks)
	assert.InDelta(t, 0.25, s.Mean(), 1e-9)
	assert.InDelta(t, 0.5, s.Rate(s.Wins), 1e-9)
	assert.InDelta(t, 0.0, s.SeatMean(1), 1e-9)
	assert.InDelta(t, 0.5, s.SeatMean(2), 1e-9)
	assert.Equal(t, 0.0, s.SeatMean(7))
}

func TestStatisticsVariance(t *testing.T) {
	t.Parallel()

	var s Statistics
	s.Add(HandResult{Seat: 1, Outcome: game.Win})
	s.Add(HandResult{Seat: 1, Outcome: game.Lose})

	// Values 1 and -1: mean 0, sample variance 2
	assert.InDelta(t, 2.0, s.Variance(), 1e-9)
	low, high := s.ConfidenceInterval95()
	assert.Less(t, low, 0.0)
	assert.Greater(t, high, 0.0)
}

func TestStatisticsMerge(t *testing.T) {
	t.Parallel()

	var a, b, all Statistics
	results := []HandResult{
		{Seat: 1, Outcome: game.Win, Reason: game.DealerBusted},
		{Seat: 2, Outcome: game.Lose, Reason: game.LowerTotal},
		{Seat: 3, Outcome: game.Tie, Reason: game.EqualTotal, Blackjack: true},
		{Seat: 1, Outcome: game.Lose, Reason: game.PlayerBusted},
	}
	for i, r := range results {
		all.Add(r)
		if i%2 == 0 {
			a.Add(r)
		} else {
			b.Add(r)
		}
	}

	a.Merge(&b)
	assert.Equal(t, all, a)
	assert.NoError(t, a.Validate())
}

func TestStatisticsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Statistics)
		errMsg string
	}{
		{name: "outcome mismatch", modify: func(s *Statistics) { s.Ties++ }, errMsg: "outcomes"},
		{name: "too many busts", modify: func(s *Statistics) { s.PlayerBusts = 5 }, errMsg: "player busts"},
		{name: "too many dealer busts", modify: func(s *Statistics) { s.DealerBusts = 5 }, errMsg: "dealer bust wins"},
		{name: "ledger", modify: func(s *Statistics) { s.Sum += 1 }, errMsg: "ledger mismatch"},
		{name: "seats", modify: func(s *Statistics) { s.SeatResults[1].Hands++ }, errMsg: "seat hands"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Statistics
			s.Add(HandResult{Seat: 1, Outcome: game.Win, Reason: game.HigherTotal})
			s.Add(HandResult{Seat: 1, Outcome: game.Lose, Reason: game.PlayerBusted})
			require.NoError(t, s.Validate())

			tt.modify(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
