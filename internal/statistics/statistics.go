// Package statistics aggregates simulated blackjack hands.
package statistics

import (
	"fmt"
	"math"

	"github.com/lox/blackjack/internal/game"
)

// HandResult represents one player's outcome in one round
type HandResult struct {
	Seed      int64 // RNG seed of the round (for replay)
	Seat      int   // 1-based seat
	Outcome   game.Outcome
	Reason    game.Reason
	Points    int
	Blackjack bool
}

// Net returns the even-money result of the hand in betting units
func (r HandResult) Net() float64 {
	switch r.Outcome {
	case game.Win:
		return 1
	case game.Lose:
		return -1
	default:
		return 0
	}
}

// SeatStats tracks statistics for a single seat
type SeatStats struct {
	Hands int
	Sum   float64
}

// Statistics tracks simulation results in betting units per hand
type Statistics struct {
	Hands int
	Sum   float64
	Sum2  float64 // Sum of squares for variance calculation

	Wins        int
	Losses      int
	Ties        int
	PlayerBusts int
	DealerBusts int // Hands won because the dealer busted
	Blackjacks  int

	SeatResults [game.MaxPlayers + 1]SeatStats // Index 0 unused
}

// Add incorporates a hand result into the statistics
func (s *Statistics) Add(result HandResult) {
	net := result.Net()
	s.Hands++
	s.Sum += net
	s.Sum2 += net * net

	switch result.Outcome {
	case game.Win:
		s.Wins++
	case game.Lose:
		s.Losses++
	default:
		s.Ties++
	}

	switch result.Reason {
	case game.PlayerBusted:
		s.PlayerBusts++
	case game.DealerBusted:
		s.DealerBusts++
	}

	if result.Blackjack {
		s.Blackjacks++
	}

	if result.Seat >= 1 && result.Seat <= game.MaxPlayers {
		s.SeatResults[result.Seat].Hands++
		s.SeatResults[result.Seat].Sum += net
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Ties += other.Ties
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts
	s.Blackjacks += other.Blackjacks
	for i := range s.SeatResults {
		s.SeatResults[i].Hands += other.SeatResults[i].Hands
		s.SeatResults[i].Sum += other.SeatResults[i].Sum
	}
}

// Mean returns the average result in units per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Rate returns the share of hands counted by n
func (s *Statistics) Rate(n int) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(n) / float64(s.Hands)
}

// SeatMean returns the mean result for a 1-based seat
func (s *Statistics) SeatMean(seat int) float64 {
	if seat < 1 || seat > game.MaxPlayers {
		return 0
	}
	ss := s.SeatResults[seat]
	if ss.Hands == 0 {
		return 0
	}
	return ss.Sum / float64(ss.Hands)
}

// Validate checks that the counters are consistent with each other
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if total := s.Wins + s.Losses + s.Ties; total != s.Hands {
		return fmt.Errorf("outcomes (%d) do not match hands (%d)", total, s.Hands)
	}
	if s.PlayerBusts > s.Losses {
		return fmt.Errorf("player busts (%d) exceed losses (%d)", s.PlayerBusts, s.Losses)
	}
	if s.DealerBusts > s.Wins {
		return fmt.Errorf("dealer bust wins (%d) exceed wins (%d)", s.DealerBusts, s.Wins)
	}
	if net := float64(s.Wins - s.Losses); math.Abs(net-s.Sum) > 1e-6 {
		return fmt.Errorf("ledger mismatch: wins-losses=%.0f, sum=%.6f", net, s.Sum)
	}

	seatHands := 0
	for seat := 1; seat <= game.MaxPlayers; seat++ {
		seatHands += s.SeatResults[seat].Hands
	}
	if seatHands != s.Hands {
		return fmt.Errorf("seat hands total (%d) does not match total hands (%d)", seatHands, s.Hands)
	}

	return nil
}
