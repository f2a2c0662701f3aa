// Package session runs the interactive play-again loop around single rounds.
package session

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// Frontend is what a table needs from the terminal: somewhere to show
// events, questions for the humans and one agent per human seat.
type Frontend interface {
	game.EventSubscriber
	PlayerCount(ctx context.Context, lo, hi int) (int, error)
	Confirm(ctx context.Context, question string) (bool, error)
	Agent() game.Agent
	Println(format string, args ...any)
}

// Config describes the table
type Config struct {
	Players    int // 0 asks the frontend
	PlayerName func(seat int) string
	DealerName string
	DealerRule game.DealerRule
	Logger     *log.Logger
}

// Session plays rounds until the humans stop
type Session struct {
	frontend Frontend
	config   Config
	rng      *rand.Rand
	logger   *log.Logger
	played   int
}

// New creates a session. Every round's shuffle and ID come from rng.
func New(frontend Frontend, rng *rand.Rand, config Config) *Session {
	if config.PlayerName == nil {
		config.PlayerName = func(seat int) string { return fmt.Sprintf("Player %d", seat+1) }
	}
	if config.DealerName == "" {
		config.DealerName = game.DefaultDealerName
	}
	if config.DealerRule.Threshold == 0 {
		config.DealerRule = game.DefaultDealerRule()
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		frontend: frontend,
		config:   config,
		rng:      rng,
		logger:   logger.WithPrefix("session"),
	}
}

// Rounds returns the number of completed rounds
func (s *Session) Rounds() int {
	return s.played
}

// Run asks for the player count if needed, then plays rounds while the
// humans want to play again. Each round uses a fresh deck.
func (s *Session) Run(ctx context.Context) error {
	players := s.config.Players
	if players == 0 {
		n, err := s.frontend.PlayerCount(ctx, 1, game.MaxPlayers)
		if err != nil {
			return err
		}
		players = n
	}

	noun := "players"
	if players == 1 {
		noun = "player"
	}
	s.frontend.Println("Great! Let's play with %d %s.", players, noun)

	seats := make([]game.Seat, players)
	for i := range seats {
		seats[i] = game.Seat{Name: s.config.PlayerName(i), Agent: s.frontend.Agent()}
	}

	for {
		r, err := game.NewRound(s.rng, seats,
			game.WithDealerName(s.config.DealerName),
			game.WithDealerRule(s.config.DealerRule),
			game.WithLogger(s.logger))
		if err != nil {
			return err
		}
		r.EventBus().Subscribe(s.frontend)

		s.logger.Info("Starting round", "round", r.ID, "players", players)
		if _, err := r.Play(ctx); err != nil {
			return err
		}
		s.played++

		again, err := s.frontend.Confirm(ctx, "Would you like to play again?")
		if err != nil {
			return err
		}
		if !again {
			s.frontend.Println("Thanks for playing!")
			return nil
		}
	}
}
