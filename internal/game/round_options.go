package game

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
)

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

// roundConfig holds the optional settings of a round.
type roundConfig struct {
	deck       *deck.Deck // If provided, used as-is instead of a fresh shuffled deck
	dealerRule DealerRule
	dealerName string
	eventBus   EventBus
	logger     *log.Logger
	roundID    string
}

// WithDeck uses the given deck instead of shuffling a new one. The deck is
// not shuffled again.
func WithDeck(d *deck.Deck) RoundOption {
	return func(c *roundConfig) { c.deck = d }
}

// WithDealerRule overrides the default hit-on-17 rule
func WithDealerRule(rule DealerRule) RoundOption {
	return func(c *roundConfig) { c.dealerRule = rule }
}

// WithDealerName sets the dealer's display name
func WithDealerName(name string) RoundOption {
	return func(c *roundConfig) { c.dealerName = name }
}

// WithEventBus publishes round events to the given bus
func WithEventBus(bus EventBus) RoundOption {
	return func(c *roundConfig) { c.eventBus = bus }
}

// WithLogger sets the logger used for round diagnostics
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) { c.logger = logger }
}

// WithRoundID fixes the round identifier instead of generating one
func WithRoundID(id string) RoundOption {
	return func(c *roundConfig) { c.roundID = id }
}
