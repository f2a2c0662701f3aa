package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/gameid"
)

// MaxPlayers is the largest number of players a single deck round seats
const MaxPlayers = 6

// DefaultDealerName is used when no dealer name is configured
const DefaultDealerName = "Dealer"

var (
	ErrNoPlayers      = errors.New("at least one player is required")
	ErrTooManyPlayers = fmt.Errorf("at most %d players are allowed", MaxPlayers)
	ErrInvalidSeat    = errors.New("invalid seat")
	ErrRNGRequired    = errors.New("rng is required when no deck is provided")
	ErrRoundComplete  = errors.New("round has already been played")
)

// Seat describes a player joining a round
type Seat struct {
	Name  string
	Agent Agent
}

// Result is the outcome of a completed round
type Result struct {
	RoundID string
	Dealer  PlayerView
	Results []PlayerResult
}

// Round owns a deck, the players and the dealer for the duration of one deal.
// A Round is single use and not safe for concurrent use.
type Round struct {
	ID      string
	Players []*Player
	Dealer  *Player

	deck     *deck.Deck
	eventBus EventBus
	logger   *log.Logger
	played   bool
}

// NewRound seats the players and prepares a freshly shuffled deck. The RNG
// drives the shuffle and the round ID so a round is reproducible from its seed.
func NewRound(rng *rand.Rand, seats []Seat, opts ...RoundOption) (*Round, error) {
	if len(seats) == 0 {
		return nil, ErrNoPlayers
	}
	if len(seats) > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyPlayers, len(seats))
	}

	cfg := &roundConfig{
		dealerRule: DefaultDealerRule(),
		dealerName: DefaultDealerName,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.deck == nil && rng == nil {
		return nil, ErrRNGRequired
	}

	names := make(map[string]bool, len(seats)+1)
	names[cfg.dealerName] = true
	players := make([]*Player, len(seats))
	for i, seat := range seats {
		switch {
		case seat.Name == "":
			return nil, fmt.Errorf("%w: seat %d has no name", ErrInvalidSeat, i+1)
		case seat.Agent == nil:
			return nil, fmt.Errorf("%w: %s has no agent", ErrInvalidSeat, seat.Name)
		case names[seat.Name]:
			return nil, fmt.Errorf("%w: name %q is taken", ErrInvalidSeat, seat.Name)
		}
		names[seat.Name] = true
		players[i] = NewPlayer(seat.Name, seat.Agent)
	}

	d := cfg.deck
	if d == nil {
		d = deck.NewShuffled(rng)
	}

	id := cfg.roundID
	if id == "" {
		if rng != nil {
			id = gameid.NewGenerator(rng, nil).Generate()
		} else {
			id = gameid.Generate()
		}
	}

	bus := cfg.eventBus
	if bus == nil {
		bus = NewEventBus()
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Round{
		ID:       id,
		Players:  players,
		Dealer:   NewDealer(cfg.dealerName, cfg.dealerRule),
		deck:     d,
		eventBus: bus,
		logger:   logger.WithPrefix("round").With("round", id),
	}, nil
}

// EventBus returns the bus the round publishes to
func (r *Round) EventBus() EventBus {
	return r.eventBus
}

// CardsRemaining returns the number of undealt cards
func (r *Round) CardsRemaining() int {
	return r.deck.Remaining()
}

// Play deals the initial pair, runs every player's turn in seat order, runs
// the dealer and resolves the results. Any error aborts the round: no results
// are produced and a RoundAbortedEvent is published.
func (r *Round) Play(ctx context.Context) (*Result, error) {
	if r.played {
		return nil, ErrRoundComplete
	}
	r.played = true

	playerNames := make([]string, len(r.Players))
	for i, p := range r.Players {
		playerNames[i] = p.Name
	}
	r.logger.Debug("Starting round", "players", len(r.Players))
	r.eventBus.Publish(NewRoundStartEvent(r.ID, playerNames, r.Dealer.Name))

	if err := r.play(ctx); err != nil {
		r.logger.Error("Round aborted", "error", err)
		r.eventBus.Publish(NewRoundAbortedEvent(r.ID, err))
		return nil, err
	}

	results := Resolve(r.Players, r.Dealer)
	dealer := r.Dealer.View()
	for _, res := range results {
		r.logger.Debug("Resolved player",
			"player", res.Player.Name,
			"points", res.Player.Points,
			"dealer", dealer.Points,
			"outcome", res.Outcome,
			"reason", res.Reason)
	}
	r.eventBus.Publish(NewRoundEndEvent(r.ID, dealer, results))

	return &Result{RoundID: r.ID, Dealer: dealer, Results: results}, nil
}

func (r *Round) play(ctx context.Context) error {
	if err := r.dealInitialPair(); err != nil {
		return err
	}

	for _, p := range r.Players {
		if p.Status == Busted {
			continue
		}
		if err := r.playTurn(ctx, p); err != nil {
			return err
		}
	}

	return r.playDealer(ctx)
}

// dealInitialPair deals two passes: each player face up, then the dealer,
// whose first card goes face down.
func (r *Round) dealInitialPair() error {
	for pass := 0; pass < 2; pass++ {
		for _, p := range r.Players {
			if err := r.deal(p, true); err != nil {
				return err
			}
		}
		if err := r.deal(r.Dealer, pass > 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *Round) deal(p *Player, faceUp bool) error {
	card, err := r.deck.DealOne()
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", p.Name, err)
	}
	p.Receive(card, faceUp)
	r.eventBus.Publish(NewCardDealtEvent(p.View(), card, faceUp))
	return nil
}

func (r *Round) playDealer(ctx context.Context) error {
	r.Dealer.Hand.Reveal()
	view := r.Dealer.View()
	if len(view.Cards) > 0 {
		r.eventBus.Publish(NewHoleCardRevealedEvent(view, view.Cards[0].Card))
	}
	return r.playTurn(ctx, r.Dealer)
}

// playTurn runs the hit/stay state machine until the player stands or busts.
// Rejected decisions leave the hand untouched and the agent is asked again.
func (r *Round) playTurn(ctx context.Context, p *Player) error {
	logger := r.logger.With("player", p.Name)
	r.eventBus.Publish(NewTurnStartEvent(p.View()))

	for p.Status == Active {
		if err := ctx.Err(); err != nil {
			return err
		}

		decision, err := p.Agent.MakeDecision(ctx, p.View())
		if err != nil {
			if errors.Is(err, ErrInvalidDecision) {
				logger.Debug("Rejected decision", "error", err)
				r.eventBus.Publish(NewInvalidDecisionEvent(p.View(), err.Error()))
				continue
			}
			return fmt.Errorf("decision for %s: %w", p.Name, err)
		}

		switch decision.Action {
		case Hit:
			logger.Debug("Hit", "points", p.Hand.Points(), "reasoning", decision.Reasoning)
			r.eventBus.Publish(NewHitEvent(p.View(), decision.Reasoning))
			if err := r.deal(p, true); err != nil {
				return err
			}
			if p.Hand.Points() > BustLimit {
				p.Status = Busted
				logger.Debug("Busted", "points", p.Hand.Points())
				r.eventBus.Publish(NewBustEvent(p.View()))
			}
		case Stay:
			p.Status = Standing
			logger.Debug("Stay", "points", p.Hand.Points(), "reasoning", decision.Reasoning)
			r.eventBus.Publish(NewStandEvent(p.View(), decision.Reasoning))
		default:
			reason := fmt.Sprintf("%v: unrecognized action %q", ErrInvalidDecision, decision.Action)
			logger.Debug("Rejected decision", "action", decision.Action)
			r.eventBus.Publish(NewInvalidDecisionEvent(p.View(), reason))
		}
	}

	return nil
}
