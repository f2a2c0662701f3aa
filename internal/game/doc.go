// Package game implements the core blackjack round logic.
//
// The main type is Round, which owns a single deck, the seated players and
// the dealer for one deal, runs each turn and resolves every player against
// the dealer.
//
// # Basic Usage
//
//	seats := []game.Seat{{Name: "Alice", Agent: aliceAgent}}
//	r, err := game.NewRound(randutil.New(42), seats)
//	if err != nil {
//	    return err
//	}
//	result, err := r.Play(ctx)
//
// # Decisions
//
// Every player, the dealer included, acts through an Agent. Agents receive a
// read-only PlayerView and return hit or stay. An answer that wraps
// ErrInvalidDecision is rejected and the same agent is asked again without
// touching the hand. The dealer's agent is a DealerRule: hit on 17 or less,
// stay above.
//
// # Hand Values
//
// Hand.Points counts every Ace as 11 until the total would bust, then lowers
// Aces one at a time in deal order. A lowered Ace stays lowered for the rest
// of the round.
//
// # Deterministic Testing
//
// Pass a seeded RNG from randutil.New, or stack the deck explicitly:
//
//	d := deck.NewStacked(deck.MustParseCards("Th8sTc7d3h")...)
//	r, _ := game.NewRound(nil, seats, game.WithDeck(d))
//
// # Events
//
// Rounds publish typed events (cards dealt, hits, stands, busts, results) on
// an EventBus; displays subscribe to it and never read round state directly.
package game
