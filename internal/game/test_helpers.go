package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/deck"
)

// ErrScriptExhausted is returned by a ScriptedAgent with no inputs left
var ErrScriptExhausted = errors.New("scripted agent has no inputs left")

// ScriptedAgent replays raw text answers as a human would type them.
// Unparseable answers come back as ErrInvalidDecision.
type ScriptedAgent struct {
	mu     sync.Mutex
	inputs []string
	views  []PlayerView
}

// NewScriptedAgent creates an agent answering with inputs in order
func NewScriptedAgent(inputs ...string) *ScriptedAgent {
	return &ScriptedAgent{inputs: inputs}
}

// MakeDecision implements Agent
func (a *ScriptedAgent) MakeDecision(_ context.Context, view PlayerView) (Decision, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.views = append(a.views, view)
	if len(a.inputs) == 0 {
		return Decision{}, fmt.Errorf("%s: %w", view.Name, ErrScriptExhausted)
	}

	input := a.inputs[0]
	a.inputs = a.inputs[1:]

	action, err := ParseAction(input)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Action: action, Reasoning: "scripted"}, nil
}

// Views returns every snapshot the agent was asked about
func (a *ScriptedAgent) Views() []PlayerView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]PlayerView(nil), a.views...)
}

// Remaining returns the number of unused inputs
func (a *ScriptedAgent) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.inputs)
}

// NewTestRound builds a round over a stacked deck described in ParseCards
// notation, recording every event. Cards are dealt in the order given, so the
// initial pair for N players consumes the first 2N+2 cards: P1..PN, dealer
// hole card, P1..PN, dealer up card.
func NewTestRound(cards string, seats []Seat, opts ...RoundOption) (*Round, *EventRecorder) {
	recorder := &EventRecorder{}
	bus := NewEventBus()
	bus.Subscribe(recorder)

	base := []RoundOption{
		WithDeck(deck.NewStacked(deck.MustParseCards(cards)...)),
		WithEventBus(bus),
		WithLogger(log.New(io.Discard)),
		WithRoundID("01testround000000000000000"),
	}

	r, err := NewRound(nil, seats, append(base, opts...)...)
	if err != nil {
		panic(fmt.Sprintf("invalid test round: %v", err))
	}
	return r, recorder
}
