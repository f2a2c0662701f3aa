package game

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	var order []string
	bus.Subscribe(EventSubscriberFunc(func(GameEvent) { order = append(order, "first") }))
	bus.Subscribe(EventSubscriberFunc(func(GameEvent) { order = append(order, "second") }))

	bus.Publish(NewRoundStartEvent("id", []string{"Alice"}, "Dealer"))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEventBusUnsubscribe(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	rec := &EventRecorder{}
	bus.Subscribe(rec)
	bus.Publish(NewRoundStartEvent("id", nil, "Dealer"))
	bus.Unsubscribe(rec)
	bus.Publish(NewRoundAbortedEvent("id", errors.New("stopped")))

	assert.Equal(t, []EventType{EventTypeRoundStart}, rec.Types())
}

func TestCardDealtEventMasksFaceDownCard(t *testing.T) {
	t.Parallel()

	card := deck.MustParseCards("As")[0]

	up := NewCardDealtEvent(PlayerView{Name: "Dealer"}, card, true)
	down := NewCardDealtEvent(PlayerView{Name: "Dealer"}, card, false)

	assert.Equal(t, card, up.Card)
	assert.Equal(t, deck.Card{}, down.Card)
	assert.False(t, down.Timestamp().IsZero())
	assert.Equal(t, "card_dealt", down.EventType().String())
}

func TestRoundEndEventCopiesResults(t *testing.T) {
	t.Parallel()

	results := []PlayerResult{{Player: PlayerView{Name: "Alice"}, Outcome: Win}}
	e := NewRoundEndEvent("id", PlayerView{Name: "Dealer"}, results)
	results[0].Outcome = Lose

	require.Len(t, e.Results, 1)
	assert.Equal(t, Win, e.Results[0].Outcome)
}
