package game

import (
	"sync"
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart       EventType = "round_start"
	EventTypeCardDealt        EventType = "card_dealt"
	EventTypeHoleCardRevealed EventType = "hole_card_revealed"
	EventTypeTurnStart        EventType = "turn_start"
	EventTypeInvalidDecision  EventType = "invalid_decision"
	EventTypeHit              EventType = "hit"
	EventTypeStand            EventType = "stand"
	EventTypeBust             EventType = "bust"
	EventTypeRoundEnd         EventType = "round_end"
	EventTypeRoundAborted     EventType = "round_aborted"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published once seats are filled and the deck is shuffled
type RoundStartEvent struct {
	RoundID   string
	Players   []string
	Dealer    string
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(roundID string, players []string, dealer string) RoundStartEvent {
	return RoundStartEvent{
		RoundID:   roundID,
		Players:   append([]string(nil), players...),
		Dealer:    dealer,
		timestamp: time.Now(),
	}
}

// CardDealtEvent is published for every card leaving the deck. Card is the
// zero value when the card was dealt face down.
type CardDealtEvent struct {
	Player    PlayerView
	Card      deck.Card
	FaceUp    bool
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDealtEvent creates a new card dealt event
func NewCardDealtEvent(player PlayerView, card deck.Card, faceUp bool) CardDealtEvent {
	if !faceUp {
		card = deck.Card{}
	}
	return CardDealtEvent{
		Player:    player,
		Card:      card,
		FaceUp:    faceUp,
		timestamp: time.Now(),
	}
}

// HoleCardRevealedEvent is published when the dealer's turn begins
type HoleCardRevealedEvent struct {
	Dealer    PlayerView
	Card      deck.Card
	timestamp time.Time
}

func (e HoleCardRevealedEvent) EventType() EventType { return EventTypeHoleCardRevealed }
func (e HoleCardRevealedEvent) Timestamp() time.Time { return e.timestamp }

// NewHoleCardRevealedEvent creates a new hole card revealed event
func NewHoleCardRevealedEvent(dealer PlayerView, card deck.Card) HoleCardRevealedEvent {
	return HoleCardRevealedEvent{Dealer: dealer, Card: card, timestamp: time.Now()}
}

// TurnStartEvent is published before a player's first decision
type TurnStartEvent struct {
	Player    PlayerView
	timestamp time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnStartEvent creates a new turn start event
func NewTurnStartEvent(player PlayerView) TurnStartEvent {
	return TurnStartEvent{Player: player, timestamp: time.Now()}
}

// InvalidDecisionEvent is published when an agent's answer was rejected and
// the player is about to be asked again
type InvalidDecisionEvent struct {
	Player    PlayerView
	Reason    string
	timestamp time.Time
}

func (e InvalidDecisionEvent) EventType() EventType { return EventTypeInvalidDecision }
func (e InvalidDecisionEvent) Timestamp() time.Time { return e.timestamp }

// NewInvalidDecisionEvent creates a new invalid decision event
func NewInvalidDecisionEvent(player PlayerView, reason string) InvalidDecisionEvent {
	return InvalidDecisionEvent{Player: player, Reason: reason, timestamp: time.Now()}
}

// HitEvent is published when a player decides to hit, before the card is dealt
type HitEvent struct {
	Player    PlayerView
	Reasoning string
	timestamp time.Time
}

func (e HitEvent) EventType() EventType { return EventTypeHit }
func (e HitEvent) Timestamp() time.Time { return e.timestamp }

// NewHitEvent creates a new hit event
func NewHitEvent(player PlayerView, reasoning string) HitEvent {
	return HitEvent{Player: player, Reasoning: reasoning, timestamp: time.Now()}
}

// StandEvent is published when a player stays
type StandEvent struct {
	Player    PlayerView
	Reasoning string
	timestamp time.Time
}

func (e StandEvent) EventType() EventType { return EventTypeStand }
func (e StandEvent) Timestamp() time.Time { return e.timestamp }

// NewStandEvent creates a new stand event
func NewStandEvent(player PlayerView, reasoning string) StandEvent {
	return StandEvent{Player: player, Reasoning: reasoning, timestamp: time.Now()}
}

// BustEvent is published when a hit takes a hand over 21
type BustEvent struct {
	Player    PlayerView
	timestamp time.Time
}

func (e BustEvent) EventType() EventType { return EventTypeBust }
func (e BustEvent) Timestamp() time.Time { return e.timestamp }

// NewBustEvent creates a new bust event
func NewBustEvent(player PlayerView) BustEvent {
	return BustEvent{Player: player, timestamp: time.Now()}
}

// RoundEndEvent carries the resolution of every player
type RoundEndEvent struct {
	RoundID   string
	Dealer    PlayerView
	Results   []PlayerResult
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event
func NewRoundEndEvent(roundID string, dealer PlayerView, results []PlayerResult) RoundEndEvent {
	return RoundEndEvent{
		RoundID:   roundID,
		Dealer:    dealer,
		Results:   append([]PlayerResult(nil), results...),
		timestamp: time.Now(),
	}
}

// RoundAbortedEvent is published when a round stops before resolution
type RoundAbortedEvent struct {
	RoundID   string
	Err       error
	timestamp time.Time
}

func (e RoundAbortedEvent) EventType() EventType { return EventTypeRoundAborted }
func (e RoundAbortedEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundAbortedEvent creates a new round aborted event
func NewRoundAbortedEvent(roundID string, err error) RoundAbortedEvent {
	return RoundAbortedEvent{RoundID: roundID, Err: err, timestamp: time.Now()}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to the EventSubscriber interface
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus. Delivery is synchronous and
// in subscription order.
type SimpleEventBus struct {
	mu          sync.RWMutex
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers cannot be compared and must not be unsubscribed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	bus.mu.RLock()
	subscribers := append([]EventSubscriber(nil), bus.subscribers...)
	bus.mu.RUnlock()

	for _, subscriber := range subscribers {
		subscriber.OnEvent(event)
	}
}

// EventRecorder is a subscriber that keeps every event it sees
type EventRecorder struct {
	mu     sync.Mutex
	events []GameEvent
}

// OnEvent implements EventSubscriber
func (r *EventRecorder) OnEvent(event GameEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events
func (r *EventRecorder) Events() []GameEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]GameEvent(nil), r.events...)
}

// Types returns the recorded event types in order
func (r *EventRecorder) Types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]EventType, len(r.events))
	for i, e := range r.events {
		types[i] = e.EventType()
	}
	return types
}
