package deck

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrEmptyDeck is returned when a card is requested from an exhausted deck
var ErrEmptyDeck = errors.New("deck is empty")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a single 52-card deck. Cards are dealt from the end of the
// slice and never returned.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a full, unshuffled deck in suit-major order (♠ A..K, ♥ A..K, ...).
// The RNG is used by Shuffle; a nil RNG falls back to the global source.
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}

	return d
}

// NewShuffled creates a full deck and shuffles it with the given RNG
func NewShuffled(rng *rand.Rand) *Deck {
	d := New(rng)
	d.Shuffle()
	return d
}

// NewStacked creates a deck that deals exactly the given cards, first card first.
func NewStacked(cards ...Card) *Deck {
	stacked := slices.Clone(cards)
	slices.Reverse(stacked)
	return &Deck{cards: stacked}
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates)
func (d *Deck) Shuffle() {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

// DealOne removes and returns the top card of the deck
func (d *Deck) DealOne() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
