package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// BustLimit is the highest total a hand can have without busting
const BustLimit = 21

// slot is one dealt card together with the per-hand state attached to it.
// The low flag selects the Ace's secondary value; it is only ever set by
// Points and never cleared.
type slot struct {
	card   deck.Card
	faceUp bool
	low    bool
}

func (s slot) value() int {
	values, err := s.card.Rank.Values()
	if err != nil {
		// Cards only enter a hand from a Deck or ParseCard, both of which
		// reject unknown ranks.
		panic(err)
	}
	if s.low {
		return values[len(values)-1]
	}
	return values[0]
}

// Hand is an ordered sequence of dealt cards
type Hand struct {
	slots []slot
}

// NewHand creates a face-up hand holding the given cards, mostly for tests
// and tooling.
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.Add(c, true)
	}
	return h
}

// Add appends a card to the hand
func (h *Hand) Add(card deck.Card, faceUp bool) {
	h.slots = append(h.slots, slot{card: card, faceUp: faceUp})
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.slots)
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.slots))
	for i, s := range h.slots {
		cards[i] = s.card
	}
	return cards
}

// Reveal turns every card in the hand face up
func (h *Hand) Reveal() {
	for i := range h.slots {
		h.slots[i].faceUp = true
	}
}

// rawTotal sums each card's currently selected value
func (h *Hand) rawTotal() int {
	total := 0
	for _, s := range h.slots {
		total += s.value()
	}
	return total
}

// Points returns the playable total of the hand. When the raw total busts,
// Aces are switched to their low value one at a time in hand order until the
// total fits or no Aces remain. Switched Aces stay low for later calls.
func (h *Hand) Points() int {
	total := h.rawTotal()
	if total <= BustLimit {
		return total
	}

	for i := range h.slots {
		if !h.slots[i].card.IsAce() || h.slots[i].low {
			continue
		}
		h.slots[i].low = true
		total = h.rawTotal()
		if total <= BustLimit {
			return total
		}
	}

	return total
}

// IsBusted reports whether the hand total exceeds 21
func (h *Hand) IsBusted() bool {
	return h.Points() > BustLimit
}

// IsBlackjack reports a two-card 21
func (h *Hand) IsBlackjack() bool {
	return len(h.slots) == 2 && h.Points() == BustLimit
}

// IsSoft reports whether the total counts an Ace as 11
func (h *Hand) IsSoft() bool {
	if h.Points() > BustLimit {
		return false
	}
	for _, s := range h.slots {
		if s.card.IsAce() && !s.low {
			return true
		}
	}
	return false
}

// VisiblePoints returns the total an observer can see: the same valuation
// applied to face-up cards only. The hand's own Ace flags are not touched.
func (h *Hand) VisiblePoints() int {
	visible := h.visible()
	return visible.Points()
}

// HasHiddenCards reports whether any card is still face down
func (h *Hand) HasHiddenCards() bool {
	for _, s := range h.slots {
		if !s.faceUp {
			return true
		}
	}
	return false
}

// visible returns a fresh hand holding copies of the face-up cards
func (h *Hand) visible() Hand {
	v := Hand{}
	for _, s := range h.slots {
		if s.faceUp {
			v.slots = append(v.slots, slot{card: s.card, faceUp: true})
		}
	}
	return v
}

// View returns a display snapshot of the cards. Face-down cards carry the
// zero Card so the snapshot never reveals them.
func (h *Hand) View() []CardView {
	views := make([]CardView, len(h.slots))
	for i, s := range h.slots {
		views[i] = CardView{FaceUp: s.faceUp}
		if s.faceUp {
			views[i].Card = s.card
		}
	}
	return views
}

// String renders the hand with hidden cards masked, e.g. "?? 7♠"
func (h *Hand) String() string {
	return FormatCards(h.View())
}

// CardView is a card as seen on the table
type CardView struct {
	Card   deck.Card
	FaceUp bool
}

// String renders the card, or "??" when it is face down
func (cv CardView) String() string {
	if !cv.FaceUp {
		return "??"
	}
	return cv.Card.String()
}

// FormatCards joins card views with spaces
func FormatCards(cards []CardView) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
