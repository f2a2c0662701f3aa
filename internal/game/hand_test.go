package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
)

func handOf(cards string) *Hand {
	return NewHand(deck.MustParseCards(cards)...)
}

func TestPointsWithoutAces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards    string
		expected int
	}{
		{"2s3h", 5},
		{"Ts9d", 19},
		{"KsQh", 20},
		{"JcTd2s", 22},
		{"2s2h2d2c3s3h", 14},
		{"Th9s5c", 24},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			h := handOf(tt.cards)

			literal := 0
			for _, c := range h.Cards() {
				values, err := c.Rank.Values()
				assert.NoError(t, err)
				literal += values[0]
			}

			assert.Equal(t, tt.expected, h.Points())
			assert.Equal(t, literal, h.Points())
		})
	}
}

func TestPointsWithAces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cards     string
		expected  int
		soft      bool
		blackjack bool
	}{
		{name: "single ace", cards: "As", expected: 11, soft: true},
		{name: "pair of aces", cards: "AsAh", expected: 12, soft: true},
		{name: "ace king", cards: "AsKd", expected: 21, soft: true, blackjack: true},
		{name: "ace six", cards: "Ah6c", expected: 17, soft: true},
		{name: "ace forced low", cards: "AhKc5d", expected: 16},
		{name: "three aces", cards: "AsAhAd", expected: 13, soft: true},
		{name: "four aces and a nine", cards: "AsAhAdAc9s", expected: 13},
		{name: "three card twenty one", cards: "As5h5d", expected: 21, soft: true},
		{name: "busted with aces low", cards: "AsAhKdQc", expected: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handOf(tt.cards)
			assert.Equal(t, tt.expected, h.Points())
			assert.Equal(t, tt.soft, h.IsSoft())
			assert.Equal(t, tt.blackjack, h.IsBlackjack())
			assert.Equal(t, tt.expected > BustLimit, h.IsBusted())
		})
	}
}

func TestTenNineFiveIsBusted(t *testing.T) {
	t.Parallel()

	h := handOf("Th9s5c")
	assert.Equal(t, 24, h.Points())
	assert.True(t, h.IsBusted())
	assert.False(t, h.IsBlackjack())
}

func TestAceFlagsAreSticky(t *testing.T) {
	t.Parallel()

	h := handOf("AsAh")
	assert.Equal(t, 12, h.Points())
	assert.True(t, h.slots[0].low, "first ace in hand order is lowered")
	assert.False(t, h.slots[1].low)

	// Repeated calls are stable
	assert.Equal(t, 12, h.Points())

	// A later card lowers the second ace only when needed
	h.Add(deck.Card{Suit: deck.Clubs, Rank: deck.Nine}, true)
	assert.Equal(t, 21, h.Points())
	assert.False(t, h.slots[1].low)

	h.Add(deck.Card{Suit: deck.Clubs, Rank: deck.Five}, true)
	assert.Equal(t, 16, h.Points())
	assert.True(t, h.slots[1].low)
	assert.False(t, h.IsSoft())
}

func TestBlackjackNeedsTwoCards(t *testing.T) {
	t.Parallel()

	assert.True(t, handOf("KhAs").IsBlackjack())
	assert.False(t, handOf("7h7s7d").IsBlackjack())
	assert.False(t, handOf("As").IsBlackjack())
}

func TestVisiblePointsIgnoresFaceDownCards(t *testing.T) {
	t.Parallel()

	h := &Hand{}
	h.Add(deck.MustParseCards("Ks")[0], false)
	h.Add(deck.MustParseCards("Ah")[0], true)

	assert.Equal(t, 21, h.Points())
	assert.Equal(t, 11, h.VisiblePoints())
	assert.Equal(t, "?? A♥", h.String())

	h.Reveal()
	assert.Equal(t, 21, h.VisiblePoints())
	assert.Equal(t, "K♠ A♥", h.String())
}

func TestVisiblePointsDoesNotLowerAces(t *testing.T) {
	t.Parallel()

	h := &Hand{}
	h.Add(deck.MustParseCards("As")[0], false)
	h.Add(deck.MustParseCards("Ah")[0], true)

	assert.Equal(t, 11, h.VisiblePoints())
	assert.False(t, h.slots[0].low)
	assert.False(t, h.slots[1].low)
}

func TestCardsReturnsCopy(t *testing.T) {
	t.Parallel()

	h := handOf("2s3s")
	cards := h.Cards()
	cards[0] = deck.Card{Suit: deck.Hearts, Rank: deck.King}

	assert.Equal(t, 5, h.Points())
}

func TestViewMasksFaceDownCards(t *testing.T) {
	t.Parallel()

	h := &Hand{}
	h.Add(deck.MustParseCards("Ks")[0], false)
	h.Add(deck.MustParseCards("Ah")[0], true)

	views := h.View()
	assert.Equal(t, deck.Card{}, views[0].Card)
	assert.False(t, views[0].FaceUp)
	assert.Equal(t, deck.MustParseCards("Ah")[0], views[1].Card)
	assert.True(t, h.HasHiddenCards())

	h.Reveal()
	assert.Equal(t, deck.MustParseCards("Ks")[0], h.View()[0].Card)
	assert.False(t, h.HasHiddenCards())
}

func TestPlayerViewCountsOnlyFaceUpCards(t *testing.T) {
	t.Parallel()

	dealer := NewDealer("Dealer", DefaultDealerRule())
	dealer.Receive(deck.MustParseCards("Ks")[0], false)
	dealer.Receive(deck.MustParseCards("Ah")[0], true)

	view := dealer.View()
	assert.Equal(t, 11, view.Points)
	assert.Equal(t, 11, view.VisiblePoints)
	assert.True(t, view.Soft)
	assert.False(t, view.Blackjack)

	dealer.Hand.Reveal()
	view = dealer.View()
	assert.Equal(t, 21, view.Points)
	assert.True(t, view.Blackjack)
}
