package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AsKs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
			},
		},
		{
			name:  "ten written both ways",
			input: "Th10d",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Diamonds, Rank: Ten},
			},
		},
		{
			name:  "low cards",
			input: "5h4d3c2s",
			expected: []Card{
				{Suit: Hearts, Rank: Five},
				{Suit: Diamonds, Rank: Four},
				{Suit: Clubs, Rank: Three},
				{Suit: Spades, Rank: Two},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCards(t *testing.T) {
	assert.Equal(t, []Card{{Suit: Clubs, Rank: Nine}}, MustParseCards("9c"))
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestRankValues(t *testing.T) {
	t.Parallel()

	values, err := Ace.Values()
	require.NoError(t, err)
	assert.Equal(t, []int{11, 1}, values)

	for rank := Two; rank <= Ten; rank++ {
		values, err := rank.Values()
		require.NoError(t, err)
		assert.Equal(t, []int{int(rank)}, values, "rank %s", rank)
	}

	for _, rank := range []Rank{Jack, Queen, King} {
		values, err := rank.Values()
		require.NoError(t, err)
		assert.Equal(t, []int{10}, values, "rank %s", rank)
	}

	_, err = Rank(0).Values()
	assert.True(t, errors.Is(err, ErrInvalidRank))
	_, err = Rank(14).Values()
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestNewCard(t *testing.T) {
	t.Parallel()

	card, err := NewCard(Hearts, Queen)
	require.NoError(t, err)
	assert.Equal(t, "Q♥", card.String())
	assert.True(t, card.IsRed())
	assert.False(t, card.IsAce())

	_, err = NewCard(Spades, Rank(99))
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = NewCard(Suit(7), Ace)
	assert.ErrorIs(t, err, ErrInvalidSuit)
}

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A♠", Card{Suit: Spades, Rank: Ace}.String())
	assert.Equal(t, "10♦", Card{Suit: Diamonds, Rank: Ten}.String())
	assert.Equal(t, "7♣", Card{Suit: Clubs, Rank: Seven}.String())
	assert.Equal(t, "??", Card{}.String())
}
