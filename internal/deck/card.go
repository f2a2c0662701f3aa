package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRank is returned when a card is built from a rank outside A..K.
var ErrInvalidRank = errors.New("invalid rank")

// ErrInvalidSuit is returned when a card is built from an unknown suit.
var ErrInvalidSuit = errors.New("invalid suit")

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck construction order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) valid() bool {
	return s >= Spades && s <= Clubs
}

// Rank represents a card rank
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in deck construction order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// rankValues holds the candidate point values per rank. The first entry is the
// default value, the last one the secondary (low) value.
var rankValues = map[Rank][]int{
	Ace:   {11, 1},
	Two:   {2},
	Three: {3},
	Four:  {4},
	Five:  {5},
	Six:   {6},
	Seven: {7},
	Eight: {8},
	Nine:  {9},
	Ten:   {10},
	Jack:  {10},
	Queen: {10},
	King:  {10},
}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Values returns the candidate point values for the rank: a single value for
// every rank except the Ace, which yields 11 then 1.
func (r Rank) Values() ([]int, error) {
	values, ok := rankValues[r]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRank, int(r))
	}
	return values, nil
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card, rejecting ranks and suits outside the standard deck
func NewCard(suit Suit, rank Rank) (Card, error) {
	if _, err := rank.Values(); err != nil {
		return Card{}, err
	}
	if !suit.valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, int(suit))
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// String returns the string representation of a card (e.g., "A♠"). The zero
// Card, used for cards that are not shown, renders as "??".
func (c Card) String() string {
	if c == (Card{}) {
		return "??"
	}
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// ParseCard parses a card such as "As", "Td" or "10h"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rank, err := parseRank(strings.ToUpper(s[:len(s)-1]))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a compact sequence such as "AsKd10h". Ten may be written
// as "T" or "10".
func ParseCards(s string) ([]Card, error) {
	cards := []Card{}
	for i := 0; i < len(s); {
		width := 2
		if s[i] == '1' {
			width = 3
		}
		if i+width > len(s) {
			return nil, fmt.Errorf("invalid card sequence %q at offset %d", s, i)
		}
		card, err := ParseCard(s[i : i+width])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
		i += width
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "A":
		return Ace, nil
	case "T", "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, string(c))
}
