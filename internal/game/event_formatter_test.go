package game

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatRound(t *testing.T, cards string, opts FormattingOptions, seats ...Seat) []string {
	t.Helper()

	r, rec := NewTestRound(cards, seats)
	_, err := r.Play(context.Background())
	require.NoError(t, err)

	ef := NewEventFormatter(opts)
	var lines []string
	for _, e := range rec.Events() {
		lines = append(lines, ef.Format(e)...)
	}
	return lines
}

func TestFormatterRoundTranscript(t *testing.T) {
	t.Parallel()

	lines := formatRound(t, "ThTc8s7d3h", FormattingOptions{}, seat("Alice", "stay"))

	assert.Equal(t, []string{
		"Round 01testround000000000000000 • 1 player: Alice",
		"Alice is dealt 10♥: 10♥ (10)",
		"Dealer is dealt a face-down card",
		"Alice is dealt 8♠: 10♥ 8♠ (18)",
		"Dealer is dealt 7♦: ?? 7♦ (7)",
		"Alice's turn: 10♥ 8♠ (18)",
		"Alice is staying with 18",
		"Dealer reveals 10♣: 10♣ 7♦ (17)",
		"Dealer is playing...",
		"Dealer is hitting...",
		"Dealer is dealt 3♥: 10♣ 7♦ 3♥ (20)",
		"Dealer is staying with 20",
		"--- RESULTS ---",
		"Loser! Alice has 18 points. This is less than the dealer's total of 20.",
	}, lines)
}

func TestFormatterDealerBustSummary(t *testing.T) {
	t.Parallel()

	// Alice stays on 15, Bob hits K to 25, dealer busts on 23
	lines := formatRound(t, "Th9cTc5s6d7dKh6h", FormattingOptions{},
		seat("Alice", "stay"), seat("Bob", "hit"))

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Bob has busted with 9♣ 6♦ K♥. This totals 25!")
	assert.Contains(t, joined, "Dealer has busted with 10♣ 7♦ 6♥. This totals 23!")
	assert.Contains(t, joined, "Dealer has busted, so all non-busted players win!")
	assert.Contains(t, joined, "Winners: Alice")
	assert.Contains(t, joined, "Busted players: Bob")
}

func TestFormatterHidesHoleCard(t *testing.T) {
	t.Parallel()

	r, rec := NewTestRound("ThTc8s7d3h", []Seat{seat("Alice", "stay")})
	_, err := r.Play(context.Background())
	require.NoError(t, err)

	var hole CardDealtEvent
	for _, e := range rec.Events() {
		if ev, ok := e.(CardDealtEvent); ok && ev.Player.IsDealer && ev.Player.HasHiddenCards() && ev.FaceUp {
			hole = ev
			break
		}
	}
	require.True(t, hole.FaceUp)

	ef := NewEventFormatter(FormattingOptions{ShowReasonings: true})
	assert.Equal(t, "Dealer is dealt 7♦: ?? 7♦ (7)", ef.FormatCardDealt(hole))
	assert.NotContains(t, ef.FormatCardDealt(hole), "10♣")
}

func TestFormatterReasoningAndBlackjack(t *testing.T) {
	t.Parallel()

	lines := formatRound(t, "AhTcKs9d", FormattingOptions{ShowReasonings: true}, seat("Alice", "stay"))
	joined := strings.Join(lines, "\n")

	assert.Contains(t, joined, "Alice's turn: A♥ K♠ (21) blackjack!")
	assert.Contains(t, joined, "Alice is staying with 21 [scripted]")
	assert.Contains(t, joined, "Dealer is staying with 19 [19 is above 17]")
	assert.Contains(t, joined, "Winner! Alice has 21 points. This is more than the dealer's total of 19. Congrats!")
}

func TestFormatterInvalidDecision(t *testing.T) {
	t.Parallel()

	ef := NewEventFormatter(FormattingOptions{})
	lines := ef.Format(NewInvalidDecisionEvent(PlayerView{Name: "Alice"}, "bad"))
	assert.Equal(t, []string{"Not an acceptable response. You must 'hit' or 'stay'."}, lines)
}

func TestFormatResultTie(t *testing.T) {
	t.Parallel()

	ef := NewEventFormatter(FormattingOptions{})
	line := ef.FormatResult(PlayerResult{
		Player:       PlayerView{Name: "Alice", Points: 19},
		Outcome:      Tie,
		Reason:       EqualTotal,
		DealerPoints: 19,
	})
	assert.Equal(t, "Tie! Alice has 19 points. This ties the dealer's total of 19.", line)
}
