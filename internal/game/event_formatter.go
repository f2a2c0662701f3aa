package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowReasonings bool // Include agent reasoning after hits and stands
}

// EventFormatter provides centralized formatting for all game events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format renders an event as zero or more display lines
func (ef *EventFormatter) Format(event GameEvent) []string {
	switch e := event.(type) {
	case RoundStartEvent:
		return []string{ef.FormatRoundStart(e)}
	case CardDealtEvent:
		return []string{ef.FormatCardDealt(e)}
	case HoleCardRevealedEvent:
		return []string{fmt.Sprintf("%s reveals %s: %s", e.Dealer.Name, e.Card, ef.formatHand(e.Dealer))}
	case TurnStartEvent:
		if e.Player.IsDealer {
			return []string{fmt.Sprintf("%s is playing...", e.Player.Name)}
		}
		return []string{fmt.Sprintf("%s's turn: %s", e.Player.Name, ef.formatHand(e.Player))}
	case InvalidDecisionEvent:
		return []string{"Not an acceptable response. You must 'hit' or 'stay'."}
	case HitEvent:
		return []string{ef.withReasoning(ef.formatHit(e.Player), e.Reasoning)}
	case StandEvent:
		return []string{ef.withReasoning(fmt.Sprintf("%s is staying with %d", e.Player.Name, e.Player.Points), e.Reasoning)}
	case BustEvent:
		return []string{fmt.Sprintf("%s has busted with %s. This totals %d!",
			e.Player.Name, FormatCards(e.Player.Cards), e.Player.Points)}
	case RoundEndEvent:
		return ef.FormatRoundEnd(e)
	case RoundAbortedEvent:
		return []string{fmt.Sprintf("Round aborted: %v", e.Err)}
	default:
		return nil
	}
}

// FormatRoundStart formats the round header
func (ef *EventFormatter) FormatRoundStart(e RoundStartEvent) string {
	noun := "players"
	if len(e.Players) == 1 {
		noun = "player"
	}
	return fmt.Sprintf("Round %s • %d %s: %s", e.RoundID, len(e.Players), noun, strings.Join(e.Players, ", "))
}

// FormatCardDealt formats a single dealt card
func (ef *EventFormatter) FormatCardDealt(e CardDealtEvent) string {
	if !e.FaceUp {
		return fmt.Sprintf("%s is dealt a face-down card", e.Player.Name)
	}
	return fmt.Sprintf("%s is dealt %s: %s", e.Player.Name, e.Card, ef.formatHand(e.Player))
}

// FormatRoundEnd formats the results block
func (ef *EventFormatter) FormatRoundEnd(e RoundEndEvent) []string {
	lines := []string{"--- RESULTS ---"}

	if e.Dealer.Status == Busted {
		lines = append(lines, fmt.Sprintf("%s has busted, so all non-busted players win!", e.Dealer.Name))
		if winners := NamesWithOutcome(e.Results, Win); len(winners) > 0 {
			lines = append(lines, "Winners: "+strings.Join(winners, ", "))
		}
		if losers := NamesWithOutcome(e.Results, Lose); len(losers) > 0 {
			lines = append(lines, "Busted players: "+strings.Join(losers, ", "))
		}
		return lines
	}

	for _, r := range e.Results {
		lines = append(lines, ef.FormatResult(r))
	}
	return lines
}

// FormatResult formats one player's resolution
func (ef *EventFormatter) FormatResult(r PlayerResult) string {
	name, points := r.Player.Name, r.Player.Points
	switch r.Reason {
	case PlayerBusted:
		return fmt.Sprintf("Loser! %s has busted", name)
	case DealerBusted:
		return fmt.Sprintf("Winner! %s has %d points and the dealer busted", name, points)
	case LowerTotal:
		return fmt.Sprintf("Loser! %s has %d points. This is less than the dealer's total of %d.", name, points, r.DealerPoints)
	case EqualTotal:
		return fmt.Sprintf("Tie! %s has %d points. This ties the dealer's total of %d.", name, points, r.DealerPoints)
	default:
		return fmt.Sprintf("Winner! %s has %d points. This is more than the dealer's total of %d. Congrats!", name, points, r.DealerPoints)
	}
}

func (ef *EventFormatter) formatHit(p PlayerView) string {
	if p.IsDealer {
		return fmt.Sprintf("%s is hitting...", p.Name)
	}
	return fmt.Sprintf("%s hits", p.Name)
}

// formatHand renders cards and the total an observer is allowed to see
func (ef *EventFormatter) formatHand(p PlayerView) string {
	s := fmt.Sprintf("%s (%d)", FormatCards(p.Cards), p.ShownPoints())
	if p.Blackjack && !p.HasHiddenCards() {
		s += " blackjack!"
	}
	return s
}

func (ef *EventFormatter) withReasoning(line, reasoning string) string {
	if ef.opts.ShowReasonings && reasoning != "" {
		return fmt.Sprintf("%s [%s]", line, reasoning)
	}
	return line
}
