package game

import (
	"context"
	"fmt"
)

// DefaultDealerThreshold is the highest total the dealer hits on
const DefaultDealerThreshold = 17

// DealerRule is the fixed dealer policy: hit while the hand totals at most
// Threshold, stay above it. A soft total counts at its reported value, so with
// the default threshold the dealer hits a soft 17. StandOnSoft makes a soft
// total equal to the threshold stand instead.
type DealerRule struct {
	Threshold   int
	StandOnSoft bool
}

// DefaultDealerRule returns the hit-on-17 rule
func DefaultDealerRule() DealerRule {
	return DealerRule{Threshold: DefaultDealerThreshold}
}

// Decide returns the rule's action for a hand total
func (r DealerRule) Decide(points int, soft bool) Action {
	if points > r.Threshold {
		return Stay
	}
	if r.StandOnSoft && soft && points == r.Threshold {
		return Stay
	}
	return Hit
}

// MakeDecision implements Agent
func (r DealerRule) MakeDecision(_ context.Context, view PlayerView) (Decision, error) {
	action := r.Decide(view.Points, view.Soft)

	var reasoning string
	switch {
	case action == Stay && view.Points > r.Threshold:
		reasoning = fmt.Sprintf("%d is above %d", view.Points, r.Threshold)
	case action == Stay:
		reasoning = fmt.Sprintf("stands on soft %d", view.Points)
	default:
		reasoning = fmt.Sprintf("%d is at most %d", view.Points, r.Threshold)
	}

	return Decision{Action: action, Reasoning: reasoning}, nil
}
