package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDecision is returned by agents whose source produced something
// other than hit or stay. The round asks the same agent again.
var ErrInvalidDecision = errors.New("invalid decision")

// Action is a choice a player can make on their turn
type Action int

const (
	NoAction Action = iota
	Hit
	Stay
)

// String returns the string representation of an action
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stay:
		return "stay"
	default:
		return "none"
	}
}

// Valid returns true for hit and stay
func (a Action) Valid() bool {
	return a == Hit || a == Stay
}

// ParseAction converts free text into an action. Accepts "hit"/"h" and
// "stay"/"s"/"stand", ignoring case and surrounding space.
func ParseAction(input string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "hit", "h":
		return Hit, nil
	case "stay", "s", "stand":
		return Stay, nil
	}
	return NoAction, fmt.Errorf("%w: %q, you must 'hit' or 'stay'", ErrInvalidDecision, input)
}

// Decision represents a player's decision with reasoning
type Decision struct {
	Action    Action
	Reasoning string // Human-readable explanation
}

// Agent represents any entity (human or rule) that can make decisions for a player.
// Agents receive an immutable snapshot and return a decision; they never touch
// the hand or the deck.
type Agent interface {
	MakeDecision(ctx context.Context, view PlayerView) (Decision, error)
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(ctx context.Context, view PlayerView) (Decision, error)

// MakeDecision calls f(ctx, view)
func (f AgentFunc) MakeDecision(ctx context.Context, view PlayerView) (Decision, error) {
	return f(ctx, view)
}
