package game

import "github.com/lox/blackjack/internal/deck"

// Status is a player's position in the turn state machine
type Status int

const (
	Active Status = iota
	Standing
	Busted
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Standing:
		return "standing"
	case Busted:
		return "busted"
	default:
		return "unknown"
	}
}

// Player is a seat at the table. The dealer is a Player too; it differs only
// in its agent and in having its first card dealt face down.
type Player struct {
	Name     string
	Hand     Hand
	Status   Status
	Agent    Agent
	IsDealer bool
}

// NewPlayer creates an active player with an empty hand
func NewPlayer(name string, agent Agent) *Player {
	return &Player{Name: name, Agent: agent}
}

// NewDealer creates the dealer seat driven by the given rule
func NewDealer(name string, rule DealerRule) *Player {
	return &Player{Name: name, Agent: rule, IsDealer: true}
}

// IsActive returns true if the player can still act
func (p *Player) IsActive() bool {
	return p.Status == Active
}

// Receive adds a dealt card to the player's hand
func (p *Player) Receive(card deck.Card, faceUp bool) {
	p.Hand.Add(card, faceUp)
}

// View returns a read-only snapshot of the player. While a card is face down
// every total is computed from the face-up cards only, so a snapshot handed to
// subscribers cannot leak the hidden card.
func (p *Player) View() PlayerView {
	view := PlayerView{
		Name:          p.Name,
		Cards:         p.Hand.View(),
		Points:        p.Hand.Points(),
		VisiblePoints: p.Hand.VisiblePoints(),
		Soft:          p.Hand.IsSoft(),
		Blackjack:     p.Hand.IsBlackjack(),
		Status:        p.Status,
		IsDealer:      p.IsDealer,
	}
	if p.Hand.HasHiddenCards() {
		visible := p.Hand.visible()
		view.Points = view.VisiblePoints
		view.Soft = visible.IsSoft()
		view.Blackjack = false
	}
	return view
}

// PlayerView is the immutable state handed to agents and event subscribers
type PlayerView struct {
	Name          string
	Cards         []CardView
	Points        int // Equals VisiblePoints while a card is face down
	VisiblePoints int // Total of face-up cards only
	Soft          bool
	Blackjack     bool
	Status        Status
	IsDealer      bool
}

// HasHiddenCards returns true while any card is face down
func (v PlayerView) HasHiddenCards() bool {
	for _, c := range v.Cards {
		if !c.FaceUp {
			return true
		}
	}
	return false
}

// ShownPoints is the total a table observer should be shown
func (v PlayerView) ShownPoints() int {
	if v.HasHiddenCards() {
		return v.VisiblePoints
	}
	return v.Points
}
