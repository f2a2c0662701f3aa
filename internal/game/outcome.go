package game

// Outcome is a player's result against the dealer
type Outcome int

const (
	Lose Outcome = iota
	Tie
	Win
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "lose"
	}
}

// Reason explains how an outcome was reached
type Reason int

const (
	PlayerBusted Reason = iota
	DealerBusted
	HigherTotal
	LowerTotal
	EqualTotal
)

// String returns the string representation of a reason
func (r Reason) String() string {
	switch r {
	case PlayerBusted:
		return "player busted"
	case DealerBusted:
		return "dealer busted"
	case HigherTotal:
		return "higher total"
	case LowerTotal:
		return "lower total"
	case EqualTotal:
		return "equal total"
	default:
		return "unknown"
	}
}

// PlayerResult is one player's resolution
type PlayerResult struct {
	Player       PlayerView
	Outcome      Outcome
	Reason       Reason
	DealerPoints int
}

// Resolve compares every player against the dealer's final state. A busted
// player always loses; if the dealer busted every other player wins; otherwise
// totals are compared.
func Resolve(players []*Player, dealer *Player) []PlayerResult {
	dealerPoints := dealer.Hand.Points()
	dealerBusted := dealer.Status == Busted || dealerPoints > BustLimit

	results := make([]PlayerResult, 0, len(players))
	for _, p := range players {
		points := p.Hand.Points()
		r := PlayerResult{Player: p.View(), DealerPoints: dealerPoints}

		switch {
		case p.Status == Busted || points > BustLimit:
			r.Outcome, r.Reason = Lose, PlayerBusted
		case dealerBusted:
			r.Outcome, r.Reason = Win, DealerBusted
		case points < dealerPoints:
			r.Outcome, r.Reason = Lose, LowerTotal
		case points == dealerPoints:
			r.Outcome, r.Reason = Tie, EqualTotal
		default:
			r.Outcome, r.Reason = Win, HigherTotal
		}

		results = append(results, r)
	}
	return results
}

// NamesWithOutcome returns the names of players with the given outcome
func NamesWithOutcome(results []PlayerResult, outcome Outcome) []string {
	var names []string
	for _, r := range results {
		if r.Outcome == outcome {
			names = append(names, r.Player.Name)
		}
	}
	return names
}
