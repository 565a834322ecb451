package blackjack

// Decision is a player choice during their turn.
type Decision string

const (
	Hit   Decision = "hit"
	Stand Decision = "stand"
)

// State is the phase of a round. Rounds move Dealt → PlayerTurn → DealerTurn
// → Settled, with naturals jumping from Dealt straight to Settled.
type State string

const (
	Dealt      State = "dealt"
	PlayerTurn State = "player_turn"
	DealerTurn State = "dealer_turn"
	Settled    State = "settled"
)

// Outcome is the final classification of a round.
type Outcome string

const (
	PlayerBlackjack Outcome = "player_blackjack"
	DealerBlackjack Outcome = "dealer_blackjack"
	PlayerWin       Outcome = "player_win"
	DealerWin       Outcome = "dealer_win"
	PlayerBust      Outcome = "player_bust"
	Push            Outcome = "push"
)

// Result is what a settled round reports: the outcome, both final hand
// values, and the signed bankroll delta (zero in unwagered play).
type Result struct {
	Outcome     Outcome
	PlayerValue int
	DealerValue int
	Payout      int
}

// DecisionProvider supplies the player's hit/stand choices. Implementations
// own input validation and re-prompting; the engine only ever sees a valid
// Decision.
type DecisionProvider interface {
	RequestDecision() (Decision, error)
}

// TableObserver is notified whenever the visible table changes, at the same
// points an interactive game would redraw it. Implementations must not
// mutate the hands.
type TableObserver interface {
	// InitialDeal fires once after the opening four cards, dealer hole card
	// still hidden.
	InitialDeal(player, dealer *Hand)
	// PlayerHit fires after each card dealt to the player.
	PlayerHit(player *Hand)
	// DealerReveal fires when the dealer turns over the hole card.
	DealerReveal(dealer *Hand)
	// DealerHit fires after each card the dealer draws.
	DealerHit(dealer *Hand)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) InitialDeal(player, dealer *Hand) {}
func (NopObserver) PlayerHit(player *Hand)           {}
func (NopObserver) DealerReveal(dealer *Hand)        {}
func (NopObserver) DealerHit(dealer *Hand)           {}
