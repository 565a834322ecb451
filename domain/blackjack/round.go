package blackjack

import (
	"fmt"
	"math"

	"github.com/cardroom/blackjack/domain/deck"
)

// dealerStand is the value at which the dealer stops drawing.
const dealerStand = 17

// Shoe is the card supply a round draws from. *deck.Deck satisfies it; tests
// use scripted shoes.
type Shoe interface {
	Deal() deck.Card
}

// RoundEngine runs one round of blackjack from the initial deal to
// settlement.
type RoundEngine struct {
	shoe      Shoe
	bet       int
	decisions DecisionProvider
	observer  TableObserver

	player Hand
	dealer Hand
	state  State
}

// NewRoundEngine creates an engine for a single round. The bet is the amount
// at stake (0 for unwagered play); decisions supplies the player's choices
// and observer is told whenever the table changes.
func NewRoundEngine(shoe Shoe, bet int, decisions DecisionProvider, observer TableObserver) *RoundEngine {
	if observer == nil {
		observer = NopObserver{}
	}
	return &RoundEngine{
		shoe:      shoe,
		bet:       bet,
		decisions: decisions,
		observer:  observer,
	}
}

// State returns the current phase of the round.
func (e *RoundEngine) State() State {
	return e.state
}

// PlayerHand returns the player's hand.
func (e *RoundEngine) PlayerHand() *Hand {
	return &e.player
}

// DealerHand returns the dealer's hand.
func (e *RoundEngine) DealerHand() *Hand {
	return &e.dealer
}

// Play runs the round to completion and returns the settled Result. The only
// error source is the DecisionProvider; rule evaluation itself cannot fail.
func (e *RoundEngine) Play() (Result, error) {
	e.dealInitial()

	if result, done := e.checkNaturals(); done {
		return result, nil
	}

	result, done, err := e.playerTurn()
	if err != nil {
		return Result{}, err
	}
	if done {
		return result, nil
	}

	e.dealerTurn()
	return e.settle(), nil
}

// dealInitial deals two cards each, alternating player, dealer, player,
// dealer.
func (e *RoundEngine) dealInitial() {
	e.state = Dealt
	for i := 0; i < 2; i++ {
		e.player.Add(e.shoe.Deal())
		e.dealer.Add(e.shoe.Deal())
	}
	e.observer.InitialDeal(&e.player, &e.dealer)
}

// checkNaturals evaluates blackjacks on the opening hands. This is the only
// point where a 21 counts as a natural; a 21 reached by hitting later is an
// ordinary 21.
func (e *RoundEngine) checkNaturals() (Result, bool) {
	playerBJ := e.player.IsBlackjack()
	dealerBJ := e.dealer.IsBlackjack()
	switch {
	case playerBJ && dealerBJ:
		e.observer.DealerReveal(&e.dealer)
		return e.settleAs(Push), true
	case playerBJ:
		return e.settleAs(PlayerBlackjack), true
	case dealerBJ:
		e.observer.DealerReveal(&e.dealer)
		return e.settleAs(DealerBlackjack), true
	}
	return Result{}, false
}

// playerTurn loops over the player's decisions until they stand, bust, or
// reach 21 (which forces a stand).
func (e *RoundEngine) playerTurn() (Result, bool, error) {
	e.state = PlayerTurn
	for {
		decision, err := e.decisions.RequestDecision()
		if err != nil {
			return Result{}, false, fmt.Errorf("request decision: %w", err)
		}
		switch decision {
		case Stand:
			return Result{}, false, nil
		case Hit:
			e.player.Add(e.shoe.Deal())
			e.observer.PlayerHit(&e.player)
			if e.player.IsBust() {
				return e.settleAs(PlayerBust), true, nil
			}
			if e.player.Value() == Blackjack {
				// May not act further; same as standing on 21.
				return Result{}, false, nil
			}
		default:
			return Result{}, false, fmt.Errorf("unknown decision %q", decision)
		}
	}
}

// dealerTurn reveals the hole card and draws until the dealer reaches 17,
// soft or hard.
func (e *RoundEngine) dealerTurn() {
	e.state = DealerTurn
	e.observer.DealerReveal(&e.dealer)
	for e.dealer.Value() < dealerStand {
		e.dealer.Add(e.shoe.Deal())
		e.observer.DealerHit(&e.dealer)
	}
}

// settle compares the final hands. Only reachable when neither side busted
// nor held a natural.
func (e *RoundEngine) settle() Result {
	playerValue := e.player.Value()
	dealerValue := e.dealer.Value()
	switch {
	case dealerValue > Blackjack:
		return e.settleAs(PlayerWin)
	case playerValue > dealerValue:
		return e.settleAs(PlayerWin)
	case playerValue < dealerValue:
		return e.settleAs(DealerWin)
	default:
		return e.settleAs(Push)
	}
}

func (e *RoundEngine) settleAs(outcome Outcome) Result {
	e.state = Settled
	return Result{
		Outcome:     outcome,
		PlayerValue: e.player.Value(),
		DealerValue: e.dealer.Value(),
		Payout:      payout(outcome, e.bet),
	}
}

// payout returns the signed bankroll delta for an outcome. A natural pays
// 3:2 rounded half to even, matching the reference game's rounding on odd
// bets.
func payout(outcome Outcome, bet int) int {
	switch outcome {
	case PlayerBlackjack:
		return int(math.RoundToEven(float64(bet) * 1.5))
	case PlayerWin:
		return bet
	case DealerWin, DealerBlackjack, PlayerBust:
		return -bet
	default:
		return 0
	}
}
