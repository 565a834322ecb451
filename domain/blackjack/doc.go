// Package blackjack implements the domain logic for a single-player blackjack
// game against a rule-bound dealer, including hand scoring, the round state
// machine, settlement, and the bankroll session.
//
// # Core Types
//
// Hand: An ordered set of cards with blackjack scoring (aces count 11 and are
// demoted to 1 one at a time while the hand would bust).
//
// RoundEngine: Drives a single round through its states — initial deal,
// player turn, dealer turn, settlement — and reports a structured Result.
//
// Session: Holds the bankroll across rounds, validates bets, and applies
// settlements.
//
// # Game Flow
//
// A round progresses Dealt → PlayerTurn → DealerTurn → Settled. A natural
// blackjack on either side short-circuits straight to Settled. Player
// decisions (hit or stand) come from a DecisionProvider collaborator; the
// dealer is deterministic and hits until reaching 17. Presentation is fully
// external: a TableObserver is notified at each point where the table
// changes, and the Result carries outcome and payout as data, never text.
//
// # Settlement
//
// A natural blackjack pays 3:2 (rounded half to even), an ordinary win pays
// the bet, a loss or bust forfeits it, and a push returns it. Unwagered play
// is the same engine with a zero bet.
package blackjack
