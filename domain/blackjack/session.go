package blackjack

import (
	"errors"
	"fmt"
)

var (
	// ErrBetNotPositive is returned for zero or negative bet amounts.
	ErrBetNotPositive = errors.New("bet must be positive")
	// ErrBetExceedsBalance is returned when a bet is larger than the bankroll.
	ErrBetExceedsBalance = errors.New("bet exceeds balance")
)

// Session holds the bankroll across rounds of a single process run. Nothing
// is persisted; a restart starts a fresh bankroll.
type Session struct {
	balance  int
	bet      int
	wagering bool
}

// NewSession creates a session with the given starting bankroll. With
// wagering disabled the session runs the same rounds with nothing at stake.
func NewSession(balance int, wagering bool) *Session {
	return &Session{balance: balance, wagering: wagering}
}

// Balance returns the current bankroll.
func (s *Session) Balance() int {
	return s.balance
}

// Wagering reports whether rounds are played for money.
func (s *Session) Wagering() bool {
	return s.wagering
}

// PlaceBet validates and records the stake for the next round. The amount
// must be positive and no larger than the current balance; callers re-prompt
// on error.
func (s *Session) PlaceBet(amount int) error {
	if !s.wagering {
		return nil
	}
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrBetNotPositive, amount)
	}
	if amount > s.balance {
		return fmt.Errorf("%w: %d > %d", ErrBetExceedsBalance, amount, s.balance)
	}
	s.bet = amount
	return nil
}

// Bet returns the stake for the next round (0 when wagering is off).
func (s *Session) Bet() int {
	if !s.wagering {
		return 0
	}
	return s.bet
}

// PlayRound runs one round against the given shoe and applies the settlement
// to the bankroll. The shoe must be freshly shuffled by the caller, which
// also owns shuffle randomness and any fairness commitment around it.
func (s *Session) PlayRound(shoe Shoe, decisions DecisionProvider, observer TableObserver) (Result, error) {
	engine := NewRoundEngine(shoe, s.Bet(), decisions, observer)
	result, err := engine.Play()
	if err != nil {
		return Result{}, err
	}
	s.balance += result.Payout
	return result, nil
}

// Exhausted reports whether the bankroll is gone. Only meaningful with
// wagering on; an unwagered session never exhausts.
func (s *Session) Exhausted() bool {
	return s.wagering && s.balance <= 0
}
