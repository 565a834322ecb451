package blackjack

import (
	"errors"
	"testing"

	"github.com/cardroom/blackjack/domain/deck"
)

func TestPlaceBetRejectsNonPositive(t *testing.T) {
	s := NewSession(1000, true)
	if err := s.PlaceBet(0); !errors.Is(err, ErrBetNotPositive) {
		t.Fatalf("expected ErrBetNotPositive, got %v", err)
	}
	if err := s.PlaceBet(-50); !errors.Is(err, ErrBetNotPositive) {
		t.Fatalf("expected ErrBetNotPositive, got %v", err)
	}
}

func TestPlaceBetRejectsOverBalance(t *testing.T) {
	s := NewSession(200, true)
	if err := s.PlaceBet(201); !errors.Is(err, ErrBetExceedsBalance) {
		t.Fatalf("expected ErrBetExceedsBalance, got %v", err)
	}
	if err := s.PlaceBet(200); err != nil {
		t.Fatalf("betting the whole bankroll is allowed: %v", err)
	}
}

func TestPlaceBetIgnoredWithoutWagering(t *testing.T) {
	s := NewSession(0, false)
	if err := s.PlaceBet(-10); err != nil {
		t.Fatalf("unwagered sessions accept any bet input: %v", err)
	}
	if s.Bet() != 0 {
		t.Fatalf("unwagered sessions always stake 0, got %d", s.Bet())
	}
}

func TestPlayRoundAppliesWin(t *testing.T) {
	s := NewSession(1000, true)
	if err := s.PlaceBet(100); err != nil {
		t.Fatal(err)
	}
	// player 10,10 stands at 20; dealer 9,8 stands at 17
	shoe := newShoe(t, 10, 9, 10, 8)
	result, err := s.PlayRound(shoe, decide(Stand), nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != PlayerWin {
		t.Fatalf("expected player win, got %s", result.Outcome)
	}
	if s.Balance() != 1100 {
		t.Fatalf("expected balance 1100, got %d", s.Balance())
	}
}

func TestPlayRoundAppliesNaturalPayout(t *testing.T) {
	s := NewSession(1000, true)
	if err := s.PlaceBet(100); err != nil {
		t.Fatal(err)
	}
	shoe := newShoe(t, deck.Ace, 9, deck.King, 8)
	if _, err := s.PlayRound(shoe, decide(), nil); err != nil {
		t.Fatal(err)
	}
	if s.Balance() != 1150 {
		t.Fatalf("expected balance 1150 after 3:2 payout, got %d", s.Balance())
	}
}

func TestPlayRoundPushLeavesBalance(t *testing.T) {
	s := NewSession(1000, true)
	if err := s.PlaceBet(400); err != nil {
		t.Fatal(err)
	}
	// both stand at 19
	shoe := newShoe(t, 10, 10, 9, 9)
	if _, err := s.PlayRound(shoe, decide(Stand), nil); err != nil {
		t.Fatal(err)
	}
	if s.Balance() != 1000 {
		t.Fatalf("push must leave the balance unchanged, got %d", s.Balance())
	}
}

func TestPlayRoundScriptedLoss(t *testing.T) {
	// balance 1000, bet 100, player dealt 10,7 stands at 17,
	// dealer dealt 6,5 hits to 20: dealer wins, balance 900
	s := NewSession(1000, true)
	if err := s.PlaceBet(100); err != nil {
		t.Fatal(err)
	}
	shoe := newShoe(t, 10, 6, 7, 5, 9)
	result, err := s.PlayRound(shoe, decide(Stand), nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome != DealerWin {
		t.Fatalf("expected dealer win, got %s", result.Outcome)
	}
	if s.Balance() != 900 {
		t.Fatalf("expected balance 900, got %d", s.Balance())
	}
}

func TestExhaustion(t *testing.T) {
	s := NewSession(100, true)
	if err := s.PlaceBet(100); err != nil {
		t.Fatal(err)
	}
	// player busts the whole bankroll
	shoe := newShoe(t, 10, 2, 7, 2, deck.King)
	if _, err := s.PlayRound(shoe, decide(Hit), nil); err != nil {
		t.Fatal(err)
	}
	if s.Balance() != 0 {
		t.Fatalf("expected balance 0, got %d", s.Balance())
	}
	if !s.Exhausted() {
		t.Fatal("a zero balance with wagering on is exhausted")
	}
}

func TestUnwageredSessionNeverExhausts(t *testing.T) {
	s := NewSession(0, false)
	if s.Exhausted() {
		t.Fatal("unwagered sessions cannot exhaust")
	}
	shoe := newShoe(t, 10, 2, 7, 2, deck.King)
	result, err := s.PlayRound(shoe, decide(Hit), nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Payout != 0 {
		t.Fatalf("unwagered rounds pay 0, got %d", result.Payout)
	}
	if s.Exhausted() {
		t.Fatal("unwagered sessions cannot exhaust")
	}
}
