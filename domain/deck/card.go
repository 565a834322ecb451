package deck

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 1  // A (scored 11 until the hand busts)
)

// FaceDown is the display character for hidden cards
const (
	FaceDown = "▓"
)

// Card represents a playing card with suit and rank.
// Rank 0 indicates a face-down or uninitialized card.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king (0 = face down)
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Value returns the blackjack point value of the Card: face cards count 10,
// the ace counts 11 (hands demote aces to 1 as needed), every other rank
// counts its face value.
func (c Card) Value() int {
	switch {
	case c.rank == Ace:
		return 11
	case c.rank >= Jack:
		return 10
	default:
		return int(c.rank)
	}
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	if c.rank == 0 {
		return FaceDown
	}
	return rankLabel(c.rank) + suit
}

// SuitSymbol returns the bare glyph of the Card's suit, without color codes.
func (c Card) SuitSymbol() string {
	switch c.suit {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// RankLabel returns the display abbreviation of the Card's rank
// (A, J, Q, K, or the number).
func (c Card) RankLabel() string {
	return rankLabel(c.rank)
}

func rankLabel(rank uint8) string {
	switch rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", rank)
	}
}
