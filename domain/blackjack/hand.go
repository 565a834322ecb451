package blackjack

import (
	"strings"

	"github.com/cardroom/blackjack/domain/deck"
)

// Blackjack is the hand value that wins outright on the initial deal.
const Blackjack = 21

// Hand is the ordered set of cards held by one party for the duration of a
// round.
type Hand struct {
	cards []deck.Card
}

// Add appends a card to the hand.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns the cards in deal order.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Value computes the blackjack score of the hand. Aces count 11 first; while
// the total exceeds 21 and an ace is still counted high, one ace is demoted
// to 1. The result is recomputed from the cards on every call.
func (h *Hand) Value() int {
	value := 0
	aces := 0
	for _, c := range h.cards {
		value += c.Value()
		if c.Rank() == deck.Ace {
			aces++
		}
	}
	for value > Blackjack && aces > 0 {
		value -= 10
		aces--
	}
	return value
}

// IsBust reports whether the hand value exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Value() > Blackjack
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totaling 21. A three-card 21 is not a blackjack.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == Blackjack
}

// String joins the cards' short representations, e.g. "A♠ K♥".
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
