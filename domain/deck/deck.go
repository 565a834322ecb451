// Package deck implements the card supply for a blackjack table: the Card
// value type and a single-deck shoe that shuffles, deals, and silently
// rebuilds itself when it runs dry.
//
// # Core Types
//
// Card: A playing card with suit and rank; knows its own blackjack point value.
//
// Deck: An ordered 52-card shoe. Dealing pops from the end; when the shoe is
// empty the next deal rebuilds and reshuffles a fresh 52-card set, so a deal
// never fails (continuous-shoe semantics).
//
// Randomizer: The source of shuffle randomness, injected at construction so
// callers control determinism (entropy in play, fixed seeds in tests,
// seed-derived streams for verifiable shuffles).
package deck

// Randomizer yields random indices for shuffling. *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Size is the number of cards in a full single-deck shoe.
const Size = 52

// Deck is an ordered shoe of cards with an injected randomness source.
type Deck struct {
	cards []Card
	rng   Randomizer
}

// New creates a full 52-card Deck in canonical order (suit-major, rank-minor)
// using r for all subsequent shuffles.
func New(r Randomizer) *Deck {
	return &Deck{
		cards: fullSet(),
		rng:   r,
	}
}

func fullSet() []Card {
	cards := make([]Card, 0, Size)
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(1); rank <= 13; rank++ {
			cards = append(cards, Card{suit: suit, rank: rank})
		}
	}
	return cards
}

// Shuffle permutes the remaining cards in place (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card of the shoe. An empty shoe refills
// and reshuffles first, so Deal always succeeds; within a round this means a
// card already in play can reappear once the original 52 run out.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		d.refillAndShuffle()
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card
}

// refillAndShuffle rebuilds the full 52-card set and shuffles it.
func (d *Deck) refillAndShuffle() {
	d.cards = fullSet()
	d.Shuffle()
}

// Remaining returns the number of cards left in the shoe.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the current shoe order, top of the shoe last.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
