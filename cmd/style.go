package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/cardroom/blackjack/domain/blackjack"
	"github.com/cardroom/blackjack/domain/deck"
)

// Card face geometry, in runes.
const (
	cardWidth  = 9
	cardHeight = 7
)

// cardLines draws one card face as box art, rank in the corners and the suit
// centered. The suit glyph is colored after padding is computed so ANSI
// codes never shift the layout.
func cardLines(c deck.Card) []string {
	rank := c.RankLabel()
	suit := c.SuitSymbol()
	if c.Suit() == deck.Diamond || c.Suit() == deck.Heart {
		suit = pterm.LightRed(suit)
	}
	rankLine := rank + strings.Repeat(" ", cardWidth-len(rank))
	pad := strings.Repeat(" ", (cardWidth-1)/2)
	suitLine := pad + suit + strings.Repeat(" ", cardWidth-len(pad)-1)
	blank := strings.Repeat(" ", cardWidth)
	return []string{
		"┌─────────┐",
		"│" + rankLine + "│",
		"│" + blank + "│",
		"│" + suitLine + "│",
		"│" + blank + "│",
		"│" + rankLine + "│",
		"└─────────┘",
	}
}

// hiddenCardLines draws the dealer's face-down hole card.
func hiddenCardLines() []string {
	fill := "│" + strings.Repeat(deck.FaceDown, cardWidth) + "│"
	lines := make([]string, 0, cardHeight)
	lines = append(lines, "┌─────────┐")
	for i := 0; i < cardHeight-2; i++ {
		lines = append(lines, fill)
	}
	return append(lines, "└─────────┘")
}

// handArt lays the cards of a hand side by side.
func handArt(h *blackjack.Hand, hideFirst bool) string {
	cards := h.Cards()
	faces := make([][]string, 0, len(cards))
	for i, c := range cards {
		if hideFirst && i == 0 {
			faces = append(faces, hiddenCardLines())
			continue
		}
		faces = append(faces, cardLines(c))
	}
	var sb strings.Builder
	for line := 0; line < cardHeight; line++ {
		parts := make([]string, len(faces))
		for i, face := range faces {
			parts[i] = face[line]
		}
		sb.WriteString(strings.Join(parts, "  "))
		if line < cardHeight-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderHand prints a titled box with the hand's card art. The total is
// shown only when every card is visible.
func renderHand(title string, h *blackjack.Hand, hideFirst bool) {
	art := handArt(h, hideFirst)
	if !hideFirst {
		art += fmt.Sprintf("\nValue: %d", h.Value())
	}
	pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Println(art)
}

// tableRenderer redraws the table at the points the engine reports.
type tableRenderer struct{}

func (tableRenderer) InitialDeal(player, dealer *blackjack.Hand) {
	renderHand("Dealer's hand", dealer, true)
	renderHand("Your hand", player, false)
}

func (tableRenderer) PlayerHit(player *blackjack.Hand) {
	renderHand("Your hand", player, false)
}

func (tableRenderer) DealerReveal(dealer *blackjack.Hand) {
	pterm.Println()
	pterm.Info.Println("Dealer's turn...")
	renderHand("Dealer's hand", dealer, false)
}

func (tableRenderer) DealerHit(dealer *blackjack.Hand) {
	pterm.Info.Println("Dealer hits...")
	renderHand("Dealer's hand", dealer, false)
}

// announce prints the settled outcome in a result box, with the bankroll
// delta when playing for money.
func announce(result blackjack.Result, wagering bool) {
	var line string
	switch result.Outcome {
	case blackjack.PlayerBlackjack:
		line = pterm.LightGreen("Blackjack! You win!")
	case blackjack.DealerBlackjack:
		line = pterm.LightRed("Dealer has Blackjack! You lose.")
	case blackjack.PlayerBust:
		line = pterm.LightRed("Bust! You lose.")
	case blackjack.PlayerWin:
		if result.DealerValue > blackjack.Blackjack {
			line = pterm.LightGreen("Dealer busts! You win!")
		} else {
			line = pterm.LightGreen(pterm.Sprintf("You win! (%d vs %d)", result.PlayerValue, result.DealerValue))
		}
	case blackjack.DealerWin:
		line = pterm.LightRed(pterm.Sprintf("Dealer wins! (%d vs %d)", result.DealerValue, result.PlayerValue))
	case blackjack.Push:
		line = pterm.LightYellow(pterm.Sprintf("It's a push! (%d)", result.PlayerValue))
	}
	if wagering && result.Payout != 0 {
		line += pterm.Sprintf("\nPayout: %+d", result.Payout)
	}
	pterm.DefaultBox.WithTitle(pterm.LightCyan("|RESULT|")).WithTitleTopCenter().
		WithLeftPadding(4).WithRightPadding(4).Println(line)
}
