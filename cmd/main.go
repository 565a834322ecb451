package main

import (
	"encoding/hex"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/cardroom/blackjack/config"
	"github.com/cardroom/blackjack/domain/blackjack"
	"github.com/cardroom/blackjack/domain/deck"
	"github.com/cardroom/blackjack/fairness"
)

func main() {
	// Create a new slog logger backed by the default PTerm handler
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}
	logger.Info("starting session",
		"balance", cfg.StartingBalance,
		"wagering", cfg.Wagering,
		"fair_shuffle", cfg.FairShuffle,
	)

	session := blackjack.NewSession(cfg.StartingBalance, cfg.Wagering)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		if cfg.Wagering {
			pterm.Info.Printfln("Balance: %d", session.Balance())
			promptBet(session, cfg.DefaultBet)
		}

		shoe, seed, commitment := buildShoe(logger, cfg.FairShuffle, rng)

		result, err := session.PlayRound(shoe, consoleDecisions{}, tableRenderer{})
		if err != nil {
			logger.Error("round aborted", "error", err.Error())
			os.Exit(1)
		}
		announce(result, cfg.Wagering)

		if seed != nil {
			revealSeed(logger, commitment, seed)
		}
		if cfg.Wagering {
			pterm.Info.Printfln("Balance: %d", session.Balance())
		}
		if session.Exhausted() {
			pterm.Warning.Println("You're out of money. Thanks for playing!")
			return
		}
		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(true).
			Show("Play another round?")
		if !again {
			pterm.Info.Println("Thanks for playing!")
			return
		}
		pterm.Println()
	}
}

// promptBet asks for a stake until the session accepts one. An empty answer
// falls back to the configured default bet.
func promptBet(session *blackjack.Session, defaultBet int) {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(pterm.Sprintf("Your bet (default %d)", defaultBet)).
			Show()
		raw = strings.TrimSpace(raw)
		amount := defaultBet
		if raw != "" {
			var err error
			amount, err = strconv.Atoi(raw)
			if err != nil {
				pterm.Warning.Printfln("Not a number: %s", raw)
				continue
			}
		}
		if err := session.PlaceBet(amount); err != nil {
			pterm.Warning.Println(err.Error())
			continue
		}
		return
	}
}

// buildShoe constructs a fresh shuffled deck. With fair shuffling on the
// shuffle is driven by a committed seed, both returned for the post-round
// reveal; otherwise the process-wide entropy source drives it.
func buildShoe(logger *slog.Logger, fair bool, rng *rand.Rand) (*deck.Deck, []byte, fairness.Commitment) {
	if fair {
		d, seed, commitment, err := committedShoe()
		if err != nil {
			logger.Warn("fair shuffle unavailable, falling back to entropy", "error", err.Error())
		} else {
			pterm.Info.Printfln("Shuffle commitment: %s", commitment)
			return d, seed, commitment
		}
	}
	d := deck.New(rng)
	d.Shuffle()
	return d, nil, fairness.Commitment{}
}

func committedShoe() (*deck.Deck, []byte, fairness.Commitment, error) {
	seed, err := fairness.NewSeed()
	if err != nil {
		return nil, nil, fairness.Commitment{}, err
	}
	commitment, err := fairness.Commit(seed)
	if err != nil {
		return nil, nil, fairness.Commitment{}, err
	}
	stream, err := fairness.NewStream(seed)
	if err != nil {
		return nil, nil, fairness.Commitment{}, err
	}
	d := deck.New(stream)
	d.Shuffle()
	return d, seed, commitment, nil
}

// revealSeed publishes the shuffle seed after the round and checks it
// against the commitment shown before the deal.
func revealSeed(logger *slog.Logger, commitment fairness.Commitment, seed []byte) {
	if err := fairness.Verify(commitment, seed); err != nil {
		logger.Warn("shuffle verification failed", "error", err.Error())
		return
	}
	pterm.Success.Printfln("Shuffle seed revealed: %s", hex.EncodeToString(seed))
}

// consoleDecisions reads hit/stand from an interactive select, so the engine
// only ever receives a valid decision.
type consoleDecisions struct{}

func (consoleDecisions) RequestDecision() (blackjack.Decision, error) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{"Hit", "Stand"}).
		Show("Hit or stand?")
	if err != nil {
		return "", err
	}
	if choice == "Hit" {
		return blackjack.Hit, nil
	}
	return blackjack.Stand, nil
}
