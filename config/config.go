// Package config loads process configuration from the environment, with an
// optional .env file for local play.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when a variable is unset.
const (
	DefaultStartingBalance = 1000
	DefaultBet             = 100
)

// Config is everything the game reads from the environment.
type Config struct {
	// StartingBalance is the bankroll a new session opens with.
	StartingBalance int
	// DefaultBet is the stake used when the bet prompt is left empty.
	DefaultBet int
	// Wagering plays rounds for money; off reproduces the free variant.
	Wagering bool
	// FairShuffle publishes a commitment to each shuffle and reveals the
	// seed after the round.
	FairShuffle bool
}

// Load reads the configuration, letting a .env file fill in unset variables.
// A missing .env is not an error; a malformed value is.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{}
	var err error
	if cfg.StartingBalance, err = intEnv("BLACKJACK_STARTING_BALANCE", DefaultStartingBalance); err != nil {
		return Config{}, err
	}
	if cfg.DefaultBet, err = intEnv("BLACKJACK_DEFAULT_BET", DefaultBet); err != nil {
		return Config{}, err
	}
	if cfg.Wagering, err = boolEnv("BLACKJACK_WAGERING", true); err != nil {
		return Config{}, err
	}
	if cfg.FairShuffle, err = boolEnv("BLACKJACK_FAIR_SHUFFLE", false); err != nil {
		return Config{}, err
	}

	if cfg.StartingBalance <= 0 {
		return Config{}, fmt.Errorf("BLACKJACK_STARTING_BALANCE must be positive, got %d", cfg.StartingBalance)
	}
	if cfg.DefaultBet <= 0 {
		return Config{}, fmt.Errorf("BLACKJACK_DEFAULT_BET must be positive, got %d", cfg.DefaultBet)
	}
	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
