// Package config reads the session settings of the blackjack command.
//
// Settings come from three places, later ones winning: built-in defaults,
// BLACKJACK_* environment variables (a .env file is loaded into the
// environment first, without overriding variables already set) and command
// line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

type Mode string

const (
	Interactive Mode = "interactive"
	Auto        Mode = "auto"
)

type Betting string

const (
	Flat   Betting = "flat"
	Random Betting = "random"
)

// Config holds everything needed to start a session.
type Config struct {
	Mode    Mode
	Rounds  uint32
	Wallet  uint32
	Bet     uint32
	Shoe    deck.Policy
	Seed    int64 // 0 draws a random seed
	Betting Betting
	Debug   bool
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Mode:    Interactive,
		Rounds:  1000,
		Wallet:  1000,
		Bet:     10,
		Shoe:    deck.Reshuffling,
		Betting: Flat,
	}
}

// Load builds the configuration from the environment and args, which must not
// include the program name. Without envFiles a .env file in the working
// directory is loaded when present.
func Load(args []string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}
	cfg, err := fromEnv(Default(), os.LookupEnv)
	if err != nil {
		return Config{}, err
	}
	return fromFlags(cfg, args)
}

func fromEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	var errs []error
	get := func(key string) (string, bool) {
		v, ok := lookup("BLACKJACK_" + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	if v, ok := get("MODE"); ok {
		mode, err := parseMode(v)
		errs = append(errs, err)
		cfg.Mode = mode
	}
	if v, ok := get("ROUNDS"); ok {
		n, err := parseUint32("BLACKJACK_ROUNDS", v)
		errs = append(errs, err)
		cfg.Rounds = n
	}
	if v, ok := get("WALLET"); ok {
		n, err := parseUint32("BLACKJACK_WALLET", v)
		errs = append(errs, err)
		cfg.Wallet = n
	}
	if v, ok := get("BET"); ok {
		n, err := parseUint32("BLACKJACK_BET", v)
		errs = append(errs, err)
		cfg.Bet = n
	}
	if v, ok := get("SHOE"); ok {
		policy, err := deck.ParsePolicy(v)
		errs = append(errs, err)
		cfg.Shoe = policy
	}
	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			err = fmt.Errorf("BLACKJACK_SEED: %w", err)
		}
		errs = append(errs, err)
		cfg.Seed = seed
	}
	if v, ok := get("BETTING"); ok {
		betting, err := parseBetting(v)
		errs = append(errs, err)
		cfg.Betting = betting
	}
	if v, ok := get("DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			err = fmt.Errorf("BLACKJACK_DEBUG: %w", err)
		}
		errs = append(errs, err)
		cfg.Debug = debug
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fromFlags(cfg Config, args []string) (Config, error) {
	flags := flag.NewFlagSet("blackjack", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	mode := flags.String("mode", string(cfg.Mode), "interactive or auto")
	rounds := flags.Uint64("rounds", uint64(cfg.Rounds), "rounds to simulate in auto mode")
	wallet := flags.Uint64("wallet", uint64(cfg.Wallet), "starting wallet")
	bet := flags.Uint64("bet", uint64(cfg.Bet), "flat wager in auto mode")
	shoe := flags.String("shoe", cfg.Shoe.String(), "finite or reshuffle")
	seed := flags.Int64("seed", cfg.Seed, "shuffle seed, 0 for a random one")
	betting := flags.String("betting", string(cfg.Betting), "flat or random wagers in auto mode")
	debug := flags.Bool("debug", cfg.Debug, "log every move")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments %q", flags.Args())
	}

	var errs []error
	var err error
	cfg.Mode, err = parseMode(*mode)
	errs = append(errs, err)
	cfg.Shoe, err = deck.ParsePolicy(*shoe)
	errs = append(errs, err)
	cfg.Betting, err = parseBetting(*betting)
	errs = append(errs, err)
	for _, v := range []struct {
		name string
		in   uint64
		out  *uint32
	}{
		{"rounds", *rounds, &cfg.Rounds},
		{"wallet", *wallet, &cfg.Wallet},
		{"bet", *bet, &cfg.Bet},
	} {
		if v.in > math.MaxUint32 {
			errs = append(errs, fmt.Errorf("-%s %d out of range", v.name, v.in))
			continue
		}
		*v.out = uint32(v.in)
	}
	cfg.Seed = *seed
	cfg.Debug = *debug
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case Interactive:
		return Interactive, nil
	case Auto:
		return Auto, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

func parseBetting(s string) (Betting, error) {
	switch Betting(strings.ToLower(s)) {
	case Flat:
		return Flat, nil
	case Random:
		return Random, nil
	default:
		return "", fmt.Errorf("unknown betting %q", s)
	}
}

func parseUint32(name, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return uint32(v), nil
}
