package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		pterm.Error.Println(err.Error())
		fmt.Fprintf(os.Stderr, "usage: %s [-mode interactive|auto] [-rounds N] [-wallet N] [-bet N] [-shoe finite|reshuffle] [-seed N] [-betting flat|random] [-debug]\n", os.Args[0])
		os.Exit(2)
	}

	// Create a new slog handler with the default PTerm logger
	level := pterm.LogLevelInfo
	if cfg.Debug {
		level = pterm.LogLevelDebug
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("lack", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("J", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ack", pterm.FgDarkGray.ToStyle()),
	).Render()

	seed := cfg.Seed
	if seed == 0 {
		seed = deck.RandomSeed()
	}
	logger.Info("new session",
		"mode", string(cfg.Mode),
		"shoe", cfg.Shoe.String(),
		"wallet", cfg.Wallet,
		"seed", seed,
	)

	shoe := blackjack.NewShoe(cfg.Shoe, deck.NewRand(seed))
	table := application.NewTable(shoe, cfg.Wallet,
		application.WithLogger(logger),
		application.WithWagerPolicy(wagerPolicy(cfg, seed)),
	)

	switch cfg.Mode {
	case config.Auto:
		err = simulate(table, cfg.Rounds)
	default:
		err = table.RunInteractive(terminal{}, terminal{})
	}
	if err != nil {
		logger.Error("session aborted", "error", err.Error())
		os.Exit(1)
	}

	if err := table.Journal().Verify(); err != nil {
		logger.Error("journal verification failed", "error", err.Error())
		os.Exit(1)
	}
	pterm.Success.Printfln("Journal verified: %d transactions", len(table.Journal().Transactions()))
}

func wagerPolicy(cfg config.Config, seed int64) application.WagerPolicy {
	if cfg.Betting == config.Random {
		return application.RandomBetting(rand.New(rand.NewSource(seed + 1)))
	}
	return application.FlatBetting(cfg.Bet)
}

func simulate(table *application.Table, rounds uint32) error {
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d rounds of basic strategy ...", rounds))
	statuses, err := table.RunAutomated(rounds)
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()
	renderSummary(table.Summarize(statuses))
	return nil
}

// terminal is the pterm front-end of an interactive session.
type terminal struct{}

func (terminal) PromptBet(p application.BetPrompt) (string, error) {
	text := fmt.Sprintf("Round %d, wallet %d. How much do you bet?", p.Round, p.Wallet)
	if p.Split {
		text = fmt.Sprintf("Wallet %d. How much to the split?", p.Wallet)
	}
	input := pterm.DefaultInteractiveTextInput.WithDefaultText(text)
	if p.LastBet > 0 {
		input = input.WithDefaultValue(fmt.Sprint(p.LastBet))
	}
	answer, err := input.Show()
	pterm.Println()
	return answer, err
}

func (terminal) PromptAction(p application.ActionPrompt) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(actionHint(p)).Show()
	pterm.Println()
	return answer, err
}

func (terminal) RenderHand(s application.Snapshot) {
	printTable(s)
}

func (terminal) RenderOutcome(s application.Snapshot, outcome []blackjack.GameStatus) {
	printTable(s, getOutcomePanel(s, outcome))
}

func (terminal) RenderMessage(msg string) {
	pterm.Warning.Println(msg)
}
