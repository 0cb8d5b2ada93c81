package application

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
	"github.com/luca-patrignani/blackjack/ledger"
)

// BetPrompt asks for a wager. Split is set when the wager is for a split hand.
type BetPrompt struct {
	Round   uint32
	Wallet  uint32
	LastBet uint32
	Split   bool
}

// ActionPrompt asks what to do with a hand. Options lists the actions on
// offer, Advice the basic strategy suggestion.
type ActionPrompt struct {
	Hand    HandID
	Value   uint8
	Options []blackjack.Action
	Advice  blackjack.Decision
}

// Prompter collects raw answers from the player. Parsing them is up to the
// table.
type Prompter interface {
	PromptBet(BetPrompt) (string, error)
	PromptAction(ActionPrompt) (string, error)
}

// Renderer shows the table to the player.
type Renderer interface {
	RenderHand(Snapshot)
	RenderOutcome(Snapshot, []blackjack.GameStatus)
	RenderMessage(string)
}

// RunInteractive plays rounds while the wallet holds money, asking p for every
// wager and move. An answer that is not an action asks again. Moves the table
// refuses are reported through r and the player chooses again. Errors from
// the collaborators end the session.
func (t *Table) RunInteractive(p Prompter, r Renderer) error {
	for t.ledger.Wallet() > 0 {
		input, err := p.PromptBet(t.betPrompt(false))
		if err != nil {
			return fmt.Errorf("prompt bet: %w", err)
		}
		amount, fallback := t.ledger.ResolveWager(input)
		if fallback {
			r.RenderMessage(fmt.Sprintf("Not a valid wager, betting %d", amount))
		}
		if err := t.Deal(amount); err != nil {
			if errors.Is(err, ledger.ErrInsufficientFunds) {
				r.RenderMessage(err.Error())
				continue
			}
			return t.endSession(err, r)
		}

		for t.state != Resolved {
			r.RenderHand(t.Snapshot())
			m, err := t.promptMove(p)
			if err != nil {
				return err
			}
			if err := t.Apply(m); err != nil {
				if errors.Is(err, blackjack.ErrIneligibleSplit) || errors.Is(err, ledger.ErrInsufficientFunds) {
					r.RenderMessage(err.Error())
					continue
				}
				return t.endSession(err, r)
			}
		}
		r.RenderOutcome(t.Snapshot(), t.Outcome())
	}
	r.RenderMessage("Game Over: the wallet is empty")
	return nil
}

// endSession turns an exhausted shoe into the end of the game.
func (t *Table) endSession(err error, r Renderer) error {
	if errors.Is(err, deck.ErrEmptyShoe) {
		t.logger.Info("game over: the shoe is empty", "round", t.ledger.Round())
		r.RenderMessage("Game Over: the shoe is empty")
		return nil
	}
	return err
}

func (t *Table) promptMove(p Prompter) (Move, error) {
	hand, _ := t.ActiveHand()
	prompt := ActionPrompt{
		Hand:    hand,
		Value:   t.player.Value(hand.isSplit()),
		Options: t.options(hand),
		Advice:  t.Advise(),
	}
	for {
		input, err := p.PromptAction(prompt)
		if err != nil {
			return Move{}, fmt.Errorf("prompt action: %w", err)
		}
		action, ok := blackjack.ParseAction(input)
		if !ok {
			continue
		}
		m := Move{Hand: hand, Action: action}
		if action == blackjack.ActionSplit && hand == MainHand && t.player.CanSplit() {
			input, err := p.PromptBet(t.betPrompt(true))
			if err != nil {
				return Move{}, fmt.Errorf("prompt split bet: %w", err)
			}
			m.Amount, _ = t.ledger.ResolveWager(input)
		}
		return m, nil
	}
}

// options lists the actions offered for hand. Split is only offered on a
// main hand that can be split.
func (t *Table) options(hand HandID) []blackjack.Action {
	opts := []blackjack.Action{blackjack.ActionHit, blackjack.ActionStand, blackjack.ActionDouble}
	if hand == MainHand && t.player.CanSplit() {
		opts = append(opts, blackjack.ActionSplit)
	}
	return opts
}

func (t *Table) betPrompt(split bool) BetPrompt {
	round := t.ledger.Round()
	if !split {
		round++
	}
	return BetPrompt{
		Round:   round,
		Wallet:  t.ledger.Wallet(),
		LastBet: t.ledger.LastBet(),
		Split:   split,
	}
}
