package application

import (
	"errors"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
)

// RunAutomated plays up to roundLimit rounds following basic strategy and
// returns the main hand status of every completed round. It stops early when
// the wallet is empty. An exhausted finite shoe ends the session as well: the
// rounds completed so far are returned without an error.
func (t *Table) RunAutomated(roundLimit uint32) ([]blackjack.GameStatus, error) {
	statuses := make([]blackjack.GameStatus, 0, min(roundLimit, 1024))
	for played := uint32(0); played < roundLimit && t.ledger.Wallet() > 0; played++ {
		outcome, err := t.playAutomatedRound()
		if errors.Is(err, deck.ErrEmptyShoe) {
			t.logger.Info("game over: the shoe is empty", "rounds", len(statuses))
			return statuses, nil
		}
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, outcome[0])
	}
	return statuses, nil
}

func (t *Table) playAutomatedRound() ([]blackjack.GameStatus, error) {
	if err := t.Deal(t.wager(t.ledger.Wallet(), t.ledger.LastBet())); err != nil {
		return nil, err
	}
	for t.state != Resolved {
		if err := t.Apply(t.suggestMove()); err != nil {
			return nil, err
		}
	}
	return t.outcome, nil
}

// Advise returns the basic strategy decision for the hand being played.
func (t *Table) Advise() blackjack.Decision {
	hand, ok := t.ActiveHand()
	if !ok {
		return blackjack.None
	}
	return blackjack.Decide(&t.dealer, &t.player, hand.isSplit())
}

// suggestMove turns the advice into a move that Validate accepts. A split
// that is not allowed or not affordable is played from the hard totals table,
// an unaffordable double becomes a hit and no advice at all ends the hand.
func (t *Table) suggestMove() Move {
	hand, _ := t.ActiveHand()
	split := hand.isSplit()
	decision := t.Advise()

	amount := t.ledger.Bet()
	if decision == blackjack.Split && (split || !t.player.CanSplit() || !t.ledger.CanAfford(amount)) {
		decision = blackjack.None
		if up, ok := t.dealer.UpCard(); ok {
			decision = blackjack.HardTotals(up, t.player.Value(split))
		}
	}
	if decision == blackjack.Double && !t.ledger.CanDouble(split) {
		decision = blackjack.Hit
	}

	action, ok := decision.Action()
	if !ok {
		action = blackjack.ActionStand
	}
	m := Move{Hand: hand, Action: action}
	if action == blackjack.ActionSplit {
		m.Amount = amount
	}
	return m
}
