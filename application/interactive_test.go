package application

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

type scriptedPrompter struct {
	bets          []string
	actions       []string
	betPrompts    []BetPrompt
	actionPrompts []ActionPrompt
}

func (p *scriptedPrompter) PromptBet(bp BetPrompt) (string, error) {
	p.betPrompts = append(p.betPrompts, bp)
	if len(p.bets) == 0 {
		return "", io.EOF
	}
	answer := p.bets[0]
	p.bets = p.bets[1:]
	return answer, nil
}

func (p *scriptedPrompter) PromptAction(ap ActionPrompt) (string, error) {
	p.actionPrompts = append(p.actionPrompts, ap)
	if len(p.actions) == 0 {
		return "", io.EOF
	}
	answer := p.actions[0]
	p.actions = p.actions[1:]
	return answer, nil
}

type recordingRenderer struct {
	hands    []Snapshot
	outcomes [][]blackjack.GameStatus
	messages []string
}

func (r *recordingRenderer) RenderHand(s Snapshot) {
	r.hands = append(r.hands, s)
}

func (r *recordingRenderer) RenderOutcome(_ Snapshot, outcome []blackjack.GameStatus) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordingRenderer) RenderMessage(msg string) {
	r.messages = append(r.messages, msg)
}

func (r *recordingRenderer) said(substr string) bool {
	return slices.ContainsFunc(r.messages, func(m string) bool {
		return strings.Contains(m, substr)
	})
}

func TestRunInteractiveUntilWalletIsEmpty(t *testing.T) {
	table := stackedTable(t, 10,
		blackjack.Eight, blackjack.Ten, blackjack.Eight, blackjack.Seven,
	)
	p := &scriptedPrompter{
		bets:    []string{"10", "5"},
		actions: []string{"z", "p", "s"},
	}
	r := &recordingRenderer{}
	if err := table.RunInteractive(p, r); err != nil {
		t.Fatal(err)
	}

	if len(p.actionPrompts) != 3 {
		t.Fatalf("expected 3 action prompts, got %d", len(p.actionPrompts))
	}
	if !slices.Contains(p.actionPrompts[0].Options, blackjack.ActionSplit) {
		t.Fatal("split should be offered on a pair")
	}
	if p.actionPrompts[0].Advice != blackjack.Split {
		t.Fatalf("expected split advice for eights against ten, got %v", p.actionPrompts[0].Advice)
	}
	if len(p.betPrompts) != 2 || !p.betPrompts[1].Split {
		t.Fatalf("expected a split wager prompt, got %+v", p.betPrompts)
	}
	if !r.said("insufficient funds") {
		t.Fatalf("expected an insufficient funds message, got %q", r.messages)
	}
	if !r.said("wallet is empty") {
		t.Fatalf("expected the game to end on an empty wallet, got %q", r.messages)
	}
	if len(r.outcomes) != 1 || r.outcomes[0][0] != blackjack.Lose {
		t.Fatalf("expected one lost round, got %v", r.outcomes)
	}
	if len(r.hands) == 0 || !r.hands[0].HoleHidden {
		t.Fatal("expected the hole card to be hidden during the player turn")
	}
}

func TestRunInteractiveIneligibleSplitIsNotFatal(t *testing.T) {
	table := stackedTable(t, 10,
		blackjack.Ten, blackjack.Ten, blackjack.Nine, blackjack.Seven,
	)
	p := &scriptedPrompter{
		bets:    []string{"10"},
		actions: []string{"p", "S"},
	}
	r := &recordingRenderer{}
	err := table.RunInteractive(p, r)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected the prompter error to end the session, got %v", err)
	}
	if !r.said(blackjack.ErrIneligibleSplit.Error()) {
		t.Fatalf("expected a cannot split message, got %q", r.messages)
	}
	if len(r.outcomes) != 1 || r.outcomes[0][0] != blackjack.Win {
		t.Fatalf("expected one won round, got %v", r.outcomes)
	}
	if len(p.betPrompts) != 2 {
		t.Fatalf("expected no split wager prompt, got %+v", p.betPrompts)
	}
	if p.betPrompts[1].Round != 2 || p.betPrompts[1].LastBet != 10 {
		t.Fatalf("unexpected second bet prompt %+v", p.betPrompts[1])
	}
}

func TestRunInteractiveInvalidWagerRepeatsLastBet(t *testing.T) {
	table := stackedTable(t, 100,
		blackjack.Ten, blackjack.Ten, blackjack.Nine, blackjack.Seven,
		blackjack.Ten, blackjack.Ten, blackjack.Nine, blackjack.Seven,
	)
	p := &scriptedPrompter{
		bets:    []string{"20", "twenty"},
		actions: []string{"s", "s"},
	}
	r := &recordingRenderer{}
	if err := table.RunInteractive(p, r); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if !r.said("betting 20") {
		t.Fatalf("expected the last bet to be repeated, got %q", r.messages)
	}
	if table.Ledger().LastBet() != 20 || table.Ledger().Round() != 2 {
		t.Fatalf("unexpected ledger: last bet %d round %d", table.Ledger().LastBet(), table.Ledger().Round())
	}
}

func TestRunInteractiveEndsOnEmptyShoe(t *testing.T) {
	table := stackedTable(t, 100, blackjack.Ten, blackjack.Ten, blackjack.Nine)
	p := &scriptedPrompter{bets: []string{"10"}}
	r := &recordingRenderer{}
	if err := table.RunInteractive(p, r); err != nil {
		t.Fatalf("an empty shoe should end the game without an error, got %v", err)
	}
	if !r.said("shoe is empty") {
		t.Fatalf("expected a game over message, got %q", r.messages)
	}
}
