package application

import "github.com/luca-patrignani/blackjack/domain/blackjack"

// Summary aggregates the statuses returned by RunAutomated.
type Summary struct {
	Rounds     int
	Wins       int
	Ties       int
	Losses     int
	SplitHands int
	Wallet     uint32
	Blocks     int
}

// Summarize counts statuses and adds the final state of the table.
func (t *Table) Summarize(statuses []blackjack.GameStatus) Summary {
	s := Summary{
		Rounds:     len(statuses),
		SplitHands: t.splitHands,
		Wallet:     t.ledger.Wallet(),
		Blocks:     t.journal.Len(),
	}
	for _, status := range statuses {
		switch status {
		case blackjack.Win:
			s.Wins++
		case blackjack.Tie:
			s.Ties++
		case blackjack.Lose:
			s.Losses++
		}
	}
	return s
}

// WinRate is the share of rounds won, 0 when no round was played.
func (s Summary) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}
