package application

import "github.com/luca-patrignani/blackjack/domain/blackjack"

// Snapshot is a read-only view of the table for rendering. While the player
// is still playing only the dealer up-card is shown.
type Snapshot struct {
	State       State
	Round       uint32
	Wallet      uint32
	Bet         uint32
	SplitBet    uint32
	Player      []blackjack.Card
	Split       []blackjack.Card
	Dealer      []blackjack.Card
	PlayerValue uint8
	SplitValue  uint8
	DealerValue uint8
	HoleHidden  bool
}

func (t *Table) Snapshot() Snapshot {
	wallet, bet := t.ledger.View()
	s := Snapshot{
		State:       t.state,
		Round:       t.ledger.Round(),
		Wallet:      wallet,
		Bet:         bet,
		SplitBet:    t.ledger.SplitBet(),
		Player:      t.player.Cards(false),
		Split:       t.player.Cards(true),
		PlayerValue: t.player.Value(false),
		SplitValue:  t.player.Value(true),
	}
	if _, playing := t.ActiveHand(); playing {
		if up, ok := t.dealer.UpCard(); ok {
			var shown blackjack.Hand
			shown.AddCard(up, false)
			s.Dealer = shown.Cards(false)
			s.DealerValue = shown.Value(false)
		}
		s.HoleHidden = true
		return s
	}
	s.Dealer = t.dealer.Cards(false)
	s.DealerValue = t.dealer.Value(false)
	return s
}
