package blackjack

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

type recordingPayer struct {
	wins []bool
}

func (p *recordingPayer) Win(split bool) error {
	p.wins = append(p.wins, split)
	return nil
}

func stacked(t *testing.T, cards ...Card) *Shoe {
	t.Helper()
	s, err := NewShoeFromCards(deck.Finite, nil, cards...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestDealerTurnStandsOnSeventeen(t *testing.T) {
	tests := []struct {
		name   string
		dealer []Card
		shoe   []Card
		want   uint8
		drawn  int
	}{
		{"already seventeen", []Card{mk(Ten), mk(Seven)}, []Card{mk(Five)}, 17, 0},
		{"soft seventeen stands", []Card{mk(Ace), mk(Six)}, []Card{mk(Five)}, 17, 0},
		{"draws to twenty one", []Card{mk(Nine), mk(Seven)}, []Card{mk(Five)}, 21, 1},
		{"draws until bust", []Card{mk(Ten), mk(Two)}, []Card{mk(Three), mk(Ten)}, 25, 2},
		{"draws several", []Card{mk(Two), mk(Three)}, []Card{mk(Two), mk(Four), mk(Six)}, 17, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealer := handOf(tt.dealer...)
			shoe := stacked(t, tt.shoe...)
			if err := DealerTurn(shoe, dealer); err != nil {
				t.Fatal(err)
			}
			if got := dealer.Value(false); got != tt.want {
				t.Errorf("dealer value = %d, want %d", got, tt.want)
			}
			if drawn := len(tt.shoe) - shoe.Remaining(); drawn != tt.drawn {
				t.Errorf("dealer drew %d cards, want %d", drawn, tt.drawn)
			}
			if dealer.HasSplit() {
				t.Error("dealer drew into a split hand")
			}
		})
	}
}

func TestDealerTurnEmptyShoe(t *testing.T) {
	dealer := handOf(mk(Two), mk(Three))
	err := DealerTurn(stacked(t, mk(Four)), dealer)
	if !errors.Is(err, deck.ErrEmptyShoe) {
		t.Fatalf("expected ErrEmptyShoe, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		player []Card
		dealer []Card
		want   GameStatus
	}{
		{"higher total wins", []Card{mk(Ten), mk(Nine)}, []Card{mk(Ten), mk(Eight)}, Win},
		{"lower total loses", []Card{mk(Ten), mk(Seven)}, []Card{mk(Ten), mk(Eight)}, Lose},
		{"equal total ties", []Card{mk(Ten), mk(Eight)}, []Card{mk(Nine), mk(Nine)}, Tie},
		{"dealer bust wins", []Card{mk(Ten), mk(Two)}, []Card{mk(Ten), mk(Six), mk(Nine)}, Win},
		{"both bust ties", []Card{mk(Ten), mk(Six), mk(Nine)}, []Card{mk(Ten), mk(Five), mk(Nine)}, Tie},
		{"player bust loses", []Card{mk(Ten), mk(Six), mk(Nine)}, []Card{mk(Ten), mk(Seven)}, Lose},
		{"twenty one loses to dealer blackjack", []Card{mk(Seven), mk(Seven), mk(Seven)}, []Card{mk(Ace), mk(King)}, Lose},
		{"blackjack beats dealer twenty one", []Card{mk(Ace), mk(King)}, []Card{mk(Ten), mk(Five), mk(Six)}, Win},
		{"blackjack against blackjack ties", []Card{mk(Ace), mk(Queen)}, []Card{mk(Jack), mk(Ace)}, Tie},
		{"ace ten ties dealer twenty one", []Card{mk(Ace), mk(Ten)}, []Card{mk(Ten), mk(Five), mk(Six)}, Tie},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(handOf(tt.player...), handOf(tt.dealer...), false)
			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveSplitHandWithoutBlackjack(t *testing.T) {
	player := handOf(mk(King), mk(King))
	player.MakeSplit()
	player.AddCard(mk(Ace), true)
	dealer := handOf(mk(Ten), mk(Five), mk(Six))
	if got := Resolve(player, dealer, true); got != Tie {
		t.Fatalf("split 21 against dealer 21: got %v, want tie", got)
	}
}

func TestResolveSplitHandCarriedByMainBlackjack(t *testing.T) {
	player := handOf(mk(Ace), mk(Ace))
	if !player.MakeSplit() {
		t.Fatal("aces should split")
	}
	player.AddCard(mk(King), false)
	player.AddCard(mk(Five), true)
	if !player.IsBlackjack() {
		t.Fatal("ace king on the main hand should be a blackjack")
	}
	dealer := handOf(mk(Ten), mk(Eight))

	tests := []struct {
		name  string
		split bool
		want  GameStatus
	}{
		{"main blackjack", false, Win},
		{"split sixteen against eighteen", true, Win},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(player, dealer, tt.split); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}

	payer := &recordingPayer{}
	statuses, err := Settle(player, dealer, payer)
	if err != nil {
		t.Fatal(err)
	}
	if len(statuses) != 2 || statuses[1] != Win || len(payer.wins) != 2 {
		t.Fatalf("expected both hands paid, got %v %v", statuses, payer.wins)
	}
}

func TestSettleCreditsWinningHands(t *testing.T) {
	player := handOf(mk(Eight), mk(Eight))
	player.MakeSplit()
	player.AddCard(mk(Ten), false) // 18
	player.AddCard(mk(Nine), true) // 17
	dealer := handOf(mk(Ten), mk(Seven))

	payer := &recordingPayer{}
	statuses, err := Settle(player, dealer, payer)
	if err != nil {
		t.Fatal(err)
	}
	if len(statuses) != 2 || statuses[0] != Win || statuses[1] != Tie {
		t.Fatalf("unexpected statuses %v", statuses)
	}
	if len(payer.wins) != 1 || payer.wins[0] {
		t.Fatalf("expected a single main hand credit, got %v", payer.wins)
	}
}

// Player blackjack against a dealer 16: whatever the dealer draws next
// cannot make a blackjack.
func TestBlackjackBeatsDealerDraw(t *testing.T) {
	player := handOf(mk(Ace), mk(King))
	dealer := handOf(mk(Nine), mk(Seven))
	if err := DealerTurn(stacked(t, mk(Five)), dealer); err != nil {
		t.Fatal(err)
	}
	if dealer.Value(false) != 21 {
		t.Fatalf("expected dealer 21, got %d", dealer.Value(false))
	}
	payer := &recordingPayer{}
	statuses, err := Settle(player, dealer, payer)
	if err != nil {
		t.Fatal(err)
	}
	if statuses[0] != Win {
		t.Fatalf("expected win, got %v", statuses[0])
	}
}
