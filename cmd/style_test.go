package main

import (
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/config"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

func TestActionHint(t *testing.T) {
	tests := []struct {
		name   string
		prompt application.ActionPrompt
		want   string
	}{
		{
			"main hand with split",
			application.ActionPrompt{
				Hand:    application.MainHand,
				Value:   16,
				Options: []blackjack.Action{blackjack.ActionHit, blackjack.ActionStand, blackjack.ActionDouble, blackjack.ActionSplit},
				Advice:  blackjack.Split,
			},
			"main hand at 16. Hit, Stand, Double or sPlit? [h/s/d/p] (basic strategy: split)",
		},
		{
			"split hand without advice",
			application.ActionPrompt{
				Hand:    application.SplitHand,
				Value:   8,
				Options: []blackjack.Action{blackjack.ActionHit, blackjack.ActionStand, blackjack.ActionDouble},
			},
			"split hand at 8. Hit, Stand or Double? [h/s/d]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionHint(tt.prompt); got != tt.want {
				t.Errorf("actionHint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCardsLine(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	ace, _ := blackjack.NewCard(blackjack.Spade, blackjack.Ace)
	ten, _ := blackjack.NewCard(blackjack.Heart, blackjack.Ten)
	if got := cardsLine([]blackjack.Card{ace, ten}, false); got != ace.String()+" - "+ten.String() {
		t.Errorf("unexpected line %q", got)
	}
	if got := cardsLine([]blackjack.Card{ace}, true); got != ace.String()+" - ??" {
		t.Errorf("unexpected hidden line %q", got)
	}
}

func TestWagerPolicy(t *testing.T) {
	flat := wagerPolicy(config.Config{Betting: config.Flat, Bet: 15}, 1)
	if got := flat(100, 0); got != 15 {
		t.Fatalf("expected flat wager 15, got %d", got)
	}
	random := wagerPolicy(config.Config{Betting: config.Random, Bet: 15}, 1)
	for range 100 {
		if got := random(30, 0); got < 1 || got > 30 {
			t.Fatalf("random wager %d outside 1..30", got)
		}
	}
}
