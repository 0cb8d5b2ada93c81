package blackjack

import "fmt"

// DealerStandsOn is the total at which the dealer stops drawing.
const DealerStandsOn = 17

// Drawer is anything cards can be drawn from.
type Drawer interface {
	Draw() (Card, error)
}

// Payer credits the stake of a winning hand.
type Payer interface {
	Win(split bool) error
}

// DealerTurn draws cards into the dealer main sequence while its value is
// below 17. A bust also ends the loop. The split sequence is never touched.
func DealerTurn(shoe Drawer, dealer *Hand) error {
	for dealer.Value(false) < DealerStandsOn {
		card, err := shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealer draw: %w", err)
		}
		dealer.AddCard(card, false)
	}
	return nil
}

// Resolve compares one player hand with the dealer hand.
//
// The player wins with a higher total that did not bust, or when the dealer
// busts. A player blackjack against a dealer without one also wins. The
// blackjack is always read from the main cards, so a blackjack on the main
// hand also carries the split hand. Without a win, a dealer bust or an equal
// total is a tie; anything else loses.
func Resolve(player, dealer *Hand, split bool) GameStatus {
	value := player.Value(split)
	dealerValue := dealer.Value(false)
	wins := value <= 21 && (dealerValue > 21 || value > dealerValue)
	wins = wins || (player.IsBlackjack() && !dealer.IsBlackjack())
	switch {
	case wins:
		return Win
	case dealerValue > 21 || value == dealerValue:
		return Tie
	default:
		return Lose
	}
}

// Settle resolves the main hand and, when present, the split hand. Every win
// is credited through payer. The returned slice holds the main status first.
func Settle(player, dealer *Hand, payer Payer) ([]GameStatus, error) {
	hands := []bool{false}
	if player.HasSplit() {
		hands = append(hands, true)
	}
	statuses := make([]GameStatus, 0, len(hands))
	for _, split := range hands {
		status := Resolve(player, dealer, split)
		if status == Win {
			if err := payer.Win(split); err != nil {
				return statuses, err
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
