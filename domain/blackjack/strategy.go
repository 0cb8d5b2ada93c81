package blackjack

// Decide returns the basic strategy suggestion for the player main or split
// hand against the dealer up-card. A pair goes to the pairs table, a two card
// hand holding an ace to the soft totals table and everything else to the
// hard totals table. Without a dealer up-card the answer is None.
func Decide(dealer, player *Hand, split bool) Decision {
	up, ok := dealer.UpCard()
	if !ok {
		return None
	}
	cards := player.Cards(split)
	switch {
	case len(cards) == 2 && cards[0].rank == cards[1].rank:
		return Pairs(up, cards)
	case len(cards) == 2 && player.HasAce(split):
		return SoftTotals(up, cards)
	default:
		return HardTotals(up, player.Value(split))
	}
}

// HardTotals looks up the hard totals table for a player total.
func HardTotals(up Card, total uint8) Decision {
	switch up.rank {
	case Two:
		switch {
		case total >= 13:
			return Stand
		case total == 12 || total <= 9:
			return Hit
		default:
			return Double
		}
	case Three:
		switch {
		case total >= 13:
			return Stand
		case total == 12 || total <= 8:
			return Hit
		default:
			return Double
		}
	case Four, Five, Six:
		switch {
		case total >= 12:
			return Stand
		case total <= 8:
			return Hit
		default:
			return Double
		}
	case Seven, Eight, Nine:
		switch {
		case total >= 17:
			return Stand
		case total == 10 || total == 11:
			return Double
		default:
			return Hit
		}
	default:
		switch {
		case total >= 17:
			return Stand
		case total == 11:
			return Double
		default:
			return Hit
		}
	}
}

// SoftTotals looks up the soft totals table, keyed on the value of the card
// paired with the ace. It returns None unless cards is a two card hand with
// an ace.
func SoftTotals(up Card, cards []Card) Decision {
	other, ok := aceCompanion(cards)
	if !ok {
		return None
	}
	v := other.value
	switch up.rank {
	case Two:
		switch {
		case v > 7:
			return Stand
		case v == 7:
			return Double
		default:
			return Hit
		}
	case Three:
		switch {
		case v > 7:
			return Stand
		case v > 5:
			return Double
		default:
			return Hit
		}
	case Four:
		switch {
		case v > 7:
			return Stand
		case v > 3:
			return Double
		default:
			return Hit
		}
	case Five:
		if v > 7 {
			return Stand
		}
		return Hit
	case Six:
		if v == 9 {
			return Stand
		}
		return Double
	case Seven, Eight:
		if v > 6 {
			return Stand
		}
		return Hit
	default:
		if v > 7 {
			return Stand
		}
		return Hit
	}
}

// The card that is not the ace; for Ace+Ace, the second ace.
func aceCompanion(cards []Card) (Card, bool) {
	if len(cards) != 2 {
		return Card{}, false
	}
	switch {
	case cards[0].rank == Ace:
		return cards[1], true
	case cards[1].rank == Ace:
		return cards[0], true
	default:
		return Card{}, false
	}
}

// Pairs looks up the pairs table, keyed on the value of the paired card. It
// returns None unless cards are two cards of equal rank.
func Pairs(up Card, cards []Card) Decision {
	if len(cards) != 2 || cards[0].rank != cards[1].rank {
		return None
	}
	v := cards[1].value
	switch up.rank {
	case Two, Three, Four:
		switch v {
		case 10:
			return Stand
		case 5:
			return Double
		case 4:
			return Hit
		default:
			return Split
		}
	case Five, Six:
		switch v {
		case 10:
			return Stand
		case 5:
			return Double
		default:
			return Split
		}
	case Seven:
		switch v {
		case 10, 9:
			return Stand
		case 6, 4:
			return Hit
		case 5:
			return Double
		default:
			return Split
		}
	case Eight, Nine:
		switch v {
		case 10:
			return Stand
		case 5:
			return Double
		case 7, 6, 4, 3, 2:
			return Hit
		default:
			return Split
		}
	default:
		switch v {
		case 10, 9:
			return Stand
		case 1, 8:
			return Split
		default:
			return Hit
		}
	}
}
