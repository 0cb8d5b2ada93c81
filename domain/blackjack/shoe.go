package blackjack

import (
	"math/rand"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// Shoe wraps a deck.Shoe and hands out Cards instead of raw card numbers.
type Shoe struct {
	*deck.Shoe
}

// NewShoe creates a shuffled 52 card shoe with the given draw policy.
func NewShoe(policy deck.Policy, rng *rand.Rand) *Shoe {
	return &Shoe{Shoe: deck.NewShoe(policy, rng)}
}

// NewShoeFromCards returns a shoe that deals cards in the given order. A
// reshuffling shoe keeps its stacked order only until the first draw.
func NewShoeFromCards(policy deck.Policy, rng *rand.Rand, cards ...Card) (*Shoe, error) {
	order := make([]int, len(cards))
	for i, c := range cards {
		order[i] = CardToInt(c)
	}
	s, err := deck.NewStackedShoe(policy, rng, order...)
	if err != nil {
		return nil, err
	}
	return &Shoe{Shoe: s}, nil
}

// Draw takes the top card of the shoe. It fails with deck.ErrEmptyShoe when a
// finite shoe is exhausted.
func (s *Shoe) Draw() (Card, error) {
	n, err := s.Shoe.Draw()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(n)
}
