package deck

import (
	"errors"
	"fmt"
	"math/rand"
)

// DeckSize is the number of cards of a single standard deck.
const DeckSize = 52

// ErrEmptyShoe is returned by Draw when a finite shoe has no cards left.
var ErrEmptyShoe = errors.New("empty shoe")

// Policy selects what happens to a card once it has been drawn.
type Policy uint8

const (
	// Finite removes drawn cards: the shoe eventually empties and ends play.
	Finite Policy = iota
	// Reshuffling returns every drawn card to the shoe and reshuffles it,
	// so the shoe never runs out.
	Reshuffling
)

func (p Policy) String() string {
	switch p {
	case Finite:
		return "finite"
	case Reshuffling:
		return "reshuffle"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// ParsePolicy converts the textual name used in configuration into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "finite":
		return Finite, nil
	case "reshuffle", "reshuffling", "infinite":
		return Reshuffling, nil
	}
	return Finite, fmt.Errorf("unknown shoe policy %q", s)
}

// Shoe is an ordered sequence of raw card numbers (1-52). The last element
// of cards is the top of the shoe.
type Shoe struct {
	cards  []int
	policy Policy
	rng    *rand.Rand
}

// NewShoe builds a full deck and shuffles it with rng. The policy is fixed for
// the whole lifetime of the shoe. A nil rng is replaced by a randomly seeded
// one.
func NewShoe(policy Policy, rng *rand.Rand) *Shoe {
	if rng == nil {
		rng = NewRand(0)
	}
	s := &Shoe{
		cards:  make([]int, DeckSize),
		policy: policy,
		rng:    rng,
	}
	for i := range s.cards {
		s.cards[i] = i + 1
	}
	s.shuffle()
	return s
}

// NewStackedShoe returns a shoe whose draws yield cards in the given order,
// first element first. No shuffle happens until a reshuffling shoe is drawn
// from. Mostly useful to replay a known deal. A reshuffling shoe with a nil
// rng gets a randomly seeded one.
func NewStackedShoe(policy Policy, rng *rand.Rand, order ...int) (*Shoe, error) {
	if rng == nil && policy == Reshuffling {
		rng = NewRand(0)
	}
	s := &Shoe{
		cards:  make([]int, 0, len(order)),
		policy: policy,
		rng:    rng,
	}
	for i := len(order) - 1; i >= 0; i-- {
		if order[i] < 1 || order[i] > DeckSize {
			return nil, fmt.Errorf("invalid card number %d at position %d", order[i], i)
		}
		s.cards = append(s.cards, order[i])
	}
	return s, nil
}

// Draw takes the top card of the shoe.
//
// A Finite shoe returns ErrEmptyShoe once exhausted. A Reshuffling shoe puts
// the drawn card back and reshuffles before returning it.
func (s *Shoe) Draw() (int, error) {
	if len(s.cards) == 0 {
		return 0, ErrEmptyShoe
	}
	top := s.cards[len(s.cards)-1]
	if s.policy == Reshuffling {
		s.shuffle()
		return top, nil
	}
	s.cards = s.cards[:len(s.cards)-1]
	return top, nil
}

// Remaining returns how many cards can still be drawn before a finite shoe
// empties.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

func (s *Shoe) Policy() Policy {
	return s.policy
}
