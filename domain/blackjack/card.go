package blackjack

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
)

// Suit of a card, in the order the deck is built.
type Suit uint8

const (
	Spade   Suit = iota // ♠ (black)
	Heart               // ♥ (red)
	Club                // ♣ (black)
	Diamond             // ♦ (red)
)

// Rank of a card. Ace is 1, numerals are their face value.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	default:
		return "?"
	}
}

// Card is an immutable playing card. Its value is fixed at construction:
// 10 for Ten, Jack, Queen and King, 1 for Ace and the face value otherwise.
type Card struct {
	suit  Suit
	rank  Rank
	value uint8
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Spade, Heart, Club or Diamond
//   - rank: Ace (1) through King (13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Diamond || rank < Ace || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank, value: baseValue(rank)}, nil
}

func baseValue(r Rank) uint8 {
	switch r {
	case Ten, Jack, Queen, King:
		return 10
	case Ace:
		return 1
	default:
		return uint8(r)
	}
}

func (c Card) Suit() Suit {
	return c.suit
}

func (c Card) Rank() Rank {
	return c.rank
}

// Value returns the base point value of the card. The soft value of an ace is
// a property of the Hand, never of the Card.
func (c Card) Value() uint8 {
	return c.value
}

// IsFace reports whether the card is a Jack, Queen or King.
func (c Card) IsFace() bool {
	return c.rank == Jack || c.rank == Queen || c.rank == King
}

// String returns the rank followed by a coloured suit symbol, e.g. "10♥".
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Heart, Diamond:
		suit = pterm.LightRed(c.suit.String())
	default:
		suit = pterm.White(c.suit.String())
	}
	return c.rank.String() + suit
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to
// suits in deck order (spades, hearts, clubs, diamonds) with ranks 1-13
// within each suit.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	suit := Suit((rawCard - 1) / 13)
	rank := Rank((rawCard-1)%13 + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.suit)*13 + int(card.rank)
}
