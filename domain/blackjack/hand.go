package blackjack

import (
	"errors"
	"slices"
)

// ErrIneligibleSplit is returned when a split is attempted on a hand that is
// not an unsplit pair.
var ErrIneligibleSplit = errors.New("conditions not met to split")

// Hand is the collection of cards owned by the player or the dealer. After a
// successful split the second card lives in a separate split sequence that is
// played and settled on its own.
//
// The ace flags are updated as cards arrive and never recomputed from the
// cards, so they stay set after the ace that raised them leaves for the split.
type Hand struct {
	cards       []Card
	split       []Card
	hasAce      bool
	hasAceSplit bool
	didSplit    bool
	upCard      Card
	hasUpCard   bool
}

// AddCard appends card to the main or the split sequence and keeps that
// sequence sorted by value for display.
func (h *Hand) AddCard(card Card, toSplit bool) {
	if toSplit {
		h.hasAceSplit = h.hasAceSplit || card.rank == Ace
		h.split = appendSorted(h.split, card)
		return
	}
	if !h.hasUpCard {
		h.upCard = card
		h.hasUpCard = true
	}
	h.hasAce = h.hasAce || card.rank == Ace
	h.cards = appendSorted(h.cards, card)
}

// Equal values keep their insertion order.
func appendSorted(cards []Card, card Card) []Card {
	cards = append(cards, card)
	slices.SortStableFunc(cards, func(a, b Card) int {
		return int(a.value) - int(b.value)
	})
	return cards
}

// Value returns the score of the main or split sequence. A hand holding an ace
// gains 10 points once if that does not take it over 21. An empty sequence is
// worth 0.
func (h *Hand) Value(toSplit bool) uint8 {
	cards, ace := h.cards, h.hasAce
	if toSplit {
		cards, ace = h.split, h.hasAceSplit
	}
	var sum uint8
	for _, c := range cards {
		sum += c.value
	}
	if ace && sum+10 <= 21 {
		sum += 10
	}
	return sum
}

// IsPair reports whether the main sequence is exactly two cards of equal rank.
func (h *Hand) IsPair() bool {
	return len(h.cards) == 2 && h.cards[0].rank == h.cards[1].rank
}

// CanSplit reports whether MakeSplit would succeed.
func (h *Hand) CanSplit() bool {
	return !h.didSplit && h.IsPair()
}

// MakeSplit moves the second card of a pair into the split sequence. It
// returns false and leaves the hand untouched if the hand is not a pair or
// has already been split once.
func (h *Hand) MakeSplit() bool {
	if !h.CanSplit() {
		return false
	}
	last := h.cards[1]
	h.cards = h.cards[:1]
	h.hasAceSplit = h.hasAceSplit || last.rank == Ace
	h.split = append(h.split, last)
	h.didSplit = true
	return true
}

// HasSplit reports whether the hand carries a split sequence.
func (h *Hand) HasSplit() bool {
	return len(h.split) > 0
}

// IsBlackjack reports a two card 21 made only of aces and face cards. A Ten
// with an Ace is worth 21 but is not a blackjack.
func (h *Hand) IsBlackjack() bool {
	if len(h.cards) != 2 {
		return false
	}
	if h.Value(false) != 21 && h.Value(true) != 21 {
		return false
	}
	for _, c := range h.cards {
		if c.rank != Ace && !c.IsFace() {
			return false
		}
	}
	return true
}

// Clear empties both sequences and resets every flag for the next round.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
	h.split = h.split[:0]
	h.hasAce = false
	h.hasAceSplit = false
	h.didSplit = false
	h.hasUpCard = false
	h.upCard = Card{}
}

// Cards returns a copy of the main or split sequence.
func (h *Hand) Cards(toSplit bool) []Card {
	if toSplit {
		return slices.Clone(h.split)
	}
	return slices.Clone(h.cards)
}

func (h *Hand) Len(toSplit bool) int {
	if toSplit {
		return len(h.split)
	}
	return len(h.cards)
}

func (h *Hand) HasAce(toSplit bool) bool {
	if toSplit {
		return h.hasAceSplit
	}
	return h.hasAce
}

// UpCard returns the first card dealt to the main sequence. For the dealer
// this is the card shown face up.
func (h *Hand) UpCard() (Card, bool) {
	return h.upCard, h.hasUpCard
}
