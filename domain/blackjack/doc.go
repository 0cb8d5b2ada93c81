// Package blackjack implements the rules of single-player blackjack: card
// values, player and dealer hands, the dealer drawing policy, the outcome
// resolver and a basic-strategy advisor.
//
// # Core Types
//
// Card: an immutable playing card with suit, rank and base point value.
//
// Hand: the cards owned by the player or the dealer, plus the optional split
// hand created by a successful split.
//
// Shoe: a shuffled source of cards backed by the deck package.
//
// # Scoring
//
// Aces count 1 as a base value. A hand holding at least one ace gains 10
// points once, when doing so does not bust it. Only a single ace is ever
// promoted: Ace+Ace+9 scores 21 and Ace+Ace+Ace+9 scores 12.
//
// # Outcomes
//
// Every finished hand is compared with the dealer hand and settled as Win,
// Tie or Lose. A winning hand returns its stake to the wallet.
//
// # Basic Strategy
//
// Decide looks up the pairs, soft totals or hard totals table keyed on the
// dealer up-card and returns the suggested Decision.
package blackjack
