// Package application sequences blackjack rounds on a Table.
//
// A Table owns everything a session needs: the shoe, the player and dealer
// hands, the wallet ledger and its journal. Rounds move through the states
// AwaitingBet, Dealt, PlayerTurn, SplitTurn, DealerTurn and Resolved. Moves
// are checked with Validate and played with Apply, the same way for a person
// at the prompt (RunInteractive) and for the basic strategy simulator
// (RunAutomated).
package application
