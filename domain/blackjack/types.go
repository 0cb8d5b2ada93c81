package blackjack

import (
	"fmt"
	"strings"
)

// GameStatus is the settled outcome of one hand.
type GameStatus uint8

const (
	Win GameStatus = iota
	Tie
	Lose
)

func (s GameStatus) String() string {
	switch s {
	case Win:
		return "win"
	case Tie:
		return "tie"
	case Lose:
		return "lose"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Decision is the basic strategy suggestion. None means no table entry
// applies and must never be played as a real choice.
type Decision uint8

const (
	None Decision = iota
	Stand
	Hit
	Double
	Split
)

func (d Decision) String() string {
	switch d {
	case None:
		return "none"
	case Stand:
		return "stand"
	case Hit:
		return "hit"
	case Double:
		return "double"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("decision(%d)", uint8(d))
	}
}

// Action converts a Decision into the action it recommends. It returns false
// for None.
func (d Decision) Action() (Action, bool) {
	switch d {
	case Stand:
		return ActionStand, true
	case Hit:
		return ActionHit, true
	case Double:
		return ActionDouble, true
	case Split:
		return ActionSplit, true
	default:
		return 0, false
	}
}

// Action is a move the player can make on a hand.
type Action uint8

const (
	ActionHit Action = iota
	ActionStand
	ActionDouble
	ActionSplit
)

// Key returns the single character used to choose the action at the prompt.
func (a Action) Key() string {
	switch a {
	case ActionHit:
		return "h"
	case ActionStand:
		return "s"
	case ActionDouble:
		return "d"
	case ActionSplit:
		return "p"
	default:
		return "?"
	}
}

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	case ActionDouble:
		return "Double"
	case ActionSplit:
		return "sPlit"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// ParseAction reads a single character answer (h, s, d or p). Anything else
// is rejected and should lead to the prompt being asked again.
func ParseAction(input string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "h":
		return ActionHit, true
	case "s":
		return ActionStand, true
	case "d":
		return ActionDouble, true
	case "p":
		return ActionSplit, true
	default:
		return 0, false
	}
}
