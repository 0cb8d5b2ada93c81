package ledger

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInsufficientFunds is returned when a wager is larger than the wallet.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidWager is returned by ParseWager for input that is not an
	// unsigned amount.
	ErrInvalidWager = errors.New("invalid wager")
)

// Ledger holds the wallet and the wagers of the current round.
//
// Wagers are debited from the wallet the moment they are placed or doubled.
// A win credits the wager back; there is no separate profit.
type Ledger struct {
	wallet   uint32
	bet      uint32
	splitBet uint32
	lastBet  uint32
	round    uint32
	journal  *Journal
}

type option func(Ledger) Ledger

// WithJournal records every transaction of the ledger in j.
func WithJournal(j *Journal) option {
	return func(l Ledger) Ledger {
		l.journal = j
		return l
	}
}

// New creates a ledger holding wallet.
func New(wallet uint32, opts ...option) *Ledger {
	l := Ledger{wallet: wallet}
	for _, opt := range opts {
		l = opt(l)
	}
	return &l
}

// BeginRound clears the wagers of the previous round. The last bet is kept so
// that it can be repeated.
func (l *Ledger) BeginRound() {
	l.round++
	l.bet = 0
	l.splitBet = 0
}

// ParseWager reads an unsigned amount typed by the player.
func ParseWager(input string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidWager, input)
	}
	return uint32(v), nil
}

// ResolveWager parses input and falls back to the last bet (0 if none yet)
// when it is not a valid amount. The boolean reports the fallback.
func (l *Ledger) ResolveWager(input string) (uint32, bool) {
	amount, err := ParseWager(input)
	if err != nil {
		return l.lastBet, true
	}
	return amount, false
}

// PlaceBet escrows amount as the main wager, or as the split wager when split
// is true. Only the main wager becomes the last bet.
func (l *Ledger) PlaceBet(amount uint32, split bool) error {
	if amount > l.wallet {
		return fmt.Errorf("%w: wager %d, wallet %d", ErrInsufficientFunds, amount, l.wallet)
	}
	l.wallet -= amount
	kind := TxBet
	if split {
		l.splitBet = amount
		kind = TxSplitBet
	} else {
		l.bet = amount
		l.lastBet = amount
	}
	return l.record(kind, amount, split)
}

// Double debits the main or split wager a second time and doubles it.
func (l *Ledger) Double(split bool) error {
	wager := l.wager(split)
	if wager > l.wallet || wager > math.MaxUint32-wager {
		return fmt.Errorf("%w: double %d, wallet %d", ErrInsufficientFunds, wager, l.wallet)
	}
	l.wallet -= wager
	if split {
		l.splitBet *= 2
	} else {
		l.bet *= 2
	}
	return l.record(TxDouble, wager, split)
}

// CanAfford reports whether the wallet covers amount.
func (l *Ledger) CanAfford(amount uint32) bool {
	return amount <= l.wallet
}

// CanDouble reports whether Double(split) would succeed.
func (l *Ledger) CanDouble(split bool) bool {
	wager := l.wager(split)
	return wager <= l.wallet && wager <= math.MaxUint32-wager
}

// Win credits the main or split wager back to the wallet.
func (l *Ledger) Win(split bool) error {
	wager := l.wager(split)
	l.wallet += wager
	return l.record(TxWin, wager, split)
}

// View returns the wallet and the main wager, for display.
func (l *Ledger) View() (wallet, bet uint32) {
	return l.wallet, l.bet
}

func (l *Ledger) Wallet() uint32 {
	return l.wallet
}

func (l *Ledger) Bet() uint32 {
	return l.bet
}

func (l *Ledger) SplitBet() uint32 {
	return l.splitBet
}

func (l *Ledger) LastBet() uint32 {
	return l.lastBet
}

func (l *Ledger) Round() uint32 {
	return l.round
}

func (l *Ledger) wager(split bool) uint32 {
	if split {
		return l.splitBet
	}
	return l.bet
}

func (l *Ledger) record(kind TxKind, amount uint32, split bool) error {
	if l.journal == nil {
		return nil
	}
	tx := Transaction{Kind: kind, Amount: amount, Split: split, Wallet: l.wallet}
	if err := l.journal.Append(tx, l.round); err != nil {
		return fmt.Errorf("journal %s: %w", kind, err)
	}
	return nil
}
