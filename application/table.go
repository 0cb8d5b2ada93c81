package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

var (
	// ErrGameOver is returned by Deal once the wallet is empty.
	ErrGameOver = errors.New("game over")
	// ErrOutOfTurn is returned for a move that does not fit the current state.
	ErrOutOfTurn = errors.New("move out of turn")
)

type State string

const (
	AwaitingBet State = "awaiting_bet"
	Dealt       State = "dealt"
	PlayerTurn  State = "player_turn"
	SplitTurn   State = "split_turn"
	DealerTurn  State = "dealer_turn"
	Resolved    State = "resolved"
)

// HandID selects the main hand or the split hand of the player.
type HandID uint8

const (
	MainHand HandID = iota
	SplitHand
)

func (h HandID) String() string {
	if h == SplitHand {
		return "split"
	}
	return "main"
}

func (h HandID) isSplit() bool {
	return h == SplitHand
}

// Move is one player action on one hand. Amount is the split wager and is
// ignored for every other action.
type Move struct {
	Hand   HandID
	Action blackjack.Action
	Amount uint32
}

// Table is the session context of a single player game.
type Table struct {
	shoe    *blackjack.Shoe
	player  blackjack.Hand
	dealer  blackjack.Hand
	ledger  *ledger.Ledger
	journal *ledger.Journal
	logger  *slog.Logger
	wager   WagerPolicy

	state      State
	outcome    []blackjack.GameStatus
	splitHands int
}

type option func(Table) Table

// WithLogger sets the logger used for round events.
func WithLogger(logger *slog.Logger) option {
	return func(t Table) Table {
		t.logger = logger
		return t
	}
}

// WithWagerPolicy sets how RunAutomated sizes the main wager of each round.
func WithWagerPolicy(policy WagerPolicy) option {
	return func(t Table) Table {
		t.wager = policy
		return t
	}
}

// NewTable seats a player holding wallet in front of shoe. Every wallet
// transaction of the session is recorded in a fresh journal.
func NewTable(shoe *blackjack.Shoe, wallet uint32, opts ...option) *Table {
	journal := ledger.NewJournal()
	t := Table{
		shoe:    shoe,
		journal: journal,
		ledger:  ledger.New(wallet, ledger.WithJournal(journal)),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		wager:   FlatBetting(DefaultUnit),
		state:   AwaitingBet,
	}
	for _, opt := range opts {
		t = opt(t)
	}
	return &t
}

func (t *Table) State() State {
	return t.state
}

// ActiveHand returns the hand whose turn it is, if any.
func (t *Table) ActiveHand() (HandID, bool) {
	switch t.state {
	case PlayerTurn:
		return MainHand, true
	case SplitTurn:
		return SplitHand, true
	default:
		return MainHand, false
	}
}

// Outcome returns the statuses of the last resolved round, main hand first.
func (t *Table) Outcome() []blackjack.GameStatus {
	return append([]blackjack.GameStatus(nil), t.outcome...)
}

func (t *Table) Ledger() *ledger.Ledger {
	return t.ledger
}

func (t *Table) Journal() *ledger.Journal {
	return t.journal
}

// Deal starts a round: amount is escrowed as the main wager and two cards are
// dealt to the player and to the dealer, alternating. A player dealt 21 has
// no turn to play and the round is resolved straight away.
func (t *Table) Deal(amount uint32) error {
	if t.state != AwaitingBet && t.state != Resolved {
		return fmt.Errorf("%w: cannot deal during %s", ErrOutOfTurn, t.state)
	}
	if t.ledger.Wallet() == 0 {
		return ErrGameOver
	}
	if !t.ledger.CanAfford(amount) {
		return fmt.Errorf("%w: wager %d, wallet %d", ledger.ErrInsufficientFunds, amount, t.ledger.Wallet())
	}

	t.ledger.BeginRound()
	if err := t.ledger.PlaceBet(amount, false); err != nil {
		return err
	}
	t.player.Clear()
	t.dealer.Clear()
	t.outcome = nil
	t.state = AwaitingBet

	for range 2 {
		if err := t.draw(&t.player, false); err != nil {
			return fmt.Errorf("deal: %w", err)
		}
		if err := t.draw(&t.dealer, false); err != nil {
			return fmt.Errorf("deal: %w", err)
		}
	}
	t.state = Dealt
	t.logger.Debug("cards dealt",
		"round", t.ledger.Round(),
		"bet", amount,
		"player", t.player.Value(false),
		"dealer_up", t.dealerUpCard(),
	)

	t.state = PlayerTurn
	if t.player.Value(false) >= 21 {
		return t.endTurn(MainHand)
	}
	return nil
}

// Validate checks whether m can be played in the current state.
// blackjack.ErrIneligibleSplit and ledger.ErrInsufficientFunds leave the
// round untouched and the player may choose again.
func (t *Table) Validate(m Move) error {
	active, ok := t.ActiveHand()
	if !ok {
		return fmt.Errorf("%w: no hand to play during %s", ErrOutOfTurn, t.state)
	}
	if m.Hand != active {
		return fmt.Errorf("%w: %s hand is playing, got %s", ErrOutOfTurn, active, m.Hand)
	}

	switch m.Action {
	case blackjack.ActionHit, blackjack.ActionStand:
		return nil
	case blackjack.ActionDouble:
		if !t.ledger.CanDouble(m.Hand.isSplit()) {
			return fmt.Errorf("%w: cannot double the %s hand", ledger.ErrInsufficientFunds, m.Hand)
		}
		return nil
	case blackjack.ActionSplit:
		if m.Hand.isSplit() {
			return fmt.Errorf("%w: can't split a split", blackjack.ErrIneligibleSplit)
		}
		if !t.player.CanSplit() {
			return blackjack.ErrIneligibleSplit
		}
		if !t.ledger.CanAfford(m.Amount) {
			return fmt.Errorf("%w: split wager %d, wallet %d", ledger.ErrInsufficientFunds, m.Amount, t.ledger.Wallet())
		}
		return nil
	default:
		return fmt.Errorf("unknown action %d", m.Action)
	}
}

// Apply validates and plays m. Ending the last hand of the player runs the
// dealer turn and settles the round.
func (t *Table) Apply(m Move) error {
	if err := t.Validate(m); err != nil {
		return err
	}
	split := m.Hand.isSplit()
	t.logger.Debug("player move", "hand", m.Hand.String(), "action", m.Action.String())

	switch m.Action {
	case blackjack.ActionHit:
		if err := t.draw(&t.player, split); err != nil {
			return err
		}
		if t.player.Value(split) >= 21 {
			return t.endTurn(m.Hand)
		}
	case blackjack.ActionStand:
		return t.endTurn(m.Hand)
	case blackjack.ActionDouble:
		if err := t.ledger.Double(split); err != nil {
			return err
		}
		if err := t.draw(&t.player, split); err != nil {
			return err
		}
		return t.endTurn(m.Hand)
	case blackjack.ActionSplit:
		if err := t.ledger.PlaceBet(m.Amount, true); err != nil {
			return err
		}
		if !t.player.MakeSplit() {
			return blackjack.ErrIneligibleSplit
		}
		t.splitHands++
		t.logger.Debug("hand split", "split_bet", m.Amount)
	}
	return nil
}

// endTurn hands the turn to the split hand, or to the dealer once every hand
// of the player is done.
func (t *Table) endTurn(hand HandID) error {
	if hand == MainHand && t.player.HasSplit() {
		t.state = SplitTurn
		return nil
	}
	return t.resolve()
}

// resolve lets the dealer draw when at least one player hand is still in
// play and settles the main and split hands.
func (t *Table) resolve() error {
	inPlay := t.player.Value(false) <= 21 || (t.player.HasSplit() && t.player.Value(true) <= 21)
	if inPlay {
		t.state = DealerTurn
		if err := blackjack.DealerTurn(t.shoe, &t.dealer); err != nil {
			return err
		}
	}
	outcome, err := blackjack.Settle(&t.player, &t.dealer, t.ledger)
	if err != nil {
		return fmt.Errorf("settle: %w", err)
	}
	t.outcome = outcome
	t.state = Resolved

	wallet, _ := t.ledger.View()
	t.logger.Info("round resolved",
		"round", t.ledger.Round(),
		"outcome", fmt.Sprint(outcome),
		"player", t.player.Value(false),
		"dealer", t.dealer.Value(false),
		"wallet", wallet,
	)
	return nil
}

func (t *Table) draw(hand *blackjack.Hand, split bool) error {
	card, err := t.shoe.Draw()
	if err != nil {
		return err
	}
	hand.AddCard(card, split)
	return nil
}

func (t *Table) dealerUpCard() string {
	up, ok := t.dealer.UpCard()
	if !ok {
		return ""
	}
	return up.Rank().String()
}
