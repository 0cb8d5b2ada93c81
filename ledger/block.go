package ledger

// Block is a single journal entry.
type Block struct {
	Index       int         `json:"index"`
	Timestamp   int64       `json:"timestamp"`
	PrevHash    string      `json:"prev_hash"`
	Hash        string      `json:"hash"`
	Transaction Transaction `json:"transaction"`
	Metadata    Metadata    `json:"metadata"`
}

// TxKind names a wallet movement.
type TxKind string

const (
	TxGenesis  TxKind = "genesis"
	TxBet      TxKind = "bet"
	TxSplitBet TxKind = "split_bet"
	TxDouble   TxKind = "double"
	TxWin      TxKind = "win"
)

// Transaction is one wallet movement. Amount is always positive; bets and
// doubles are debits, wins are credits.
type Transaction struct {
	Kind   TxKind `json:"kind"`
	Amount uint32 `json:"amount"`
	Split  bool   `json:"split"`
	Wallet uint32 `json:"wallet"` // balance after the transaction
}

type Metadata struct {
	Round uint32            `json:"round"`
	Extra map[string]string `json:"extra,omitempty"`
}
