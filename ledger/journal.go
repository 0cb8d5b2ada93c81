package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Journal is an append-only, hash-chained log of wallet transactions.
type Journal struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewJournal creates a new journal with an initialized genesis block.
// The genesis block has index 0 and previous hash "0".
func NewJournal() *Journal {
	j := &Journal{
		blocks: make([]Block, 0),
	}

	genesis := Block{
		Index:       0,
		Timestamp:   time.Now().Unix(),
		PrevHash:    "0",
		Transaction: Transaction{Kind: TxGenesis},
	}
	genesis.Hash = j.calculateHash(genesis)
	j.blocks = append(j.blocks, genesis)

	return j
}

// Append adds a new block holding tx, recorded during the given round. The
// extra parameter can optionally contain additional metadata.
func (j *Journal) Append(tx Transaction, round uint32, extra ...map[string]string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if len(j.blocks) == 0 {
		return fmt.Errorf("journal has no genesis block")
	}
	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := j.blocks[len(j.blocks)-1]

	newBlock := Block{
		Index:       latest.Index + 1,
		Timestamp:   time.Now().Unix(),
		PrevHash:    latest.Hash,
		Transaction: tx,
		Metadata: Metadata{
			Round: round,
			Extra: extraMsg,
		},
	}
	newBlock.Hash = j.calculateHash(newBlock)

	if err := j.validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	j.blocks = append(j.blocks, newBlock)
	return nil
}

// Latest returns the most recently added block.
// Returns an error if the journal is empty.
func (j *Journal) Latest() (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return Block{}, fmt.Errorf("journal is empty")
	}
	return j.blocks[len(j.blocks)-1], nil
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if
// the index is out of range.
func (j *Journal) GetByIndex(index int) (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.blocks) {
		return Block{}, fmt.Errorf("index out of range")
	}
	return j.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.blocks)
}

// Transactions returns the transactions of every block after genesis, in order.
func (j *Journal) Transactions() []Transaction {
	j.mu.RLock()
	defer j.mu.RUnlock()

	txs := make([]Transaction, 0, len(j.blocks))
	for _, b := range j.blocks[min(1, len(j.blocks)):] {
		txs = append(txs, b.Transaction)
	}
	return txs
}

// Verify validates the integrity of the entire journal by checking the genesis
// block and verifying each subsequent block's hash, index continuity and
// previous hash linkage.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return fmt.Errorf("empty journal")
	}
	if j.blocks[0].PrevHash != "0" || j.blocks[0].Hash != j.calculateHash(j.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(j.blocks); i++ {
		if err := j.validateBlock(j.blocks[i], j.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock verifies that a block is valid relative to the previous block.
// It checks index continuity, previous hash linkage and current hash validity.
func (j *Journal) validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := j.calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 hash of a block based on its index,
// timestamp, previous hash, transaction and metadata. The transaction and the
// extra metadata are JSON marshaled before hashing.
func (j *Journal) calculateHash(block Block) string {
	txBytes, _ := json.Marshal(block.Transaction)
	extraBytes, _ := json.Marshal(block.Metadata.Extra)

	data := fmt.Sprintf("%d%d%s%s%d%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(txBytes),
		block.Metadata.Round,
		string(extraBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
