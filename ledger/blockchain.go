package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/solitaire/domain/transaction"
)

var ErrEmpty = errors.New("no committed transactions")

// Log is an append-only hash chain of committed transactions.
type Log struct {
	mu        sync.RWMutex
	sessionID string
	blocks    []Block
}

// New creates a log with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and no transaction.
func New(sessionID string) *Log {
	l := &Log{
		sessionID: sessionID,
		blocks:    make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Action:    transaction.Record{ID: "genesis"},
		Metadata:  Metadata{SessionID: sessionID},
	}
	genesis.Hash = l.calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)

	return l
}

// Append adds a block for tx, which must already be performed. score is the
// session score after the commit. The extra parameter can optionally contain
// additional metadata.
func (l *Log) Append(tx *transaction.Transaction, score int, extra ...map[string]string) error {
	if tx.State() != transaction.Performed {
		return fmt.Errorf("append transaction %s: %w", tx.ID(), transaction.ErrNotPerformed)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := l.blocks[len(l.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Action:    tx.Record(),
		Metadata: Metadata{
			SessionID: l.sessionID,
			Score:     score,
			Extra:     extraMsg,
		},
		tx: tx,
	}

	newBlock.Hash = l.calculateHash(newBlock)

	if err := l.validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	l.blocks = append(l.blocks, newBlock)

	return nil
}

// Contains reports whether tx has been appended and not popped.
func (l *Log) Contains(tx *transaction.Transaction) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, b := range l.blocks[1:] {
		if b.tx == tx {
			return true
		}
	}
	return false
}

// Pop removes the most recent block and returns its transaction.
// The genesis block is never removed.
func (l *Log) Pop() (*transaction.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.blocks) <= 1 {
		return nil, ErrEmpty
	}
	last := l.blocks[len(l.blocks)-1]
	l.blocks = l.blocks[:len(l.blocks)-1]
	return last.tx, nil
}

// Len returns the number of committed transactions, genesis excluded.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.blocks) - 1
}

// GetLatest returns the most recently added block.
func (l *Log) GetLatest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.blocks[len(l.blocks)-1]
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (l *Log) GetByIndex(index int) (*Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return nil, fmt.Errorf("index out of range")
	}

	return &l.blocks[index], nil
}

// Verify validates the integrity of the entire chain by checking the genesis block
// and verifying each subsequent block's hash, index continuity, and previous hash linkage.
func (l *Log) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty log")
	}

	if l.blocks[0].PrevHash != "0" {
		return fmt.Errorf("invalid genesis block")
	}
	if l.blocks[0].Hash != l.calculateHash(l.blocks[0]) {
		return fmt.Errorf("invalid genesis hash")
	}

	for i := 1; i < len(l.blocks); i++ {
		if err := l.validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateBlock verifies that a block is valid relative to the previous block. It checks
// index continuity, previous hash linkage, current hash validity and the session id.
func (l *Log) validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := l.calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	if current.Metadata.SessionID != l.sessionID {
		return fmt.Errorf("block belongs to session %s", current.Metadata.SessionID)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block based on its index, timestamp, previous
// hash, action, session id and score. The action is JSON marshaled before hashing.
func (l *Log) calculateHash(block Block) string {
	actionBytes, _ := json.Marshal(block.Action)

	data := fmt.Sprintf("%d%d%s%s%s%d",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(actionBytes),
		block.Metadata.SessionID,
		block.Metadata.Score,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
