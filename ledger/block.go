package ledger

import "github.com/luca-patrignani/solitaire/domain/transaction"

// Block records one committed transaction in the history.
type Block struct {
	Index     int                `json:"index"`
	Timestamp int64              `json:"timestamp"`
	PrevHash  string             `json:"prev_hash"`
	Hash      string             `json:"hash"`
	Action    transaction.Record `json:"action"`
	Metadata  Metadata           `json:"metadata"`

	tx *transaction.Transaction
}

type Metadata struct {
	SessionID string            `json:"session_id"`
	Score     int               `json:"score"` // score right after the commit
	Extra     map[string]string `json:"extra,omitempty"`
}

// Transaction returns the committed transaction, nil for the genesis block.
func (b Block) Transaction() *transaction.Transaction {
	return b.tx
}
