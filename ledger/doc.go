// Package ledger implements the transaction log of a solitaire session as a
// hash-chained, append-only list of blocks.
//
// # Core Components
//
// Log: the ordered history of committed transactions. Append records a
// transaction after it has been performed; Pop removes the most recent one so
// it can be rolled back.
//
// Block: one committed transaction with the score it produced and a
// cryptographic link to the previous block.
//
// # Properties
//
// Every block hashes its index, timestamp, previous hash, action and
// metadata. Verify walks the chain and reports the first block whose links do
// not match, so edited or reordered history is detected.
package ledger
