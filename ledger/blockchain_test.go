package ledger

import (
	"testing"

	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/luca-patrignani/solitaire/domain/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// performed builds and performs a transaction moving one fresh card between two
// collections.
func performed(t *testing.T, raw int) *transaction.Transaction {
	t.Helper()
	src := cards.NewCollection("src")
	card, err := cards.FromIndex(raw)
	require.NoError(t, err)
	src.Put(card)

	tx := transaction.New(0, 50)
	require.NoError(t, tx.Add([]*cards.Card{card}, cards.NewCollection("dst")))
	require.NoError(t, tx.Perform())
	return tx
}

// TestNewLog verifies that a new log holds only the genesis block.
func TestNewLog(t *testing.T) {
	l := New("session")
	if l.Len() != 0 {
		t.Fatalf("expected no transactions, got %d", l.Len())
	}
	genesis, err := l.GetByIndex(0)
	require.NoError(t, err)
	if genesis.PrevHash != "0" {
		t.Fatalf("genesis PrevHash should be '0', got %s", genesis.PrevHash)
	}
	if genesis.Hash == "" {
		t.Fatal("genesis block should have a hash")
	}
	assert.Nil(t, genesis.Transaction())
	assert.NoError(t, l.Verify())

	_, err = l.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestAppendAndPop(t *testing.T) {
	l := New("session")
	a := performed(t, 1)
	b := performed(t, 2)

	require.NoError(t, l.Append(a, 1000))
	require.NoError(t, l.Append(b, 1000, map[string]string{"reason": "test"}))
	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Contains(a))
	assert.True(t, l.Contains(b))

	latest := l.GetLatest()
	assert.Equal(t, b.ID().String(), latest.Action.ID)
	assert.Equal(t, "test", latest.Metadata.Extra["reason"])
	assert.NoError(t, l.Verify())

	popped, err := l.Pop()
	require.NoError(t, err)
	assert.Same(t, b, popped)
	assert.False(t, l.Contains(b))
	assert.NoError(t, l.Verify())
}

func TestAppendRequiresPerformed(t *testing.T) {
	l := New("session")
	assert.ErrorIs(t, l.Append(transaction.New(0, 0), 0), transaction.ErrNotPerformed)
	assert.Equal(t, 0, l.Len())
}

// TestVerifyDetectsTampering changes recorded data and checks that the hash
// chain no longer validates.
func TestVerifyDetectsTampering(t *testing.T) {
	l := New("session")
	for raw := 1; raw <= 3; raw++ {
		require.NoError(t, l.Append(performed(t, raw), 1000+raw))
	}
	require.NoError(t, l.Verify())

	block, err := l.GetByIndex(2)
	require.NoError(t, err)
	block.Metadata.Score = 5000
	if err := l.Verify(); err == nil {
		t.Fatal("expected tampered score to be detected")
	}
	block.Metadata.Score = 1002
	require.NoError(t, l.Verify())

	l.blocks[1], l.blocks[2] = l.blocks[2], l.blocks[1]
	assert.Error(t, l.Verify())
}

func TestGetByIndexOutOfRange(t *testing.T) {
	l := New("session")
	_, err := l.GetByIndex(1)
	assert.Error(t, err)
	_, err = l.GetByIndex(-1)
	assert.Error(t, err)
}
