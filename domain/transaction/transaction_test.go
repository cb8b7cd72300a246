package transaction

import (
	"testing"

	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, c *cards.Collection, raws ...int) []*cards.Card {
	t.Helper()
	out := make([]*cards.Card, len(raws))
	for i, raw := range raws {
		card, err := cards.FromIndex(raw)
		require.NoError(t, err)
		c.Put(card)
		out[i] = card
	}
	return out
}

func TestAddRejectsEmptyAndOwnerless(t *testing.T) {
	dst := cards.NewCollection("dst")
	tx := New(0, 0)

	assert.ErrorIs(t, tx.Add(nil, dst), ErrEmptySegment)

	loose, err := cards.NewCard(cards.Spade, cards.Ace)
	require.NoError(t, err)
	assert.ErrorIs(t, tx.Add([]*cards.Card{loose}, dst), ErrOwnerless)
	assert.Empty(t, tx.Segments())
}

func TestAddRejectsMixedSource(t *testing.T) {
	a := cards.NewCollection("a")
	b := cards.NewCollection("b")
	ca := fill(t, a, 1)
	cb := fill(t, b, 2)
	tx := New(0, 0)
	assert.ErrorIs(t, tx.Add([]*cards.Card{ca[0], cb[0]}, cards.NewCollection("dst")), ErrMixedSource)
}

func TestSourceCapturedAtAdd(t *testing.T) {
	a := cards.NewCollection("a")
	dst := cards.NewCollection("dst")
	cs := fill(t, a, 1, 2)

	tx := New(0, 0)
	require.NoError(t, tx.Add(cs, dst))
	cards.NewCollection("elsewhere").Put(cs[0])

	assert.Equal(t, a, tx.Segments()[0].Source())
}

func TestPerformRollbackRoundTrip(t *testing.T) {
	src := cards.NewCollection("src")
	dst := cards.NewCollection("dst")
	all := fill(t, src, 1, 2, 3, 4, 5)
	fill(t, dst, 20)
	before := map[*cards.Collection][]*cards.Card{src: src.Cards(), dst: dst.Cards()}

	tx := New(10, 5)
	require.NoError(t, tx.Add(all[2:], dst))
	require.NoError(t, tx.Perform())
	assert.Equal(t, all[:2], src.Cards())
	assert.Equal(t, 4, dst.Len())
	assert.Equal(t, Performed, tx.State())

	require.NoError(t, tx.Rollback())
	assert.Equal(t, before[src], src.Cards())
	assert.Equal(t, before[dst], dst.Cards())
	assert.Equal(t, RolledBack, tx.State())
}

func TestRollbackRestoresRecycleOrder(t *testing.T) {
	stock := cards.NewCollection("stock")
	talon := cards.NewCollection("talon")
	pile := fill(t, talon, 1, 2, 3, 4)

	reversed := talon.Cards()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	tx := New(-250, 50)
	require.NoError(t, tx.Add(reversed, stock))
	require.NoError(t, tx.Add(reversed[len(reversed)-1:], talon))
	require.NoError(t, tx.Perform())

	assert.Equal(t, []*cards.Card{pile[3], pile[2], pile[1]}, stock.Cards())
	assert.Equal(t, []*cards.Card{pile[0]}, talon.Cards())

	require.NoError(t, tx.Rollback())
	assert.Equal(t, pile, talon.Cards())
	assert.True(t, stock.Empty())
}

func TestPerformOnce(t *testing.T) {
	src := cards.NewCollection("src")
	dst := cards.NewCollection("dst")
	cs := fill(t, src, 1)
	tx := New(0, 0)
	require.NoError(t, tx.Add(cs, dst))
	require.NoError(t, tx.Perform())
	assert.ErrorIs(t, tx.Perform(), ErrNotPending)
	assert.ErrorIs(t, tx.Add(cs, src), ErrNotPending)

	require.NoError(t, tx.Rollback())
	assert.ErrorIs(t, tx.Rollback(), ErrNotPerformed)
	assert.ErrorIs(t, tx.Perform(), ErrNotPending)
}

func TestScoreAdjustments(t *testing.T) {
	tx := New(0, 50)
	tx.AddScoreBonus(100)
	tx.AddUndoPenalty(250)
	assert.Equal(t, 100, tx.Bonus())
	assert.Equal(t, 300, tx.UndoCost())
}

func TestRecord(t *testing.T) {
	src := cards.NewCollection("t3")
	dst := cards.NewCollection("f0")
	cs := fill(t, src, 1)
	tx := New(0, 0)
	require.NoError(t, tx.Add(cs, dst))

	r := tx.Record()
	assert.Equal(t, tx.ID().String(), r.ID)
	require.Len(t, r.Segments, 1)
	assert.Equal(t, SegmentRecord{Source: "t3", Destination: "f0", Cards: []string{"A♣"}}, r.Segments[0])
}
