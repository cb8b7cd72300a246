package solitaire

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerValidate(t *testing.T) {
	s := newTestSession(t)
	m := NewManager(s)
	arrange(t, s, false)

	assert.NoError(t, m.Validate(m.ActionDraw()))
	assert.ErrorIs(t, m.Validate(m.ActionUndo()), ErrEmptyUndo)
	assert.NoError(t, m.Validate(m.ActionMove("t1", 2, "t0")))
	assert.ErrorIs(t, m.Validate(m.ActionMove("t1", 2, "f0")), ErrIllegalMove)
	assert.ErrorIs(t, m.Validate(m.ActionMove("t1", 1, "t1")), ErrIllegalMove)
	assert.ErrorIs(t, m.Validate(m.ActionMove("t1", 4, "t0")), ErrNotLiftable)
	assert.ErrorIs(t, m.Validate(m.ActionMove("stock", 1, "t0")), ErrUnknownPile)
	assert.ErrorIs(t, m.Validate(m.ActionMove("t1", 1, "t9")), ErrUnknownPile)
	assert.ErrorIs(t, m.Validate(Action{Type: "shuffle"}), ErrUnknownAction)
	require.NoError(t, s.Verify())
}

func TestManagerApplyMove(t *testing.T) {
	s := newTestSession(t)
	m := NewManager(s)
	nine, eight, seven, _ := arrange(t, s, false)

	require.NoError(t, m.Apply(m.ActionMove("t1", 2, "t0")))
	assert.Equal(t, []*cards.Card{nine, eight, seven}, s.Tableau(0).Collection().Cards())
	assert.NoError(t, m.Validate(m.ActionUndo()))

	require.NoError(t, m.Apply(m.ActionUndo()))
	assert.Equal(t, []*cards.Card{nine}, s.Tableau(0).Collection().Cards())
	assert.ErrorIs(t, m.Apply(m.ActionMove("t1", 1, "t0")), ErrIllegalMove)
	require.NoError(t, s.Verify())
}

func TestManagerApplyDrawAndNewGame(t *testing.T) {
	s := newTestSession(t)
	m := NewManager(s)
	require.NoError(t, m.Apply(m.ActionDraw()))
	assert.Equal(t, 2, s.Talon().Collection().Len())
	require.NoError(t, m.Apply(m.ActionNewGame()))
	assert.Equal(t, 1, s.Talon().Collection().Len())
	assert.Equal(t, 0, s.Log().Len())
}

func TestSnapshot(t *testing.T) {
	s := newTestSession(t)
	m := NewManager(s)
	b, err := m.Snapshot()
	require.NoError(t, err)

	var st State
	require.NoError(t, json.Unmarshal(b, &st))
	assert.Equal(t, s.State(), st)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "draw", Action{Type: ActionDraw}.String())
	assert.Equal(t, "move 2 from t1 to t0", Action{Type: ActionMove, From: "t1", Depth: 2, To: "t0"}.String())
}

func randomAction(r *rand.Rand, m *Manager) Action {
	switch n := r.IntN(10); {
	case n < 3:
		return m.ActionDraw()
	case n < 4:
		return m.ActionUndo()
	default:
		from := TalonID
		if k := r.IntN(12); k < TableauCount {
			from = TableauID(k)
		} else if k < TableauCount+FoundationCount {
			from = FoundationID(k - TableauCount)
		}
		to := TableauID(r.IntN(TableauCount))
		if r.IntN(2) == 0 {
			to = FoundationID(r.IntN(FoundationCount))
		}
		return m.ActionMove(from, 1+r.IntN(4), to)
	}
}

// Plays random actions, checking the board invariants after each one and that
// every undo restores the exact board the undone action started from.
func TestRandomPlay(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		s := newTestSession(t)
		m := NewManager(s)
		r := rand.New(rand.NewPCG(seed, 0))
		var history []map[string][]string

		for step := 0; step < 400; step++ {
			a := randomAction(r, m)
			before := piles(s)
			score := s.Score()
			committed := s.Log().Len()

			err := m.Apply(a)
			require.NoError(t, s.Verify(), "seed %d step %d: %s", seed, step, a)
			assert.GreaterOrEqual(t, s.Score(), 0)

			switch {
			case err != nil:
				assert.Equal(t, before, piles(s), "failed %s changed the board", a)
				assert.Equal(t, score, s.Score())
			case a.Type == ActionUndo:
				require.NotEmpty(t, history)
				assert.Equal(t, history[len(history)-1], piles(s), "seed %d step %d: undo", seed, step)
				history = history[:len(history)-1]
			case s.Log().Len() > committed:
				history = append(history, before)
			}
		}

		for len(history) > 0 {
			require.NoError(t, s.Undo())
			assert.Equal(t, history[len(history)-1], piles(s))
			history = history[:len(history)-1]
		}
		assert.ErrorIs(t, s.Undo(), ErrEmptyUndo)
		require.NoError(t, s.Verify())
	}
}
