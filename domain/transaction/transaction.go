package transaction

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/luca-patrignani/solitaire/domain/cards"
)

var (
	ErrEmptySegment = errors.New("no cards to move")
	ErrOwnerless    = errors.New("cards have no owning collection")
	ErrMixedSource  = errors.New("cards belong to different collections")
	ErrNotPending   = errors.New("transaction already performed")
	ErrNotPerformed = errors.New("transaction not performed")
)

// State is the lifecycle position of a Transaction.
type State int

const (
	Pending State = iota
	Performed
	RolledBack
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Performed:
		return "performed"
	case RolledBack:
		return "rolled_back"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Controller is the view of an open transaction handed to the piles that
// compose it. Commit hands the transaction to whoever opened it.
type Controller interface {
	Add(cs []*cards.Card, destination *cards.Collection) error
	AddScoreBonus(amount int)
	AddUndoPenalty(amount int)
	Commit() error
}

// Transaction groups segments that are performed and rolled back as a unit,
// together with the score bonus granted on commit and the cost charged on undo.
type Transaction struct {
	id       uuid.UUID
	segments []*Segment
	bonus    int
	undoCost int
	state    State
}

// New returns an empty pending transaction.
func New(bonus, undoCost int) *Transaction {
	return &Transaction{
		id:       uuid.New(),
		bonus:    bonus,
		undoCost: undoCost,
	}
}

// Add appends a segment moving cs onto destination. The source is captured now,
// from the first card. Empty or ownerless card lists add nothing.
func (t *Transaction) Add(cs []*cards.Card, destination *cards.Collection) error {
	if t.state != Pending {
		return ErrNotPending
	}
	seg, err := NewSegment(cs, destination)
	if err != nil {
		return err
	}
	t.segments = append(t.segments, seg)
	return nil
}

// AddScoreBonus adds amount to the score applied when the transaction commits.
func (t *Transaction) AddScoreBonus(amount int) {
	t.bonus += amount
}

// AddUndoPenalty adds amount to the extra cost charged when the transaction is undone.
func (t *Transaction) AddUndoPenalty(amount int) {
	t.undoCost += amount
}

// ID returns the transaction identifier.
func (t *Transaction) ID() uuid.UUID {
	return t.id
}

// Bonus returns the score change applied on commit.
func (t *Transaction) Bonus() int {
	return t.bonus
}

// UndoCost returns the penalty charged on undo, on top of reverting the bonus.
func (t *Transaction) UndoCost() int {
	return t.undoCost
}

// State returns the current lifecycle state.
func (t *Transaction) State() State {
	return t.state
}

// Pending reports whether the transaction can still be performed.
func (t *Transaction) Pending() bool {
	return t.state == Pending
}

// Segments returns the segments in insertion order.
func (t *Transaction) Segments() []*Segment {
	out := make([]*Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Perform executes every segment in insertion order. A transaction is performed at most once.
func (t *Transaction) Perform() error {
	if t.state != Pending {
		return ErrNotPending
	}
	for _, s := range t.segments {
		s.perform()
	}
	t.state = Performed
	return nil
}

// Rollback reverses every segment, last first, restoring each card to the exact
// position it had before Perform.
func (t *Transaction) Rollback() error {
	if t.state != Performed {
		return ErrNotPerformed
	}
	for i := len(t.segments) - 1; i >= 0; i-- {
		t.segments[i].rollback()
	}
	t.state = RolledBack
	return nil
}

// Record is the serializable summary of a transaction.
type Record struct {
	ID       string          `json:"id"`
	Bonus    int             `json:"bonus"`
	UndoCost int             `json:"undo_cost"`
	Segments []SegmentRecord `json:"segments"`
}

// SegmentRecord names the collections and cards of one segment.
type SegmentRecord struct {
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Cards       []string `json:"cards"`
}

// Record summarizes the transaction for logs and the history ledger.
func (t *Transaction) Record() Record {
	r := Record{
		ID:       t.id.String(),
		Bonus:    t.bonus,
		UndoCost: t.undoCost,
		Segments: make([]SegmentRecord, 0, len(t.segments)),
	}
	for _, s := range t.segments {
		r.Segments = append(r.Segments, s.record())
	}
	return r
}
