package solitaire

import (
	"fmt"
	"strconv"
)

// PileID names a pile: "stock", "talon", "f0".."f3" or "t0".."t6".
type PileID string

const (
	StockID PileID = "stock"
	TalonID PileID = "talon"
)

func FoundationID(i int) PileID {
	return PileID("f" + strconv.Itoa(i))
}

func TableauID(i int) PileID {
	return PileID("t" + strconv.Itoa(i))
}

// index parses the numeric part of a foundation or tableau id.
func (id PileID) index(prefix byte, n int) (int, bool) {
	if len(id) < 2 || id[0] != prefix {
		return 0, false
	}
	i, err := strconv.Atoi(string(id[1:]))
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// Target resolves a drop target by id.
func (s *Session) Target(id PileID) (DropTarget, error) {
	if i, ok := id.index('t', TableauCount); ok {
		return s.tableau[i], nil
	}
	if i, ok := id.index('f', FoundationCount); ok {
		return s.foundations[i], nil
	}
	return nil, fmt.Errorf("%w: %q is not a drop target", ErrUnknownPile, id)
}

// Lifter resolves a pile cards can be picked up from.
func (s *Session) Lifter(id PileID) (Lifter, error) {
	if id == TalonID {
		return s.talon, nil
	}
	if i, ok := id.index('t', TableauCount); ok {
		return s.tableau[i], nil
	}
	if i, ok := id.index('f', FoundationCount); ok {
		return s.foundations[i], nil
	}
	return nil, fmt.Errorf("%w: cannot lift from %q", ErrUnknownPile, id)
}
