package solitaire

import "errors"

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrDoubleCommit  = errors.New("transaction already committed")
	ErrEmptyUndo     = errors.New("nothing to undo")
	ErrHandBusy      = errors.New("hand is already holding cards")
	ErrHandEmpty     = errors.New("hand is empty")
	ErrNotLiftable   = errors.New("card cannot be picked up")
	ErrUnknownPile   = errors.New("unknown pile")
	ErrUnknownAction = errors.New("unknown action")
)
