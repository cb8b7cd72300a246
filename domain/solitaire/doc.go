// Package solitaire implements the rules of Klondike on top of the
// transactional card movement of package transaction.
//
// # Core Types
//
// Session: the whole game. It owns the stock, the talon, four foundations,
// seven tableau piles, the transaction log and the score.
//
// Foundation, TableauPile, Talon: the pile roles. Foundations and tableau
// piles are DropTargets that decide whether a group of cards may land on them
// and add the corresponding segment to a transaction. Every pile but the stock
// is a Lifter.
//
// Hand: the staging collection of a drag. Cards in the hand keep reporting the
// pile they were lifted from until the drag resolves.
//
// Manager: validates and applies discrete actions (draw, move, undo, new game).
//
// # Game Flow
//
// A drag goes Idle → Dragging → Dropped or Returned. PickUp moves the lifted
// cards into the hand. Release offers them to the candidate targets in
// registration order (tableau piles, then foundations); the first one that
// accepts them builds a transaction, the origin pile may extend it with an
// automatic reveal, and the session commits it. When nothing accepts the cards
// they go back to their exact previous position and nothing is recorded.
//
// # Scoring
//
// A transaction's bonus is added on commit. Undo subtracts the bonus and also
// charges the transaction's undo cost. The score never goes below zero.
package solitaire
