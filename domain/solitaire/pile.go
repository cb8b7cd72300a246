package solitaire

import (
	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/luca-patrignani/solitaire/domain/transaction"
)

// DropTarget is a pile that can accept cards at the end of a drag.
// CanDrop never changes state.
type DropTarget interface {
	Name() string
	Collection() *cards.Collection
	CanDrop(cs []*cards.Card) bool
	Drop(cs []*cards.Card, tx transaction.Controller) error
}

// Lifter is a pile cards can be picked up from.
type Lifter interface {
	Name() string
	Collection() *cards.Collection
	Lift(card *cards.Card) (Grip, error)
}

// Grip is what a pickup hands to the drag lifecycle: the lifted cards and the
// callbacks of the pile they came from.
type Grip struct {
	Cards []*cards.Card
	// OnReturn runs after the cards went back to where they were lifted from.
	OnReturn func()
	// OnMoved runs after the target added its segments, before the commit.
	OnMoved func(tx transaction.Controller)
}

// liftTop lifts card only if it is the top of c.
func liftTop(c *cards.Collection, card *cards.Card) (Grip, error) {
	top, ok := c.Top()
	if !ok || top != card {
		return Grip{}, ErrNotLiftable
	}
	return Grip{Cards: []*cards.Card{card}}, nil
}
