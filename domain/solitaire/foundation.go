package solitaire

import (
	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/luca-patrignani/solitaire/domain/transaction"
)

// Foundation builds its suit up from Ace to King.
type Foundation struct {
	suit  cards.Suit
	cards *cards.Collection
}

// NewFoundation returns an empty foundation for suit.
func NewFoundation(name string, suit cards.Suit) *Foundation {
	return &Foundation{suit: suit, cards: cards.NewCollection(name)}
}

func (f *Foundation) Name() string {
	return f.cards.Name()
}

// Suit returns the only suit the foundation accepts.
func (f *Foundation) Suit() cards.Suit {
	return f.suit
}

func (f *Foundation) Collection() *cards.Collection {
	return f.cards
}

// CanDrop accepts a single card of the foundation's suit whose rank is one
// above the top, or its Ace when the foundation is empty.
func (f *Foundation) CanDrop(cs []*cards.Card) bool {
	if len(cs) != 1 || cs[0].Suit() != f.suit {
		return false
	}
	card := cs[0]
	top, ok := f.cards.Top()
	if !ok {
		return card.Rank() == cards.Ace
	}
	return card.Rank() == top.Rank()+1
}

// Drop adds the move of cs onto the foundation to tx. It fails with
// ErrIllegalMove when CanDrop rejects cs.
func (f *Foundation) Drop(cs []*cards.Card, tx transaction.Controller) error {
	if !f.CanDrop(cs) {
		return ErrIllegalMove
	}
	return tx.Add(cs, f.cards)
}

// Lift picks up the top card.
func (f *Foundation) Lift(card *cards.Card) (Grip, error) {
	return liftTop(f.cards, card)
}

// Complete reports whether the foundation is topped by a King.
func (f *Foundation) Complete() bool {
	top, ok := f.cards.Top()
	return ok && top.Rank() == cards.King
}
