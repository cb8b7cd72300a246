package solitaire

import "github.com/luca-patrignani/solitaire/domain/cards"

// Talon is the waste pile the stock is drawn onto. Only its top card can be lifted.
type Talon struct {
	cards *cards.Collection
}

// NewTalon returns an empty talon.
func NewTalon(name string) *Talon {
	return &Talon{cards: cards.NewCollection(name)}
}

func (t *Talon) Name() string {
	return t.cards.Name()
}

func (t *Talon) Collection() *cards.Collection {
	return t.cards
}

func (t *Talon) Lift(card *cards.Card) (Grip, error) {
	return liftTop(t.cards, card)
}
