package deck

import (
	"fmt"
	"slices"

	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/luca-patrignani/solitaire/domain/transaction"
)

// Deck is the stock: 52 shuffled cards drained one at a time onto the talon.
type Deck struct {
	cards *cards.Collection
	src   Source
}

// New builds a full 52-card stock shuffled with src.
// A nil src uses CryptoSource.
func New(name string, src Source) (*Deck, error) {
	if src == nil {
		src = CryptoSource()
	}
	d := &Deck{
		cards: cards.NewCollection(name),
		src:   src,
	}
	all, err := cards.NewStandardDeck()
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	for _, c := range all {
		d.cards.Put(c)
	}
	d.Shuffle()
	return d, nil
}

// Collection returns the collection backing the stock.
func (d *Deck) Collection() *cards.Collection {
	return d.cards
}

// Draw pops the top card. It reports false when the stock is empty.
func (d *Deck) Draw() (*cards.Card, bool) {
	return d.cards.Draw()
}

// Top returns the top card without removing it.
func (d *Deck) Top() (*cards.Card, bool) {
	return d.cards.Top()
}

// Len returns the number of cards left in the stock.
func (d *Deck) Len() int {
	return d.cards.Len()
}

func (d *Deck) Empty() bool {
	return d.cards.Empty()
}

// TapCosts are the score effects of tapping the stock.
type TapCosts struct {
	DrawUndoCost    int
	RecycleBonus    int
	RecycleUndoCost int
}

// Opener opens a transaction with the given bonus and undo cost.
type Opener func(bonus, undoCost int) transaction.Controller

// Tap draws the top card onto talon, or recycles the talon into the stock when
// the stock is empty. The move is committed through a transaction opened with open.
// It reports false when there was nothing to do.
func (d *Deck) Tap(talon *cards.Collection, open Opener, costs TapCosts) (bool, error) {
	if top, ok := d.cards.Top(); ok {
		tx := open(0, costs.DrawUndoCost)
		if err := tx.Add([]*cards.Card{top}, talon); err != nil {
			return false, err
		}
		return true, tx.Commit()
	}
	if talon.Len() <= 1 {
		return false, nil
	}

	back := talon.Cards()
	slices.Reverse(back)
	tx := open(costs.RecycleBonus, costs.RecycleUndoCost)
	if err := tx.Add(back, d.cards); err != nil {
		return false, err
	}
	// back ends with the talon's bottom card, which becomes the new stock top
	if err := tx.Add(back[len(back)-1:], talon); err != nil {
		return false, err
	}
	return true, tx.Commit()
}
