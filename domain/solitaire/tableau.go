package solitaire

import (
	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/luca-patrignani/solitaire/domain/transaction"
)

// TableauPile is a column of face-down cards with a descending, alternating
// colour run on top.
type TableauPile struct {
	faceDown *cards.Collection
	visible  *cards.Collection
	reveal   Reward
}

// NewTableauPile returns an empty pile. reveal is attached to any move that
// uncovers a face-down card.
func NewTableauPile(name string, reveal Reward) *TableauPile {
	return &TableauPile{
		faceDown: cards.NewCollection(name + "/down"),
		visible:  cards.NewCollection(name),
		reveal:   reveal,
	}
}

func (p *TableauPile) Name() string {
	return p.visible.Name()
}

// Collection returns the visible run.
func (p *TableauPile) Collection() *cards.Collection {
	return p.visible
}

// FaceDown returns the hidden cards under the face-up run.
func (p *TableauPile) FaceDown() *cards.Collection {
	return p.faceDown
}

// Flip turns the top face-down card up outside of any transaction. Used while dealing.
func (p *TableauPile) Flip() bool {
	top, ok := p.faceDown.Top()
	if !ok {
		return false
	}
	p.visible.Put(top)
	return true
}

// CanDrop accepts a run whose lead card is one rank below the top and of the
// opposite colour. An empty pile accepts only a King.
func (p *TableauPile) CanDrop(cs []*cards.Card) bool {
	if len(cs) == 0 {
		return false
	}
	lead := cs[0]
	top, ok := p.visible.Top()
	if !ok {
		return lead.Rank() == cards.King
	}
	return lead.Rank()+1 == top.Rank() && lead.Color() != top.Color()
}

func (p *TableauPile) Drop(cs []*cards.Card, tx transaction.Controller) error {
	if !p.CanDrop(cs) {
		return ErrIllegalMove
	}
	return tx.Add(cs, p.visible)
}

// Lift picks up card and every card above it.
func (p *TableauPile) Lift(card *cards.Card) (Grip, error) {
	idx := p.visible.IndexOf(card)
	if idx < 0 {
		return Grip{}, ErrNotLiftable
	}
	return Grip{
		Cards:   p.visible.From(idx),
		OnMoved: p.Reveal,
	}, nil
}

// Reveal extends tx with a flip of the top face-down card when the visible run
// is empty.
func (p *TableauPile) Reveal(tx transaction.Controller) {
	top, ok := p.faceDown.Top()
	if !p.visible.Empty() || !ok {
		return
	}
	if err := tx.Add([]*cards.Card{top}, p.visible); err != nil {
		return
	}
	p.reveal.apply(tx)
}

// ValidRun reports whether cs descends by one with alternating colours.
func ValidRun(cs []*cards.Card) bool {
	for i := 1; i < len(cs); i++ {
		if cs[i].Rank()+1 != cs[i-1].Rank() || cs[i].Color() == cs[i-1].Color() {
			return false
		}
	}
	return true
}
