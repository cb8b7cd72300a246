package cards

import (
	"slices"
	"strings"
)

// Location is a position inside a collection. A nil Collection means the card
// had no owner.
type Location struct {
	Collection *Collection
	Index      int
}

// Collection is an ordered stack of cards; the last card is the top.
// A card is in at most one collection: inserting it somewhere detaches it from
// wherever it was.
type Collection struct {
	name    string
	pile    []*Card
	holding bool
}

// NewCollection returns an empty collection that takes permanent ownership of
// the cards put into it.
func NewCollection(name string) *Collection {
	return &Collection{name: name}
}

// NewHoldingCollection returns an empty collection that only takes provisional
// ownership: cards keep reporting the collection they were lifted from until
// they are inserted into a regular collection.
func NewHoldingCollection(name string) *Collection {
	return &Collection{name: name, holding: true}
}

// Put places card on top of the collection. See Insert.
func (c *Collection) Put(card *Card) Location {
	return c.Insert(card, -1)
}

// Insert detaches card from the collection currently containing it and places it
// at index (a negative or out of range index means the top). It returns the
// location the card occupied before the call, which is enough to undo the move.
func (c *Collection) Insert(card *Card, index int) Location {
	prev := card.Location()
	if cur := card.Current(); cur != nil {
		cur.remove(card)
	}
	if index < 0 || index > len(c.pile) {
		index = len(c.pile)
	}
	c.pile = slices.Insert(c.pile, index, card)

	if c.holding {
		if card.held == nil {
			card.slot = prev.Index
		}
		card.held = c
	} else {
		card.home = c
		card.held = nil
		card.slot = -1
	}
	return prev
}

// Draw removes and returns the top card, clearing its ownership.
func (c *Collection) Draw() (*Card, bool) {
	if len(c.pile) == 0 {
		return nil, false
	}
	card := c.pile[len(c.pile)-1]
	c.pile = c.pile[:len(c.pile)-1]
	card.home = nil
	card.held = nil
	card.slot = -1
	return card, true
}

func (c *Collection) remove(card *Card) int {
	idx := slices.Index(c.pile, card)
	if idx < 0 {
		return -1
	}
	c.pile = slices.Delete(c.pile, idx, idx+1)
	return idx
}

// Swap exchanges the cards at i and j. Ownership is unaffected.
func (c *Collection) Swap(i, j int) {
	c.pile[i], c.pile[j] = c.pile[j], c.pile[i]
}

// Cards returns a copy of the pile, bottom first.
func (c *Collection) Cards() []*Card {
	return slices.Clone(c.pile)
}

// From returns a copy of the cards from index to the top.
func (c *Collection) From(index int) []*Card {
	if index < 0 || index >= len(c.pile) {
		return nil
	}
	return slices.Clone(c.pile[index:])
}

// At returns the card at index, bottom first.
func (c *Collection) At(index int) (*Card, bool) {
	if index < 0 || index >= len(c.pile) {
		return nil, false
	}
	return c.pile[index], true
}

// Top returns the last card of the pile.
func (c *Collection) Top() (*Card, bool) {
	return c.At(len(c.pile) - 1)
}

// IndexOf returns the position of card, or -1.
func (c *Collection) IndexOf(card *Card) int {
	return slices.Index(c.pile, card)
}

// Contains reports whether card is currently held by c.
func (c *Collection) Contains(card *Card) bool {
	return c.IndexOf(card) >= 0
}

// Len returns the number of cards in c.
func (c *Collection) Len() int {
	return len(c.pile)
}

// Empty reports whether c holds no cards.
func (c *Collection) Empty() bool {
	return len(c.pile) == 0
}

// Name returns the pile name given at construction.
func (c *Collection) Name() string {
	return c.name
}

// IsHolding reports whether the collection only takes provisional ownership.
func (c *Collection) IsHolding() bool {
	return c.holding
}

// Labels returns the plain labels of the pile, bottom first.
func (c *Collection) Labels() []string {
	return Labels(c.pile)
}

func (c *Collection) String() string {
	return c.name + "[" + strings.Join(c.Labels(), " ") + "]"
}

// Labels maps cards to their plain labels.
func Labels(cs []*Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Label()
	}
	return out
}
