package solitaire

import (
	"github.com/luca-patrignani/solitaire/domain/cards"
)

// Position is a point on the board, in whatever units the renderer uses.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Resolution is how a drag ended.
type Resolution int

const (
	Returned Resolution = iota
	Dropped
)

func (r Resolution) String() string {
	if r == Dropped {
		return "dropped"
	}
	return "returned"
}

// Hand stages the cards of a drag. Cards in the hand keep reporting the pile
// they were lifted from until the drag resolves.
type Hand struct {
	cards *cards.Collection
	grip  Grip
	start Position
	pos   Position
}

func newHand() *Hand {
	return &Hand{cards: cards.NewHoldingCollection("hand")}
}

// Active reports whether a drag is in progress.
func (h *Hand) Active() bool {
	return !h.cards.Empty()
}

func (h *Hand) Cards() []*cards.Card {
	return h.cards.Cards()
}

// Origin returns the collection the held cards were lifted from.
func (h *Hand) Origin() *cards.Collection {
	first, ok := h.cards.At(0)
	if !ok {
		return nil
	}
	return first.Collection()
}

func (h *Hand) Start() Position {
	return h.start
}

func (h *Hand) Position() Position {
	return h.pos
}

// Move updates the position of the held cards. It is ignored while idle.
func (h *Hand) Move(p Position) {
	if h.Active() {
		h.pos = p
	}
}

func (h *Hand) take(g Grip, at Position) error {
	if h.Active() {
		return ErrHandBusy
	}
	if len(g.Cards) == 0 {
		return ErrHandEmpty
	}
	origin := g.Cards[0].Collection()
	for _, c := range g.Cards {
		if c.Collection() == nil || c.Collection() != origin || c.Held() {
			return ErrNotLiftable
		}
	}
	for _, c := range g.Cards {
		h.cards.Put(c)
	}
	h.grip = g
	h.start = at
	h.pos = at
	return nil
}

// returnHome puts the held cards back at the exact positions they were lifted
// from, last card first.
func (h *Hand) returnHome() {
	held := h.cards.Cards()
	for i := len(held) - 1; i >= 0; i-- {
		loc := held[i].Location()
		loc.Collection.Insert(held[i], loc.Index)
	}
	onReturn := h.grip.OnReturn
	h.reset()
	if onReturn != nil {
		onReturn()
	}
}

func (h *Hand) reset() {
	h.grip = Grip{}
	h.start = Position{}
	h.pos = Position{}
}
