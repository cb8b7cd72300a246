package cards

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
	"github.com/pterm/pterm"
)

// Suit of a card (0-3).
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Suits lists every suit in raw card order.
var Suits = [4]Suit{Club, Diamond, Heart, Spade}

// Color is the colour of a suit.
type Color uint8

const (
	Black Color = iota
	Red
)

// Color returns Red for diamonds and hearts, Black otherwise.
func (s Suit) Color() Color {
	if s == Diamond || s == Heart {
		return Red
	}
	return Black
}

// Symbol returns the unicode symbol of the suit.
func (s Suit) Symbol() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// Rank of a card, Ace (1) through King (13).
type Rank uint8

// Card rank constants for face cards and ace
const (
	Ace   Rank = 1  // A
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// FaceDown is the display character for hidden cards
const (
	FaceDown = "▓"
)

// Card is a playing card. Suit and rank never change; the owning collection is
// maintained by Collection.Insert and Collection.Put.
type Card struct {
	suit Suit
	rank Rank

	home *Collection // permanent owner
	held *Collection // provisional owner while the card is in a holding collection
	slot int         // index the card had in home when it was lifted
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (*Card, error) {
	if suit > Spade || rank < Ace || rank > King {
		return nil, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	if _, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank)); err != nil {
		return nil, fmt.Errorf("invalid card %d, %d: %w", suit, rank, err)
	}
	return &Card{suit: suit, rank: rank, slot: -1}, nil
}

// FromIndex converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
func FromIndex(raw int) (*Card, error) {
	if raw > 52 || raw < 1 {
		return nil, errors.New("the card to convert have an invalid value")
	}
	return NewCard(Suit((raw-1)/13), Rank((raw-1)%13+1))
}

// NewStandardDeck returns the 52 cards in raw order, none of them owned.
func NewStandardDeck() ([]*Card, error) {
	deck := make([]*Card, 0, 52)
	for raw := 1; raw <= 52; raw++ {
		c, err := FromIndex(raw)
		if err != nil {
			return nil, err
		}
		deck = append(deck, c)
	}
	return deck, nil
}

// Index is the inverse of FromIndex.
func (c *Card) Index() int {
	return int(c.suit)*13 + int(c.rank)
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c *Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c *Card) Rank() Rank {
	return c.rank
}

// Color is shorthand for c.Suit().Color().
func (c *Card) Color() Color {
	return c.suit.Color()
}

// Collection returns the permanent owner of the card, or nil if it has none.
// A card sitting in a holding collection still reports the collection it was lifted from.
func (c *Card) Collection() *Collection {
	return c.home
}

// Current returns the collection whose pile physically contains the card.
func (c *Card) Current() *Collection {
	if c.held != nil {
		return c.held
	}
	return c.home
}

// Held reports whether the card is provisionally owned by a holding collection.
func (c *Card) Held() bool {
	return c.held != nil
}

// Location returns where the card belongs: its index in the permanent owner,
// or the index it was lifted from when it is held.
func (c *Card) Location() Location {
	if c.held != nil {
		return Location{Collection: c.home, Index: c.slot}
	}
	if c.home == nil {
		return Location{Index: -1}
	}
	return Location{Collection: c.home, Index: c.home.IndexOf(c)}
}

// Label returns the plain text form of the card, e.g. "10♥".
func (c *Card) Label() string {
	return c.rank.String() + c.suit.Symbol()
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c *Card) String() string {
	if c == nil {
		return FaceDown
	}
	var suit string
	if c.Color() == Red {
		suit = pterm.LightRed(c.suit.Symbol())
	} else {
		suit = pterm.Black(c.suit.Symbol())
	}
	return c.rank.String() + suit
}
