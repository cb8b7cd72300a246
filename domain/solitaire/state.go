package solitaire

import (
	"fmt"

	"github.com/luca-patrignani/solitaire/domain/cards"
)

type PileState struct {
	Name  string   `json:"name"`
	Suit  string   `json:"suit,omitempty"`
	Cards []string `json:"cards"`
}

type TableauState struct {
	Name     string   `json:"name"`
	FaceDown int      `json:"face_down"`
	Visible  []string `json:"visible"`
}

// State is a read-only view of the board for renderers.
type State struct {
	SessionID   string         `json:"session_id"`
	Stock       int            `json:"stock"`
	Talon       []string       `json:"talon"`
	Foundations []PileState    `json:"foundations"`
	Tableau     []TableauState `json:"tableau"`
	Hand        []string       `json:"hand,omitempty"`
	Score       int            `json:"score"`
	Won         bool           `json:"won"`
	History     int            `json:"history"`
}

func (s *Session) State() State {
	st := State{
		SessionID:   s.id.String(),
		Stock:       s.stock.Len(),
		Talon:       s.talon.Collection().Labels(),
		Foundations: make([]PileState, 0, FoundationCount),
		Tableau:     make([]TableauState, 0, TableauCount),
		Score:       s.score,
		Won:         s.Won(),
		History:     s.log.Len(),
	}
	for _, f := range s.foundations {
		st.Foundations = append(st.Foundations, PileState{Name: f.Name(), Suit: f.Suit().Symbol(), Cards: f.Collection().Labels()})
	}
	for _, p := range s.tableau {
		st.Tableau = append(st.Tableau, TableauState{
			Name:     p.Name(),
			FaceDown: p.FaceDown().Len(),
			Visible:  p.Collection().Labels(),
		})
	}
	if s.hand.Active() {
		st.Hand = cards.Labels(s.hand.Cards())
	}
	return st
}

// collections lists every collection of the session, the hand included.
func (s *Session) collections() []*cards.Collection {
	out := []*cards.Collection{s.stock.Collection(), s.talon.Collection()}
	for _, f := range s.foundations {
		out = append(out, f.Collection())
	}
	for _, p := range s.tableau {
		out = append(out, p.FaceDown(), p.Collection())
	}
	return append(out, s.hand.cards)
}

// Verify checks the board invariants: 52 distinct cards, each owned by the
// collection that holds it, foundations built up in their own suit, tableau runs
// alternating down, a non-negative score and an intact log.
func (s *Session) Verify() error {
	seen := make(map[int]bool, 52)
	for _, c := range s.collections() {
		for _, card := range c.Cards() {
			if seen[card.Index()] {
				return fmt.Errorf("card %s appears twice", card.Label())
			}
			seen[card.Index()] = true
			if card.Current() != c {
				return fmt.Errorf("card %s is in %s but owned by %v", card.Label(), c.Name(), card.Current())
			}
			if c.IsHolding() != card.Held() {
				return fmt.Errorf("card %s has inconsistent holding state", card.Label())
			}
		}
	}
	if len(seen) != 52 {
		return fmt.Errorf("expected 52 cards, found %d", len(seen))
	}

	for _, f := range s.foundations {
		cs := f.Collection().Cards()
		for i, card := range cs {
			if card.Rank() != cards.Rank(i+1) || card.Suit() != f.Suit() {
				return fmt.Errorf("foundation %s out of order at %d", f.Name(), i)
			}
		}
	}
	for _, p := range s.tableau {
		if !ValidRun(p.Collection().Cards()) {
			return fmt.Errorf("tableau %s has an invalid run", p.Name())
		}
		if p.Collection().Empty() && !p.FaceDown().Empty() && !s.hand.Active() {
			return fmt.Errorf("tableau %s has face-down cards but nothing turned up", p.Name())
		}
	}

	if s.score < 0 {
		return fmt.Errorf("negative score %d", s.score)
	}
	return s.log.Verify()
}
