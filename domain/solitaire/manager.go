package solitaire

import (
	"encoding/json"
	"fmt"

	"github.com/luca-patrignani/solitaire/domain/cards"
)

// ActionType names the kind of an Action.
type ActionType string

const (
	ActionDraw    ActionType = "draw"
	ActionMove    ActionType = "move"
	ActionUndo    ActionType = "undo"
	ActionNewGame ActionType = "new_game"
)

// Action is a player command. For moves, Depth is how many cards are taken from
// the top of From (1 for the top card alone).
type Action struct {
	Type  ActionType `json:"type"`
	From  PileID     `json:"from,omitempty"`
	Depth int        `json:"depth,omitempty"`
	To    PileID     `json:"to,omitempty"`
}

func (a Action) String() string {
	if a.Type == ActionMove {
		return fmt.Sprintf("move %d from %s to %s", a.Depth, a.From, a.To)
	}
	return string(a.Type)
}

// Manager drives a Session with discrete actions, for front ends that do not
// track pointer positions.
type Manager struct {
	Session *Session
}

func NewManager(s *Session) *Manager {
	return &Manager{Session: s}
}

// Validate checks whether a is legal in the current state without changing it.
func (m *Manager) Validate(a Action) error {
	if m.Session.hand.Active() && a.Type != ActionNewGame {
		return ErrHandBusy
	}
	switch a.Type {
	case ActionDraw, ActionNewGame:
		return nil
	case ActionUndo:
		if m.Session.log.Len() == 0 {
			return ErrEmptyUndo
		}
		return nil
	case ActionMove:
		_, held, target, err := m.resolveMove(a)
		if err != nil {
			return err
		}
		if target.Collection() == held[0].Collection() || !target.CanDrop(held) {
			return fmt.Errorf("%w: %s onto %s", ErrIllegalMove, cards.Labels(held), target.Name())
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

// Apply validates a and applies it to the session.
func (m *Manager) Apply(a Action) error {
	if err := m.Validate(a); err != nil {
		return err
	}
	switch a.Type {
	case ActionDraw:
		_, err := m.Session.Tap()
		return err
	case ActionUndo:
		return m.Session.Undo()
	case ActionNewGame:
		return m.Session.NewGame()
	case ActionMove:
		from, held, target, err := m.resolveMove(a)
		if err != nil {
			return err
		}
		if err := m.Session.Lift(from, held[0], Position{}); err != nil {
			return err
		}
		res, err := m.Session.Release(target)
		if err != nil {
			return err
		}
		if res != Dropped {
			return ErrIllegalMove
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}

// Snapshot serializes the current board.
func (m *Manager) Snapshot() ([]byte, error) {
	return json.Marshal(m.Session.State())
}

// resolveMove finds the source pile, the cards a move would lift and its target.
func (m *Manager) resolveMove(a Action) (Lifter, []*cards.Card, DropTarget, error) {
	from, err := m.Session.Lifter(a.From)
	if err != nil {
		return nil, nil, nil, err
	}
	target, err := m.Session.Target(a.To)
	if err != nil {
		return nil, nil, nil, err
	}
	depth := a.Depth
	if depth == 0 {
		depth = 1
	}
	c := from.Collection()
	card, ok := c.At(c.Len() - depth)
	if depth < 0 || !ok {
		return nil, nil, nil, fmt.Errorf("%w: %s has no card at depth %d", ErrNotLiftable, a.From, depth)
	}
	g, err := from.Lift(card)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s from %s", err, card.Label(), a.From)
	}
	return from, g.Cards, target, nil
}

func (m *Manager) ActionDraw() Action {
	return Action{Type: ActionDraw}
}

func (m *Manager) ActionUndo() Action {
	return Action{Type: ActionUndo}
}

func (m *Manager) ActionNewGame() Action {
	return Action{Type: ActionNewGame}
}

func (m *Manager) ActionMove(from PileID, depth int, to PileID) Action {
	return Action{Type: ActionMove, From: from, Depth: depth, To: to}
}
