package solitaire

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/luca-patrignani/solitaire/domain/cards"
	"github.com/luca-patrignani/solitaire/domain/deck"
	"github.com/luca-patrignani/solitaire/domain/transaction"
	"github.com/luca-patrignani/solitaire/ledger"
)

const (
	FoundationCount = 4
	TableauCount    = 7
)

// Session is one game of Klondike: the piles, the transaction log and the score.
type Session struct {
	id      uuid.UUID
	logger  *slog.Logger
	source  deck.Source
	scoring Scoring

	stock       *deck.Deck
	talon       *Talon
	foundations [FoundationCount]*Foundation
	tableau     [TableauCount]*TableauPile
	// drop targets in registration order: tableau piles, then foundations
	targets []DropTarget

	log   History
	score int
	hand  *Hand
}

// History records committed transactions in order. *ledger.Log implements it.
type History interface {
	Append(tx *transaction.Transaction, score int, extra ...map[string]string) error
	Contains(tx *transaction.Transaction) bool
	Pop() (*transaction.Transaction, error)
	Len() int
	GetLatest() ledger.Block
	GetByIndex(index int) (*ledger.Block, error)
	Verify() error
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithSource sets the randomness used to shuffle every new game.
func WithSource(src deck.Source) Option {
	return func(s *Session) {
		s.source = src
	}
}

func WithScoring(scoring Scoring) Option {
	return func(s *Session) {
		s.scoring = scoring
	}
}

// NewSession creates a session and deals the first game.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		id:      uuid.New(),
		logger:  slog.Default(),
		scoring: DefaultScoring(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = deck.CryptoSource()
	}
	s.logger = s.logger.With("session", s.id.String())
	if err := s.NewGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame discards the current game, including any drag in progress, and deals
// a freshly shuffled one.
func (s *Session) NewGame() error {
	stock, err := deck.New("stock", s.source)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	s.stock = stock
	s.talon = NewTalon("talon")
	s.targets = make([]DropTarget, 0, TableauCount+FoundationCount)
	reveal := Reward{Bonus: s.scoring.RevealBonus, UndoPenalty: s.scoring.RevealUndoCost}
	for i := range s.tableau {
		s.tableau[i] = NewTableauPile(string(TableauID(i)), reveal)
		s.targets = append(s.targets, s.tableau[i])
	}
	for i, suit := range cards.Suits {
		s.foundations[i] = NewFoundation(string(FoundationID(i)), suit)
		s.targets = append(s.targets, s.foundations[i])
	}
	s.log = ledger.New(s.id.String())
	s.score = s.scoring.Initial
	s.hand = newHand()

	// pile i gets i+1 cards, the last one turned up
	for i, pile := range s.tableau {
		for j := 0; j <= i; j++ {
			top, _ := s.stock.Top()
			pile.FaceDown().Put(top)
		}
		pile.Flip()
	}
	top, _ := s.stock.Top()
	s.talon.Collection().Put(top)

	s.logger.Info("new game dealt", "stock", s.stock.Len(), "score", s.score)
	return nil
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Score never goes below zero.
func (s *Session) Score() int {
	return s.score
}

// Won reports whether every foundation is topped by a King.
func (s *Session) Won() bool {
	for _, f := range s.foundations {
		if !f.Complete() {
			return false
		}
	}
	return true
}

func (s *Session) Stock() *deck.Deck {
	return s.stock
}

func (s *Session) Talon() *Talon {
	return s.talon
}

// Foundation returns foundation i, in suit order.
func (s *Session) Foundation(i int) *Foundation {
	return s.foundations[i]
}

// Tableau returns tableau pile i, counted from the left.
func (s *Session) Tableau(i int) *TableauPile {
	return s.tableau[i]
}

func (s *Session) Hand() *Hand {
	return s.hand
}

// Log returns the history of committed transactions.
func (s *Session) Log() History {
	return s.log
}

// Targets returns the drop targets in the order Release tries them.
func (s *Session) Targets() []DropTarget {
	out := make([]DropTarget, len(s.targets))
	copy(out, s.targets)
	return out
}

// openTx is the controller handed to piles composing a transaction.
type openTx struct {
	*transaction.Transaction
	s *Session
}

func (o openTx) Add(cs []*cards.Card, destination *cards.Collection) error {
	err := o.Transaction.Add(cs, destination)
	if err != nil {
		o.s.logger.Warn("segment not added",
			"tx", o.ID().String(),
			"pile", destination.Name(),
			"cards", cards.Labels(cs),
			"error", err)
	}
	return err
}

func (o openTx) Commit() error {
	return o.s.Commit(o.Transaction)
}

// Begin opens a transaction that commits into this session.
func (s *Session) Begin(bonus, undoCost int) transaction.Controller {
	return openTx{Transaction: transaction.New(bonus, undoCost), s: s}
}

// Commit performs tx, applies its bonus and appends it to the log.
// A transaction is committed at most once; later attempts change nothing.
func (s *Session) Commit(tx *transaction.Transaction) error {
	if !tx.Pending() || s.log.Contains(tx) {
		s.logger.Warn("transaction committed twice", "tx", tx.ID().String(), "state", tx.State().String())
		return ErrDoubleCommit
	}
	before := s.score
	if err := tx.Perform(); err != nil {
		return fmt.Errorf("commit %s: %w", tx.ID(), err)
	}
	s.score = max(s.score+tx.Bonus(), 0)
	if err := s.log.Append(tx, s.score, moveInfo(tx)); err != nil {
		err = errors.Join(err, tx.Rollback())
		s.score = before
		return fmt.Errorf("commit %s: %w", tx.ID(), err)
	}
	s.logger.Debug("transaction committed",
		"tx", tx.ID().String(),
		"block", s.log.GetLatest().Index,
		"segments", len(tx.Segments()),
		"bonus", tx.Bonus(),
		"score", s.score)
	return nil
}

// moveInfo describes the first segment of tx for the log.
func moveInfo(tx *transaction.Transaction) map[string]string {
	segs := tx.Segments()
	if len(segs) == 0 {
		return nil
	}
	return map[string]string{
		"from":  segs[0].Source().Name(),
		"to":    segs[0].Destination().Name(),
		"cards": strings.Join(cards.Labels(segs[0].Cards()), " "),
	}
}

// Undo rolls back the most recent transaction and charges its bonus and undo cost.
func (s *Session) Undo() error {
	if s.hand.Active() {
		return ErrHandBusy
	}
	tx, err := s.log.Pop()
	if errors.Is(err, ledger.ErrEmpty) {
		s.logger.Debug("nothing to undo")
		return ErrEmptyUndo
	}
	if err != nil {
		return err
	}
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("undo %s: %w", tx.ID(), err)
	}
	s.score = max(s.score-tx.Bonus()-tx.UndoCost(), 0)
	s.logger.Debug("transaction undone", "tx", tx.ID().String(), "score", s.score)
	return nil
}

// Tap draws from the stock, or recycles the talon when the stock is empty.
// It reports false when neither was possible.
func (s *Session) Tap() (bool, error) {
	if s.hand.Active() {
		return false, ErrHandBusy
	}
	return s.stock.Tap(s.talon.Collection(), s.Begin, deck.TapCosts{
		DrawUndoCost:    s.scoring.DrawUndoCost,
		RecycleBonus:    s.scoring.RecycleBonus,
		RecycleUndoCost: s.scoring.RecycleUndoCost,
	})
}

// PickUp starts a drag with the cards of g. Only one drag can be in progress.
func (s *Session) PickUp(g Grip, at Position) error {
	if err := s.hand.take(g, at); err != nil {
		s.logger.Warn("pickup rejected", "cards", cards.Labels(g.Cards), "error", err)
		return err
	}
	s.logger.Debug("picked up", "cards", cards.Labels(g.Cards), "pile", s.hand.Origin().Name())
	return nil
}

// Lift asks from for the cards lifted together with card and picks them up.
func (s *Session) Lift(from Lifter, card *cards.Card, at Position) error {
	g, err := from.Lift(card)
	if err != nil {
		return fmt.Errorf("lift %s from %s: %w", card.Label(), from.Name(), err)
	}
	return s.PickUp(g, at)
}

// Move updates the position of the drag in progress.
func (s *Session) Move(p Position) {
	s.hand.Move(p)
}

// Release ends the drag. The first registered target among candidates that
// accepts the cards wins; the pile the cards came from is never eligible.
// Without a winner the cards go back where they were and nothing is committed.
func (s *Session) Release(candidates ...DropTarget) (Resolution, error) {
	if !s.hand.Active() {
		return Returned, ErrHandEmpty
	}
	held := s.hand.Cards()
	origin := s.hand.Origin()

	for _, target := range s.targets {
		if !contains(candidates, target) || target.Collection() == origin || !target.CanDrop(held) {
			continue
		}
		tx := s.Begin(0, 0)
		if err := target.Drop(held, tx); err != nil {
			s.hand.returnHome()
			return Returned, err
		}
		if s.hand.grip.OnMoved != nil {
			s.hand.grip.OnMoved(tx)
		}
		if err := tx.Commit(); err != nil {
			s.hand.returnHome()
			return Returned, err
		}
		s.hand.reset()
		s.logger.Debug("dropped", "cards", cards.Labels(held), "pile", target.Name())
		return Dropped, nil
	}

	s.hand.returnHome()
	s.logger.Debug("returned", "cards", cards.Labels(held), "pile", origin.Name())
	return Returned, nil
}

func contains(targets []DropTarget, t DropTarget) bool {
	for _, c := range targets {
		if c == t {
			return true
		}
	}
	return false
}
