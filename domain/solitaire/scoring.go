package solitaire

import "github.com/luca-patrignani/solitaire/domain/transaction"

// Scoring holds the score effects of every kind of move.
type Scoring struct {
	Initial         int
	DrawUndoCost    int
	RecycleBonus    int
	RecycleUndoCost int
	RevealBonus     int
	RevealUndoCost  int
}

// DefaultScoring returns the standard Klondike point values.
func DefaultScoring() Scoring {
	return Scoring{
		Initial:         1000,
		DrawUndoCost:    50,
		RecycleBonus:    -250,
		RecycleUndoCost: 50,
		RevealBonus:     100,
		RevealUndoCost:  250,
	}
}

// Reward is the score effect a pile attaches to a transaction.
type Reward struct {
	Bonus       int
	UndoPenalty int
}

func (r Reward) apply(tx transaction.Controller) {
	tx.AddScoreBonus(r.Bonus)
	tx.AddUndoPenalty(r.UndoPenalty)
}
