package transaction

import (
	"slices"

	"github.com/luca-patrignani/solitaire/domain/cards"
)

// Segment moves a group of cards from a single source onto a destination.
type Segment struct {
	cards       []*cards.Card
	source      *cards.Collection
	destination *cards.Collection

	// journal[i] is where cards[i] was right before it was moved
	journal []cards.Location
}

// NewSegment captures the current owner of cs as the source.
// The permanent owner is used, so held cards report the pile they were lifted from.
func NewSegment(cs []*cards.Card, destination *cards.Collection) (*Segment, error) {
	if len(cs) == 0 {
		return nil, ErrEmptySegment
	}
	source := cs[0].Collection()
	if source == nil {
		return nil, ErrOwnerless
	}
	for _, c := range cs[1:] {
		if c.Collection() != source {
			return nil, ErrMixedSource
		}
	}
	return &Segment{
		cards:       slices.Clone(cs),
		source:      source,
		destination: destination,
	}, nil
}

// Cards returns the moved cards in their original order.
func (s *Segment) Cards() []*cards.Card {
	return slices.Clone(s.cards)
}

// Source returns the collection the cards were held by when the segment was added.
func (s *Segment) Source() *cards.Collection {
	return s.source
}

// Destination returns the collection the cards move to.
func (s *Segment) Destination() *cards.Collection {
	return s.destination
}

func (s *Segment) perform() {
	s.journal = make([]cards.Location, len(s.cards))
	for i, c := range s.cards {
		s.journal[i] = s.destination.Put(c)
	}
}

func (s *Segment) rollback() {
	for i := len(s.cards) - 1; i >= 0; i-- {
		prev := s.journal[i]
		prev.Collection.Insert(s.cards[i], prev.Index)
	}
	s.journal = nil
}

func (s *Segment) record() SegmentRecord {
	return SegmentRecord{
		Source:      s.source.Name(),
		Destination: s.destination.Name(),
		Cards:       cards.Labels(s.cards),
	}
}
