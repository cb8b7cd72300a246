package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	c, err := NewCard(Heart, Queen)
	require.NoError(t, err)
	assert.Equal(t, Heart, c.Suit())
	assert.Equal(t, Queen, c.Rank())
	assert.Equal(t, Red, c.Color())
	assert.Nil(t, c.Collection())
	assert.Equal(t, "Q♥", c.Label())
}

func TestNewCardInvalid(t *testing.T) {
	tests := []struct {
		suit Suit
		rank Rank
	}{
		{Spade + 1, Ace},
		{Club, 0},
		{Club, King + 1},
	}
	for _, tt := range tests {
		if _, err := NewCard(tt.suit, tt.rank); err == nil {
			t.Fatalf("expected error for suit %d rank %d", tt.suit, tt.rank)
		}
	}
}

func TestSuitColor(t *testing.T) {
	assert.Equal(t, Black, Club.Color())
	assert.Equal(t, Red, Diamond.Color())
	assert.Equal(t, Red, Heart.Color())
	assert.Equal(t, Black, Spade.Color())
}

func TestFromIndexRoundTrip(t *testing.T) {
	for raw := 1; raw <= 52; raw++ {
		c, err := FromIndex(raw)
		require.NoError(t, err)
		if c.Index() != raw {
			t.Fatalf("FromIndex(%d).Index() = %d", raw, c.Index())
		}
	}
	_, err := FromIndex(0)
	assert.Error(t, err)
	_, err = FromIndex(53)
	assert.Error(t, err)
}

func TestNewStandardDeck(t *testing.T) {
	deck, err := NewStandardDeck()
	require.NoError(t, err)
	require.Len(t, deck, 52)

	seen := make(map[string]bool)
	for _, c := range deck {
		if seen[c.Label()] {
			t.Fatalf("duplicate card %s", c.Label())
		}
		seen[c.Label()] = true
	}
	assert.Equal(t, "A♣", deck[0].Label())
	assert.Equal(t, "K♠", deck[51].Label())
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "A", Ace.String())
	assert.Equal(t, "7", Rank(7).String())
	assert.Equal(t, "10", Rank(10).String())
	assert.Equal(t, "K", King.String())
}
