package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleIsPermutation(t *testing.T) {
	d, err := New("stock", SeededSource(7))
	require.NoError(t, err)
	require.Equal(t, 52, d.Len())

	seen := make(map[int]bool)
	for _, c := range d.Collection().Cards() {
		assert.False(t, seen[c.Index()], "duplicate %s", c.Label())
		seen[c.Index()] = true
		assert.Equal(t, d.Collection(), c.Collection())
	}
	assert.Len(t, seen, 52)
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a, err := New("stock", SeededSource(42))
	require.NoError(t, err)
	b, err := New("stock", SeededSource(42))
	require.NoError(t, err)
	assert.Equal(t, a.Collection().Labels(), b.Collection().Labels())
}

func TestCryptoSourceRange(t *testing.T) {
	src := CryptoSource()
	for n := 1; n <= 52; n++ {
		v := src.Intn(n)
		if v < 0 || v >= n {
			t.Fatalf("Intn(%d) = %d", n, v)
		}
	}
	d, err := New("stock", nil)
	require.NoError(t, err)
	assert.Equal(t, 52, d.Len())
}

// Counts which card lands on top of the stock over many seeded shuffles and
// checks the distribution with a chi-square test (51 degrees of freedom).
func TestShuffleUniform(t *testing.T) {
	const runs = 20000
	src := SeededSource(1)
	counts := make(map[int]int)
	for i := 0; i < runs; i++ {
		d, err := New("stock", src)
		require.NoError(t, err)
		top, ok := d.Top()
		require.True(t, ok)
		counts[top.Index()]++
	}

	expected := float64(runs) / 52
	chi := 0.0
	for raw := 1; raw <= 52; raw++ {
		diff := float64(counts[raw]) - expected
		chi += diff * diff / expected
	}
	// p < 0.0001 for 51 dof
	if chi > 100 {
		t.Fatalf("chi-square %.2f too large, shuffle is biased", chi)
	}
}
