package deck

import (
	"encoding/binary"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/suites"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

type streamSource struct{}

// CryptoSource draws from the Ed25519 suite's random stream.
func CryptoSource() Source {
	return streamSource{}
}

func (streamSource) Intn(n int) int {
	if n <= 0 {
		panic("deck: invalid argument to Intn")
	}
	// rejection sampling keeps the result unbiased
	limit := ^uint64(0) - ^uint64(0)%uint64(n)
	buf := make([]byte, 8)
	for {
		for i := range buf {
			buf[i] = 0
		}
		suite.RandomStream().XORKeyStream(buf, buf)
		v := binary.BigEndian.Uint64(buf)
		if v < limit {
			return int(v % uint64(n))
		}
	}
}

type seededSource struct {
	r *rand.Rand
}

// SeededSource returns a deterministic source, used for reproducible deals.
func SeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) int {
	return s.r.IntN(n)
}

// Shuffle performs a Fisher-Yates shuffle of the stock: i goes from the last
// index down to 1 and swaps with a uniform j in [0, i].
func (d *Deck) Shuffle() {
	for i := d.cards.Len() - 1; i > 0; i-- {
		j := d.src.Intn(i + 1)
		d.cards.Swap(i, j)
	}
}
