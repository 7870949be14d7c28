package prefixsorttesting

import (
	"testing"

	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestConfig controls generated key corpora.
type TestConfig struct {
	// Seed feeds the generator's PCG stream. It is normal to force it to
	// some fixed value so that the generated data is the same from run to
	// run.
	Seed uint64
}

// Generator produces byte-string key corpora for sort tests: URL shaped
// keys with heavily shared prefixes, uuid derived identifiers, and raw
// random keys.
type Generator struct {
	T   testing.TB
	rng *rand.Rand
}

func NewGenerator(t testing.TB, cfg TestConfig) *Generator {
	return &Generator{
		T:   t,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
	}
}

var (
	urlSchemes = []string{"http://", "https://"}
	urlHosts   = []string{
		"www.google.com", "www.yahoo.com", "www.amazon.com",
		"secure.site", "cdn.example.org",
	}
	urlSegments = []string{"search", "mail", "assets", "v2", "idx", "a"}
)

// URLKeys generates n URL shaped keys. The small scheme/host vocabulary
// guarantees long shared prefixes across much of the corpus.
func (g *Generator) URLKeys(n int) [][]byte {
	keys := make([][]byte, 0, n)
	for range n {
		s := urlSchemes[g.rng.IntN(len(urlSchemes))] + urlHosts[g.rng.IntN(len(urlHosts))]
		for d := g.rng.IntN(4); d > 0; d-- {
			s += "/" + urlSegments[g.rng.IntN(len(urlSegments))]
		}
		keys = append(keys, []byte(s))
	}
	return keys
}

// Read fills p from the seeded stream, letting the generator stand in for
// an entropy source.
func (g *Generator) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(g.rng.UintN(256))
	}
	return len(p), nil
}

// UUIDKeys generates n textual uuid keys. These exercise the opposite shape
// to URLKeys: near-uniform bytes with almost no shared prefix.
func (g *Generator) UUIDKeys(n int) [][]byte {
	keys := make([][]byte, 0, n)
	for range n {
		u, err := uuid.NewRandomFromReader(g)
		require.NoError(g.T, err)
		keys = append(keys, []byte(u.String()))
	}
	return keys
}

// SharedPrefixKeys generates n keys that all begin with the same prefixLen
// random bytes. Roughly one key in eight is exactly the prefix.
func (g *Generator) SharedPrefixKeys(n int, prefixLen int) [][]byte {
	prefix := g.nonZeroBytes(prefixLen)
	keys := make([][]byte, 0, n)
	for range n {
		var suffix []byte
		if g.rng.IntN(8) != 0 {
			suffix = g.nonZeroBytes(1 + g.rng.IntN(16))
		}
		k := make([]byte, 0, len(prefix)+len(suffix))
		k = append(k, prefix...)
		k = append(k, suffix...)
		keys = append(keys, k)
	}
	return keys
}

// RandomKeys generates n keys of length up to maxLen. Interior zero bytes
// are fair game; a trailing zero is avoided because it would make the key
// order-equal to its stripped form, which byte-wise reference comparisons
// in tests cannot see.
func (g *Generator) RandomKeys(n int, maxLen int) [][]byte {
	keys := make([][]byte, 0, n)
	for range n {
		l := g.rng.IntN(maxLen + 1)
		b := make([]byte, l)
		_, _ = g.Read(b)
		if l > 0 && b[l-1] == 0 {
			b[l-1] = byte(1 + g.rng.IntN(255))
		}
		keys = append(keys, b)
	}
	return keys
}

func (g *Generator) nonZeroBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(1 + g.rng.IntN(255))
	}
	return b
}
