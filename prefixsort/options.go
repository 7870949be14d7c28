package prefixsort

import "math/rand/v2"

type sortOptions struct {
	width int
	pivot PivotStrategy

	seeded    *rand.Rand
	callerRNG *rand.Rand

	// rng is nil unless the caller injected a seed or a generator; the
	// process-global generator is used otherwise.
	rng *rand.Rand
}

// Option configures a single Sort or SortHandles call. Options are side
// effect free; they never make the sort fail.
type Option func(*sortOptions)

// WithShadowWidth sets the cached window width in bytes. Values outside
// 1..8 are clamped into that range.
func WithShadowWidth(width int) Option {
	return func(o *sortOptions) {
		if width < 1 {
			width = 1
		}
		if width > DefaultShadowWidth {
			width = DefaultShadowWidth
		}
		o.width = width
	}
}

// WithPivot sets the pivot selection strategy.
func WithPivot(s PivotStrategy) Option {
	return func(o *sortOptions) {
		o.pivot = s
	}
}

// WithSeed gives the call its own PCG stream so random pivot choice, and
// hence the exact permutation among equal keys, is reproducible run to run.
func WithSeed(seed uint64) Option {
	return func(o *sortOptions) {
		o.seeded = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand injects a caller-owned generator, leaving reseeding policy
// entirely with the caller. Wins over WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *sortOptions) {
		o.callerRNG = r
	}
}

func newSortOptions(opts []Option) sortOptions {
	o := sortOptions{
		width: DefaultShadowWidth,
		pivot: PivotRandom,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.rng = o.seeded
	if o.callerRNG != nil {
		o.rng = o.callerRNG
	}
	return o
}

// intN draws uniformly from [0, n) using the injected generator, or the
// process-global one when none was injected.
func (o *sortOptions) intN(n int) int {
	if o.rng != nil {
		return o.rng.IntN(n)
	}
	return rand.IntN(n)
}
