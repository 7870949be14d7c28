package prefixsort

import "errors"

// DefaultShadowWidth is the byte width of the cached shadow window. Eight
// bytes fills a uint64, so the fast comparison path resolves a full
// machine word per handle without touching key storage.
const DefaultShadowWidth = 8

// PivotStrategy selects how the partitioner picks its pivot element.
type PivotStrategy uint8

const (
	// PivotRandom picks uniformly in [low, high]. This is the default; it
	// bounds adversarial worst cases probabilistically.
	PivotRandom PivotStrategy = iota
	// PivotMiddle picks the middle element. Deterministic, adequate for
	// inputs with no adversarial structure.
	PivotMiddle
	// PivotMedianOfThree picks the median of the first, middle and last
	// elements at the current depth.
	PivotMedianOfThree
)

// KeyHandle is the unit the sort permutes: a reference to externally owned,
// immutable key bytes plus the cached shadow of those bytes at the depth the
// handle was last refreshed. The sort never mutates Key.
type KeyHandle struct {
	Key    []byte
	Shadow uint64
}

var (
	ErrNilKey = errors.New("prefixsort: nil key")
)
