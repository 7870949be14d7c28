package prefixsort

// Sort orders keys ascending by lexicographic byte comparison, permuting the
// slice in place. Only slice headers move; key bytes are never read past
// their length and never written.
//
// Empty and single element inputs are returned as-is. Any nil key yields
// ErrNilKey before any comparison, leaving the slice unmodified; zero length
// keys are valid and order first.
func Sort(keys [][]byte, opts ...Option) error {
	for _, k := range keys {
		if k == nil {
			return ErrNilKey
		}
	}
	if len(keys) < 2 {
		return nil
	}

	o := newSortOptions(opts)
	hs := NewHandles(keys, o.width)
	sortRange(hs, 0, len(hs)-1, 0, &o)

	// The input is only touched once the handle sort has fully completed.
	for i := range hs {
		keys[i] = hs[i].Key
	}
	return nil
}

// NewHandles builds one handle per key with shadows refreshed at depth 0.
// width must match the WithShadowWidth value of the SortHandles call the
// handles are built for.
func NewHandles(keys [][]byte, width int) []KeyHandle {
	hs := make([]KeyHandle, len(keys))
	for i, k := range keys {
		hs[i] = KeyHandle{Key: k}
		hs[i].Refresh(0, width)
	}
	return hs
}

// SortHandles sorts a caller-built handle slice in place. Every handle's
// shadow must be valid at depth 0 for the configured width (see NewHandles);
// the burden is on the caller, this entry point re-derives nothing.
func SortHandles(hs []KeyHandle, opts ...Option) {
	if len(hs) < 2 {
		return
	}
	o := newSortOptions(opts)
	sortRange(hs, 0, len(hs)-1, 0, &o)
}

// sortRange sorts hs[low..high], whose keys are known byte-identical over
// [0, depth). It recurses into the smaller partition and iterates over the
// larger, bounding auxiliary stack to O(log n) frames regardless of how
// skewed the partitions come out.
func sortRange(hs []KeyHandle, low, high, depth int, o *sortOptions) {
	for low < high {
		j, m := partition(hs, low, high, depth, o)

		// Every key in the range shares m more bytes, so descend both
		// subranges at the deeper offset. Shadows are only valid for the
		// depth they were refreshed at, so re-cache before any comparison
		// happens at the new depth.
		newDepth := depth + m
		if newDepth > depth {
			if low < j {
				refreshRange(hs, low, j-1, newDepth, o.width)
			}
			if j < high {
				refreshRange(hs, j+1, high, newDepth, o.width)
			}
		}
		depth = newDepth

		if j-low < high-j {
			sortRange(hs, low, j-1, depth, o)
			low = j + 1
		} else {
			sortRange(hs, j+1, high, depth, o)
			high = j - 1
		}
	}
}
