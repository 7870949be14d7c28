package prefixsort

import "math/bits"

// CompareAndCount orders a and b considering only bytes from offset depth
// onward, and reports the exact count of leading bytes the two keys share
// beyond depth. Both handles must hold shadows refreshed at depth with the
// given width.
//
// cmp is negative, zero or positive as a orders before, equal to or after b.
// End-of-key compares as byte value 0. matched never overestimates: it is
// clamped to the shorter key's remaining length beyond depth, so advancing a
// range's depth by any fold of matched values stays within bytes every key
// actually has in common.
func CompareAndCount(a, b *KeyHandle, depth int, width int) (cmp int, matched int) {
	if a.Shadow != b.Shadow {
		// The first differing byte position is the count of agreeing
		// leading bits, floored to whole bytes.
		matched = bits.LeadingZeros64(a.Shadow^b.Shadow) / 8
		if a.Shadow < b.Shadow {
			cmp = -1
		} else {
			cmp = 1
		}
		return cmp, clampMatched(a, b, depth, matched)
	}

	// Shadows tie: the first width bytes beyond depth agree (possibly
	// through shared end-of-key padding). Scan beyond the cached window.
	k := depth + width
	for {
		var ca, cb byte
		if k < len(a.Key) {
			ca = a.Key[k]
		}
		if k < len(b.Key) {
			cb = b.Key[k]
		}
		if ca != cb {
			cmp = int(ca) - int(cb)
			break
		}
		if k >= len(a.Key) && k >= len(b.Key) {
			break
		}
		k++
	}
	return cmp, clampMatched(a, b, depth, k-depth)
}

// clampMatched bounds a raw matched-byte count by the shorter key's
// remaining length beyond depth. The shadow window is zero padded, so the
// raw count can run past a key that ends inside it.
func clampMatched(a, b *KeyHandle, depth int, matched int) int {
	rem := len(a.Key) - depth
	if r := len(b.Key) - depth; r < rem {
		rem = r
	}
	if rem < 0 {
		rem = 0
	}
	if matched > rem {
		return rem
	}
	return matched
}
