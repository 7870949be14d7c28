package prefixsort

import "encoding/binary"

// ShadowKey returns the big-endian integer encoding of up to width bytes of
// key starting at offset depth, zero padded past the key's end. The most
// significant byte of the result holds key[depth], so unsigned integer
// ordering of two shadows equals lexicographic ordering of the windows they
// encode. width must be in 1..8.
//
// The window is assembled in a zeroed stack buffer; key storage is never
// read past len(key).
func ShadowKey(key []byte, depth int, width int) uint64 {
	if depth >= len(key) {
		return 0
	}
	var b [8]byte
	copy(b[:width], key[depth:])
	return binary.BigEndian.Uint64(b[:])
}

// Refresh re-caches the handle's shadow for comparisons at depth. A handle
// must be refreshed at a range's depth before it is compared within that
// range.
func (h *KeyHandle) Refresh(depth int, width int) {
	h.Shadow = ShadowKey(h.Key, depth, width)
}

// refreshRange re-caches hs[low..high] inclusive at depth.
func refreshRange(hs []KeyHandle, low, high, depth, width int) {
	for k := low; k <= high; k++ {
		hs[k].Refresh(depth, width)
	}
}
