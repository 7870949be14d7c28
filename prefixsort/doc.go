package prefixsort

/*

# Prefix-skipping quicksort over byte-string keys

This package sorts collections of byte-string keys (URLs, identifiers,
storage paths) while avoiding redundant byte comparison inside partitions
that share a long common prefix.

It follows the same "functional primitives" style as the rest of our
repositories:

- small, composable functions
- explicit byte layouts
- a burden of knowledge on the caller for hot paths

## How it skips prefixes

Every partition of the handle array carries a depth D: the count of leading
bytes already known identical for every key in that partition. Comparisons
within the partition start at offset D and never re-read bytes [0, D).

The depth is discovered for free. Each comparison against the pivot reports,
besides the ordering, the exact count of leading bytes the two keys share
beyond D. The partitioner folds those counts into a running minimum m; since
every key was compared with the pivot, every pair of keys in the partition
shares at least m bytes beyond D, and both recursive calls descend at D+m.

## Shadow keys

Each handle caches the next eight bytes of its key from the current depth as
a big-endian uint64 (`ShadowKey`), zero padded past the key's end. Integer
comparison of two shadows equals lexicographic comparison of the underlying
byte windows, and when the shadows differ the count of shared bytes is
recovered from the leading zero count of their XOR. Only when two shadows tie
does the comparator touch key bytes, starting beyond the cached window.

Shadows are valid only for the depth at which they were refreshed. The
driver re-refreshes every handle in a subrange whenever that subrange's
depth advances; callers using `SortHandles` directly must present handles
refreshed at depth 0.

## Core invariants

1. key bytes are immutable and externally owned; only handles are permuted
2. for an active range (low, high, D) every pair of keys in [low, high] is
   byte-identical over [0, D)
3. a handle's shadow has been refreshed at the range's depth before it is
   compared
4. key storage is never read past the key's length; the shadow window is
   assembled in a zero-initialized fixed buffer

End-of-key compares as byte value 0, so a key that ends orders before any
key continuing with a nonzero byte. Keys differing only by trailing 0x00
bytes compare equal, and like any equal keys they may emerge in either order:
the sort is not stable.

*/
