package prefixsort

// unboundedShared is the fold identity for the running minimum of matched
// byte counts.
const unboundedShared = int(^uint(0) >> 1)

// partition partitions hs[low..high] around a pivot chosen per o.pivot,
// considering only bytes from depth onward, and returns the pivot's final
// index j together with minShared, a lower bound on the count of bytes
// beyond depth that every examined key shares with the pivot.
//
// On return [low, j-1] order at or before the pivot and [j+1, high] at or
// after it, relative to depth. Equal keys may land on either side. Because
// every element of the range is compared with the pivot at least once,
// every pair of keys in the range shares at least minShared bytes beyond
// depth, so both subranges may descend at depth+minShared.
func partition(hs []KeyHandle, low, high, depth int, o *sortOptions) (int, int) {
	p := o.pivotIndex(hs, low, high, depth)
	hs[low], hs[p] = hs[p], hs[low]
	// Value copy: the slot at low is swapped over before the pivot is
	// finally seated.
	pivot := hs[low]

	minShared := unboundedShared
	i, j := low+1, high
	for {
		for i <= j {
			cmp, matched := CompareAndCount(&hs[i], &pivot, depth, o.width)
			if matched < minShared {
				minShared = matched
			}
			if cmp >= 0 {
				break
			}
			i++
		}
		for i <= j {
			cmp, matched := CompareAndCount(&hs[j], &pivot, depth, o.width)
			if matched < minShared {
				minShared = matched
			}
			if cmp <= 0 {
				break
			}
			j--
		}
		if i > j {
			break
		}
		hs[i], hs[j] = hs[j], hs[i]
		i++
		j--
	}

	// Seat the pivot at its final position.
	hs[low], hs[j] = hs[j], hs[low]

	// A two element range always performs a comparison, so this only
	// covers degenerate calls the driver normally excludes.
	if minShared == unboundedShared {
		minShared = 0
	}
	return j, minShared
}

func (o *sortOptions) pivotIndex(hs []KeyHandle, low, high, depth int) int {
	switch o.pivot {
	case PivotMiddle:
		return low + (high-low)/2
	case PivotMedianOfThree:
		return medianOfThree(hs, low, low+(high-low)/2, high, depth, o.width)
	default:
		return low + o.intN(high-low+1)
	}
}

// medianOfThree returns whichever of indices a, b, c holds the median key
// at depth.
func medianOfThree(hs []KeyHandle, a, b, c, depth, width int) int {
	if cmp, _ := CompareAndCount(&hs[a], &hs[b], depth, width); cmp > 0 {
		a, b = b, a
	}
	// a orders at or before b
	if cmp, _ := CompareAndCount(&hs[b], &hs[c], depth, width); cmp > 0 {
		b = c
		if cmp, _ := CompareAndCount(&hs[a], &hs[b], depth, width); cmp > 0 {
			b = a
		}
	}
	return b
}
