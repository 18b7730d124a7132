package arrays

// PairWithSum reports whether a sorted slice contains two elements at
// distinct positions summing to target, and returns their values.
func PairWithSum(a []int, target int) (int, int, bool) {
	lo, hi := 0, len(a)-1

	for lo < hi {
		sum := a[lo] + a[hi]
		switch {
		case sum == target:
			return a[lo], a[hi], true
		case sum < target:
			lo++
		default:
			hi--
		}
	}

	return 0, 0, false
}

// TwoSumSorted returns the 1-based positions of the two elements of a sorted
// slice that sum to target, per the classic problem statement, or (0, 0)
// when no such pair exists.
func TwoSumSorted(a []int, target int) (int, int) {
	lo, hi := 0, len(a)-1

	for lo < hi {
		sum := a[lo] + a[hi]
		switch {
		case sum == target:
			return lo + 1, hi + 1
		case sum < target:
			lo++
		default:
			hi--
		}
	}

	return 0, 0
}

// RemoveDuplicatesSorted compacts a sorted slice so that each value appears
// once and returns the new length. The tail beyond the returned length is
// unspecified.
func RemoveDuplicatesSorted(a []int) int {
	if len(a) == 0 {
		return 0
	}

	insert := 1
	for i := 1; i < len(a); i++ {
		if a[i] != a[insert-1] {
			a[insert] = a[i]
			insert++
		}
	}

	return insert
}

// MaxWaterContainer returns the largest area between two heights, moving
// the pointer at the lower line inward each step.
func MaxWaterContainer(heights []int) int {
	best := 0
	lo, hi := 0, len(heights)-1

	for lo < hi {
		h := heights[lo]
		if heights[hi] < h {
			h = heights[hi]
		}

		area := h * (hi - lo)
		if area > best {
			best = area
		}

		if heights[lo] < heights[hi] {
			lo++
		} else {
			hi--
		}
	}

	return best
}
