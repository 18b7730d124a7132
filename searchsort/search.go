// Package searchsort implements the binary-search family and the classic
// comparison sorts of the corpus.
package searchsort

// BinarySearch returns the index of target in a sorted slice, or -1. The
// midpoint is computed as lo + (hi-lo)/2, the overflow-safe form the
// interviewers ask about.
func BinarySearch(a []int, target int) int {
	lo, hi := 0, len(a)-1

	for lo <= hi {
		mid := lo + (hi-lo)/2

		switch {
		case a[mid] == target:
			return mid
		case a[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// FirstOccurrence returns the lowest index of target in a sorted slice with
// duplicates, or -1. On a hit the search keeps going left.
func FirstOccurrence(a []int, target int) int {
	lo, hi := 0, len(a)-1
	result := -1

	for lo <= hi {
		mid := lo + (hi-lo)/2

		switch {
		case a[mid] == target:
			result = mid
			hi = mid - 1
		case a[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return result
}

// LastOccurrence returns the highest index of target, or -1.
func LastOccurrence(a []int, target int) int {
	lo, hi := 0, len(a)-1
	result := -1

	for lo <= hi {
		mid := lo + (hi-lo)/2

		switch {
		case a[mid] == target:
			result = mid
			lo = mid + 1
		case a[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return result
}

// CountOccurrences counts target in a sorted slice via the two boundary
// searches.
func CountOccurrences(a []int, target int) int {
	first := FirstOccurrence(a, target)
	if first < 0 {
		return 0
	}

	return LastOccurrence(a, target) - first + 1
}

// SearchRotated finds target in a sorted slice rotated at an unknown pivot,
// O(log n): one half of any window is always sorted, and that half tells
// whether target lies inside it.
func SearchRotated(a []int, target int) int {
	lo, hi := 0, len(a)-1

	for lo <= hi {
		mid := lo + (hi-lo)/2

		if a[mid] == target {
			return mid
		}

		if a[lo] <= a[mid] {
			// Left half is sorted.
			if a[lo] <= target && target < a[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else {
			// Right half is sorted.
			if a[mid] < target && target <= a[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}

	return -1
}

// PeakElement returns the index of some element not smaller than its
// neighbors. The slice need not be sorted; binary search walks uphill.
func PeakElement(a []int) int {
	if len(a) == 0 {
		return -1
	}

	lo, hi := 0, len(a)-1

	for lo < hi {
		mid := lo + (hi-lo)/2

		if a[mid] < a[mid+1] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
