// Package window implements the sliding-window katas.
package window

// MaxSumSubarrayK returns the largest sum over all windows of exactly k
// elements and true, or 0 and false when k is out of range. The window
// slides by adding the entering element and dropping the leaving one.
func MaxSumSubarrayK(a []int, k int) (int, bool) {
	if k <= 0 || k > len(a) {
		return 0, false
	}

	sum := 0
	for _, v := range a[:k] {
		sum += v
	}

	best := sum
	for i := k; i < len(a); i++ {
		sum += a[i] - a[i-k]
		if sum > best {
			best = sum
		}
	}

	return best, true
}

// MaxConsecutiveOnesFlipK returns the longest run of 1s obtainable by
// flipping at most k zeros. The window grows on the right and shrinks on
// the left whenever it holds more than k zeros.
func MaxConsecutiveOnesFlipK(a []int, k int) int {
	best, left, zeros := 0, 0, 0

	for right, v := range a {
		if v == 0 {
			zeros++
		}

		for zeros > k {
			if a[left] == 0 {
				zeros--
			}
			left++
		}

		if right-left+1 > best {
			best = right - left + 1
		}
	}

	return best
}

// LongestSubarrayWithSum returns the length of the longest contiguous run
// of positive integers summing exactly to target. The shrink step is only
// valid because elements are positive; zero or negative input panics.
func LongestSubarrayWithSum(a []int, target int) int {
	best, left, sum := 0, 0, 0

	for right, v := range a {
		if v <= 0 {
			panic("window: LongestSubarrayWithSum needs positive elements")
		}

		sum += v

		for sum > target && left <= right {
			sum -= a[left]
			left++
		}

		if sum == target && right-left+1 > best {
			best = right - left + 1
		}
	}

	return best
}

// MinWindowWithSum returns the length of the shortest contiguous run of
// positive integers with sum >= target, or 0 when the whole slice falls
// short.
func MinWindowWithSum(a []int, target int) int {
	best, left, sum := 0, 0, 0

	for right, v := range a {
		sum += v

		for sum >= target {
			length := right - left + 1
			if best == 0 || length < best {
				best = length
			}

			sum -= a[left]
			left++
		}
	}

	return best
}
