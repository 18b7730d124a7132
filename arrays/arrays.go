// Package arrays collects the array katas: single-pass partitioning,
// rotation, Kadane's maximum subarray, Boyer-Moore majority voting, and the
// two-pointer family.
package arrays

// Reverse reverses a in place with two pointers.
func Reverse(a []int) {
	for lo, hi := 0, len(a)-1; lo < hi; lo, hi = lo+1, hi-1 {
		a[lo], a[hi] = a[hi], a[lo]
	}
}

// IsSorted reports whether a is in non-decreasing order.
func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}

	return true
}

// FindMissing returns the one value in 1..n absent from a, which holds the
// other n-1 distinct values. XOR of indices against values cancels every
// present number.
func FindMissing(a []int, n int) int {
	missing := 0
	for i := 1; i <= n; i++ {
		missing ^= i
	}

	for _, v := range a {
		missing ^= v
	}

	return missing
}

// FindMissingSum is FindMissing by arithmetic: the gap between n(n+1)/2 and
// the actual sum. The XOR variant avoids the overflow this one risks for
// large n.
func FindMissingSum(a []int, n int) int {
	missing := n * (n + 1) / 2
	for _, v := range a {
		missing -= v
	}

	return missing
}

// FindDuplicate returns the repeated value in a slice of n+1 values drawn
// from 1..n, without modifying the slice. Values are treated as next
// pointers and Floyd's cycle detection finds the cycle entrance.
func FindDuplicate(a []int) int {
	slow, fast := a[0], a[a[0]]
	for slow != fast {
		slow = a[slow]
		fast = a[a[fast]]
	}

	slow = 0
	for slow != fast {
		slow = a[slow]
		fast = a[fast]
	}

	return slow
}

// RotateLeft rotates a left by k positions in O(1) extra space using the
// three-reversal algorithm.
func RotateLeft(a []int, k int) {
	n := len(a)
	if n == 0 {
		return
	}

	k %= n
	if k < 0 {
		k += n
	}

	Reverse(a[:k])
	Reverse(a[k:])
	Reverse(a)
}

// SecondLargest returns the second largest distinct value and true, or 0 and
// false when fewer than two distinct values exist.
func SecondLargest(a []int) (int, bool) {
	if len(a) < 2 {
		return 0, false
	}

	largest, second := a[0], 0
	found := false

	for _, v := range a[1:] {
		switch {
		case v > largest:
			second, found = largest, true
			largest = v
		case v < largest && (!found || v > second):
			second, found = v, true
		}
	}

	if !found {
		return 0, false
	}

	return second, true
}

// MergeSorted merges two sorted slices into a new sorted slice, stable with
// respect to equal elements (a's element first).
func MergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}

	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// MoveZeros moves every zero to the end of a, keeping the relative order of
// the non-zero elements.
func MoveZeros(a []int) {
	insert := 0
	for _, v := range a {
		if v != 0 {
			a[insert] = v
			insert++
		}
	}

	for ; insert < len(a); insert++ {
		a[insert] = 0
	}
}

// Majority returns the value occurring more than len(a)/2 times and true,
// using Boyer-Moore voting with a verification pass.
func Majority(a []int) (int, bool) {
	if len(a) == 0 {
		return 0, false
	}

	candidate, votes := a[0], 0
	for _, v := range a {
		if votes == 0 {
			candidate = v
		}

		if v == candidate {
			votes++
		} else {
			votes--
		}
	}

	count := 0
	for _, v := range a {
		if v == candidate {
			count++
		}
	}

	if count <= len(a)/2 {
		return 0, false
	}

	return candidate, true
}

// MaxSubarraySum returns the largest sum over all non-empty contiguous
// subarrays (Kadane). For an all-negative slice this is the maximum element.
// The empty slice yields 0.
func MaxSubarraySum(a []int) int {
	if len(a) == 0 {
		return 0
	}

	best, current := a[0], a[0]
	for _, v := range a[1:] {
		if current < 0 {
			current = v
		} else {
			current += v
		}

		if current > best {
			best = current
		}
	}

	return best
}
