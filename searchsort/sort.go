package searchsort

// InsertionSort sorts a in place, shifting larger elements right to open a
// slot for each key. O(n²) worst case, O(n) when nearly sorted.
func InsertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		key := a[i]

		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}

		a[j+1] = key
	}
}

// BubbleSort sorts a in place with the early-exit flag: a pass without
// swaps means the slice is sorted.
func BubbleSort(a []int) {
	for n := len(a); n > 1; n-- {
		swapped := false

		for i := 1; i < n; i++ {
			if a[i-1] > a[i] {
				a[i-1], a[i] = a[i], a[i-1]
				swapped = true
			}
		}

		if !swapped {
			return
		}
	}
}

// SelectionSort sorts a in place by repeatedly moving the minimum of the
// unsorted tail to the front.
func SelectionSort(a []int) {
	for i := 0; i < len(a)-1; i++ {
		min := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[min] {
				min = j
			}
		}

		a[i], a[min] = a[min], a[i]
	}
}

// QuickSort sorts a in place with Lomuto partitioning on the last element.
func QuickSort(a []int) {
	if len(a) < 2 {
		return
	}

	pivot := a[len(a)-1]
	insert := 0

	for i := 0; i < len(a)-1; i++ {
		if a[i] < pivot {
			a[i], a[insert] = a[insert], a[i]
			insert++
		}
	}

	a[len(a)-1], a[insert] = a[insert], a[len(a)-1]

	QuickSort(a[:insert])
	QuickSort(a[insert+1:])
}

// MergeSort sorts a in place (through an O(n) scratch buffer), stable.
func MergeSort(a []int) {
	if len(a) < 2 {
		return
	}

	scratch := make([]int, len(a))
	mergeSort(a, scratch)
}

func mergeSort(a, scratch []int) {
	if len(a) < 2 {
		return
	}

	mid := len(a) / 2
	mergeSort(a[:mid], scratch)
	mergeSort(a[mid:], scratch)

	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if a[i] <= a[j] {
			scratch[k] = a[i]
			i++
		} else {
			scratch[k] = a[j]
			j++
		}
		k++
	}

	for i < mid {
		scratch[k] = a[i]
		i++
		k++
	}

	copy(a[k:], a[j:])
	copy(a, scratch[:k])
}
