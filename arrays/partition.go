package arrays

// DutchFlag partitions a slice of 0s, 1s and 2s into 0*1*2* in a single
// pass with O(1) space. low is the next slot for a 0, high the next slot for
// a 2, mid the cursor. A swap from high is not advanced past because the
// incoming element is unexamined. Values outside {0,1,2} panic.
func DutchFlag(a []int) {
	low, mid, high := 0, 0, len(a)-1

	for mid <= high {
		switch a[mid] {
		case 0:
			a[low], a[mid] = a[mid], a[low]
			low++
			mid++
		case 1:
			mid++
		case 2:
			a[mid], a[high] = a[high], a[mid]
			high--
		default:
			panic("arrays: DutchFlag input must hold only 0, 1, 2")
		}
	}
}
