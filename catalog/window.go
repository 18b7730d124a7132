package catalog

import (
	"fmt"
	"io"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/window"
)

func registerWindow(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "window/fixed-k",
		Topic:      "sliding-window",
		Difficulty: drill.Easy,
		Minutes:    15,
		Summary:    "Slide a fixed window by adding the entering and dropping the leaving element.",
		Run:        runFixedWindow,
	})

	reg.Register(drill.Drill{
		Name:       "window/flip-zeros",
		Topic:      "sliding-window",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Longest run of ones allowing k zero flips, window shrinking on excess.",
		Run:        runFlipZeros,
	})

	reg.Register(drill.Drill{
		Name:       "window/target-sum",
		Topic:      "sliding-window",
		Difficulty: drill.Medium,
		Minutes:    25,
		Summary:    "Longest exact-sum and shortest at-least-sum windows over positives.",
		Run:        runTargetSum,
	})
}

func runFixedWindow(w io.Writer) error {
	a := []int{2, 1, 5, 1, 3, 2}

	best, ok := window.MaxSumSubarrayK(a, 3)
	fmt.Fprintf(w, "max sum of a window of 3 over %v = %d\n", a, best)

	_, tooWide := window.MaxSumSubarrayK(a, 7)

	return firstErr(
		check(ok, "window of 3 fits"),
		check(best == 9, "max sum: got %d, want 9", best),
		check(!tooWide, "window wider than the slice must report failure"),
	)
}

func runFlipZeros(w io.Writer) error {
	a := []int{1, 1, 0, 0, 1, 1, 1, 0, 1}

	best := window.MaxConsecutiveOnesFlipK(a, 2)
	fmt.Fprintf(w, "longest run of ones with 2 flips in %v = %d\n", a, best)

	noFlips := window.MaxConsecutiveOnesFlipK(a, 0)
	fmt.Fprintf(w, "with no flips allowed: %d\n", noFlips)

	return firstErr(
		check(best == 7, "two flips: got %d, want 7", best),
		check(noFlips == 3, "no flips: got %d, want 3", noFlips),
	)
}

func runTargetSum(w io.Writer) error {
	a := []int{1, 2, 3, 2, 5, 1, 1}

	longest := window.LongestSubarrayWithSum(a, 8)
	fmt.Fprintf(w, "longest window summing to 8: %d\n", longest)

	shortest := window.MinWindowWithSum(a, 8)
	fmt.Fprintf(w, "shortest window summing to at least 8: %d\n", shortest)

	return firstErr(
		check(longest == 4, "longest: got %d, want 4", longest),
		check(shortest == 3, "shortest: got %d, want 3", shortest),
	)
}
