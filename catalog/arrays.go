package catalog

import (
	"fmt"
	"io"
	"sort"

	"github.com/drillab/kata/arrays"
	"github.com/drillab/kata/drill"
)

func registerArrays(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "arrays/dutch-flag",
		Topic:      "arrays",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Three-way partition of 0s, 1s, and 2s in one pass.",
		Run:        runDutchFlag,
	})

	reg.Register(drill.Drill{
		Name:       "arrays/rotate",
		Topic:      "arrays",
		Difficulty: drill.Medium,
		Minutes:    15,
		Summary:    "Rotate left by k with three reversals and no extra array.",
		Run:        runRotate,
	})

	reg.Register(drill.Drill{
		Name:       "arrays/missing-number",
		Topic:      "arrays",
		Difficulty: drill.Easy,
		Minutes:    10,
		Summary:    "XOR indices against values; the missing one remains.",
		Run:        runMissingNumber,
	})

	reg.Register(drill.Drill{
		Name:       "arrays/kadane",
		Topic:      "arrays",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Maximum subarray sum, dropping any negative running prefix.",
		Run:        runKadane,
	})

	reg.Register(drill.Drill{
		Name:       "arrays/two-pointers",
		Topic:      "arrays",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Pair-with-sum and the water container, both walked from the ends.",
		Run:        runTwoPointers,
	})
}

func runDutchFlag(w io.Writer) error {
	a := []int{2, 0, 2, 1, 1, 0, 2, 0}
	want := append([]int(nil), a...)
	sort.Ints(want)

	arrays.DutchFlag(a)
	fmt.Fprintf(w, "partitioned: %v\n", a)

	for i := range a {
		if err := check(a[i] == want[i],
			"position %d: got %d, want %d", i, a[i], want[i]); err != nil {
			return err
		}
	}

	return nil
}

func runRotate(w io.Writer) error {
	a := []int{1, 2, 3, 4, 5, 6, 7}
	arrays.RotateLeft(a, 3)
	fmt.Fprintf(w, "rotated left by 3: %v\n", a)

	if err := check(a[0] == 4 && a[6] == 3,
		"rotate: got %v", a); err != nil {
		return err
	}

	// k wraps modulo len.
	b := []int{1, 2, 3}
	arrays.RotateLeft(b, 5)
	fmt.Fprintf(w, "rotated left by 5 (== 2 mod 3): %v\n", b)

	return check(b[0] == 3 && b[1] == 1 && b[2] == 2, "wrapped rotate: got %v", b)
}

func runMissingNumber(w io.Writer) error {
	a := []int{0, 1, 3, 4, 5}

	missing := arrays.FindMissing(a, 5)
	fmt.Fprintf(w, "missing value in 0..5: %d\n", missing)

	dup := arrays.FindDuplicate([]int{1, 3, 2, 4, 2})
	fmt.Fprintf(w, "duplicated value: %d\n", dup)

	return firstErr(
		check(missing == 2, "missing: got %d, want 2", missing),
		check(dup == 2, "duplicate: got %d, want 2", dup),
	)
}

func runKadane(w io.Writer) error {
	a := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}

	best := arrays.MaxSubarraySum(a)
	fmt.Fprintf(w, "max subarray sum of %v = %d\n", a, best)

	allNegative := arrays.MaxSubarraySum([]int{-8, -3, -6})
	fmt.Fprintf(w, "all-negative input keeps the least bad element: %d\n", allNegative)

	return firstErr(
		check(best == 6, "kadane: got %d, want 6", best),
		check(allNegative == -3, "all negative: got %d, want -3", allNegative),
	)
}

func runTwoPointers(w io.Writer) error {
	sorted := []int{1, 3, 4, 6, 8, 11}

	v1, v2, ok := arrays.PairWithSum(sorted, 10)
	fmt.Fprintf(w, "pair summing to 10: %d + %d\n", v1, v2)

	i, j := arrays.TwoSumSorted(sorted, 10)
	fmt.Fprintf(w, "their 1-based positions: %d and %d\n", i, j)

	water := arrays.MaxWaterContainer([]int{1, 8, 6, 2, 5, 4, 8, 3, 7})
	fmt.Fprintf(w, "max water container: %d\n", water)

	return firstErr(
		check(ok, "pair with sum 10 exists"),
		check(v1+v2 == 10, "pair sums to %d", v1+v2),
		check(sorted[i-1]+sorted[j-1] == 10,
			"positions %d and %d do not sum to 10", i, j),
		check(water == 49, "container: got %d, want 49", water),
	)
}
