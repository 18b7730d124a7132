package catalog

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/searchsort"
)

func registerSearchSort(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "searchsort/binary-search",
		Topic:      "search-sort",
		Difficulty: drill.Easy,
		Minutes:    15,
		Summary:    "Binary search with the overflow-safe midpoint, plus occurrence bounds.",
		Run:        runBinarySearch,
	})

	reg.Register(drill.Drill{
		Name:       "searchsort/rotated",
		Topic:      "search-sort",
		Difficulty: drill.Medium,
		Minutes:    25,
		Summary:    "Search a rotated sorted array by recursing into the sorted half.",
		Run:        runRotatedSearch,
	})

	reg.Register(drill.Drill{
		Name:       "searchsort/quadratic-sorts",
		Topic:      "search-sort",
		Difficulty: drill.Easy,
		Minutes:    20,
		Summary:    "Insertion, bubble, and selection sort against random input.",
		Run:        runQuadraticSorts,
	})

	reg.Register(drill.Drill{
		Name:       "searchsort/divide-and-conquer",
		Topic:      "search-sort",
		Difficulty: drill.Medium,
		Minutes:    30,
		Summary:    "Quicksort and mergesort on the same random input.",
		Run:        runDivideAndConquer,
	})
}

func runBinarySearch(w io.Writer) error {
	a := []int{1, 3, 3, 3, 7, 9}

	at := searchsort.BinarySearch(a, 7)
	fmt.Fprintf(w, "7 found at index %d\n", at)

	first := searchsort.FirstOccurrence(a, 3)
	last := searchsort.LastOccurrence(a, 3)
	count := searchsort.CountOccurrences(a, 3)
	fmt.Fprintf(w, "3 occupies [%d, %d], %d occurrences\n", first, last, count)

	return firstErr(
		check(at == 4, "search: got %d, want 4", at),
		check(first == 1 && last == 3, "bounds: got [%d, %d]", first, last),
		check(count == 3, "count: got %d, want 3", count),
		check(searchsort.BinarySearch(a, 5) == -1, "5 is absent"),
	)
}

func runRotatedSearch(w io.Writer) error {
	a := []int{7, 9, 11, 1, 3, 5}

	for target, want := range map[int]int{9: 1, 3: 4, 8: -1} {
		got := searchsort.SearchRotated(a, target)
		fmt.Fprintf(w, "SearchRotated(%v, %d) = %d\n", a, target, got)

		if err := check(got == want,
			"target %d: got %d, want %d", target, got, want); err != nil {
			return err
		}
	}

	peak := searchsort.PeakElement([]int{1, 3, 8, 4, 2})
	fmt.Fprintf(w, "peak at index %d\n", peak)

	return check(peak == 2, "peak: got %d, want 2", peak)
}

func sortedByEach(
	w io.Writer,
	sorts map[string]func([]int),
	input []int,
) error {
	want := append([]int(nil), input...)
	sort.Ints(want)

	for name, sortFn := range sorts {
		a := append([]int(nil), input...)
		sortFn(a)
		fmt.Fprintf(w, "%s sorted %d elements\n", name, len(a))

		for i := range want {
			if err := check(a[i] == want[i],
				"%s differs from the reference at %d", name, i); err != nil {
				return err
			}
		}
	}

	return nil
}

func runQuadraticSorts(w io.Writer) error {
	input := rand.New(rand.NewSource(11)).Perm(64)

	return sortedByEach(w, map[string]func([]int){
		"insertion": searchsort.InsertionSort,
		"bubble":    searchsort.BubbleSort,
		"selection": searchsort.SelectionSort,
	}, input)
}

func runDivideAndConquer(w io.Writer) error {
	input := rand.New(rand.NewSource(13)).Perm(512)

	return sortedByEach(w, map[string]func([]int){
		"quicksort": searchsort.QuickSort,
		"mergesort": searchsort.MergeSort,
	}, input)
}
