package catalog

import (
	"fmt"
	"io"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/list"
)

func registerList(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "list/reverse",
		Topic:      "linked-list",
		Difficulty: drill.Easy,
		Minutes:    10,
		Summary:    "Reverse a singly linked list in place with three pointers.",
		Run:        runListReverse,
	})

	reg.Register(drill.Drill{
		Name:       "list/middle-and-nth",
		Topic:      "linked-list",
		Difficulty: drill.Easy,
		Minutes:    15,
		Summary:    "Fast/slow pointers for the middle; offset pointers for nth-from-end.",
		Run:        runListMiddle,
	})

	reg.Register(drill.Drill{
		Name:       "list/merge-sorted",
		Topic:      "linked-list",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Merge two sorted lists by relinking nodes, no allocation.",
		Run:        runListMerge,
	})

	reg.Register(drill.Drill{
		Name:       "list/cycle",
		Topic:      "linked-list",
		Difficulty: drill.Medium,
		Minutes:    25,
		Summary:    "Floyd's tortoise and hare: detect, locate, and remove a loop.",
		Run:        runListCycle,
	})

	reg.Register(drill.Drill{
		Name:       "list/clone-random",
		Topic:      "linked-list",
		Difficulty: drill.Hard,
		Minutes:    30,
		Summary:    "Deep-copy a list with random pointers in O(1) extra space.",
		Run:        runListCloneRandom,
	})
}

func runListReverse(w io.Writer) error {
	head := list.New(1, 2, 3, 4, 5)
	head = list.Reverse(head)
	fmt.Fprintf(w, "reversed: %v\n", list.Slice(head))

	got := list.Slice(head)
	for i, want := range []int{5, 4, 3, 2, 1} {
		if err := check(got[i] == want, "position %d: got %d", i, got[i]); err != nil {
			return err
		}
	}

	return nil
}

func runListMiddle(w io.Writer) error {
	head := list.New(1, 2, 3, 4, 5)

	mid := list.Middle(head)
	fmt.Fprintf(w, "middle of five: %d\n", mid.Data)

	midEven := list.Middle(list.New(1, 2, 3, 4))
	fmt.Fprintf(w, "middle of four (second of the two): %d\n", midEven.Data)

	trimmed := list.RemoveNthFromEnd(list.New(1, 2, 3, 4, 5), 2)
	fmt.Fprintf(w, "after removing 2nd from end: %v\n", list.Slice(trimmed))

	return firstErr(
		check(mid.Data == 3, "middle: got %d, want 3", mid.Data),
		check(midEven.Data == 3, "even middle: got %d, want 3", midEven.Data),
		check(list.Len(trimmed) == 4, "remove nth: length %d", list.Len(trimmed)),
		check(list.Slice(trimmed)[3] == 5, "remove nth kept the wrong node"),
	)
}

func runListMerge(w io.Writer) error {
	a := list.New(1, 3, 5)
	b := list.New(2, 3, 6)

	merged := list.MergeSorted(a, b)
	fmt.Fprintf(w, "merged: %v\n", list.Slice(merged))

	got := list.Slice(merged)
	want := []int{1, 2, 3, 3, 5, 6}
	for i := range want {
		if err := check(got[i] == want[i],
			"position %d: got %d, want %d", i, got[i], want[i]); err != nil {
			return err
		}
	}

	return nil
}

func runListCycle(w io.Writer) error {
	head := list.New(1, 2, 3, 4, 5)

	// Point the tail at node 3 to make a loop.
	third := head.Next.Next
	tail := head
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = third

	fmt.Fprintf(w, "loop detected: %v\n", list.HasLoop(head))
	start := list.FindLoopStart(head)
	fmt.Fprintf(w, "loop starts at node %d\n", start.Data)

	list.RemoveLoop(head)
	fmt.Fprintf(w, "after removal: %v\n", list.Slice(head))

	return firstErr(
		check(start == third, "loop start: got node %d", start.Data),
		check(!list.HasLoop(head), "loop still present after removal"),
		check(list.Len(head) == 5, "length changed by loop removal"),
	)
}

func runListCloneRandom(w io.Writer) error {
	a := &list.RandomNode{Data: 1}
	b := &list.RandomNode{Data: 2}
	c := &list.RandomNode{Data: 3}
	a.Next, b.Next = b, c
	a.Random, b.Random, c.Random = c, a, b

	clone := list.CloneRandom(a)
	fmt.Fprintf(w, "cloned %d -> %d -> %d with random pointers\n",
		clone.Data, clone.Next.Data, clone.Next.Next.Data)

	return firstErr(
		check(clone != a, "clone shares the head node"),
		check(clone.Random.Data == 3, "head random: got %d", clone.Random.Data),
		check(clone.Random == clone.Next.Next,
			"clone random points into the original list"),
		check(a.Next == b && b.Next == c, "original list was not restored"),
		check(a.Random == c, "original random pointer was clobbered"),
	)
}
