package catalog

import (
	"fmt"
	"io"

	"github.com/drillab/kata/drill"
	"github.com/drillab/kata/stackqueue"
)

func registerStackQueue(reg *drill.Registry) {
	reg.Register(drill.Drill{
		Name:       "stackqueue/balanced-parens",
		Topic:      "stack-queue",
		Difficulty: drill.Easy,
		Minutes:    10,
		Summary:    "Match brackets with a stack; mismatches and leftovers both fail.",
		Run:        runBalancedParens,
	})

	reg.Register(drill.Drill{
		Name:       "stackqueue/circular-queue",
		Topic:      "stack-queue",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "Wrap-around indices fix the linear queue's false-full drift.",
		Run:        runCircularQueue,
	})

	reg.Register(drill.Drill{
		Name:       "stackqueue/min-stack",
		Topic:      "stack-queue",
		Difficulty: drill.Medium,
		Minutes:    20,
		Summary:    "O(1) minimum via a shadow stack of running minima.",
		Run:        runMinStack,
	})

	reg.Register(drill.Drill{
		Name:       "stackqueue/queue-from-stacks",
		Topic:      "stack-queue",
		Difficulty: drill.Medium,
		Minutes:    25,
		Summary:    "Two stacks make a queue; moves amortize to O(1) per element.",
		Run:        runQueueFromStacks,
	})

	reg.Register(drill.Drill{
		Name:       "stackqueue/monotonic",
		Topic:      "stack-queue",
		Difficulty: drill.Hard,
		Minutes:    30,
		Summary:    "Next-greater-element and largest histogram rectangle.",
		Run:        runMonotonic,
	})
}

func runBalancedParens(w io.Writer) error {
	for _, s := range []string{"([]{})", "(]", "((("} {
		fmt.Fprintf(w, "%-8q balanced: %v\n", s, stackqueue.BalancedParentheses(s))
	}

	return firstErr(
		check(stackqueue.BalancedParentheses("([]{})"), "([]{}) balances"),
		check(!stackqueue.BalancedParentheses("(]"), "(] mismatches"),
		check(!stackqueue.BalancedParentheses("((("), "((( leaves openers"),
	)
}

func runCircularQueue(w io.Writer) error {
	q := stackqueue.CircularQueueBuilder{}.
		WithCapacity(3).
		Build("DrillQueue")

	for i := 1; i <= 3; i++ {
		if err := q.Enqueue(i); err != nil {
			return err
		}
	}

	if err := check(!q.CanEnqueue(), "queue of 3 should be full"); err != nil {
		return err
	}

	// Dequeue two, enqueue two: wraps around the backing array.
	for i := 0; i < 2; i++ {
		if _, err := q.Dequeue(); err != nil {
			return err
		}
	}
	for i := 4; i <= 5; i++ {
		if err := q.Enqueue(i); err != nil {
			return fmt.Errorf("wrap-around enqueue failed: %w", err)
		}
	}

	front, err := q.Peek()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "after wrapping, front = %v, size = %d\n", front, q.Size())

	return firstErr(
		check(front == 3, "front after wrap: got %v, want 3", front),
		check(q.Size() == 3, "size after wrap: got %d, want 3", q.Size()),
	)
}

func runMinStack(w io.Writer) error {
	s := stackqueue.NewMinStack(8)

	for _, v := range []int{5, 2, 7, 1} {
		if err := s.Push(v); err != nil {
			return err
		}
		min, _ := s.Min()
		fmt.Fprintf(w, "pushed %d, min = %d\n", v, min)
	}

	if _, err := s.Pop(); err != nil {
		return err
	}

	min, err := s.Min()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "after popping 1, min = %d\n", min)

	return check(min == 2, "min after pop: got %d, want 2", min)
}

func runQueueFromStacks(w io.Writer) error {
	q := stackqueue.NewQueueUsingStacks(8)

	for i := 1; i <= 3; i++ {
		if err := q.Enqueue(i); err != nil {
			return err
		}
	}

	first, err := q.Dequeue()
	if err != nil {
		return err
	}

	if err := q.Enqueue(4); err != nil {
		return err
	}

	fmt.Fprintf(w, "dequeued %d first, size now %d\n", first, q.Size())

	order := []int{first}
	for q.Size() > 0 {
		v, err := q.Dequeue()
		if err != nil {
			return err
		}
		order = append(order, v)
	}
	fmt.Fprintf(w, "FIFO order: %v\n", order)

	for i, want := range []int{1, 2, 3, 4} {
		if err := check(order[i] == want,
			"position %d: got %d, want %d", i, order[i], want); err != nil {
			return err
		}
	}

	return nil
}

func runMonotonic(w io.Writer) error {
	next := stackqueue.NextGreaterElements([]int{4, 5, 2, 25})
	fmt.Fprintf(w, "next greater: %v\n", next)

	area := stackqueue.LargestRectangle([]int{2, 1, 5, 6, 2, 3})
	fmt.Fprintf(w, "largest histogram rectangle: %d\n", area)

	return firstErr(
		check(next[0] == 5 && next[2] == 25 && next[3] == -1,
			"next greater: got %v", next),
		check(area == 10, "rectangle: got %d, want 10", area),
	)
}
