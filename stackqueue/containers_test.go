package stackqueue_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/drillab/kata/hooking"
	"github.com/drillab/kata/stackqueue"
)

var _ = Describe("Stack", func() {
	var s *stackqueue.Stack[int]

	BeforeEach(func() {
		s = stackqueue.NewStack[int](2)
	})

	It("should push and pop in LIFO order", func() {
		Expect(s.Push(1)).To(Succeed())
		Expect(s.Push(2)).To(Succeed())
		Expect(s.Size()).To(Equal(2))
		Expect(s.Full()).To(BeTrue())

		Expect(s.Pop()).To(Equal(2))
		Expect(s.Pop()).To(Equal(1))
		Expect(s.Empty()).To(BeTrue())
	})

	It("should report overflow and underflow", func() {
		Expect(s.Push(1)).To(Succeed())
		Expect(s.Push(2)).To(Succeed())
		Expect(s.Push(3)).To(MatchError(stackqueue.ErrOverflow))

		_, _ = s.Pop()
		_, _ = s.Pop()
		_, err := s.Pop()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))

		_, err = s.Peek()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))
	})

	It("should reject a non-positive capacity", func() {
		Expect(func() { stackqueue.NewStack[int](0) }).To(Panic())
	})
})

var _ = Describe("Queue", func() {
	It("should dequeue in FIFO order", func() {
		q := stackqueue.NewQueue[string](3)

		Expect(q.Enqueue("a")).To(Succeed())
		Expect(q.Enqueue("b")).To(Succeed())
		Expect(q.Front()).To(Equal("a"))
		Expect(q.Dequeue()).To(Equal("a"))
		Expect(q.Dequeue()).To(Equal("b"))
		Expect(q.Empty()).To(BeTrue())
	})

	It("should drift: freed front slots are not reused", func() {
		q := stackqueue.NewQueue[int](2)

		Expect(q.Enqueue(1)).To(Succeed())
		Expect(q.Enqueue(2)).To(Succeed())
		Expect(q.Dequeue()).To(Equal(1))

		// One slot is free, but the linear queue cannot reach it.
		Expect(q.Enqueue(3)).To(MatchError(stackqueue.ErrOverflow))
	})
})

var _ = Describe("CircularQueue", func() {
	var q stackqueue.CircularQueue

	BeforeEach(func() {
		q = stackqueue.CircularQueueBuilder{}.
			WithCapacity(3).
			Build("CQ")
	})

	It("should carry its name", func() {
		Expect(q.Name()).To(Equal("CQ"))
	})

	It("should wrap around", func() {
		Expect(q.Enqueue(1)).To(Succeed())
		Expect(q.Enqueue(2)).To(Succeed())
		Expect(q.Enqueue(3)).To(Succeed())
		Expect(q.CanEnqueue()).To(BeFalse())
		Expect(q.Enqueue(4)).To(MatchError(stackqueue.ErrOverflow))

		Expect(q.Dequeue()).To(Equal(1))
		Expect(q.Enqueue(4)).To(Succeed(),
			"the freed slot is reachable again")

		Expect(q.Dequeue()).To(Equal(2))
		Expect(q.Dequeue()).To(Equal(3))
		Expect(q.Dequeue()).To(Equal(4))

		_, err := q.Dequeue()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))
	})

	It("should peek without removing", func() {
		Expect(q.Enqueue(9)).To(Succeed())
		Expect(q.Peek()).To(Equal(9))
		Expect(q.Size()).To(Equal(1))
	})

	It("should clear", func() {
		Expect(q.Enqueue(1)).To(Succeed())
		q.Clear()

		Expect(q.Size()).To(Equal(0))
		_, err := q.Peek()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))
	})

	It("should invoke hooks on enqueue and dequeue", func() {
		var seen []hooking.Ctx
		q.AcceptHook(func(ctx hooking.Ctx) {
			seen = append(seen, ctx)
		})
		Expect(q.NumHooks()).To(Equal(1))

		Expect(q.Enqueue(42)).To(Succeed())
		_, _ = q.Dequeue()

		Expect(seen).To(HaveLen(2))
		Expect(seen[0].Pos).To(BeIdenticalTo(stackqueue.HookPosEnqueue))
		Expect(seen[0].Item).To(Equal(42))
		Expect(seen[1].Pos).To(BeIdenticalTo(stackqueue.HookPosDequeue))
		Expect(seen[1].Item).To(Equal(42))
	})
})

var _ = Describe("MinStack", func() {
	It("should track the minimum through pushes and pops", func() {
		s := stackqueue.NewMinStack(8)

		Expect(s.Push(5)).To(Succeed())
		Expect(s.Min()).To(Equal(5))

		Expect(s.Push(3)).To(Succeed())
		Expect(s.Push(7)).To(Succeed())
		Expect(s.Min()).To(Equal(3))

		Expect(s.Pop()).To(Equal(7))
		Expect(s.Min()).To(Equal(3))

		Expect(s.Pop()).To(Equal(3))
		Expect(s.Min()).To(Equal(5))
	})

	It("should underflow on an empty stack", func() {
		s := stackqueue.NewMinStack(2)

		_, err := s.Min()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))
	})
})

var _ = Describe("TwoStacks", func() {
	It("should share capacity between both ends", func() {
		t := stackqueue.NewTwoStacks(4)

		Expect(t.Push1(1)).To(Succeed())
		Expect(t.Push1(2)).To(Succeed())
		Expect(t.Push2(9)).To(Succeed())
		Expect(t.Push2(8)).To(Succeed())

		Expect(t.Push1(3)).To(MatchError(stackqueue.ErrOverflow))
		Expect(t.Push2(7)).To(MatchError(stackqueue.ErrOverflow))

		Expect(t.Pop1()).To(Equal(2))
		Expect(t.Pop2()).To(Equal(8))
		Expect(t.Push2(7)).To(Succeed(),
			"space freed by one stack is usable by the other")
	})

	It("should underflow independently", func() {
		t := stackqueue.NewTwoStacks(2)

		_, err := t.Pop1()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))

		Expect(t.Push1(1)).To(Succeed())
		_, err = t.Pop2()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))
	})
})

var _ = Describe("QueueUsingStacks", func() {
	It("should behave as a FIFO", func() {
		q := stackqueue.NewQueueUsingStacks(4)

		Expect(q.Enqueue(1)).To(Succeed())
		Expect(q.Enqueue(2)).To(Succeed())
		Expect(q.Dequeue()).To(Equal(1))

		Expect(q.Enqueue(3)).To(Succeed())
		Expect(q.Dequeue()).To(Equal(2))
		Expect(q.Dequeue()).To(Equal(3))

		_, err := q.Dequeue()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))
	})

	It("should respect total capacity", func() {
		q := stackqueue.NewQueueUsingStacks(2)

		Expect(q.Enqueue(1)).To(Succeed())
		Expect(q.Dequeue()).To(Equal(1))
		Expect(q.Enqueue(2)).To(Succeed())
		Expect(q.Enqueue(3)).To(Succeed())
		Expect(q.Enqueue(4)).To(MatchError(stackqueue.ErrOverflow))
	})
})

var _ = Describe("StackUsingQueues", func() {
	It("should behave as a LIFO", func() {
		s := stackqueue.NewStackUsingQueues(4)

		Expect(s.Push(1)).To(Succeed())
		Expect(s.Push(2)).To(Succeed())
		Expect(s.Push(3)).To(Succeed())

		Expect(s.Top()).To(Equal(3))
		Expect(s.Pop()).To(Equal(3))
		Expect(s.Pop()).To(Equal(2))

		Expect(s.Push(4)).To(Succeed())
		Expect(s.Pop()).To(Equal(4))
		Expect(s.Pop()).To(Equal(1))

		_, err := s.Pop()
		Expect(err).To(MatchError(stackqueue.ErrUnderflow))
	})
})
