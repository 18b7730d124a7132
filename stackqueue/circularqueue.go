package stackqueue

import "github.com/drillab/kata/hooking"

// HookPosEnqueue marks when an element enters a circular queue.
var HookPosEnqueue = &hooking.Pos{Name: "CircularQueue Enqueue"}

// HookPosDequeue marks when an element leaves a circular queue.
var HookPosDequeue = &hooking.Pos{Name: "CircularQueue Dequeue"}

// A CircularQueue is a fixed-capacity FIFO with O(1) wraparound, the fix
// for the linear Queue's capacity drift. Full and empty are disambiguated
// by an element count rather than by wasting a slot.
type CircularQueue interface {
	hooking.Hookable

	Name() string
	CanEnqueue() bool
	Enqueue(e any) error
	Dequeue() (any, error)
	Peek() (any, error)
	Capacity() int
	Size() int
	Clear()
}

// CircularQueueBuilder builds a CircularQueue.
type CircularQueueBuilder struct {
	capacity int
}

// WithCapacity sets the number of slots.
func (b CircularQueueBuilder) WithCapacity(capacity int) CircularQueueBuilder {
	b.capacity = capacity
	return b
}

// Build builds a new CircularQueue.
func (b CircularQueueBuilder) Build(name string) CircularQueue {
	if b.capacity <= 0 {
		panic("stackqueue: capacity must be positive")
	}

	return &circularQueueImpl{
		name:  name,
		items: make([]any, b.capacity),
	}
}

type circularQueueImpl struct {
	hooking.Base

	name  string
	items []any
	front int
	count int
}

func (q *circularQueueImpl) Name() string { return q.name }

func (q *circularQueueImpl) CanEnqueue() bool {
	return q.count < len(q.items)
}

func (q *circularQueueImpl) Enqueue(e any) error {
	if q.count == len(q.items) {
		return ErrOverflow
	}

	rear := (q.front + q.count) % len(q.items)
	q.items[rear] = e
	q.count++

	q.Invoke(hooking.Ctx{
		Domain: q,
		Pos:    HookPosEnqueue,
		Item:   e,
	})

	return nil
}

func (q *circularQueueImpl) Dequeue() (any, error) {
	if q.count == 0 {
		return nil, ErrUnderflow
	}

	e := q.items[q.front]
	q.items[q.front] = nil
	q.front = (q.front + 1) % len(q.items)
	q.count--

	q.Invoke(hooking.Ctx{
		Domain: q,
		Pos:    HookPosDequeue,
		Item:   e,
	})

	return e, nil
}

func (q *circularQueueImpl) Peek() (any, error) {
	if q.count == 0 {
		return nil, ErrUnderflow
	}

	return q.items[q.front], nil
}

func (q *circularQueueImpl) Capacity() int { return len(q.items) }

func (q *circularQueueImpl) Size() int { return q.count }

func (q *circularQueueImpl) Clear() {
	for i := range q.items {
		q.items[i] = nil
	}

	q.front = 0
	q.count = 0
}
