package stackqueue

// Queue is the naive linear FIFO of the corpus: front only moves forward,
// so capacity is consumed even after dequeues. It exists to demonstrate the
// drift problem that CircularQueue fixes.
type Queue[T any] struct {
	items []T
	front int
	rear  int
}

// NewQueue creates a linear queue holding at most capacity elements over
// its lifetime.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		panic("stackqueue: capacity must be positive")
	}

	return &Queue[T]{
		items: make([]T, capacity),
		rear:  -1,
	}
}

// Enqueue appends v at the rear.
func (q *Queue[T]) Enqueue(v T) error {
	if q.rear == len(q.items)-1 {
		return ErrOverflow
	}

	q.rear++
	q.items[q.rear] = v

	return nil
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.front > q.rear {
		return zero, ErrUnderflow
	}

	v := q.items[q.front]
	q.items[q.front] = zero
	q.front++

	return v, nil
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (T, error) {
	var zero T
	if q.front > q.rear {
		return zero, ErrUnderflow
	}

	return q.items[q.front], nil
}

// Size returns the number of queued elements.
func (q *Queue[T]) Size() int { return q.rear - q.front + 1 }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.front > q.rear }
