package stackqueue

// MinStack is a stack of ints that answers Min in O(1) by shadowing every
// push with the running minimum on an auxiliary stack.
type MinStack struct {
	values *Stack[int]
	mins   *Stack[int]
}

// NewMinStack creates a MinStack with the given capacity.
func NewMinStack(capacity int) *MinStack {
	return &MinStack{
		values: NewStack[int](capacity),
		mins:   NewStack[int](capacity),
	}
}

// Push places v on the stack.
func (s *MinStack) Push(v int) error {
	if err := s.values.Push(v); err != nil {
		return err
	}

	min := v
	if top, err := s.mins.Peek(); err == nil && top < v {
		min = top
	}

	// Cannot fail: mins mirrors values.
	_ = s.mins.Push(min)

	return nil
}

// Pop removes and returns the top element.
func (s *MinStack) Pop() (int, error) {
	v, err := s.values.Pop()
	if err != nil {
		return 0, err
	}

	_, _ = s.mins.Pop()

	return v, nil
}

// Min returns the smallest element currently on the stack.
func (s *MinStack) Min() (int, error) {
	return s.mins.Peek()
}

// Size returns the number of elements.
func (s *MinStack) Size() int { return s.values.Size() }

// TwoStacks packs two stacks into one array, growing toward each other so
// neither overflows until the array is truly full.
type TwoStacks struct {
	items []int
	top1  int
	top2  int
}

// NewTwoStacks creates the shared array with the given total capacity.
func NewTwoStacks(capacity int) *TwoStacks {
	if capacity <= 0 {
		panic("stackqueue: capacity must be positive")
	}

	return &TwoStacks{
		items: make([]int, capacity),
		top1:  -1,
		top2:  capacity,
	}
}

// Push1 pushes onto the stack growing from the left end.
func (t *TwoStacks) Push1(v int) error {
	if t.top1+1 == t.top2 {
		return ErrOverflow
	}

	t.top1++
	t.items[t.top1] = v

	return nil
}

// Push2 pushes onto the stack growing from the right end.
func (t *TwoStacks) Push2(v int) error {
	if t.top1+1 == t.top2 {
		return ErrOverflow
	}

	t.top2--
	t.items[t.top2] = v

	return nil
}

// Pop1 pops from the left stack.
func (t *TwoStacks) Pop1() (int, error) {
	if t.top1 < 0 {
		return 0, ErrUnderflow
	}

	v := t.items[t.top1]
	t.top1--

	return v, nil
}

// Pop2 pops from the right stack.
func (t *TwoStacks) Pop2() (int, error) {
	if t.top2 == len(t.items) {
		return 0, ErrUnderflow
	}

	v := t.items[t.top2]
	t.top2++

	return v, nil
}

// QueueUsingStacks is a FIFO over two LIFOs. Enqueues land on the in-stack;
// dequeues drain the out-stack, refilling it by reversing the in-stack when
// it runs dry. Each element moves at most twice, so dequeue is amortized
// O(1).
type QueueUsingStacks struct {
	in  *Stack[int]
	out *Stack[int]
}

// NewQueueUsingStacks creates the queue with the given per-stack capacity.
func NewQueueUsingStacks(capacity int) *QueueUsingStacks {
	return &QueueUsingStacks{
		in:  NewStack[int](capacity),
		out: NewStack[int](capacity),
	}
}

// Enqueue appends v at the rear.
func (q *QueueUsingStacks) Enqueue(v int) error {
	if q.in.Size()+q.out.Size() == q.in.Capacity() {
		return ErrOverflow
	}

	return q.in.Push(v)
}

// Dequeue removes and returns the front element.
func (q *QueueUsingStacks) Dequeue() (int, error) {
	if q.out.Empty() {
		for !q.in.Empty() {
			v, _ := q.in.Pop()
			_ = q.out.Push(v)
		}
	}

	return q.out.Pop()
}

// Size returns the number of queued elements.
func (q *QueueUsingStacks) Size() int {
	return q.in.Size() + q.out.Size()
}

// StackUsingQueues is a LIFO over a single FIFO: each push rotates the
// queue so the newest element sits at the front. Push is O(n), pop O(1).
type StackUsingQueues struct {
	q *Queue[int]
}

// NewStackUsingQueues creates the stack with the given capacity.
func NewStackUsingQueues(capacity int) *StackUsingQueues {
	return &StackUsingQueues{q: NewQueue[int](capacity)}
}

// Push places v on top of the stack.
func (s *StackUsingQueues) Push(v int) error {
	n := s.q.Size()

	s.compact()
	if err := s.q.Enqueue(v); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		front, _ := s.q.Dequeue()
		s.compact()
		_ = s.q.Enqueue(front)
	}

	return nil
}

// Pop removes and returns the top element.
func (s *StackUsingQueues) Pop() (int, error) {
	return s.q.Dequeue()
}

// Top returns the top element without removing it.
func (s *StackUsingQueues) Top() (int, error) {
	return s.q.Front()
}

// Size returns the number of elements.
func (s *StackUsingQueues) Size() int { return s.q.Size() }

// compact slides queued elements back to the start of the backing array so
// that the linear queue's consumed front slots can be reused.
func (s *StackUsingQueues) compact() {
	if s.q.front == 0 {
		return
	}

	n := s.q.Size()
	for i := 0; i < n; i++ {
		s.q.items[i] = s.q.items[s.q.front+i]
	}

	s.q.front = 0
	s.q.rear = n - 1
}
