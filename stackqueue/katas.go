package stackqueue

// ReverseString reverses s by pushing every byte and popping them back.
func ReverseString(s string) string {
	stack := NewStack[byte](len(s) + 1)

	for i := 0; i < len(s); i++ {
		_ = stack.Push(s[i])
	}

	out := make([]byte, 0, len(s))
	for !stack.Empty() {
		b, _ := stack.Pop()
		out = append(out, b)
	}

	return string(out)
}

// BalancedParentheses reports whether every (, [, { in s is closed by its
// matching partner in the right order. Bytes other than the six brackets
// are ignored.
func BalancedParentheses(s string) bool {
	pairs := map[byte]byte{')': '(', ']': '[', '}': '{'}
	stack := NewStack[byte](len(s) + 1)

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			_ = stack.Push(c)
		case ')', ']', '}':
			open, err := stack.Pop()
			if err != nil || open != pairs[c] {
				return false
			}
		}
	}

	return stack.Empty()
}

// NextGreaterElements returns, for each element, the first strictly greater
// element to its right, or -1. A monotonic stack of indices gives O(n).
func NextGreaterElements(a []int) []int {
	result := make([]int, len(a))
	stack := NewStack[int](len(a) + 1)

	for i := len(a) - 1; i >= 0; i-- {
		for !stack.Empty() {
			top, _ := stack.Peek()
			if top > a[i] {
				break
			}

			_, _ = stack.Pop()
		}

		if top, err := stack.Peek(); err == nil {
			result[i] = top
		} else {
			result[i] = -1
		}

		_ = stack.Push(a[i])
	}

	return result
}

// LargestRectangle returns the area of the largest rectangle under a
// histogram, using a monotonic stack of bar indices. Each bar is pushed and
// popped once.
func LargestRectangle(heights []int) int {
	stack := NewStack[int](len(heights) + 1)
	best := 0

	for i := 0; i <= len(heights); i++ {
		// A sentinel height of 0 past the end flushes the stack.
		h := 0
		if i < len(heights) {
			h = heights[i]
		}

		for !stack.Empty() {
			topIdx, _ := stack.Peek()
			if heights[topIdx] <= h {
				break
			}

			_, _ = stack.Pop()

			width := i
			if leftIdx, err := stack.Peek(); err == nil {
				width = i - leftIdx - 1
			}

			if area := heights[topIdx] * width; area > best {
				best = area
			}
		}

		_ = stack.Push(i)
	}

	return best
}

// ReverseQueue reverses a circular queue recursively: dequeue, reverse the
// rest, enqueue the element at the back.
func ReverseQueue(q CircularQueue) {
	e, err := q.Dequeue()
	if err != nil {
		return
	}

	ReverseQueue(q)

	_ = q.Enqueue(e)
}
