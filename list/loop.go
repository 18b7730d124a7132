package list

// HasLoop reports whether the list contains a cycle, using Floyd's
// tortoise-and-hare detection.
func HasLoop(head *Node) bool {
	slow, fast := head, head

	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next

		if slow == fast {
			return true
		}
	}

	return false
}

// FindLoopStart returns the first node of the cycle, or nil when the list
// is acyclic. After the pointers meet, restarting one from the head and
// advancing both one step at a time meets exactly at the cycle entrance.
func FindLoopStart(head *Node) *Node {
	slow, fast := head, head

	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next

		if slow == fast {
			slow = head
			for slow != fast {
				slow = slow.Next
				fast = fast.Next
			}

			return slow
		}
	}

	return nil
}

// RemoveLoop breaks the cycle, if any, by unlinking the node that points
// back at the loop start.
func RemoveLoop(head *Node) {
	start := FindLoopStart(head)
	if start == nil {
		return
	}

	n := start
	for n.Next != start {
		n = n.Next
	}

	n.Next = nil
}
