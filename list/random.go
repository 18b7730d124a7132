package list

// RandomNode is a list node with an extra pointer to an arbitrary node of
// the same list (or nil).
type RandomNode struct {
	Data   int
	Next   *RandomNode
	Random *RandomNode
}

// CloneRandom deep-copies a list with random pointers in O(n) time and O(1)
// extra space, the interleave-copy-split technique:
//
//	A -> A' -> B -> B' -> ...
//
// Pass 1 interleaves a copy after each original, pass 2 wires the copies'
// random pointers through original.Random.Next, pass 3 separates the lists
// and restores the original.
func CloneRandom(head *RandomNode) *RandomNode {
	if head == nil {
		return nil
	}

	for n := head; n != nil; n = n.Next.Next {
		n.Next = &RandomNode{Data: n.Data, Next: n.Next}
	}

	for n := head; n != nil; n = n.Next.Next {
		if n.Random != nil {
			n.Next.Random = n.Random.Next
		}
	}

	clone := head.Next
	for n := head; n != nil; n = n.Next {
		copied := n.Next
		n.Next = copied.Next

		if copied.Next != nil {
			copied.Next = copied.Next.Next
		}
	}

	return clone
}
