// Package list implements the singly-linked-list katas. A nil *Node is a
// valid empty list, and every operation relinks the caller's nodes instead
// of allocating copies unless stated otherwise.
package list

// Node is one element of a singly linked list.
type Node struct {
	Data int
	Next *Node
}

// New builds a list from values in order and returns its head.
func New(values ...int) *Node {
	dummy := &Node{}
	tail := dummy

	for _, v := range values {
		tail.Next = &Node{Data: v}
		tail = tail.Next
	}

	return dummy.Next
}

// Slice returns the list's values in order. It panics on a cyclic list.
func Slice(head *Node) []int {
	var out []int
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Data)

		if len(out) > 1<<24 {
			panic("list: cycle detected while flattening")
		}
	}

	return out
}

// Len returns the number of nodes.
func Len(head *Node) int {
	n := 0
	for ; head != nil; head = head.Next {
		n++
	}

	return n
}

// Reverse reverses the list in place and returns the new head.
func Reverse(head *Node) *Node {
	var prev *Node

	for head != nil {
		next := head.Next
		head.Next = prev
		prev = head
		head = next
	}

	return prev
}

// Middle returns the middle node using slow/fast pointers. For even-length
// lists it returns the second of the two middle nodes.
func Middle(head *Node) *Node {
	slow, fast := head, head

	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow
}

// RemoveNthFromEnd removes the n-th node from the end (1-based) in one pass
// with two pointers n apart, returning the new head. An out-of-range n
// leaves the list unchanged.
func RemoveNthFromEnd(head *Node, n int) *Node {
	if n < 1 {
		return head
	}

	dummy := &Node{Next: head}
	ahead := dummy

	for i := 0; i < n; i++ {
		if ahead.Next == nil {
			return head
		}

		ahead = ahead.Next
	}

	behind := dummy
	for ahead.Next != nil {
		ahead = ahead.Next
		behind = behind.Next
	}

	behind.Next = behind.Next.Next

	return dummy.Next
}

// MergeSorted merges two sorted lists into one sorted list, reusing the
// input nodes. The merge is stable: on equal values the node from a is
// taken first.
func MergeSorted(a, b *Node) *Node {
	dummy := &Node{}
	tail := dummy

	for a != nil && b != nil {
		if a.Data <= b.Data {
			tail.Next = a
			a = a.Next
		} else {
			tail.Next = b
			b = b.Next
		}

		tail = tail.Next
	}

	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}

	return dummy.Next
}

// DedupSorted removes consecutive duplicates from a sorted list in place.
func DedupSorted(head *Node) *Node {
	for n := head; n != nil && n.Next != nil; {
		if n.Data == n.Next.Data {
			n.Next = n.Next.Next
		} else {
			n = n.Next
		}
	}

	return head
}

// IsPalindrome reports whether the list reads the same in both directions.
// It reverses the second half, compares, then restores the list.
func IsPalindrome(head *Node) bool {
	if head == nil || head.Next == nil {
		return true
	}

	// Find the node before the second half.
	slow, fast := head, head
	for fast.Next != nil && fast.Next.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	second := Reverse(slow.Next)

	equal := true
	for a, b := head, second; b != nil; a, b = a.Next, b.Next {
		if a.Data != b.Data {
			equal = false
			break
		}
	}

	slow.Next = Reverse(second)

	return equal
}

// Intersection returns the first node shared by both lists, or nil. The
// longer list is advanced by the length difference first so both cursors
// reach the junction together.
func Intersection(a, b *Node) *Node {
	la, lb := Len(a), Len(b)

	for ; la > lb; la-- {
		a = a.Next
	}

	for ; lb > la; lb-- {
		b = b.Next
	}

	for a != b {
		a = a.Next
		b = b.Next
	}

	return a
}

// Sort sorts the list with merge sort: split at the middle, sort halves,
// merge. O(n log n) time, O(log n) stack, no extra nodes.
func Sort(head *Node) *Node {
	if head == nil || head.Next == nil {
		return head
	}

	// Split before the middle.
	slow, fast := head, head
	for fast.Next != nil && fast.Next.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	second := slow.Next
	slow.Next = nil

	return MergeSorted(Sort(head), Sort(second))
}
