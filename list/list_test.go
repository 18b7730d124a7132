package list_test

import (
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/drillab/kata/list"
)

var _ = Describe("List", func() {
	It("should build and flatten", func() {
		Expect(list.Slice(list.New(1, 2, 3))).To(Equal([]int{1, 2, 3}))
		Expect(list.Slice(list.New())).To(BeNil())
		Expect(list.Len(list.New(1, 2, 3))).To(Equal(3))
		Expect(list.Len(nil)).To(Equal(0))
	})

	It("should reverse", func() {
		Expect(list.Slice(list.Reverse(list.New(1, 2, 3, 4)))).
			To(Equal([]int{4, 3, 2, 1}))
		Expect(list.Reverse(nil)).To(BeNil())
		Expect(list.Slice(list.Reverse(list.New(7)))).To(Equal([]int{7}))
	})

	It("should find the middle node", func() {
		Expect(list.Middle(list.New(1, 2, 3, 4, 5)).Data).To(Equal(3))
		Expect(list.Middle(list.New(1, 2, 3, 4)).Data).To(Equal(3))
		Expect(list.Middle(list.New(1)).Data).To(Equal(1))
		Expect(list.Middle(nil)).To(BeNil())
	})

	It("should remove the nth node from the end", func() {
		Expect(list.Slice(list.RemoveNthFromEnd(list.New(1, 2, 3, 4, 5), 2))).
			To(Equal([]int{1, 2, 3, 5}))
		Expect(list.Slice(list.RemoveNthFromEnd(list.New(1, 2), 2))).
			To(Equal([]int{2}))
		Expect(list.Slice(list.RemoveNthFromEnd(list.New(1, 2), 3))).
			To(Equal([]int{1, 2}))
		Expect(list.RemoveNthFromEnd(list.New(1), 1)).To(BeNil())
	})

	It("should deduplicate a sorted list", func() {
		Expect(list.Slice(list.DedupSorted(list.New(1, 1, 2, 3, 3, 3)))).
			To(Equal([]int{1, 2, 3}))
		Expect(list.DedupSorted(nil)).To(BeNil())
	})

	It("should detect palindromes and restore the list", func() {
		l := list.New(1, 2, 3, 2, 1)
		Expect(list.IsPalindrome(l)).To(BeTrue())
		Expect(list.Slice(l)).To(Equal([]int{1, 2, 3, 2, 1}),
			"list must be restored after the check")

		l = list.New(1, 2, 2, 1)
		Expect(list.IsPalindrome(l)).To(BeTrue())
		Expect(list.Slice(l)).To(Equal([]int{1, 2, 2, 1}))

		l = list.New(1, 2, 3)
		Expect(list.IsPalindrome(l)).To(BeFalse())
		Expect(list.Slice(l)).To(Equal([]int{1, 2, 3}))

		Expect(list.IsPalindrome(nil)).To(BeTrue())
	})

	It("should find the intersection node", func() {
		shared := list.New(8, 9)
		a := list.New(1, 2, 3)
		b := list.New(4)

		tail(a).Next = shared
		tail(b).Next = shared

		Expect(list.Intersection(a, b)).To(BeIdenticalTo(shared))
		Expect(list.Intersection(list.New(1), list.New(2))).To(BeNil())
	})
})

var _ = Describe("MergeSorted", func() {
	It("should merge interleaved lists", func() {
		got := list.MergeSorted(list.New(1, 3, 5), list.New(2, 4, 6))
		Expect(list.Slice(got)).To(Equal([]int{1, 2, 3, 4, 5, 6}))
	})

	It("should handle empty inputs", func() {
		Expect(list.Slice(list.MergeSorted(nil, list.New(1, 2)))).
			To(Equal([]int{1, 2}))
		Expect(list.Slice(list.MergeSorted(list.New(1, 2), nil))).
			To(Equal([]int{1, 2}))
		Expect(list.MergeSorted(nil, nil)).To(BeNil())
	})

	It("should preserve duplicates and stability", func() {
		a := list.New(1, 2, 2)
		firstTwo := a.Next

		got := list.MergeSorted(a, list.New(2, 3))
		Expect(list.Slice(got)).To(Equal([]int{1, 2, 2, 2, 3}))

		// On ties the node from the first list comes out first.
		Expect(got.Next).To(BeIdenticalTo(firstTwo))
	})
})

var _ = Describe("Loop detection", func() {
	It("should report acyclic lists", func() {
		Expect(list.HasLoop(list.New(1, 2, 3))).To(BeFalse())
		Expect(list.HasLoop(nil)).To(BeFalse())
		Expect(list.FindLoopStart(list.New(1))).To(BeNil())
	})

	It("should find and remove a loop", func() {
		l := list.New(1, 2, 3, 4, 5)
		loopStart := l.Next.Next // node 3
		tail(l).Next = loopStart

		Expect(list.HasLoop(l)).To(BeTrue())
		Expect(list.FindLoopStart(l)).To(BeIdenticalTo(loopStart))

		list.RemoveLoop(l)
		Expect(list.HasLoop(l)).To(BeFalse())
		Expect(list.Slice(l)).To(Equal([]int{1, 2, 3, 4, 5}))
	})

	It("should handle a self-loop at the head", func() {
		l := list.New(1)
		l.Next = l

		Expect(list.FindLoopStart(l)).To(BeIdenticalTo(l))

		list.RemoveLoop(l)
		Expect(list.Slice(l)).To(Equal([]int{1}))
	})
})

var _ = Describe("Sort", func() {
	It("should sort arbitrary lists", func() {
		in := []int{5, 2, 8, 1, 9, 2, 7}
		want := append([]int{}, in...)
		sort.Ints(want)

		Expect(list.Slice(list.Sort(list.New(in...)))).To(Equal(want))
	})

	It("should handle trivial lists", func() {
		Expect(list.Sort(nil)).To(BeNil())
		Expect(list.Slice(list.Sort(list.New(1)))).To(Equal([]int{1}))
		Expect(list.Slice(list.Sort(list.New(2, 1)))).To(Equal([]int{1, 2}))
	})
})

var _ = Describe("CloneRandom", func() {
	It("should deep-copy nodes and random pointers", func() {
		n1 := &list.RandomNode{Data: 1}
		n2 := &list.RandomNode{Data: 2}
		n3 := &list.RandomNode{Data: 3}
		n1.Next, n2.Next = n2, n3
		n1.Random = n3
		n2.Random = n2
		n3.Random = n1

		clone := list.CloneRandom(n1)

		// Original is intact.
		Expect(n1.Next).To(BeIdenticalTo(n2))
		Expect(n2.Next).To(BeIdenticalTo(n3))
		Expect(n3.Next).To(BeNil())
		Expect(n1.Random).To(BeIdenticalTo(n3))

		// Clone mirrors the structure with its own nodes.
		Expect(clone).NotTo(BeIdenticalTo(n1))
		Expect(clone.Data).To(Equal(1))
		Expect(clone.Next.Data).To(Equal(2))
		Expect(clone.Next.Next.Data).To(Equal(3))
		Expect(clone.Next.Next.Next).To(BeNil())

		Expect(clone.Random).To(BeIdenticalTo(clone.Next.Next))
		Expect(clone.Next.Random).To(BeIdenticalTo(clone.Next))
		Expect(clone.Next.Next.Random).To(BeIdenticalTo(clone))
	})

	It("should handle nil random pointers and empty lists", func() {
		Expect(list.CloneRandom(nil)).To(BeNil())

		solo := &list.RandomNode{Data: 9}
		clone := list.CloneRandom(solo)

		Expect(clone).NotTo(BeIdenticalTo(solo))
		Expect(clone.Data).To(Equal(9))
		Expect(clone.Random).To(BeNil())
		Expect(solo.Next).To(BeNil())
	})
})

func tail(n *list.Node) *list.Node {
	for n.Next != nil {
		n = n.Next
	}

	return n
}
