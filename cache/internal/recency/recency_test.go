package recency

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("List", func() {
	var l *List

	BeforeEach(func() {
		l = New(4)
	})

	It("should start in index order", func() {
		Expect(l.Order()).To(Equal([]int{0, 1, 2, 3}))
		Expect(l.Oldest()).To(Equal(0))
		Expect(l.Len()).To(Equal(4))
	})

	It("should not change the order when touching the newest index", func() {
		l.Touch(3)

		Expect(l.Order()).To(Equal([]int{0, 1, 2, 3}))
	})

	It("should rotate when touching the oldest index", func() {
		l.Touch(0)

		Expect(l.Order()).To(Equal([]int{1, 2, 3, 0}))
		Expect(l.Oldest()).To(Equal(1))
	})

	It("should move a middle index to the newest end", func() {
		l.Touch(2)

		Expect(l.Order()).To(Equal([]int{0, 1, 3, 2}))
	})

	It("should keep a permutation under repeated touches", func() {
		for _, i := range []int{2, 0, 3, 3, 1, 0, 2} {
			l.Touch(i)
		}

		Expect(l.Order()).To(ConsistOf(0, 1, 2, 3))
		Expect(l.Order()).To(Equal([]int{3, 1, 0, 2}))
	})

	It("should not query the order when reading the oldest index", func() {
		l.Touch(1)
		before := l.Order()

		l.Oldest()

		Expect(l.Order()).To(Equal(before))
	})

	It("should support a single-entry list", func() {
		single := New(1)

		single.Touch(0)

		Expect(single.Oldest()).To(Equal(0))
		Expect(single.Order()).To(Equal([]int{0}))
	})

	It("should panic on an empty list", func() {
		Expect(func() { New(0) }).To(Panic())
	})
})
