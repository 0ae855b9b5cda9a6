package queue_test

import (
	"github.com/scusemua/linked-hashtable/common/queue"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fifo Tests", func() {
	It("Will report nothing to dequeue from an empty queue", func() {
		q := queue.NewFifo[string](0)
		Expect(q.Len()).To(Equal(0))

		val, ok := q.Peek()
		Expect(ok).To(BeFalse())
		Expect(val).To(Equal(""))

		val, ok = q.Dequeue()
		Expect(ok).To(BeFalse())
		Expect(val).To(Equal(""))
	})

	It("Will tolerate a negative initial size", func() {
		q := queue.NewFifo[int](-5)
		q.Enqueue(1)
		Expect(q.Len()).To(Equal(1))
	})

	It("Will dequeue elements in the order they were enqueued", func() {
		q := queue.NewFifo[int](1)
		for i := 0; i < 10; i++ {
			q.Enqueue(i)
		}
		Expect(q.Len()).To(Equal(10))

		for i := 0; i < 10; i++ {
			val, ok := q.Peek()
			Expect(ok).To(BeTrue())
			Expect(val).To(Equal(i))

			val, ok = q.Dequeue()
			Expect(ok).To(BeTrue())
			Expect(val).To(Equal(i))
			Expect(q.Len()).To(Equal(9 - i))
		}
	})

	It("Will handle enqueues interleaved with dequeues", func() {
		q := queue.NewFifo[string](2)
		q.Enqueue("a")
		q.Enqueue("b")

		val, _ := q.Dequeue()
		Expect(val).To(Equal("a"))

		q.Enqueue("c")
		Expect(q.Len()).To(Equal(2))

		val, _ = q.Dequeue()
		Expect(val).To(Equal("b"))
		val, _ = q.Dequeue()
		Expect(val).To(Equal("c"))

		_, ok := q.Dequeue()
		Expect(ok).To(BeFalse())
	})
})
