package hashmap_test

import (
	"github.com/google/uuid"
	"github.com/scusemua/linked-hashtable/common/utils/hashmap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Key Tests", func() {
	It("Will hash equal strings equally", func() {
		a := hashmap.String("I can do it!")
		b := hashmap.String("I can " + "do it!")

		Expect(a.Equal(b)).To(BeTrue())
		Expect(a.Hash()).To(Equal(b.Hash()))
		Expect(a.Equal("Books are expensive!")).To(BeFalse())
		Expect(a.String()).To(Equal("I can do it!"))
	})

	It("Will hash integers by value", func() {
		Expect(hashmap.Int(42).Hash()).To(Equal(hashmap.Int(42).Hash()))
		Expect(hashmap.Int(42).Equal(42)).To(BeTrue())
		Expect(hashmap.Int(42).Equal(-42)).To(BeFalse())
		Expect(hashmap.Int(-1).Hash()).ToNot(Equal(hashmap.Int(1).Hash()))
	})

	It("Will generate distinct UUID keys that round-trip through a table", func() {
		table := hashmap.Must(hashmap.New[hashmap.UUID, string](100, 0.5))

		ids := make([]hashmap.UUID, 0, 2000)
		for i := 0; i < 2000; i++ {
			id := hashmap.NewUUID()
			ids = append(ids, id)
			table.Put(id, id.String())
		}

		Expect(table.Len()).To(Equal(2000))
		for _, id := range ids {
			val, err := table.Get(id)
			Expect(err).To(BeNil())
			Expect(val).To(Equal(id.String()))

			parsed, err := uuid.Parse(val)
			Expect(err).To(BeNil())
			Expect(hashmap.UUID(parsed).Equal(id)).To(BeTrue())
			Expect(hashmap.UUID(parsed).Hash()).To(Equal(id.Hash()))
		}
	})
})
