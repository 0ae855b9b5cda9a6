package configuration_test

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/scusemua/linked-hashtable/common/configuration"
	"github.com/scusemua/linked-hashtable/common/utils/hashmap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TableOptions Tests", func() {
	It("Will default to the hashmap defaults", func() {
		opts := configuration.DefaultTableOptions()
		Expect(opts.Capacity).To(Equal(hashmap.DefaultCapacity))
		Expect(opts.LoadThreshold).To(Equal(hashmap.DefaultLoadThreshold))
		Expect(opts.Validate()).To(Succeed())
	})

	It("Will reject invalid options", func() {
		opts := configuration.TableOptions{Capacity: 0, LoadThreshold: 0.5}
		Expect(errors.Is(opts.Validate(), hashmap.ErrInvalidConfiguration)).To(BeTrue())

		opts = configuration.TableOptions{Capacity: 10, LoadThreshold: 1.5}
		Expect(errors.Is(opts.Validate(), hashmap.ErrInvalidConfiguration)).To(BeTrue())
	})

	It("Will render as JSON", func() {
		opts := configuration.TableOptions{Capacity: 4, LoadThreshold: 0.5}
		Expect(opts.String()).To(Equal(`{"capacity":4,"load-threshold":0.5}`))
		Expect(opts.PrettyString(2)).To(ContainSubstring(`  "capacity": 4`))

		var decoded configuration.TableOptions
		Expect(json.Unmarshal([]byte(opts.String()), &decoded)).To(Succeed())
		Expect(decoded).To(Equal(opts))
	})

	It("Will clone independently", func() {
		opts := configuration.TableOptions{Capacity: 4, LoadThreshold: 0.5}
		clone := opts.Clone()
		clone.Capacity = 8

		Expect(opts.Capacity).To(Equal(4))
		Expect(clone.Capacity).To(Equal(8))
	})
})
