package cache_test

import (
	"time"

	"github.com/pgsqlite/pgsqlite/pkg/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LRU", func() {
	It("returns a miss for an absent key", func() {
		c := cache.NewLRU("t1", 2, 0)
		_, ok := c.Get(1)
		Expect(ok).To(BeFalse())
	})

	It("returns a put value on Get", func() {
		c := cache.NewLRU("t2", 2, 0)
		c.Put(1, "one")
		v, ok := c.Get(1)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("one"))
	})

	It("evicts the least recently used entry once over capacity", func() {
		c := cache.NewLRU("t3", 2, 0)
		c.Put(1, "one")
		c.Put(2, "two")
		c.Put(3, "three")

		_, ok := c.Get(1)
		Expect(ok).To(BeFalse())

		v, ok := c.Get(2)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("two"))
	})

	It("refreshes recency on access", func() {
		c := cache.NewLRU("t4", 2, 0)
		c.Put(1, "one")
		c.Put(2, "two")
		c.Get(1) // touch 1, making 2 the LRU entry
		c.Put(3, "three")

		_, ok := c.Get(2)
		Expect(ok).To(BeFalse())

		v, ok := c.Get(1)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("one"))
	})

	It("expires entries once their TTL elapses", func() {
		c := cache.NewLRU("t5", 4, time.Millisecond)
		c.Put(1, "one")
		time.Sleep(5 * time.Millisecond)

		_, ok := c.Get(1)
		Expect(ok).To(BeFalse())
	})

	It("clears every entry on Invalidate", func() {
		c := cache.NewLRU("t6", 4, 0)
		c.Put(1, "one")
		c.Put(2, "two")
		c.Invalidate()
		Expect(c.Len()).To(Equal(0))
	})
})
