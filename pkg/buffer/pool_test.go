package buffer_test

import (
	"github.com/pgsqlite/pgsqlite/pkg/buffer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pool", func() {
	It("allocates a buffer with at least the requested capacity", func() {
		p := buffer.NewPool(4, 1<<16, nil)
		buf := p.Acquire(100)
		Expect(cap(buf)).To(BeNumerically(">=", 100))
		Expect(buf).To(HaveLen(0))
	})

	It("reuses a released buffer instead of allocating a new one", func() {
		p := buffer.NewPool(4, 1<<16, nil)
		first := p.Acquire(100)
		first = append(first, []byte("hello")...)
		p.Release(first)

		second := p.Acquire(100)
		Expect(cap(second)).To(Equal(cap(first)))
	})

	It("discards a buffer larger than max capacity instead of pooling it", func() {
		p := buffer.NewPool(4, 128, nil)
		oversized := make([]byte, 0, 1024)
		p.Release(oversized)
		Expect(p.Discards()).To(Equal(int64(1)))
	})

	It("discards once a capacity class's free-list is full", func() {
		p := buffer.NewPool(1, 1<<16, nil)
		p.Release(make([]byte, 0, 64))
		p.Release(make([]byte, 0, 64))
		Expect(p.Discards()).To(Equal(int64(1)))
	})
})

var _ = Describe("Monitor", func() {
	It("reports zero bytes in use before any allocation", func() {
		m := buffer.NewMonitor(1024)
		Expect(m.BytesInUse()).To(Equal(int64(0)))
	})

	It("tracks bytes in use as buffers are acquired and stay in the pool", func() {
		m := buffer.NewMonitor(1 << 20)
		p := buffer.NewPool(4, 1<<16, m)
		buf := p.Acquire(100)
		Expect(m.BytesInUse()).To(BeNumerically(">", 0))
		p.Release(buf)
		Expect(m.BytesInUse()).To(BeNumerically(">", 0))
	})

	It("invokes registered cleanup callbacks once the high watermark is crossed", func() {
		m := buffer.NewMonitor(100)
		called := false
		m.RegisterCleanup(func() { called = true })

		p := buffer.NewPool(4, 1<<16, m)
		p.Acquire(200)

		Expect(called).To(BeTrue())
	})
})
