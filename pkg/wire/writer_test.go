package wire_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jackc/pgx/v5/pgproto3"
	"github.com/pgsqlite/pgsqlite/pkg/buffer"
	"github.com/pgsqlite/pgsqlite/pkg/wire"
)

var _ = Describe("DirectWriter", func() {
	It("encodes every message into a single write", func() {
		var out bytes.Buffer
		pool := buffer.NewPool(4, 65536, nil)
		dw := wire.NewDirectWriter(&out, pool)

		err := dw.SendAll(
			&pgproto3.CommandComplete{CommandTag: []byte("SELECT 1")},
			&pgproto3.ReadyForQuery{TxStatus: 'I'},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Len()).To(BeNumerically(">", 0))
	})
})

var _ = Describe("BatchingWriter", func() {
	It("does not write until Flush is called for ordinary messages", func() {
		var out bytes.Buffer
		pool := buffer.NewPool(4, 65536, nil)
		bw := wire.NewBatchingWriter(&out, pool)

		Expect(bw.Send(&pgproto3.ParameterDescription{})).To(Succeed())
		Expect(bw.Send(&pgproto3.NoData{})).To(Succeed())
		Expect(out.Len()).To(Equal(0))

		Expect(bw.Flush()).To(Succeed())
		Expect(out.Len()).To(BeNumerically(">", 0))
	})

	It("flushes immediately on ReadyForQuery", func() {
		var out bytes.Buffer
		pool := buffer.NewPool(4, 65536, nil)
		bw := wire.NewBatchingWriter(&out, pool)

		Expect(bw.Send(&pgproto3.CommandComplete{CommandTag: []byte("SELECT 0")})).To(Succeed())
		Expect(out.Len()).To(Equal(0))

		Expect(bw.Send(&pgproto3.ReadyForQuery{TxStatus: 'I'})).To(Succeed())
		Expect(out.Len()).To(BeNumerically(">", 0))
	})

	It("flushes immediately on ErrorResponse", func() {
		var out bytes.Buffer
		pool := buffer.NewPool(4, 65536, nil)
		bw := wire.NewBatchingWriter(&out, pool)

		Expect(bw.Send(&pgproto3.ErrorResponse{Message: "boom"})).To(Succeed())
		Expect(out.Len()).To(BeNumerically(">", 0))
	})

	It("flushes once the message count threshold is crossed", func() {
		var out bytes.Buffer
		pool := buffer.NewPool(4, 65536, nil)
		bw := wire.NewBatchingWriter(&out, pool)

		for i := 0; i < 100; i++ {
			Expect(bw.Send(&pgproto3.NoData{})).To(Succeed())
		}
		Expect(out.Len()).To(BeNumerically(">", 0))
	})

	It("Flush is a no-op when nothing is pending", func() {
		var out bytes.Buffer
		pool := buffer.NewPool(4, 65536, nil)
		bw := wire.NewBatchingWriter(&out, pool)

		Expect(bw.Flush()).To(Succeed())
		Expect(out.Len()).To(Equal(0))
	})
})
