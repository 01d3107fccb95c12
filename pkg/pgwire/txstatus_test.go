package pgwire

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pgsqlite/pgsqlite/pkg/util/command"
)

var errBoom = errors.New("boom")

var _ = Describe("session transaction status", func() {
	It("reports Idle by default", func() {
		conn := &ClientConn{txStatus: txIdle}
		Expect(conn.readyForQuery().TxStatus).To(Equal(txIdle))
	})

	It("moves to InTransaction on a successful BEGIN", func() {
		conn := &ClientConn{txStatus: txIdle}
		conn.noteTxOutcome(command.BEGIN, nil)
		Expect(conn.txStatus).To(Equal(txActive))
	})

	It("leaves status alone on a failed BEGIN (already active)", func() {
		conn := &ClientConn{txStatus: txActive}
		conn.noteTxOutcome(command.BEGIN, errBoom)
		Expect(conn.txStatus).To(Equal(txActive))
	})

	It("moves back to Idle on a successful COMMIT", func() {
		conn := &ClientConn{txStatus: txActive}
		conn.noteTxOutcome(command.COMMIT, nil)
		Expect(conn.txStatus).To(Equal(txIdle))
	})

	It("moves back to Idle on a successful ROLLBACK from Failed", func() {
		conn := &ClientConn{txStatus: txFailed}
		conn.noteTxOutcome(command.ROLLBACK, nil)
		Expect(conn.txStatus).To(Equal(txIdle))
	})

	It("moves to Failed when a statement errors while InTransaction", func() {
		conn := &ClientConn{txStatus: txActive}
		conn.noteTxOutcome(command.SELECT, errBoom)
		Expect(conn.txStatus).To(Equal(txFailed))
	})

	It("leaves Idle alone when an autocommit statement errors", func() {
		conn := &ClientConn{txStatus: txIdle}
		conn.noteTxOutcome(command.SELECT, errBoom)
		Expect(conn.txStatus).To(Equal(txIdle))
	})

	It("stays Failed until a ROLLBACK arrives, even across a failed COMMIT", func() {
		conn := &ClientConn{txStatus: txFailed}
		conn.noteTxOutcome(command.COMMIT, errBoom)
		Expect(conn.txStatus).To(Equal(txFailed))
	})
})
