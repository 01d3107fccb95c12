package executor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
	"github.com/pgsqlite/pgsqlite/pkg/executor"
	"github.com/pgsqlite/pgsqlite/pkg/util/command"
)

var _ = Describe("Classify", func() {
	It("classifies DDL regardless of command type", func() {
		class := executor.Classify(command.UNKNOWN, "CREATE TABLE accounts (id INTEGER)")
		Expect(class).To(Equal(executor.ClassDDL))
	})

	It("classifies transaction control commands", func() {
		Expect(executor.Classify(command.BEGIN, "BEGIN")).To(Equal(executor.ClassTxControl))
		Expect(executor.Classify(command.COMMIT, "COMMIT")).To(Equal(executor.ClassTxControl))
		Expect(executor.Classify(command.ROLLBACK, "ROLLBACK")).To(Equal(executor.ClassTxControl))
	})

	It("classifies catalog queries by pg_catalog reference", func() {
		class := executor.Classify(command.SELECT, "SELECT * FROM pg_catalog.pg_type")
		Expect(class).To(Equal(executor.ClassCatalog))
	})

	It("classifies a plain single-table select as simple", func() {
		class := executor.Classify(command.SELECT, "SELECT id, name FROM accounts WHERE id = $1")
		Expect(class).To(Equal(executor.ClassSimpleSelect))
	})

	It("classifies a joined select as complex", func() {
		class := executor.Classify(command.SELECT, "SELECT a.id FROM accounts a JOIN ledger l ON l.account_id = a.id")
		Expect(class).To(Equal(executor.ClassComplex))
	})

	It("classifies a select with a subquery as complex", func() {
		class := executor.Classify(command.SELECT, "SELECT id FROM accounts WHERE id IN (SELECT account_id FROM ledger)")
		Expect(class).To(Equal(executor.ClassComplex))
	})

	It("classifies a select with GROUP BY as complex", func() {
		class := executor.Classify(command.SELECT, "SELECT account_id, count(*) FROM ledger GROUP BY account_id")
		Expect(class).To(Equal(executor.ClassComplex))
	})

	It("classifies a plain update as simple DML", func() {
		class := executor.Classify(command.UPDATE, "UPDATE accounts SET balance = $1 WHERE id = $2")
		Expect(class).To(Equal(executor.ClassSimpleDML))
	})

	It("classifies an update with RETURNING as complex", func() {
		class := executor.Classify(command.UPDATE, "UPDATE accounts SET balance = $1 WHERE id = $2 RETURNING balance")
		Expect(class).To(Equal(executor.ClassComplex))
	})

	It("classifies a plain insert as simple DML", func() {
		class := executor.Classify(command.INSERT, "INSERT INTO accounts (id, balance) VALUES ($1, $2)")
		Expect(class).To(Equal(executor.ClassSimpleDML))
	})
})

var _ = Describe("FastPathEligible", func() {
	It("is eligible for a simple select with no numeric columns recorded", func() {
		store := catalog.NewStore()
		ok := executor.FastPathEligible(executor.ClassSimpleSelect, "SELECT id FROM accounts WHERE id = $1", store)
		Expect(ok).To(BeTrue())
	})

	It("is ineligible for a complex class", func() {
		store := catalog.NewStore()
		ok := executor.FastPathEligible(executor.ClassComplex, "SELECT id FROM accounts a JOIN ledger l ON 1=1", store)
		Expect(ok).To(BeFalse())
	})

	It("is ineligible when the statement has a RETURNING clause", func() {
		store := catalog.NewStore()
		ok := executor.FastPathEligible(executor.ClassSimpleDML, "UPDATE accounts SET balance = 1 WHERE id = 1 RETURNING id", store)
		Expect(ok).To(BeFalse())
	})

	It("is ineligible when the sole table has a recorded NUMERIC column", func() {
		store := catalog.NewStore()
		store.RecordNumeric("accounts", "balance", 10, 2)
		ok := executor.FastPathEligible(executor.ClassSimpleDML, "UPDATE accounts SET balance = 1 WHERE id = 1", store)
		Expect(ok).To(BeFalse())
	})

	It("stays eligible when a different table has a recorded NUMERIC column", func() {
		store := catalog.NewStore()
		store.RecordNumeric("ledger", "amount", 10, 2)
		ok := executor.FastPathEligible(executor.ClassSimpleDML, "UPDATE accounts SET balance = 1 WHERE id = 1", store)
		Expect(ok).To(BeTrue())
	})
})
