package translator_test

import (
	"github.com/pgsqlite/pgsqlite/pkg/catalog"
	"github.com/pgsqlite/pgsqlite/pkg/translator"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Translate", func() {
	var store *catalog.Store

	BeforeEach(func() {
		store = catalog.NewStore()
	})

	It("rejects a comment-only query", func() {
		_, _, err := translator.Translate("-- just a comment", store)
		Expect(err).To(MatchError(translator.ErrEmptyQuery))
	})

	It("strips line and block comments", func() {
		out, _, err := translator.Translate("SELECT 1 -- trailing\n", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).NotTo(ContainSubstring("--"))

		out, _, err = translator.Translate("SELECT /* mid */ 1", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).NotTo(ContainSubstring("/*"))
	})

	It("rewrites a NUMERIC column to DECIMAL and records the constraint", func() {
		out, meta, err := translator.Translate(
			"CREATE TABLE accounts (id INTEGER, balance NUMERIC(10,2))", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("balance DECIMAL"))
		Expect(meta.DDL).To(BeTrue())

		nc, ok := store.Numeric("accounts", "balance")
		Expect(ok).To(BeTrue())
		Expect(nc.Precision).To(Equal(int32(10)))
		Expect(nc.Scale).To(Equal(int32(2)))
	})

	It("rewrites bare PG types in CREATE TABLE to SQLite storage classes", func() {
		out, _, err := translator.Translate(
			"CREATE TABLE widgets (active BOOLEAN, tag UUID, created_at TIMESTAMP)", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("active INTEGER"))
		Expect(out).To(ContainSubstring("tag TEXT"))
		Expect(out).To(ContainSubstring("created_at INTEGER"))
	})

	It("rewrites now() and CURRENT_TIMESTAMP to an epoch expression", func() {
		out, _, err := translator.Translate("SELECT now(), CURRENT_TIMESTAMP", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("strftime('%s','now')"))
	})

	It("expands ARRAY literals into json_array calls", func() {
		out, _, err := translator.Translate("SELECT ARRAY[1, 2, 3]", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("SELECT json_array(1, 2, 3)"))
	})

	It("schema-qualifies bare pg_catalog table references", func() {
		out, _, err := translator.Translate("SELECT * FROM pg_type WHERE oid = 23", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("pg_catalog.pg_type"))
	})

	It("rewrites arithmetic on a declared NUMERIC column to decimal_* calls", func() {
		_, _, err := translator.Translate(
			"CREATE TABLE accounts (id INTEGER, balance NUMERIC(10,2))", store)
		Expect(err).NotTo(HaveOccurred())

		out, meta, err := translator.Translate(
			"SELECT balance + 5 FROM accounts", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("decimal_add(balance, 5)"))
		Expect(meta.TouchedNumericColumns).To(ContainElement("balance"))
	})

	It("leaves arithmetic alone when no NUMERIC columns are declared", func() {
		out, _, err := translator.Translate("SELECT price + 5 FROM widgets", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("SELECT price + 5 FROM widgets"))
	})

	It("rewrites a numeric column's ::text cast to numeric_format", func() {
		_, _, err := translator.Translate(
			"CREATE TABLE accounts (id INTEGER, balance NUMERIC(10,2))", store)
		Expect(err).NotTo(HaveOccurred())

		out, _, err := translator.Translate("SELECT balance::text FROM accounts", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("numeric_format(balance, 10, 2)"))
	})

	It("expands a batch UPDATE ... FROM (VALUES ...) idiom into per-row statements", func() {
		out, _, err := translator.Translate(
			`UPDATE accounts SET balance = v.balance FROM (VALUES (1, 10), (2, 20)) AS v(id, balance) WHERE accounts.id = v.id`,
			store)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("UPDATE accounts SET balance = 10 WHERE accounts.id = 1"))
		Expect(out).To(ContainSubstring("UPDATE accounts SET balance = 20 WHERE accounts.id = 2"))
	})

	It("records a computed alias's inferred OID from an explicit cast", func() {
		_, meta, err := translator.Translate("SELECT count(*)::int AS total FROM widgets", store)
		Expect(err).NotTo(HaveOccurred())
		Expect(meta.ComputedAliases).To(HaveKey("total"))
	})
})
