package executor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pgsqlite/pgsqlite/pkg/cache"
	"github.com/pgsqlite/pgsqlite/pkg/catalog"
	"github.com/pgsqlite/pgsqlite/pkg/config"
	"github.com/pgsqlite/pgsqlite/pkg/executor"
	"github.com/pgsqlite/pgsqlite/pkg/store"
	"github.com/pgsqlite/pgsqlite/pkg/util/command"
)

var _ = Describe("Executor.Classify", func() {
	var (
		tiers  *cache.Tiers
		schema *catalog.Store
		ex     *executor.Executor
	)

	BeforeEach(func() {
		tiers = cache.NewTiers(config.DefaultConfig().Cache)
		schema = catalog.NewStore()
		ex = executor.New(nil, tiers)
	})

	It("classifies a statement directly the first time it's seen", func() {
		stmt := store.Statement{Query: "SELECT id FROM accounts WHERE id = $1", CmdType: command.SELECT}
		class, fastPath := ex.Classify(stmt, schema)
		Expect(class).To(Equal(executor.ClassSimpleSelect))
		Expect(fastPath).To(BeTrue())
	})

	It("serves the second lookup for an identical shape from the Plan cache", func() {
		stmt := store.Statement{Query: "SELECT id FROM accounts WHERE id = $1", CmdType: command.SELECT}
		ex.Classify(stmt, schema)

		key := cache.Fingerprint(stmt.Query)
		_, ok := tiers.Plan.Get(key)
		Expect(ok).To(BeTrue())

		class, fastPath := ex.Classify(stmt, schema)
		Expect(class).To(Equal(executor.ClassSimpleSelect))
		Expect(fastPath).To(BeTrue())
	})

	It("works without a cache tier bundle", func() {
		bare := executor.New(nil, nil)
		stmt := store.Statement{Query: "UPDATE accounts SET balance = 1 WHERE id = 1", CmdType: command.UPDATE}
		class, fastPath := bare.Classify(stmt, schema)
		Expect(class).To(Equal(executor.ClassSimpleDML))
		Expect(fastPath).To(BeTrue())
	})
})
