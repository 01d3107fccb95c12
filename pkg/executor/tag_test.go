package executor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pgsqlite/pgsqlite/pkg/executor"
	"github.com/pgsqlite/pgsqlite/pkg/util/command"
)

var _ = Describe("BuildCommandTag", func() {
	It("formats INSERT with the PostgreSQL oid-then-count shape", func() {
		Expect(executor.BuildCommandTag(command.INSERT, 3)).To(Equal("INSERT 0 3"))
	})

	It("formats UPDATE as a bare count", func() {
		Expect(executor.BuildCommandTag(command.UPDATE, 7)).To(Equal("UPDATE 7"))
	})

	It("formats DELETE as a bare count", func() {
		Expect(executor.BuildCommandTag(command.DELETE, 0)).To(Equal("DELETE 0"))
	})

	It("formats SELECT as a bare count", func() {
		Expect(executor.BuildCommandTag(command.SELECT, 42)).To(Equal("SELECT 42"))
	})

	It("falls back to the bare command name for anything else", func() {
		Expect(executor.BuildCommandTag(command.BEGIN, -1)).To(Equal("BEGIN"))
	})
})
