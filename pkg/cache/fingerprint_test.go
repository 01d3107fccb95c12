package cache_test

import (
	"github.com/pgsqlite/pgsqlite/pkg/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fingerprint", func() {
	It("ignores whitespace differences", func() {
		q1 := "SELECT  *  FROM   users"
		q2 := "SELECT * FROM users"
		q3 := "SELECT\n*\nFROM\nusers"
		Expect(cache.Fingerprint(q1)).To(Equal(cache.Fingerprint(q2)))
		Expect(cache.Fingerprint(q2)).To(Equal(cache.Fingerprint(q3)))
	})

	It("ignores case differences", func() {
		q1 := "select * from users"
		q2 := "SELECT * FROM users"
		q3 := "SeLeCt * FrOm users"
		Expect(cache.Fingerprint(q1)).To(Equal(cache.Fingerprint(q2)))
		Expect(cache.Fingerprint(q2)).To(Equal(cache.Fingerprint(q3)))
	})

	It("normalizes numeric and string literals", func() {
		q1 := "SELECT * FROM users WHERE id = 123"
		q2 := "SELECT * FROM users WHERE id = 456"
		q3 := "SELECT * FROM users WHERE name = 'john'"
		q4 := "SELECT * FROM users WHERE name = 'jane'"

		Expect(cache.Fingerprint(q1)).To(Equal(cache.Fingerprint(q2)))
		Expect(cache.Fingerprint(q3)).To(Equal(cache.Fingerprint(q4)))
		Expect(cache.Fingerprint(q1)).NotTo(Equal(cache.Fingerprint(q3)))
	})

	It("keeps identifier-embedded digits intact", func() {
		q1 := "SELECT col1 FROM t1"
		q2 := "SELECT col2 FROM t1"
		Expect(cache.Fingerprint(q1)).NotTo(Equal(cache.Fingerprint(q2)))
	})

	It("preserves literals for FingerprintWithLiterals but still folds whitespace/case", func() {
		q1 := "SELECT * FROM users WHERE id = 123"
		q2 := "SELECT * FROM users WHERE id = 456"
		q3 := "SELECT  *  FROM  users  WHERE  id  =  123"

		Expect(cache.FingerprintWithLiterals(q1)).NotTo(Equal(cache.FingerprintWithLiterals(q2)))
		Expect(cache.FingerprintWithLiterals(q1)).To(Equal(cache.FingerprintWithLiterals(q3)))
	})
})
