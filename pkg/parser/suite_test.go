package parser_test

import (
	"testing"

	"github.com/pgsqlite/pgsqlite/pkg/parser"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// TestWalker is a parser.Visitor whose behavior is supplied per-test via
// VisitFn, so individual specs can assert on whatever node shapes they care
// about without each needing its own Visitor type.
type TestWalker struct {
	VisitFn func(node *pg_query.Node) (parser.Visitor, error)
}

func (tw *TestWalker) Visit(node *pg_query.Node) (parser.Visitor, error) {
	if tw.VisitFn != nil {
		return tw.VisitFn(node)
	}
	return tw, nil
}

func (tw *TestWalker) VisitEnd(*pg_query.Node) error {
	return nil
}

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parser Suite")
}
