// Package translator implements the query translation pipeline that lowers
// PostgreSQL SQL into SQLite-executable SQL: a fixed, order-sensitive chain
// of stages, each a pure function of the incoming SQL and the schema
// metadata store accumulated from prior DDL.
package translator

import (
	"errors"
	"strings"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

// ErrEmptyQuery is returned when comment stripping leaves nothing behind.
var ErrEmptyQuery = errors.New("translator: empty query")

// Metadata carries hints produced by one stage for consumption by a later
// stage or by the executor when it shapes the RowDescription.
type Metadata struct {
	// CatalogIntercepted, when a stage sets it, stops the pipeline after
	// that stage (see Translate). No stage sets it: interceptCatalog only
	// schema-qualifies pg_catalog references, and the virtual tables
	// registered on the connection answer them.
	CatalogIntercepted bool

	// DDL is set when the statement was a CREATE TABLE the DDL stage
	// rewrote; ColumnTypes records the PG type text recorded per column
	// for the benefit of tests and logging.
	DDL         bool
	ColumnTypes map[string]string

	// ComputedAliases maps a SELECT-list alias to the OID the Cast and
	// Arithmetic Analyzer inferred for it, for RowDescription overrides.
	ComputedAliases map[string]uint32

	// TouchedNumericColumns lists the NUMERIC column references the Decimal
	// Rewriter and Numeric Format stages rewrote, useful for the Executor's
	// fast-path eligibility check (spec §4.8).
	TouchedNumericColumns []string
}

func newMetadata() *Metadata {
	return &Metadata{
		ColumnTypes:     map[string]string{},
		ComputedAliases: map[string]uint32{},
	}
}

// Stage is one pipeline stage. It must fast-reject cheaply before doing any
// heavier parsing, and must be a pure function of (sql, meta).
type Stage func(sql string, meta *catalog.Store, out *Metadata) (string, error)

// pipeline is the mandated stage order from spec.md §4.5. The Catalog
// Interceptor runs first among the "heavy" stages (right after comment
// stripping) so bare pg_catalog references are schema-qualified before any
// other stage sees them; it does not short-circuit the rest of the
// pipeline. DDL runs next so CREATE TABLE is captured before any other stage
// would otherwise try to rewrite it as DML.
var pipeline = []Stage{
	stripComments,
	interceptCatalog,
	translateDDL,
	translateDatetime,
	translateArrayJSON,
	translateFTS,
	rewriteDecimal,
	rewriteNumericFormat,
	translateBatchUpdate,
	analyzeCastArithmetic,
}

// Translate runs sql through every pipeline stage in order, short-circuiting
// once a stage sets meta.CatalogIntercepted.
func Translate(sql string, store *catalog.Store) (string, *Metadata, error) {
	meta := newMetadata()
	cur := sql
	for _, stage := range pipeline {
		next, err := stage(cur, store, meta)
		if err != nil {
			return "", meta, err
		}
		cur = next
		if meta.CatalogIntercepted {
			break
		}
	}
	return cur, meta, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
