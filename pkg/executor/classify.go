// Package executor implements the Executor Core (spec.md §4.8): it
// classifies incoming statements, decides which ones may bypass the
// translator pipeline entirely, and shapes the final CommandComplete tag
// once a statement has run.
package executor

import (
	"regexp"
	"strings"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
	"github.com/pgsqlite/pgsqlite/pkg/util/command"
)

// Class is the coarse statement category spec.md §4.8 requires every
// incoming statement be sorted into before execution.
type Class int

const (
	ClassDDL Class = iota
	ClassSimpleDML
	ClassSimpleSelect
	ClassComplex
	ClassCatalog
	ClassTxControl
)

func (c Class) String() string {
	switch c {
	case ClassDDL:
		return "ddl"
	case ClassSimpleDML:
		return "simple_dml"
	case ClassSimpleSelect:
		return "simple_select"
	case ClassComplex:
		return "complex"
	case ClassCatalog:
		return "catalog"
	case ClassTxControl:
		return "tx_control"
	default:
		return "unknown"
	}
}

var (
	ddlRegex       = regexp.MustCompile(`(?is)^\s*(CREATE|ALTER|DROP)\s+`)
	catalogRegex   = regexp.MustCompile(`(?i)\bpg_(catalog|type|class|attribute|namespace|enum|range)\b`)
	joinRegex      = regexp.MustCompile(`(?i)\bJOIN\b`)
	subqueryRegex  = regexp.MustCompile(`(?i)\(\s*SELECT\b`)
	returningRegex = regexp.MustCompile(`(?i)\bRETURNING\b`)
	groupByRegex   = regexp.MustCompile(`(?i)\b(GROUP\s+BY|HAVING|UNION|WINDOW)\b`)
)

// Classify sorts a single statement into one of the six categories named in
// spec.md §4.8, from its command type and a cheap textual scan — the same
// fast-reject-before-parsing discipline the translator pipeline stages
// follow.
func Classify(cmdType command.SQLCommandType, sql string) Class {
	switch cmdType {
	case command.BEGIN, command.COMMIT, command.ROLLBACK:
		return ClassTxControl
	}

	if ddlRegex.MatchString(sql) {
		return ClassDDL
	}
	if catalogRegex.MatchString(sql) {
		return ClassCatalog
	}

	switch cmdType {
	case command.SELECT:
		if joinRegex.MatchString(sql) || subqueryRegex.MatchString(sql) || groupByRegex.MatchString(sql) {
			return ClassComplex
		}
		return ClassSimpleSelect
	case command.INSERT, command.UPDATE, command.DELETE:
		if joinRegex.MatchString(sql) || subqueryRegex.MatchString(sql) || returningRegex.MatchString(sql) {
			return ClassComplex
		}
		return ClassSimpleDML
	default:
		return ClassComplex
	}
}

// FastPathEligible reports whether a statement of the given class may skip
// the translator pipeline and run directly against the storage engine: a
// single-table statement with no RETURNING clause and no declared NUMERIC
// column anywhere in scope, per spec.md §4.8. Triggers aren't modeled by
// the schema store (sqlite_master introspection for them belongs to the
// drift detector, spec.md §4.4) so this check is conservative rather than
// exact — it only fast-paths once a table is known to carry no NUMERIC
// columns, which also rules out the only trigger pgsqlite itself installs
// (the precision/scale validation trigger, spec.md §4.5 stage 2).
func FastPathEligible(class Class, sql string, store *catalog.Store) bool {
	if class != ClassSimpleDML && class != ClassSimpleSelect {
		return false
	}
	if returningRegex.MatchString(sql) {
		return false
	}
	if len(store.AllNumerics()) == 0 {
		return true
	}

	table := soleTableName(sql)
	if table == "" {
		return false
	}
	for key := range store.AllNumerics() {
		if strings.HasPrefix(key, table+".") {
			return false
		}
	}
	return true
}

var (
	fromTableRegex   = regexp.MustCompile(`(?i)\bFROM\s+"?([A-Za-z_][A-Za-z0-9_]*)"?`)
	intoTableRegex   = regexp.MustCompile(`(?i)\bINTO\s+"?([A-Za-z_][A-Za-z0-9_]*)"?`)
	updateTableRegex = regexp.MustCompile(`(?i)^\s*UPDATE\s+"?([A-Za-z_][A-Za-z0-9_]*)"?`)
)

// soleTableName extracts the single table name a simple (non-join)
// statement touches, or "" if none of the expected forms match.
func soleTableName(sql string) string {
	if m := updateTableRegex.FindStringSubmatch(sql); m != nil {
		return m[1]
	}
	if m := intoTableRegex.FindStringSubmatch(sql); m != nil {
		return m[1]
	}
	if m := fromTableRegex.FindStringSubmatch(sql); m != nil {
		return m[1]
	}
	return ""
}
