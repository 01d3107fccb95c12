package translator

import (
	"regexp"
	"strings"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

// batchUpdateRegex matches PostgreSQL's "UPDATE ... FROM (VALUES ...) AS
// alias(cols) WHERE ..." batch-update idiom: one row of literal values per
// target row, joined against the update's target by the WHERE clause.
// SQLite has no UPDATE ... FROM join target, so this stage expands the
// idiom into one UPDATE statement per VALUES row instead.
// The VALUES blob itself contains parens (one pair per row), so its capture
// must be greedy: a lazy quantifier would stop at the first row's closing
// paren instead of the one that actually wraps the whole VALUES list.
var batchUpdateRegex = regexp.MustCompile(
	`(?is)UPDATE\s+([A-Za-z_][A-Za-z0-9_]*)\s+SET\s+(.+?)\s+FROM\s*\(\s*VALUES\s*(.+)\)\s*(?:AS\s+)?([A-Za-z_][A-Za-z0-9_]*)\s*\(([^)]+)\)\s+WHERE\s+(.+?);?\s*$`)

// translateBatchUpdate expands the batch-update-via-VALUES idiom into a
// semicolon-joined sequence of single-row UPDATE statements, substituting
// each VALUES row's literals for the alias.column references in both the
// SET list and the WHERE clause.
func translateBatchUpdate(sql string, _ *catalog.Store, _ *Metadata) (string, error) {
	m := batchUpdateRegex.FindStringSubmatch(sql)
	if m == nil {
		return sql, nil
	}
	table, setClause, valuesBlob, alias, colsBlob, whereClause := m[1], m[2], m[3], m[4], m[5], m[6]

	var cols []string
	for _, c := range strings.Split(colsBlob, ",") {
		cols = append(cols, strings.TrimSpace(c))
	}

	// Row literal groups look like "(1, 'a'), (2, 'b')"; group by paren
	// depth rather than splitting the whole blob on top-level commas.
	rowGroups := splitValueRows(valuesBlob)

	aliasPrefix := alias + "."

	var statements []string
	for _, group := range rowGroups {
		vals := splitTopLevel(strings.Trim(group, "() "), ',')
		if len(vals) != len(cols) {
			continue
		}
		bindings := map[string]string{}
		for i, c := range cols {
			bindings[aliasPrefix+c] = strings.TrimSpace(vals[i])
		}

		set := substituteAliasRefs(setClause, bindings)
		where := substituteAliasRefs(whereClause, bindings)
		statements = append(statements, "UPDATE "+table+" SET "+set+" WHERE "+where)
	}

	if len(statements) == 0 {
		return sql, nil
	}
	return strings.Join(statements, "; "), nil
}

// splitValueRows splits a VALUES blob ("(1,'a'), (2,'b')") into its
// individual parenthesized row groups.
func splitValueRows(blob string) []string {
	var out []string
	depth := 0
	start := -1
	for i := 0; i < len(blob); i++ {
		switch blob[i] {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				out = append(out, blob[start:i+1])
				start = -1
			}
		}
	}
	return out
}

// substituteAliasRefs replaces every "alias.column" occurrence in expr with
// its bound literal for the current VALUES row.
func substituteAliasRefs(expr string, bindings map[string]string) string {
	out := expr
	for ref, lit := range bindings {
		out = strings.ReplaceAll(out, ref, lit)
	}
	return out
}
