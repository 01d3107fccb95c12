package translator

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

// castRegex matches both cast spellings PG accepts for a column: the
// `::type` shorthand and the verbose `CAST(col AS type)` form, capturing
// just the column reference so the precision/scale can be looked up.
var (
	shorthandCastRegex = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)?)\s*::\s*(text|varchar|char)\b`)
	verboseCastRegex   = regexp.MustCompile(`(?i)CAST\s*\(\s*([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)?)\s+AS\s+(TEXT|VARCHAR|CHAR)(?:\([0-9]+\))?\s*\)`)
)

// rewriteNumericFormat rewrites `col::text`/`CAST(col AS TEXT)` into a
// numeric_format(col, precision, scale) call when col is a declared NUMERIC
// column, so the stringified value round-trips with the column's declared
// precision/scale instead of SQLite's raw stored representation.
func rewriteNumericFormat(sql string, store *catalog.Store, out *Metadata) (string, error) {
	numerics := store.AllNumerics()
	if len(numerics) == 0 {
		return sql, nil
	}
	if !shorthandCastRegex.MatchString(sql) && !verboseCastRegex.MatchString(sql) {
		return sql, nil
	}

	lookup := func(ref string) (catalog.NumericConstraint, bool) {
		col := ref
		for i := len(ref) - 1; i >= 0; i-- {
			if ref[i] == '.' {
				col = ref[i+1:]
				break
			}
		}
		for key, nc := range numerics {
			if columnPartOf(key) == col {
				return nc, true
			}
		}
		return catalog.NumericConstraint{}, false
	}

	rewritten := shorthandCastRegex.ReplaceAllStringFunc(sql, func(m string) string {
		parts := shorthandCastRegex.FindStringSubmatch(m)
		nc, ok := lookup(parts[1])
		if !ok {
			return m
		}
		out.TouchedNumericColumns = append(out.TouchedNumericColumns, parts[1])
		return fmt.Sprintf("numeric_format(%s, %d, %d)", parts[1], nc.Precision, nc.Scale)
	})

	rewritten = verboseCastRegex.ReplaceAllStringFunc(rewritten, func(m string) string {
		parts := verboseCastRegex.FindStringSubmatch(m)
		nc, ok := lookup(parts[1])
		if !ok {
			return m
		}
		out.TouchedNumericColumns = append(out.TouchedNumericColumns, parts[1])
		return fmt.Sprintf("numeric_format(%s, %s, %s)", parts[1], strconv.Itoa(int(nc.Precision)), strconv.Itoa(int(nc.Scale)))
	})

	return rewritten, nil
}
