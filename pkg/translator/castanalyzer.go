package translator

import (
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

// selectAliasCastRegex captures "expr::type AS alias" and "expr::type alias"
// forms in a SELECT list, used to recover the PG OID a computed expression
// should be reported as in the RowDescription, since SQLite infers no type
// information for expressions of its own.
var selectAliasCastRegex = regexp.MustCompile(
	`(?i)::\s*([A-Za-z_][A-Za-z0-9_]*)\s+(?:AS\s+)?([A-Za-z_][A-Za-z0-9_]*)\b`)

var aliasCastOID = map[string]uint32{
	"int":       pgtype.Int8OID,
	"int4":      pgtype.Int4OID,
	"int8":      pgtype.Int8OID,
	"integer":   pgtype.Int8OID,
	"bigint":    pgtype.Int8OID,
	"smallint":  pgtype.Int4OID,
	"numeric":   pgtype.NumericOID,
	"decimal":   pgtype.NumericOID,
	"real":      pgtype.Float8OID,
	"float8":    pgtype.Float8OID,
	"double":    pgtype.Float8OID,
	"boolean":   pgtype.BoolOID,
	"bool":      pgtype.BoolOID,
	"text":      pgtype.TextOID,
	"varchar":   pgtype.TextOID,
	"uuid":      pgtype.TextOID,
	"timestamp": pgtype.Int8OID,
	"date":      pgtype.Int8OID,
}

// analyzeCastArithmetic is the last translator stage: it scans the
// (already rewritten) SELECT list for explicit `::type` casts applied to a
// computed expression and records the PG OID the alias should carry, so the
// Executor can build an accurate RowDescription for columns SQLite itself
// has no declared type for (arithmetic results, CASE expressions, cast
// targets). It does not rewrite the SQL text.
func analyzeCastArithmetic(sql string, _ *catalog.Store, out *Metadata) (string, error) {
	if !strings.Contains(sql, "::") {
		return sql, nil
	}

	for _, m := range selectAliasCastRegex.FindAllStringSubmatch(sql, -1) {
		typeName, alias := strings.ToLower(m[1]), m[2]
		if oid, ok := aliasCastOID[typeName]; ok {
			out.ComputedAliases[alias] = oid
		}
	}
	return sql, nil
}
