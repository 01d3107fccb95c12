package translator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

var createTableRegex = regexp.MustCompile(`(?is)^\s*CREATE\s+TABLE`)

// columnDefRegex captures one "name TYPE(args)" column definition inside a
// CREATE TABLE's parenthesized list, stopping before a trailing comma or
// closing paren. It deliberately doesn't try to parse constraints,
// defaults, or nested parens beyond the type's own arg list.
var columnDefRegex = regexp.MustCompile(`(?i)([A-Za-z_][A-Za-z0-9_]*)\s+(NUMERIC|DECIMAL)\s*\(\s*(\d+)\s*,\s*(\d+)\s*\)`)

// pgToSQLiteType maps a PostgreSQL type keyword (case-insensitive, without
// any parenthesized args) to the SQLite storage class it's rewritten to, per
// spec.md §4.5 stage 2.
var pgToSQLiteType = map[string]string{
	"boolean":          "INTEGER",
	"bool":             "INTEGER",
	"uuid":             "TEXT",
	"tsvector":         "TEXT",
	"tsquery":          "TEXT",
	"text[]":           "TEXT",
	"json":             "TEXT",
	"jsonb":            "TEXT",
	"bytea":            "BLOB",
	"timestamp":        "INTEGER",
	"timestamptz":      "INTEGER",
	"date":             "INTEGER",
	"time":             "INTEGER",
	"interval":         "INTEGER",
	"int4range":        "TEXT",
	"int8range":        "TEXT",
	"numrange":         "TEXT",
	"serial":           "INTEGER",
	"bigserial":        "INTEGER",
	"smallserial":      "INTEGER",
	"integer":          "INTEGER",
	"int":              "INTEGER",
	"bigint":           "INTEGER",
	"smallint":         "INTEGER",
	"real":              "REAL",
	"double precision": "REAL",
	"varchar":          "TEXT",
	"character varying": "TEXT",
}

// bareTypeRegex finds a type keyword (letters/spaces only, PG's multi-word
// types like "double precision" included) following a column name, stopping
// at a parenthesized arg list, comma, or the closing paren of the column
// list.
var bareTypeRegex = regexp.MustCompile(`(?i)\b(BOOLEAN|BOOL|UUID|TSVECTOR|TSQUERY|JSONB|JSON|BYTEA|TIMESTAMPTZ|TIMESTAMP|INTERVAL|INT4RANGE|INT8RANGE|NUMRANGE|BIGSERIAL|SMALLSERIAL|SERIAL|DOUBLE PRECISION|CHARACTER VARYING|VARCHAR|REAL)\b(\[\])?`)

// translateDDL rewrites PostgreSQL column types in a CREATE TABLE statement
// to the SQLite storage class they map onto. Only NUMERIC(p,s)/DECIMAL(p,s)
// columns are recorded in the metadata store (declared type plus
// precision/scale), so later stages (decimal rewriting, numeric formatting)
// can recover them; columns of other types are rewritten but not recorded.
func translateDDL(sql string, store *catalog.Store, out *Metadata) (string, error) {
	if !createTableRegex.MatchString(sql) {
		return sql, nil
	}
	out.DDL = true

	table := tableNameFromCreate(sql)

	// Record and rewrite NUMERIC(p,s)/DECIMAL(p,s) columns first, since the
	// generic bare-type rewrite below would otherwise also match the
	// "NUMERIC"/"DECIMAL" keyword before its precision/scale args.
	rewritten := columnDefRegex.ReplaceAllStringFunc(sql, func(m string) string {
		parts := columnDefRegex.FindStringSubmatch(m)
		col, precStr, scaleStr := parts[1], parts[3], parts[4]
		precision, _ := strconv.Atoi(precStr)
		scale, _ := strconv.Atoi(scaleStr)
		if table != "" {
			store.RecordNumeric(table, col, int32(precision), int32(scale))
			store.RecordColumn(catalog.ColumnMeta{Table: table, Column: col, PgType: "numeric(" + precStr + "," + scaleStr + ")"})
		}
		out.ColumnTypes[col] = "numeric(" + precStr + "," + scaleStr + ")"
		return col + " DECIMAL"
	})

	rewritten = bareTypeRegex.ReplaceAllStringFunc(rewritten, func(m string) string {
		matches := bareTypeRegex.FindStringSubmatch(m)
		pgType := strings.ToLower(matches[1])
		isArray := matches[2] == "[]"
		lookup := pgType
		if isArray {
			lookup = pgType + "[]"
		}
		sqliteType, ok := pgToSQLiteType[lookup]
		if !ok {
			sqliteType, ok = pgToSQLiteType[pgType]
			if !ok {
				return m
			}
		}
		return sqliteType
	})

	// Columns other than NUMERIC/DECIMAL get no metadata entry; their
	// on-wire OID is derived from the SQLite declared type by
	// pkg/db.Typemap.
	return rewritten, nil
}

var createTableNameRegex = regexp.MustCompile(`(?is)CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?"?([A-Za-z_][A-Za-z0-9_]*)"?`)

func tableNameFromCreate(sql string) string {
	m := createTableNameRegex.FindStringSubmatch(sql)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
