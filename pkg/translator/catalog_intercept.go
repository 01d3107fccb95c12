package translator

import (
	"regexp"
	"strings"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

// catalogTables are the pg_catalog relations emulated by virtual tables
// registered in pkg/catalog's ConnectHook (see static_tables.go and
// catalog.go's pg_database_module). PostgreSQL's default search_path puts
// pg_catalog first and implicitly, so clients routinely write "pg_type"
// rather than "pg_catalog.pg_type"; SQLite has no search path into the
// attached pg_catalog database, so those references must be schema
// qualified before they reach the storage engine.
var catalogTables = []string{
	"pg_type", "pg_class", "pg_namespace", "pg_description",
	"pg_settings", "pg_range", "pg_database",
}

var catalogTableRegex = func() *regexp.Regexp {
	// Matches a bare catalog table name not already preceded by a dot
	// (schema-qualified) and not immediately followed by an identifier
	// character (so "pg_typemod" isn't mistaken for "pg_type").
	names := strings.Join(catalogTables, "|")
	return regexp.MustCompile(`(?i)(^|[^.\w])(` + names + `)\b`)
}()

// interceptCatalog schema-qualifies bare references to emulated pg_catalog
// relations. It does not execute them itself — the virtual tables already
// registered against the SQLite connection answer the query once it's
// qualified — and it sets no Metadata field, so the rest of the pipeline
// still runs on the qualified SQL.
func interceptCatalog(sql string, _ *catalog.Store, _ *Metadata) (string, error) {
	lower := strings.ToLower(sql)
	hit := false
	for _, t := range catalogTables {
		if strings.Contains(lower, t) {
			hit = true
			break
		}
	}
	if !hit {
		return sql, nil
	}

	return catalogTableRegex.ReplaceAllString(sql, "${1}pg_catalog.${2}"), nil
}
