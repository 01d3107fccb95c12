package catalog

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/pgsqlite/pgsqlite/pkg/types"
)

const (
	DriverName = "pgsqlite-sqlite3"

	pg_database_sql = `
		CREATE VIRTUAL TABLE IF NOT EXISTS pg_catalog.pg_database USING pg_database_module
		(oid, datname, datdba, encoding, datcollate, datctype, datistemplate, datallowconn, datconnlimit, datlastsysoid, datfrozenxid, datminmxid, dattablespace, datacl);`

	pg_namespace_sql = `
		CREATE VIRTUAL TABLE IF NOT EXISTS pg_catalog.pg_namespace USING pg_namespace_module (oid, nspname, nspowner, nspacl);`

	pg_description_sql = `
		CREATE VIRTUAL TABLE IF NOT EXISTS pg_catalog.pg_description USING pg_description_module (objoid, classoid, objsubid, description);`

	pg_settings_sql = `
		CREATE VIRTUAL TABLE IF NOT EXISTS pg_catalog.pg_settings USING pg_settings_module
		(name, setting, unit, category, short_desc, extra_desc, context, vartype, source, min_val, max_val, enumvals, boot_val, reset_val, sourcefile, sourceline, pending_restart);`

	pg_type_sql = `
		CREATE VIRTUAL TABLE IF NOT EXISTS pg_catalog.pg_type USING pg_type_module
		(oid, typname, typnamespace, typowner, typlen, typbyval, typtype, typcategory, typispreferred, typisdefined, typdelim, typrelid, typelem, typarray, typinput, typoutput, typreceive, typsend, typmodin, typmodout, typanalyze, typalign, typstorage, typnotnull, typbasetype, typtypmod, typndims, typcollation, typdefaultbin, typdefault, typacl);`

	pg_class_sql = `
		CREATE VIRTUAL TABLE IF NOT EXISTS pg_catalog.pg_class USING pg_class_module
		(oid, relname, relnamespace, reltype, reloftype, relowner, relam, relfilenode, reltablespace, relpages, reltuples, relallvisible, reltoastrelid, relhasindex, relisshared, relpersistence, relkind, relnatts, relchecks, relhasrules, relhastriggers, relhassubclass, relrowsecurity, relforcerowsecurity, relispopulated, relreplident, relispartition, relrewrite, relfrozenxid, relminmxid, relacl, reloptions, relpartbound);`

	pg_range_sql = `
		CREATE VIRTUAL TABLE IF NOT EXISTS pg_catalog.pg_range USING pg_range_module (rngtypid, rngsubtype, rngmultitypid, rngcollation, rngsubopc, rngcanonical, rngsubdiff);`
)

// typeRegistry backs the pg_type virtual table; it is the same Type Registry
// used by pkg/types for value conversion, so pg_type.oid always agrees with
// the OIDs the wire codec actually sends.
var typeRegistry = types.NewRegistry()

// Initialize virtual table catalog.
func initCatatog(conn *sqlite3.SQLiteConn) error {
	// Attach an in-memory database for pg_catalog.
	if _, err := conn.Exec(`ATTACH ':memory:' AS pg_catalog`, nil); err != nil {
		// Already attached, do nothing.
		if err.Error() == "database pg_catalog is already in use" {
			return nil
		}
		return fmt.Errorf("attach pg_catalog: %w", err)
	}

	// Register virtual tables to imitate postgres.
	if _, err := conn.Exec(pg_database_sql, nil); err != nil {
		return fmt.Errorf("create pg_database: %w", err)
	}
	if _, err := conn.Exec(pg_namespace_sql, nil); err != nil {
		return fmt.Errorf("create pg_namespace: %w", err)
	}
	if _, err := conn.Exec(pg_description_sql, nil); err != nil {
		return fmt.Errorf("create pg_description: %w", err)
	}
	if _, err := conn.Exec(pg_settings_sql, nil); err != nil {
		return fmt.Errorf("create pg_settings: %w", err)
	}
	if _, err := conn.Exec(pg_type_sql, nil); err != nil {
		return fmt.Errorf("create pg_type: %w", err)
	}
	if _, err := conn.Exec(pg_class_sql, nil); err != nil {
		return fmt.Errorf("create pg_class: %w", err)
	}
	if _, err := conn.Exec(pg_range_sql, nil); err != nil {
		return fmt.Errorf("create pg_range: %w", err)
	}
	return nil
}

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			scalarFuncs := []struct {
				name string
				fn   any
			}{
				{"current_catalog", current_catalog},
				{"current_schema", currentSchema},
				{"current_schemas", currentSchemas},
				{"current_database", currentDatabase},
				{"current_user", currentUser},
				{"session_user", sessionUser},
				{"user", user},
				{"show", show},
				{"format_type", formatType},
				{"version", version},
				{"pg_backend_pid", pgBackendPid},
				{"pg_total_relation_size", pg_total_relation_size},
				{"gen_random_uuid", genRandomUUID},
				{"to_tsvector", toTsvector},
				{"to_tsquery", toTsquery},
				{"plainto_tsquery", plaintoTsquery},
				{"row_to_json", rowToJSON},
				{"json_agg_step", jsonAggStep},
				{"array_contains", arrayContains},
				{"array_contained_by", arrayContainedBy},
				{"array_has_key", arrayHasKey},
				{"array_cat", arrayCat},
				{"decimal_add", decimalAdd},
				{"decimal_sub", decimalSub},
				{"decimal_mul", decimalMul},
				{"decimal_div", decimalDiv},
				{"decimal_cmp", decimalCmp},
				{"numeric_format", numericFormat},
			}
			for _, f := range scalarFuncs {
				if err := conn.RegisterFunc(f.name, f.fn, true); err != nil {
					return fmt.Errorf("cannot register %s() function: %w", f.name, err)
				}
			}

			if err := conn.CreateModule("pg_database_module", &PGDatabaseModule{}); err != nil {
				return fmt.Errorf("cannot register pg_database module")
			}

			if err := conn.CreateModule("pg_type_module", newPgTypeModule()); err != nil {
				return fmt.Errorf("cannot register pg_type module")
			}

			if err := conn.CreateModule("pg_settings_module", newPgSettingsModule()); err != nil {
				return fmt.Errorf("cannot register pg_settings module")
			}

			if err := conn.CreateModule("pg_range_module", newPgRangeModule()); err != nil {
				return fmt.Errorf("cannot register pg_range module")
			}

			if err := conn.CreateModule("pg_namespace_module", newPgNamespaceModule()); err != nil {
				return fmt.Errorf("cannot register pg_namespace module")
			}

			if err := conn.CreateModule("pg_description_module", newPgDescriptionModule()); err != nil {
				return fmt.Errorf("cannot register pg_description module")
			}

			if err := conn.CreateModule("pg_class_module", newPgClassModule()); err != nil {
				return fmt.Errorf("cannot register pg_class module")
			}

			if err := initCatatog(conn); err != nil {
				return err
			}

			return nil
		},
	})
}

func current_catalog() string {
	return "public"
}

func currentSchema() string { return "public" }

// currentSchemas mirrors PG's current_schemas(bool): the search path, with
// pg_catalog prepended when includeImplicit is true. There is exactly one
// schema (public) behind pg_catalog's emulation, so this always returns at
// most two entries.
func currentSchemas(includeImplicit bool) string {
	if includeImplicit {
		return "{pg_catalog,public}"
	}
	return "{public}"
}

// currentDatabase reports the PGSQLITE_DATABASE environment variable, or
// "main" when it is unset (spec §6's supplemental SQL surface).
func currentDatabase() string {
	if name := os.Getenv("PGSQLITE_DATABASE"); name != "" {
		return name
	}
	return "main"
}

func currentUser() string { return "sqlite3" }
func sessionUser() string { return "sqlite3" }
func user() string        { return "sqlite3" }

func version() string { return "PostgreSQL 14.9 (pgsqlite)" }

// pgBackendPid reports the OS process id, since every connection in this
// server shares one process rather than forking per-backend as PG does.
func pgBackendPid() int64 { return int64(os.Getpid()) }

func formatType(type_oid, typemod string) string {
	if oid, ok := parseOID(type_oid); ok {
		if info, ok := typeRegistry.ByOID(oid); ok {
			return info.Name
		}
	}
	return "unknown"
}

func show(name string) string { return "" }

// genRandomUUID implements gen_random_uuid(), a version-4 UUID per RFC 4122.
// No UUID library appears anywhere in the example pack; crypto/rand plus the
// four bit twiddles below is the whole of what's needed, so this stays on
// the standard library rather than pulling in an ungrounded dependency.
func genRandomUUID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "00000000-0000-4000-8000-000000000000"
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// Returns Total disk space used by the specified table, including all indexes and TOAST data.
func pg_total_relation_size(name string) int64 {
	if finfo, err := os.Stat(filepath.Join(os.Getenv("DATA_DIR"), name+".db")); err != nil {
		return -1
	} else {
		return finfo.Size()
	}
}

func DatabaseTypeConvSqlite(t string) int {
	if strings.Contains(t, "INT") {
		return sqlite3.SQLITE_INTEGER
	}
	if t == "CLOB" || t == "TEXT" ||
		strings.Contains(t, "CHAR") {
		return sqlite3.SQLITE_TEXT
	}
	if t == "BLOB" {
		return sqlite3.SQLITE_BLOB
	}
	if t == "REAL" || t == "FLOAT" ||
		strings.Contains(t, "DOUBLE") {
		return sqlite3.SQLITE_REAL
	}
	if t == "DATE" || t == "DATETIME" ||
		t == "TIMESTAMP" {
		return sqlite3.SQLITE_TIME
	}
	if t == "NUMERIC" ||
		strings.Contains(t, "DECIMAL") {
		return sqlite3.SQLITE_NUMERIC
	}
	if t == "BOOLEAN" {
		return sqlite3.SQLITE_BOOL
	}

	return sqlite3.SQLITE_NULL
}

func parseOID(s string) (uint32, bool) {
	var n uint32
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + uint32(r-'0')
	}
	return n, true
}
