package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// TypeMismatch records a column whose declared metadata and actual SQLite
// storage class disagree.
type TypeMismatch struct {
	Table           string
	Column          string
	MetadataPgType  string
	MetadataStorage string
	ActualStorage   string
}

// TableDrift reports the differences found for a single table.
type TableDrift struct {
	Table             string
	MissingInSqlite   []ColumnMeta
	MissingInMetadata []ColumnMeta
	TypeMismatches    []TypeMismatch
}

// Drift is the full report returned by DetectDrift.
type Drift struct {
	TableDrifts []TableDrift
}

func (d Drift) IsEmpty() bool { return len(d.TableDrifts) == 0 }

func (d Drift) FormatReport() string {
	report := ""
	for _, td := range d.TableDrifts {
		report += fmt.Sprintf("\ntable %q has schema drift:\n", td.Table)
		for _, c := range td.MissingInSqlite {
			report += fmt.Sprintf("  - %s (%s) present in metadata, missing from sqlite\n", c.Column, c.PgType)
		}
		for _, c := range td.MissingInMetadata {
			report += fmt.Sprintf("  - %s present in sqlite, missing from metadata\n", c.Column)
		}
		for _, m := range td.TypeMismatches {
			report += fmt.Sprintf("  - %s: metadata=%s actual=%s\n", m.Column, m.MetadataStorage, m.ActualStorage)
		}
	}
	return report
}

// DetectDrift compares the Store's declared metadata against actual SQLite
// storage, introspected via PRAGMA table_info. It never mutates anything;
// grounded on original_source/src/schema_drift.rs's SchemaDrift/TableDrift
// report shapes.
func DetectDrift(ctx context.Context, dbconn *sql.DB, store *Store) (Drift, error) {
	tables, err := userTables(ctx, dbconn)
	if err != nil {
		return Drift{}, err
	}

	var drift Drift
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, table := range tables {
		actual, err := tableColumns(ctx, dbconn, table)
		if err != nil {
			return Drift{}, err
		}

		var td TableDrift
		td.Table = table

		declared := map[string]ColumnMeta{}
		for k, v := range store.columns {
			if v.Table == table {
				declared[v.Column] = v
			}
			_ = k
		}

		for col, meta := range declared {
			actualType, ok := actual[col]
			if !ok {
				td.MissingInSqlite = append(td.MissingInSqlite, meta)
				continue
			}
			if actualType != meta.SqliteStore {
				td.TypeMismatches = append(td.TypeMismatches, TypeMismatch{
					Table:           table,
					Column:          col,
					MetadataPgType:  meta.PgType,
					MetadataStorage: meta.SqliteStore,
					ActualStorage:   actualType,
				})
			}
		}
		for col, actualType := range actual {
			if _, ok := declared[col]; !ok {
				td.MissingInMetadata = append(td.MissingInMetadata, ColumnMeta{Table: table, Column: col, SqliteStore: actualType})
			}
		}

		if len(td.MissingInSqlite) > 0 || len(td.MissingInMetadata) > 0 || len(td.TypeMismatches) > 0 {
			drift.TableDrifts = append(drift.TableDrifts, td)
		}
	}
	return drift, nil
}

func userTables(ctx context.Context, dbconn *sql.DB) ([]string, error) {
	rows, err := dbconn.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' AND name NOT LIKE '__pgsqlite_%'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func tableColumns(ctx context.Context, dbconn *sql.DB, table string) (map[string]string, error) {
	rows, err := dbconn.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%q)`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := map[string]string{}
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull int
		var dflt sql.NullString
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = ctype
	}
	return cols, rows.Err()
}
