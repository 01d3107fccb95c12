package catalog

import "github.com/pgsqlite/pgsqlite/pkg/types"

// Constructors for the pg_catalog virtual tables that only ever need a
// fixed or cheaply-computed row set, built atop the generic staticModule
// (vtab.go). Each rowsFunc runs every time a cursor is opened (Open).

func newPgTypeModule() *staticModule {
	return &staticModule{
		createSQL: `CREATE TABLE %s (
			oid INTEGER, typname TEXT, typnamespace INTEGER, typowner INTEGER,
			typlen INTEGER, typbyval INTEGER, typtype TEXT, typcategory TEXT,
			typispreferred INTEGER, typisdefined INTEGER, typdelim TEXT,
			typrelid INTEGER, typelem INTEGER, typarray INTEGER,
			typinput TEXT, typoutput TEXT, typreceive TEXT, typsend TEXT,
			typmodin TEXT, typmodout TEXT, typanalyze TEXT, typalign TEXT,
			typstorage TEXT, typnotnull INTEGER, typbasetype INTEGER,
			typtypmod INTEGER, typndims INTEGER, typcollation INTEGER,
			typdefaultbin TEXT, typdefault TEXT, typacl TEXT)`,
		rowsFunc: pgTypeRows,
	}
}

func pgTypeRows() ([]staticRow, error) {
	all := typeRegistry.All()
	rows := make([]staticRow, 0, len(all))
	for _, t := range all {
		typtype := "b"
		typcategory := "U"
		if t.IsArray {
			typcategory = "A"
		}
		rows = append(rows, staticRow{
			int64(t.OID), t.Name, 11 /* pg_catalog namespace oid */, 10,
			-1, 0, typtype, typcategory,
			1, 1, ",",
			0, int64(t.ElemOID), 0,
			t.Name + "in", t.Name + "out", "-", "-",
			"-", "-", "-", "i",
			"p", 0, 0,
			-1, 0, 0,
			nil, nil, nil,
		})
	}
	return rows, nil
}

func newPgNamespaceModule() *staticModule {
	return &staticModule{
		createSQL: `CREATE TABLE %s (oid INTEGER, nspname TEXT, nspowner INTEGER, nspacl TEXT)`,
		rowsFunc: func() ([]staticRow, error) {
			return []staticRow{
				{11, "pg_catalog", 10, nil},
				{2200, "public", 10, nil},
				{99, "information_schema", 10, nil},
			}, nil
		},
	}
}

func newPgDescriptionModule() *staticModule {
	return &staticModule{
		createSQL: `CREATE TABLE %s (objoid INTEGER, classoid INTEGER, objsubid INTEGER, description TEXT)`,
		rowsFunc: func() ([]staticRow, error) {
			return []staticRow{}, nil
		},
	}
}

func newPgClassModule() *staticModule {
	return &staticModule{
		createSQL: `CREATE TABLE %s (
			oid INTEGER, relname TEXT, relnamespace INTEGER, reltype INTEGER,
			reloftype INTEGER, relowner INTEGER, relam INTEGER, relfilenode INTEGER,
			reltablespace INTEGER, relpages INTEGER, reltuples REAL, relallvisible INTEGER,
			reltoastrelid INTEGER, relhasindex INTEGER, relisshared INTEGER,
			relpersistence TEXT, relkind TEXT, relnatts INTEGER, relchecks INTEGER,
			relhasrules INTEGER, relhastriggers INTEGER, relhassubclass INTEGER,
			relrowsecurity INTEGER, relforcerowsecurity INTEGER, relispopulated INTEGER,
			relreplident TEXT, relispartition INTEGER, relrewrite INTEGER,
			relfrozenxid INTEGER, relminmxid INTEGER, relacl TEXT, reloptions TEXT,
			relpartbound TEXT)`,
		rowsFunc: pgClassRows,
	}
}

// pgClassRows always reports an empty relation set; tables and indexes
// created in the database are not listed in pg_class.
var pgClassRows = func() ([]staticRow, error) {
	return []staticRow{}, nil
}

func newPgSettingsModule() *staticModule {
	return &staticModule{
		createSQL: `CREATE TABLE %s (
			name TEXT, setting TEXT, unit TEXT, category TEXT, short_desc TEXT,
			extra_desc TEXT, context TEXT, vartype TEXT, source TEXT, min_val TEXT,
			max_val TEXT, enumvals TEXT, boot_val TEXT, reset_val TEXT,
			sourcefile TEXT, sourceline INTEGER, pending_restart INTEGER)`,
		rowsFunc: func() ([]staticRow, error) {
			setting := func(name, val, vartype, context string) staticRow {
				return staticRow{name, val, nil, "Client Connection Defaults", "", "", context, vartype, "default", nil, nil, nil, val, val, nil, nil, 0}
			}
			return []staticRow{
				setting("server_version", "14.9", "string", "internal"),
				setting("server_encoding", "UTF8", "string", "internal"),
				setting("client_encoding", "UTF8", "string", "user"),
				setting("DateStyle", "ISO, MDY", "string", "user"),
				setting("TimeZone", "UTC", "string", "user"),
				setting("integer_datetimes", "on", "bool", "internal"),
				setting("standard_conforming_strings", "on", "bool", "user"),
			}, nil
		},
	}
}

func newPgRangeModule() *staticModule {
	return &staticModule{
		createSQL: `CREATE TABLE %s (
			rngtypid INTEGER, rngsubtype INTEGER, rngmultitypid INTEGER,
			rngcollation INTEGER, rngsubopc INTEGER, rngcanonical TEXT, rngsubdiff TEXT)`,
		rowsFunc: func() ([]staticRow, error) {
			return []staticRow{
				{int64(types.Int4rangeOID), 23 /* int4 */, 0, 0, 0, nil, nil},
				{int64(types.Int8rangeOID), 20 /* int8 */, 0, 0, 0, nil, nil},
				{int64(types.NumrangeOID), 1700 /* numeric */, 0, 0, 0, nil, nil},
			}, nil
		},
	}
}
