package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ColumnMeta records the PostgreSQL-facing type declared for one SQLite
// column, as captured by the CREATE TABLE translator (spec §4.5 stage 2).
type ColumnMeta struct {
	Table        string
	Column       string
	PgType       string
	SqliteStore  string
	TypeModifier int32
	Nullable     bool
	Default      string
}

// NumericConstraint records a NUMERIC(precision,scale) declaration.
type NumericConstraint struct {
	Precision int32
	Scale     int32
}

// EnumType records a declared enum type and its ordered value list.
type EnumType struct {
	Name   string
	Values []string
}

// Store is the Schema Metadata Store (spec §4.4): it records, for every
// user column, its declared PostgreSQL type and modifier, plus auxiliary
// enum/numeric/FTS registries. Writes happen during DDL translation inside
// the same transaction as the underlying CREATE TABLE; reads are served
// from an in-process cache keyed by the schema-version counter.
type Store struct {
	mu sync.RWMutex

	schemaVersion uint64

	columns   map[string]ColumnMeta        // "table.column" -> meta
	numerics  map[string]NumericConstraint // "table.column" -> constraint
	enums     map[string]EnumType          // type name -> values
	arrayElem map[string]string            // "table.column" -> element pg type
	fts       map[string]string            // "table.column" -> shadow table name

	cache *ttlCache
}

func NewStore() *Store {
	return &Store{
		columns:   make(map[string]ColumnMeta),
		numerics:  make(map[string]NumericConstraint),
		enums:     make(map[string]EnumType),
		arrayElem: make(map[string]string),
		fts:       make(map[string]string),
		cache:     newTTLCache(30 * time.Second),
	}
}

func key(table, column string) string { return table + "." + column }

// SchemaVersion returns the current schema-version counter.
func (s *Store) SchemaVersion() uint64 {
	return atomic.LoadUint64(&s.schemaVersion)
}

// bumpVersion strictly increases the schema-version counter, per spec §8's
// invariant that every DDL success must do so.
func (s *Store) bumpVersion() uint64 {
	return atomic.AddUint64(&s.schemaVersion, 1)
}

// RecordColumn stores (or overwrites) the declared PG type for one column
// and bumps the schema version. Must be called inside the same transaction
// as the CREATE TABLE/ALTER TABLE that introduced the column.
func (s *Store) RecordColumn(meta ColumnMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.columns[key(meta.Table, meta.Column)] = meta
	s.bumpVersion()
}

func (s *Store) Column(table, column string) (ColumnMeta, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.columns[key(table, column)]
	return m, ok
}

func (s *Store) RecordNumeric(table, column string, precision, scale int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.numerics[key(table, column)] = NumericConstraint{Precision: precision, Scale: scale}
	s.bumpVersion()
}

func (s *Store) Numeric(table, column string) (NumericConstraint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.numerics[key(table, column)]
	return c, ok
}

// AllNumerics returns a snapshot of every declared numeric constraint,
// grounded on original_source/src/translator/numeric_format_translator.rs's
// load_all_numeric_constraints query.
func (s *Store) AllNumerics() map[string]NumericConstraint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]NumericConstraint, len(s.numerics))
	for k, v := range s.numerics {
		out[k] = v
	}
	return out
}

func (s *Store) RecordEnum(name string, values []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enums[name] = EnumType{Name: name, Values: values}
	s.bumpVersion()
}

func (s *Store) Enum(name string) (EnumType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.enums[name]
	return e, ok
}

func (s *Store) RecordArrayElem(table, column, elemType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.arrayElem[key(table, column)] = elemType
	s.bumpVersion()
}

func (s *Store) ArrayElem(table, column string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.arrayElem[key(table, column)]
	return e, ok
}

func (s *Store) RecordFTSShadow(table, column, shadowTable string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fts[key(table, column)] = shadowTable
	s.bumpVersion()
}

func (s *Store) FTSShadow(table, column string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.fts[key(table, column)]
	return t, ok
}

// CacheGet/CachePut let callers (the Translator pipeline, the Catalog
// Interceptor) memoize schema-derived work keyed by an arbitrary string,
// invalidated automatically once the schema version advances.
func (s *Store) CacheGet(k string) (any, bool) {
	return s.cache.get(k, s.SchemaVersion())
}

func (s *Store) CachePut(k string, v any) {
	s.cache.put(k, v, s.SchemaVersion())
}

// EnsureMetaTables creates the reserved catalog tables that back this Store
// inside the target SQLite database, idempotently.
func EnsureMetaTables(ctx context.Context, dbconn *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS __pgsqlite_schema (
			table_name TEXT NOT NULL,
			column_name TEXT NOT NULL,
			pg_type TEXT NOT NULL,
			sqlite_type TEXT NOT NULL,
			type_modifier INTEGER DEFAULT -1,
			nullable INTEGER DEFAULT 1,
			default_value TEXT,
			PRIMARY KEY (table_name, column_name)
		)`,
		`CREATE TABLE IF NOT EXISTS __pgsqlite_numeric_constraints (
			table_name TEXT NOT NULL,
			column_name TEXT NOT NULL,
			precision INTEGER NOT NULL,
			scale INTEGER NOT NULL,
			PRIMARY KEY (table_name, column_name)
		)`,
		`CREATE TABLE IF NOT EXISTS __pgsqlite_enum_types (
			type_name TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS __pgsqlite_enum_values (
			type_name TEXT NOT NULL,
			value TEXT NOT NULL,
			sort_order INTEGER NOT NULL,
			PRIMARY KEY (type_name, value)
		)`,
		`CREATE TABLE IF NOT EXISTS __pgsqlite_fts_tables (
			table_name TEXT NOT NULL,
			column_name TEXT NOT NULL,
			shadow_table TEXT NOT NULL,
			PRIMARY KEY (table_name, column_name)
		)`,
		`CREATE TABLE IF NOT EXISTS __pgsqlite_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := dbconn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure catalog table: %w", err)
		}
	}
	return nil
}

// ttlCache is a tiny TTL-bound cache keyed by a schema-version counter: an
// entry is only valid while the stored version matches the store's current
// version and the entry hasn't aged past ttl. Used by Store.CacheGet/Put.
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]ttlEntry
}

type ttlEntry struct {
	value   any
	version uint64
	at      time.Time
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{ttl: ttl, entries: make(map[string]ttlEntry)}
}

func (c *ttlCache) get(k string, currentVersion uint64) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[k]
	if !ok {
		return nil, false
	}
	if e.version != currentVersion || time.Since(e.at) > c.ttl {
		delete(c.entries, k)
		return nil, false
	}
	return e.value, true
}

func (c *ttlCache) put(k string, v any, currentVersion uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = ttlEntry{value: v, version: currentVersion, at: time.Now()}
}
