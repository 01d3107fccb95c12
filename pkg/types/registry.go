// Package types implements the Type Registry and Value Converters (spec
// §4.3): the OID<->name table, SQLite storage-class mapping, and per-OID
// text/binary encode/decode used to shape rows exactly as PostgreSQL would.
package types

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// StorageClass is one of the SQLite storage classes a PG type round-trips
// through.
type StorageClass int

const (
	StorageInteger StorageClass = iota
	StorageReal
	StorageText
	StorageBlob
)

// OIDs not defined by pgx/v5/pgtype's constant set but named in spec.md §4.3.
const (
	MoneyOID     uint32 = 790
	Macaddr8OID  uint32 = 774
	Int4rangeOID uint32 = 3904
	Int8rangeOID uint32 = 3926
	NumrangeOID  uint32 = 3906
	TsvectorOID  uint32 = 3614
	TsqueryOID   uint32 = 3615
	RegconfigOID uint32 = 3734
)

// TypeInfo describes one registered PostgreSQL type.
type TypeInfo struct {
	OID     uint32
	Name    string
	Storage StorageClass
	// IsArray marks an array-of-T type; ElemOID names the element type.
	IsArray bool
	ElemOID uint32
}

// Registry enumerates the supported PostgreSQL types (spec §4.3's table)
// keyed by OID, plus a name index for reverse lookup.
type Registry struct {
	byOID  map[uint32]TypeInfo
	byName map[string]TypeInfo
}

func NewRegistry() *Registry {
	r := &Registry{byOID: make(map[uint32]TypeInfo), byName: make(map[string]TypeInfo)}
	for _, t := range baseTypes() {
		r.register(t)
	}
	return r
}

func (r *Registry) register(t TypeInfo) {
	r.byOID[t.OID] = t
	r.byName[t.Name] = t
}

func (r *Registry) ByOID(oid uint32) (TypeInfo, bool) {
	t, ok := r.byOID[oid]
	return t, ok
}

func (r *Registry) ByName(name string) (TypeInfo, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// All returns every registered type, for callers building a full listing
// (the pg_type virtual table, introspection commands).
func (r *Registry) All() []TypeInfo {
	out := make([]TypeInfo, 0, len(r.byOID))
	for _, t := range r.byOID {
		out = append(out, t)
	}
	return out
}

func baseTypes() []TypeInfo {
	return []TypeInfo{
		{OID: pgtype.BoolOID, Name: "bool", Storage: StorageInteger},
		{OID: pgtype.ByteaOID, Name: "bytea", Storage: StorageBlob},
		{OID: pgtype.Int8OID, Name: "int8", Storage: StorageInteger},
		{OID: pgtype.Int2OID, Name: "int2", Storage: StorageInteger},
		{OID: pgtype.Int4OID, Name: "int4", Storage: StorageInteger},
		{OID: pgtype.TextOID, Name: "text", Storage: StorageText},
		{OID: pgtype.OIDOID, Name: "oid", Storage: StorageInteger},
		{OID: pgtype.QCharOID, Name: "char", Storage: StorageText},
		{OID: pgtype.Float4OID, Name: "float4", Storage: StorageReal},
		{OID: pgtype.Float8OID, Name: "float8", Storage: StorageReal},
		{OID: pgtype.VarcharOID, Name: "varchar", Storage: StorageText},
		{OID: pgtype.DateOID, Name: "date", Storage: StorageInteger},
		{OID: pgtype.TimeOID, Name: "time", Storage: StorageInteger},
		{OID: pgtype.TimestampOID, Name: "timestamp", Storage: StorageInteger},
		{OID: pgtype.TimestamptzOID, Name: "timestamptz", Storage: StorageInteger},
		{OID: pgtype.IntervalOID, Name: "interval", Storage: StorageText},
		{OID: pgtype.TimetzOID, Name: "timetz", Storage: StorageText},
		{OID: pgtype.NumericOID, Name: "numeric", Storage: StorageText},
		{OID: pgtype.UUIDOID, Name: "uuid", Storage: StorageText},
		{OID: pgtype.JSONOID, Name: "json", Storage: StorageText},
		{OID: pgtype.JSONBOID, Name: "jsonb", Storage: StorageText},
		{OID: MoneyOID, Name: "money", Storage: StorageText},
		{OID: pgtype.InetOID, Name: "inet", Storage: StorageText},
		{OID: pgtype.CIDROID, Name: "cidr", Storage: StorageText},
		{OID: pgtype.MacaddrOID, Name: "macaddr", Storage: StorageText},
		{OID: Macaddr8OID, Name: "macaddr8", Storage: StorageText},
		{OID: pgtype.BitOID, Name: "bit", Storage: StorageText},
		{OID: pgtype.VarbitOID, Name: "varbit", Storage: StorageText},
		{OID: Int4rangeOID, Name: "int4range", Storage: StorageText},
		{OID: Int8rangeOID, Name: "int8range", Storage: StorageText},
		{OID: NumrangeOID, Name: "numrange", Storage: StorageText},
		{OID: TsvectorOID, Name: "tsvector", Storage: StorageText},
		{OID: TsqueryOID, Name: "tsquery", Storage: StorageText},
		{OID: RegconfigOID, Name: "regconfig", Storage: StorageText},

		{OID: pgtype.BoolArrayOID, Name: "_bool", Storage: StorageText, IsArray: true, ElemOID: pgtype.BoolOID},
		{OID: pgtype.Int2ArrayOID, Name: "_int2", Storage: StorageText, IsArray: true, ElemOID: pgtype.Int2OID},
		{OID: pgtype.Int4ArrayOID, Name: "_int4", Storage: StorageText, IsArray: true, ElemOID: pgtype.Int4OID},
		{OID: pgtype.Int8ArrayOID, Name: "_int8", Storage: StorageText, IsArray: true, ElemOID: pgtype.Int8OID},
		{OID: pgtype.TextArrayOID, Name: "_text", Storage: StorageText, IsArray: true, ElemOID: pgtype.TextOID},
		{OID: pgtype.VarcharArrayOID, Name: "_varchar", Storage: StorageText, IsArray: true, ElemOID: pgtype.VarcharOID},
		{OID: pgtype.Float4ArrayOID, Name: "_float4", Storage: StorageText, IsArray: true, ElemOID: pgtype.Float4OID},
		{OID: pgtype.Float8ArrayOID, Name: "_float8", Storage: StorageText, IsArray: true, ElemOID: pgtype.Float8OID},
	}
}

// SQLiteDeclToOID maps a SQLite-side declared type keyword (as produced by
// the CREATE TABLE translator, spec §4.5 stage 2) to the OID the row
// description should report.
func SQLiteDeclToOID(decl string) uint32 {
	switch decl {
	case "INTEGER", "INT":
		return pgtype.Int8OID
	case "REAL", "DOUBLE":
		return pgtype.Float8OID
	case "BLOB":
		return pgtype.ByteaOID
	case "DECIMAL":
		return pgtype.NumericOID
	default:
		return pgtype.TextOID
	}
}
