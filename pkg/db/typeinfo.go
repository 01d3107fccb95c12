package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Typemap maps SQLite storage-class/declared-type names to the PostgreSQL
// OID the wire protocol should report for a column declared with that type.
func Typemap() map[string]uint32 {
	return map[string]uint32{
		// Integer
		"INT":              pgtype.Int8OID,
		"INTEGER":          pgtype.Int8OID,
		"TINYINT":          pgtype.Int2OID,
		"SMALLINT":         pgtype.Int4OID,
		"MEDIUMINT":        pgtype.Int4OID,
		"BIGINT":           pgtype.Int8OID,
		"UNSIGNED BIG INT": pgtype.Int8OID,
		"INT2":             pgtype.Int2OID,
		"INT8":             pgtype.Int8OID,
		// String
		"CHARACTER(20)":          pgtype.TextOID,
		"VARCHAR(255)":           pgtype.VarcharOID,
		"VARYING CHARACTER(255)": pgtype.VarcharOID,
		"NCHAR(55)":              pgtype.TextOID,
		"NATIVE CHARACTER(70)":   pgtype.TextOID,
		"NVARCHAR(100)":          pgtype.TextOID,
		"TEXT":                   pgtype.TextOID,
		"CLOB":                   pgtype.TextOID,
		// Binary
		"BLOB": pgtype.ByteaOID,
		// Floating point
		"REAL":             pgtype.Float8OID,
		"DOUBLE":           pgtype.Float8OID,
		"DOUBLE PRECISION": pgtype.Float8OID,
		"FLOAT":            pgtype.Float8OID,
		// Numeric
		"NUMERIC":       pgtype.NumericOID,
		"DECIMAL(10,5)": pgtype.NumericOID,
		// Boolean
		"BOOLEAN": pgtype.BoolOID,
		// Date/timestamp
		"DATE":      pgtype.DateOID,
		"TIMESTAMP": pgtype.TimestampOID,
		"DATETIME":  pgtype.TextOID,
	}
}

func joinElemNames(elems []string) string {
	var result string

	elemsLen := len(elems)
	if elemsLen == 0 {
		return result
	}
	for idx := range elems {
		if idx < (elemsLen - 1) {
			result += fmt.Sprintf("'%s', ", elems[idx])
		} else {
			result += fmt.Sprintf("'%s'", elems[idx])
		}
	}
	return result
}

// LookupTypeInfo looks up each column's declared SQLite type by checking the
// provided list of tables if given, otherwise checking all tables, and
// returns the corresponding PostgreSQL OID compatible with the wire protocol.
func LookupTypeInfo(ctx context.Context, dbase *Database, columns, tables []string) ([]uint32, error) {
	var columnTypes []uint32
	if len(columns) == 0 || dbase == nil {
		return columnTypes, nil
	}

	sqlText := `WITH tables AS (SELECT name tableName, sql
			    FROM sqlite_master WHERE type = 'table' `
	// Apply a table filter if a specific set of tables is provided.
	if len(tables) != 0 {
		tableSet := joinElemNames(tables)
		sqlText += fmt.Sprintf("AND tableName IN (%s)) ", tableSet)
	} else {
		sqlText += `AND tableName NOT LIKE 'sqlite_%') `
	}

	fieldSet := joinElemNames(columns)
	sqlText += `SELECT fields.name, fields.type
				FROM tables CROSS JOIN pragma_table_info(tables.tableName) fields WHERE `
	sqlText += fmt.Sprintf("fields.name IN (%s) GROUP BY fields.name;", fieldSet)

	rows, err := dbase.QueryContext(ctx, sqlText)
	if err != nil {
		return columnTypes, err
	}
	defer rows.Close()

	// Get column name with corresponding type from the row result.
	columnDBInfo := map[string]string{}
	for rows.Next() {
		var colName, colType string
		if err := rows.Scan(&colName, &colType); err != nil {
			return columnTypes, err
		}
		columnDBInfo[colName] = colType
	}
	if err := rows.Err(); err != nil {
		return columnTypes, err
	}

	// Match column name and type with provided column arguments.
	for _, colName := range columns {
		if colType, found := columnDBInfo[colName]; found {
			if pgColtype, exists := Typemap()[colType]; exists {
				columnTypes = append(columnTypes, pgColtype)
			} else {
				// Default to TextOID when the declared type can't be mapped.
				columnTypes = append(columnTypes, pgtype.TextOID)
			}
		} else {
			// Anonymous parameter present; fall back on a couple of common hints.
			switch colName {
			case "boolean":
				columnTypes = append(columnTypes, pgtype.BoolOID)
			case "blob":
				columnTypes = append(columnTypes, pgtype.ByteaOID)
			}
		}
	}

	return columnTypes, nil
}

// ValueToOID guesses the PostgreSQL OID that best matches a Go value's
// dynamic type, used when a column's declared type isn't known.
func ValueToOID(value any) uint32 {
	switch value.(type) {
	case int, int64:
		return pgtype.Int8OID
	case int16:
		return pgtype.Int2OID
	case int32:
		return pgtype.Int4OID
	case float32:
		return pgtype.Float4OID
	case float64:
		return pgtype.Float8OID
	case bool:
		return pgtype.BoolOID
	case string:
		return pgtype.TextOID
	case []byte:
		return pgtype.ByteaOID
	case time.Time:
		return pgtype.TimestampOID
	case nil:
		return pgtype.UnknownOID
	default:
		return pgtype.TextOID
	}
}
