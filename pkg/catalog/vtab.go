package catalog

import (
	"fmt"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// staticRow is one row of a static catalog virtual table, indexed the same
// way as the table's declared column order.
type staticRow []any

// staticModule implements sqlite3.Module for a read-only catalog table whose
// rows are computed by rowsFunc each time a cursor is opened. It generalizes the
// teacher's PGDatabaseModule/PGDatabaseTable/PGDatabaseCursor pattern
// (pkg/catalog/pg_database.go) to the rest of the pg_catalog subset named
// in spec.md §6, instead of hand-duplicating that boilerplate per table.
type staticModule struct {
	createSQL string
	rowsFunc  func() ([]staticRow, error)
}

func (m *staticModule) Create(c *sqlite3.SQLiteConn, args []string) (sqlite3.VTab, error) {
	if err := c.DeclareVTab(fmt.Sprintf(m.createSQL, args[0])); err != nil {
		return nil, err
	}
	return &staticTable{rowsFunc: m.rowsFunc}, nil
}

func (m *staticModule) Connect(c *sqlite3.SQLiteConn, args []string) (sqlite3.VTab, error) {
	return m.Create(c, args)
}

func (m *staticModule) DestroyModule() {}

type staticTable struct {
	rowsFunc func() ([]staticRow, error)
}

func (t *staticTable) Open() (sqlite3.VTabCursor, error) {
	rows, err := t.rowsFunc()
	if err != nil {
		return nil, err
	}
	return &staticCursor{rows: rows}, nil
}

func (t *staticTable) BestIndex(cst []sqlite3.InfoConstraint, ob []sqlite3.InfoOrderBy) (*sqlite3.IndexResult, error) {
	return &sqlite3.IndexResult{Used: make([]bool, len(cst))}, nil
}

func (t *staticTable) Disconnect() error { return nil }
func (t *staticTable) Destroy() error    { return nil }

type staticCursor struct {
	index int
	rows  []staticRow
}

func (c *staticCursor) Column(sctx *sqlite3.SQLiteContext, col int) error {
	if c.index >= len(c.rows) || col >= len(c.rows[c.index]) {
		sctx.ResultNull()
		return nil
	}
	switch v := c.rows[c.index][col].(type) {
	case nil:
		sctx.ResultNull()
	case int:
		sctx.ResultInt(v)
	case int32:
		sctx.ResultInt(int(v))
	case int64:
		sctx.ResultInt64(v)
	case bool:
		if v {
			sctx.ResultInt(1)
		} else {
			sctx.ResultInt(0)
		}
	case float64:
		sctx.ResultDouble(v)
	case string:
		sctx.ResultText(v)
	default:
		sctx.ResultText(fmt.Sprintf("%v", v))
	}
	return nil
}

func (c *staticCursor) Filter(idxNum int, idxStr string, vals []interface{}) error {
	c.index = 0
	return nil
}

func (c *staticCursor) Next() error {
	c.index++
	return nil
}

func (c *staticCursor) EOF() bool { return c.index >= len(c.rows) }

func (c *staticCursor) Rowid() (int64, error) { return int64(c.index), nil }

func (c *staticCursor) Close() error { return nil }

// quoteIdentList joins column names for a CREATE TABLE declaration.
func quoteIdentList(cols []string) string {
	return strings.Join(cols, ", ")
}
