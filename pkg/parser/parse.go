package parser

import (
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// ParserStmtResult is what Parse produces for one top-level SQL statement:
// the command/transaction kind (used by pkg/util/command to classify it),
// whether it returns rows, the tables it touches, and the columns its
// positional parameters ($1, $2, ...) bind to, in parameter order.
type ParserStmtResult struct {
	Sql         string
	ReturnsRows bool
	ArgColumns  []string
	Tables      []string
	TxCmd       pg_query.TransactionStmtKind
	SqlCmd      pg_query.CmdType
}

// Parse parses sql (already in PostgreSQL syntax with $n parameter
// placeholders) into one ParserStmtResult per top-level statement.
func Parse(sql string) ([]ParserStmtResult, error) {
	if sql == "" {
		return nil, nil
	}

	tree, err := pg_query.Parse(sql)
	if err != nil {
		return nil, fmt.Errorf("parse query: %w", err)
	}

	results := make([]ParserStmtResult, 0, len(tree.Stmts))
	for _, raw := range tree.Stmts {
		result, err := parseStmt(sql, raw.Stmt)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func parseStmt(sql string, node *pg_query.Node) (ParserStmtResult, error) {
	result := ParserStmtResult{Sql: sql}
	collector := newStatementCollector()

	switch n := node.Node.(type) {
	case *pg_query.Node_SelectStmt:
		result.SqlCmd = pg_query.CmdType_CMD_SELECT
		result.ReturnsRows = true
		if err := Walk(collector, node); err != nil {
			return result, err
		}

	case *pg_query.Node_InsertStmt:
		result.SqlCmd = pg_query.CmdType_CMD_INSERT
		result.ReturnsRows = len(n.InsertStmt.ReturningList) > 0
		collector.addTable(relnameOf(n.InsertStmt.Relation))

		if err := Walk(collector, node); err != nil {
			return result, err
		}
		if cols, ok := directValuesColumns(n.InsertStmt); ok {
			collector.argColumns = cols
		}

	case *pg_query.Node_UpdateStmt:
		result.SqlCmd = pg_query.CmdType_CMD_UPDATE
		result.ReturnsRows = len(n.UpdateStmt.ReturningList) > 0
		collector.addTable(relnameOf(n.UpdateStmt.Relation))
		if err := Walk(collector, node); err != nil {
			return result, err
		}

	case *pg_query.Node_DeleteStmt:
		result.SqlCmd = pg_query.CmdType_CMD_DELETE
		result.ReturnsRows = len(n.DeleteStmt.ReturningList) > 0
		collector.addTable(relnameOf(n.DeleteStmt.Relation))
		if err := Walk(collector, node); err != nil {
			return result, err
		}

	case *pg_query.Node_TransactionStmt:
		result.TxCmd = n.TransactionStmt.Kind

	default:
		if err := Walk(collector, node); err != nil {
			return result, err
		}
	}

	result.Tables = collector.tables
	if collector.argColumns != nil {
		result.ArgColumns = collector.argColumns
	} else {
		result.ArgColumns = collector.orderedParamColumns()
	}
	return result, nil
}

func relnameOf(rv *pg_query.RangeVar) string {
	if rv == nil {
		return ""
	}
	return rv.Relname
}

// directValuesColumns recognizes "INSERT INTO t(cols...) VALUES (...)" (as
// opposed to "INSERT INTO t(cols...) SELECT ... FROM ..."): when the
// attached select is a bare VALUES list, its rows have no column names of
// their own, so the insert's own column list is the authoritative mapping
// from parameter position to column.
func directValuesColumns(n *pg_query.InsertStmt) ([]string, bool) {
	sel, ok := n.SelectStmt.Node.(*pg_query.Node_SelectStmt)
	if !ok || len(sel.SelectStmt.ValuesLists) == 0 {
		return nil, false
	}
	cols := make([]string, 0, len(n.Cols))
	for _, c := range n.Cols {
		rt, ok := c.Node.(*pg_query.Node_ResTarget)
		if !ok {
			continue
		}
		cols = append(cols, rt.ResTarget.Name)
	}
	return cols, true
}
