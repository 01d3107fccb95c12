package pgwire

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgproto3"

	"github.com/pgsqlite/pgsqlite/pkg/store"
	"github.com/pgsqlite/pgsqlite/pkg/util/pgerror"
)

const (
	// PrepareStatementType represents a prepared statement type.
	PrepareStatementType byte = 'S'
	// PreparePortalType represents a portal message type.
	PreparePortalType byte = 'P'
)

// PreparedPortal is a PreparedStatement that has been bound with query arguments.
type PreparedPortal struct {
	Name     string
	Prepared *PreparedStatement

	// Query arguments.
	Qargs []any

	// execState tracks this portal's progress across a sequence of Execute
	// messages once it has actually been run (spec.md §4.7, §4.9 Execute):
	// nil until the first Execute, after which it holds the live result
	// cursor (or the non-returning statement's command tag) and the row
	// offset a partial fetch resumes from.
	execState *portalExecState
}

// portalExecState is the row_offset/is_complete/cached_result triple
// spec.md §4.9 requires a portal retain so an Execute bounded by MaxRows
// can suspend partway through a result set and resume on the next
// Execute against the same portal, rather than re-running the statement.
type portalExecState struct {
	hasRows bool // the statement returns rows at all

	rows *sql.Rows
	cols []*sql.ColumnType
	oids []uint32

	// pending holds one row already pulled off rows via Next()+Scan while
	// peeking ahead to tell whether the result set is exhausted, to be
	// emitted first on the next Execute instead of being lost.
	pending *pgproto3.DataRow

	rowCount int  // cumulative rows sent across every Execute on this portal
	complete bool // result set fully drained (rows closed) or statement already ran once

	cmdTag string // CommandComplete tag for a non-returning statement
}

// PreparedStatement is a SQL statement that has been parsed and the types
// of arguments and results have been determined.
type PreparedStatement struct {
	Name string
	Stmt *store.Statement

	// Statement param types.
	ParamOIDs []uint32

	// Statement result field types.
	Fields []*sql.ColumnType
}

// addPreparedStmt creates a new PreparedStatement with the provided name, DB statement and statement argument types (OIDs).
// The new prepared statement added is also returned.
// It is illegal to call this when a named statement with that name already
// exists; the unnamed statement ("") is the one exception (spec.md §4.9
// Parse) — drivers re-Parse it constantly, so it's silently replaced
// instead of rejected.
func (conn *ClientConn) addPreparedStatement(
	name string, stmt *store.Statement, paramOids []uint32,
) (*PreparedStatement, error) {
	if name == "" {
		conn.deletePreparedStmt("")
	} else if _, ok := conn.prepStmts[name]; ok {
		return nil, pgerror.New(pgerrcode.DuplicatePreparedStatement, fmt.Sprintf("prepared statement %q already exists", name))
	}

	preparedStmt := &PreparedStatement{
		Name:      name,
		Stmt:      stmt,
		ParamOIDs: paramOids,
	}

	// Add statement to connection cache.
	conn.prepStmts[name] = preparedStmt

	return preparedStmt, nil
}

// addPortal creates a new PreparedPortal in the client session cache.
// It is illegal to call this when a portal with that name already exists (even
// for anonymous portals).
func (conn *ClientConn) addPortal(portalName string, pareparedStmt *PreparedStatement, parameterValues []any) error {
	if _, ok := conn.portals[portalName]; ok {
		return fmt.Errorf("portal already exists: %q", portalName)
	}

	portal := &PreparedPortal{
		Name:     portalName,
		Qargs:    parameterValues,
		Prepared: pareparedStmt,
	}

	// Add portal to connection cache.
	conn.portals[portalName] = portal

	return nil
}

func (conn *ClientConn) deletePreparedStmt(name string) {
	_, found := conn.prepStmts[name]
	if !found {
		return
	}
	delete(conn.prepStmts, name)
}

func (conn *ClientConn) deletePortal(portalName string) {
	portal, found := conn.portals[portalName]
	if !found {
		return
	}
	if portal.execState != nil && portal.execState.rows != nil {
		portal.execState.rows.Close()
	}
	delete(conn.portals, portalName)
}
