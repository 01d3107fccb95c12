package pgwire

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/pgsqlite/pgsqlite/pkg/cache"
	"github.com/pgsqlite/pgsqlite/pkg/db"
	"github.com/pgsqlite/pgsqlite/pkg/executor"
	"github.com/pgsqlite/pgsqlite/pkg/parser"
	"github.com/pgsqlite/pgsqlite/pkg/store"
	"github.com/pgsqlite/pgsqlite/pkg/translator"
	"github.com/pgsqlite/pgsqlite/pkg/util/command"
	"github.com/pgsqlite/pgsqlite/pkg/util/pgerror"
	"github.com/pgsqlite/pgsqlite/pkg/wire"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgproto3"
	"github.com/jackc/pgx/v5/pgtype"
)

// Transaction status byte values, sent verbatim as ReadyForQuery.TxStatus
// (spec.md §3, §4.8, §5): Idle (no transaction), InTransaction (inside an
// open BEGIN block), and Failed (inside a BEGIN block that hit an error
// and is refusing everything but ROLLBACK/ROLLBACK TO).
const (
	txIdle   byte = 'I'
	txActive byte = 'T'
	txFailed byte = 'E'
)

// ClientConn represents one database client session: its raw network
// connection, the embedded SQLite database it's bound to, and the
// prepared statements/portals it has registered via the Extended Query
// protocol.
type ClientConn struct {
	net.Conn
	backend *pgproto3.Backend
	db      *db.Database
	exec    *store.LocalQueryExecutor
	ex      *executor.Executor
	tiers   *cache.Tiers

	// Value types encoding and decoding.
	typeMap *pgtype.Map

	// Map of prepared statements for this client session.
	prepStmts map[string]*PreparedStatement

	// Map of prepared portals for this client session.
	portals map[string]*PreparedPortal

	// Forcing to send data in Text format is required when this is a connection from psql client.
	textDataOnly bool

	// txStatus is this session's transaction status, reported on every
	// ReadyForQuery (spec.md §5). Starts Idle and is updated by
	// noteTxOutcome as BEGIN/COMMIT/ROLLBACK and statement errors occur.
	txStatus byte

	// syncFailed marks the Extended Query message group as aborted: set
	// by reportSyncError when a Parse/Bind/Describe/Execute fails, it
	// causes serveConn to silently discard further Extended Query
	// messages until the next Sync, which alone replies ReadyForQuery
	// (spec.md §4.9 Sync / error recovery).
	syncFailed bool
}

// noteTxOutcome advances txStatus after a transaction-control or ordinary
// statement runs, following Postgres's convention (spec.md §5, §7): BEGIN
// opens a transaction, COMMIT/ROLLBACK close one, and any error while
// InTransaction moves the session to Failed until an explicit ROLLBACK
// clears it. A command that itself errored leaves the status alone
// except for that Failed transition, since Postgres only warns (rather
// than erroring) on things like a redundant BEGIN.
func (conn *ClientConn) noteTxOutcome(cmdType command.SQLCommandType, err error) {
	switch cmdType {
	case command.BEGIN:
		if err == nil {
			conn.txStatus = txActive
		}
	case command.COMMIT, command.ROLLBACK:
		if err == nil {
			conn.txStatus = txIdle
		}
	default:
		if err != nil && conn.txStatus == txActive {
			conn.txStatus = txFailed
		}
	}
}

// readyForQuery builds a ReadyForQuery reporting this session's current
// transaction status.
func (conn *ClientConn) readyForQuery() *pgproto3.ReadyForQuery {
	return &pgproto3.ReadyForQuery{TxStatus: conn.txStatus}
}

// reportSyncError writes err to the client as an ErrorResponse and marks
// the Extended Query message group failed, per spec.md §4.9: subsequent
// Parse/Bind/Describe/Execute messages are discarded until Sync, which
// alone emits ReadyForQuery. Any error encountered while InTransaction
// also moves the session to Failed, matching Postgres aborting the whole
// transaction on the first error inside it.
func (conn *ClientConn) reportSyncError(err error) error {
	conn.syncFailed = true
	if conn.txStatus == txActive {
		conn.txStatus = txFailed
	}
	return writeMessages(conn, &pgproto3.ErrorResponse{Message: err.Error(), Code: pgerror.GetPGCode(err)})
}

func timer(name string) func() {
	start := time.Now()
	return func() {
		completed := time.Since(start)
		if completed.Milliseconds() > 10 {
			fmt.Printf("%s took %v\n", name, completed)
		}
	}
}

func NewClientConn(conn net.Conn, tiers *cache.Tiers) *ClientConn {
	return &ClientConn{
		Conn:         conn,
		backend:      pgproto3.NewBackend(conn, conn),
		prepStmts:    map[string]*PreparedStatement{},
		portals:      map[string]*PreparedPortal{},
		typeMap:      pgtype.NewMap(),
		tiers:        tiers,
		textDataOnly: false,
		txStatus:     txIdle,
	}
}

// Respond to ping queries.
func (conn *ClientConn) handlePing(msg *pgproto3.Query) (bool, error) {
	if strings.HasPrefix(msg.String, "--") && strings.HasSuffix(msg.String, "ping") {
		return true, writeMessages(conn,
			&pgproto3.CommandComplete{CommandTag: []byte("SELECT 1")},
			conn.readyForQuery())
	}

	return false, nil
}

// Respond to create database queries.
func (conn *ClientConn) handleCreateDB(msg *pgproto3.Query) (bool, error) {
	if strings.HasPrefix(msg.String, "CREATE DATABASE") {
		return true, writeMessages(conn,
			&pgproto3.CommandComplete{CommandTag: []byte("CREATE DATABASE")},
			conn.readyForQuery())
	}

	return false, nil
}

func (conn *ClientConn) executor() *executor.Executor {
	if conn.exec == nil {
		conn.exec = store.CreateLocalExecutor(conn.db)
		conn.ex = executor.New(conn.exec, conn.tiers)
	}
	return conn.ex
}

// translatedQuery is what the translation cache stores: the rewritten SQL
// text plus the stage metadata, tagged with the schema version it was
// produced under so a later DDL statement invalidates it implicitly.
type translatedQuery struct {
	sql           string
	meta          *translator.Metadata
	schemaVersion uint64
}

// translate runs the incoming client SQL text through the system-function
// rewrite pass and then the query translation pipeline (comment stripping,
// DDL/datetime/array-JSON/FTS/decimal/numeric-format/batch-update
// rewriting, and cast analysis), against this session's schema metadata
// store. Results are cached by literal-preserving fingerprint (spec.md
// §4.6's translation cache): two statements differing only by literal
// value still get distinct cache entries since the rewritten SQL text
// embeds those literals verbatim.
func (conn *ClientConn) translate(sql string) (string, *translator.Metadata, error) {
	rewritten := parser.RewriteQuery(sql)
	store := conn.db.Schema()
	version := store.SchemaVersion()

	if conn.tiers != nil {
		key := cache.FingerprintWithLiterals(rewritten)
		if cached, ok := conn.tiers.Translation.Get(key); ok {
			tq := cached.(translatedQuery)
			if tq.schemaVersion == version {
				return tq.sql, tq.meta, nil
			}
		}

		out, meta, err := translator.Translate(rewritten, store)
		if err != nil {
			return out, meta, err
		}
		conn.tiers.Translation.Put(key, translatedQuery{sql: out, meta: meta, schemaVersion: version})
		return out, meta, nil
	}

	return translator.Translate(rewritten, store)
}

// paramTypesEntry is what the ParamType cache tier stores: the inferred
// parameter OIDs for a statement's $n placeholders, tagged with the
// schema version they were inferred under (spec.md §4.6).
type paramTypesEntry struct {
	oids          []uint32
	schemaVersion uint64
}

// lookupParamTypes infers parameter OIDs for a Parse message that didn't
// supply its own, consulting the ParamType cache tier before falling back
// to db.LookupTypeInfo's sqlite_master query — the same schema-version
// invalidation scheme translate uses for the translation cache.
func (conn *ClientConn) lookupParamTypes(ctx context.Context, sql string, columns, tables []string) ([]uint32, error) {
	if conn.tiers == nil {
		return db.LookupTypeInfo(ctx, conn.db, columns, tables)
	}

	version := conn.db.Schema().SchemaVersion()
	key := cache.Fingerprint(sql)
	if cached, ok := conn.tiers.ParamType.Get(key); ok {
		entry := cached.(paramTypesEntry)
		if entry.schemaVersion == version {
			return entry.oids, nil
		}
	}

	oids, err := db.LookupTypeInfo(ctx, conn.db, columns, tables)
	if err != nil {
		return nil, err
	}
	conn.tiers.ParamType.Put(key, paramTypesEntry{oids: oids, schemaVersion: version})
	return oids, nil
}

// Handle the Simple Query protocol.
func (conn *ClientConn) handleQuery(ctx context.Context, msg *pgproto3.Query) error {
	defer timer("handleQuery")()

	if handled, err := conn.handlePing(msg); handled || err != nil {
		return err
	}

	if handled, err := conn.handleCreateDB(msg); handled || err != nil {
		return err
	}

	// Rewrite system-information queries, then run the translation pipeline.
	query, _, err := conn.translate(msg.String)
	if errors.Is(err, translator.ErrEmptyQuery) {
		return writeMessages(conn,
			&pgproto3.EmptyQueryResponse{},
			conn.readyForQuery(),
		)
	}
	if err != nil {
		log.Printf("translate query error: %s, err: %s\n", msg.String, err.Error())
		return writeMessages(conn,
			&pgproto3.ErrorResponse{Message: err.Error()},
			conn.readyForQuery(),
		)
	}

	// Extract all statements present in the SQL query and do a syntax validation.
	parserResult, err := parser.Parse(query)
	if err != nil {
		log.Printf("internal parse query error: %s, err: %s\n", query, err.Error())
		return writeMessages(conn,
			&pgproto3.ErrorResponse{Message: err.Error()},
			conn.readyForQuery(),
		)
	}

	// Convert parser result to database statements.
	var statements []store.Statement
	for _, result := range parserResult {
		statements = append(statements, store.Statement{
			Query:       result.Sql,
			CmdType:     command.ConvertToStmtCmd(result),
			ReturnsRows: result.ReturnsRows,
		})
	}

	if len(statements) == 0 {
		return writeMessages(conn, conn.readyForQuery())
	}

	// Run each statement individually rather than as one batched Request,
	// so a session already in the Failed transaction state can reject a
	// statement up front without it ever reaching the storage engine. The
	// first statement that fails (rejected or executed) gets an
	// ErrorResponse and the rest of the Query's statements are skipped.
	for _, stmt := range statements {
		if conn.txStatus == txFailed && stmt.CmdType != command.ROLLBACK {
			failErr := pgerror.New(pgerrcode.InFailedSQLTransaction,
				"current transaction is aborted, commands ignored until end of transaction block")
			if err := writeMessages(conn, &pgproto3.ErrorResponse{
				Message: failErr.Error(), Code: pgerror.GetPGCode(failErr),
			}); err != nil {
				return err
			}
			break
		}

		// Classify against the Plan cache tier; fast-path eligibility is
		// acted on in handleParse, the Extended Query protocol's single-
		// statement entry point, where skipping the translator pipeline
		// is unambiguous. Here it still seeds the cache for that path.
		conn.executor().Classify(stmt, conn.db.Schema())

		response, err := conn.executor().Request(ctx, []store.Statement{stmt})
		if err != nil {
			log.Printf("execute query, err: %s\n", err.Error())
			conn.noteTxOutcome(stmt.CmdType, err)
			if err := writeMessages(conn, &pgproto3.ErrorResponse{
				Message: err.Error(), Code: pgerror.GetPGCode(err),
			}); err != nil {
				return err
			}
			break
		}

		resp := response[0]
		conn.noteTxOutcome(stmt.CmdType, resp.Error)

		// Handle error from a single statement execution.
		if resp.Error != nil {
			log.Printf("query %s, execute stmt error: %s\n", query, resp.Error.Error())
			if err := writeMessages(conn, &pgproto3.ErrorResponse{
				Message: resp.Error.Error(), Code: pgerror.GetPGCode(resp.Error),
			}); err != nil {
				return err
			}
			break
		}

		var buf []byte
		pooled := false
		if resp.Rows != nil {
			defer resp.Rows.Close()
			// Encode result rows to PG wire data rows.
			var n int
			buf, n, err = encodeRowsNew(resp.Rows, conn.typeMap, conn.textDataOnly)
			if err != nil {
				return err
			}
			pooled = true
			// Send command complete along with the result data.
			tag := executor.BuildCommandTag(command.SELECT, int64(n))
			buf, _ = (&pgproto3.CommandComplete{CommandTag: []byte(tag)}).Encode(buf)
		} else {
			// Send the command tag and complete response.
			buf, _ = (&pgproto3.CommandComplete{CommandTag: []byte(resp.CommandTag)}).Encode(buf)
		}

		_, err = conn.Write(buf)
		if pooled {
			framePool.Release(buf)
		}
		if err != nil {
			return err
		}
	}

	// Complete the response with sending 'Ready for Query'.
	return writeMessages(conn, conn.readyForQuery())
}

// Handle the Extended Query protocol Close message.
func (conn *ClientConn) handleClose(ctx context.Context, msg *pgproto3.Close) error {
	defer timer("handleClose")()

	switch msg.ObjectType {
	case PrepareStatementType:
		_, found := conn.prepStmts[msg.Name]
		if !found {
			// The spec says "It is not an error to issue Close against a nonexistent
			// statement or portal name". See
			// https://www.postgresql.org/docs/current/static/protocol-flow.html.
			break
		}
		conn.deletePreparedStmt(msg.Name)
	case PreparePortalType:
		_, found := conn.portals[msg.Name]
		if !found {
			break
		}
		conn.deletePortal(msg.Name)
	default:
		return fmt.Errorf("unknown del type: %v", msg.ObjectType)
	}
	return nil
}

// Handle the Extended Query protocol Execute message. A portal's first
// Execute actually runs its statement; if it returns rows, up to
// msg.MaxRows of them are sent and the portal's cursor, row offset, and
// whether it's fully drained are kept on PreparedPortal.execState so a
// later Execute against the same portal resumes instead of re-running the
// statement (spec.md §4.7, §4.9 Execute).
func (conn *ClientConn) handleExecute(ctx context.Context, msg *pgproto3.Execute) error {
	defer timer("handleExecute")()

	portalName := msg.Portal
	portal, found := conn.portals[portalName]
	if !found {
		return pgerror.New(
			pgerrcode.InvalidCursorName, fmt.Sprintf("unknown portal %q", portalName))
	}

	cmdType := portal.Prepared.Stmt.CmdType
	if conn.txStatus == txFailed && cmdType != command.ROLLBACK {
		return pgerror.New(pgerrcode.InFailedSQLTransaction,
			"current transaction is aborted, commands ignored until end of transaction block")
	}

	if portal.execState == nil {
		stmt := *portal.Prepared.Stmt
		stmt.Parameters = portal.Qargs

		response, err := conn.executor().Request(ctx, []store.Statement{stmt})
		if err != nil {
			log.Printf("Error from query %s\n", err.Error())
			conn.noteTxOutcome(cmdType, err)
			return err
		}

		resp := response[0]
		conn.noteTxOutcome(cmdType, resp.Error)
		if resp.Error != nil {
			log.Printf("Error from statement %s\n", resp.Error.Error())
			return resp.Error
		}

		state := &portalExecState{}
		if resp.Rows != nil {
			cols, err := resp.Rows.ColumnTypes()
			if err != nil {
				resp.Rows.Close()
				return err
			}
			state.hasRows = true
			state.rows = resp.Rows
			state.cols = cols
		} else {
			state.complete = true
			state.cmdTag = resp.CommandTag
		}
		portal.execState = state
	}

	state := portal.execState

	if !state.hasRows {
		return writeMessages(conn, &pgproto3.CommandComplete{CommandTag: []byte(state.cmdTag)})
	}

	if state.complete {
		tag := executor.BuildCommandTag(command.SELECT, int64(state.rowCount))
		return writeMessages(conn, &pgproto3.CommandComplete{CommandTag: []byte(tag)})
	}

	limit := int(msg.MaxRows)
	bw := wire.NewBatchingWriter(conn, framePool)

	sent := 0
	for limit <= 0 || sent < limit {
		var row *pgproto3.DataRow
		if state.pending != nil {
			row = state.pending
			state.pending = nil
		} else {
			if !state.rows.Next() {
				break
			}
			var err error
			row, err = scanRowNew(state.rows, state.cols, conn.typeMap, &state.oids, conn.textDataOnly)
			if err != nil {
				state.rows.Close()
				return err
			}
		}

		if err := bw.Send(row); err != nil {
			return err
		}
		sent++
		state.rowCount++
	}

	if limit > 0 && sent >= limit && state.rows.Next() {
		// Peek one row ahead so an Execute landing exactly on the last
		// row doesn't spuriously suspend; the peeked row is cached and
		// emitted first on the next Execute against this portal.
		row, err := scanRowNew(state.rows, state.cols, conn.typeMap, &state.oids, conn.textDataOnly)
		if err != nil {
			state.rows.Close()
			return err
		}
		state.pending = row
		return bw.Send(&pgproto3.PortalSuspended{})
	}

	state.rows.Close()
	state.complete = true
	tag := executor.BuildCommandTag(command.SELECT, int64(state.rowCount))
	if err := bw.Send(&pgproto3.CommandComplete{CommandTag: []byte(tag)}); err != nil {
		return err
	}
	return bw.Flush()
}

// Handle the Extended Query protocol Bind message.
func (conn *ClientConn) handleBind(ctx context.Context, msg *pgproto3.Bind) error {
	defer timer("handleBind")()

	prepared, found := conn.prepStmts[msg.PreparedStatement]
	if !found {
		return pgerror.New(
			pgerrcode.InvalidSQLStatementName, fmt.Sprintf("prepared statement %q does not exist", msg.PreparedStatement))
	}

	portalName := msg.DestinationPortal
	if portalName != "" {
		if _, ok := conn.portals[portalName]; ok {
			return pgerror.New(
				pgerrcode.DuplicateCursor, fmt.Sprintf("portal %q already exists", portalName))
		}
	} else {
		// Deallocate the unnamed portal, if it exists.
		conn.deletePortal("")
	}

	// Decode parameters values for the target statement.
	params := parametersToValues(msg.Parameters, prepared.ParamOIDs)

	// Bind portal with statement parameters.
	if err := conn.addPortal(portalName, prepared, params); err != nil {
		return err
	}

	// Send back the response message.
	return writeMessages(conn, &pgproto3.BindComplete{})
}

// Handle the Extended Query protocol Sync message: clear the error-skip
// mode any prior Parse/Bind/Describe/Execute failure set and reply with
// the session's current transaction status (spec.md §4.9 Sync).
func (conn *ClientConn) handleSync(ctx context.Context, msg *pgproto3.Sync) error {
	defer timer("handleSync")()
	conn.syncFailed = false
	return writeMessages(conn, conn.readyForQuery())
}

// Queue the row description (or NoData) for a prepared statement onto bw,
// used mainly for returning results on Describe message.
func writePreparedRowDescription(bw *wire.BatchingWriter, prepared *PreparedStatement) error {
	if bw == nil || prepared == nil {
		return nil
	}

	if prepared.Stmt.ReturnsRows {
		if len(prepared.Fields) != 0 {
			return bw.Send(toRowDescription(prepared.Fields))
		}
		// No information present for the rows, send empty row description.
		return bw.Send(&pgproto3.RowDescription{})
	}

	// Statement is not returning rows, send NoData.
	return bw.Send(&pgproto3.NoData{})
}

// Handle the Extended Query protocol Describe message. ParameterDescription
// and the row description/NoData that follows it are always sent together,
// so they're queued onto one BatchingWriter and flushed as a single socket
// write instead of two (spec.md §4.11).
func (conn *ClientConn) handleDescribe(ctx context.Context, msg *pgproto3.Describe) error {
	defer timer("handleDescribe")()

	bw := wire.NewBatchingWriter(conn, framePool)

	switch msg.ObjectType {
	case PrepareStatementType:
		prepared, ok := conn.prepStmts[msg.Name]
		if !ok {
			return pgerror.New(
				pgerrcode.InvalidSQLStatementName, fmt.Sprintf("prepared statement %q does not exist", msg.Name))
		}

		if err := bw.Send(&pgproto3.ParameterDescription{ParameterOIDs: prepared.ParamOIDs}); err != nil {
			return err
		}
		if err := writePreparedRowDescription(bw, prepared); err != nil {
			return err
		}
		return bw.Flush()

	case PreparePortalType:
		portal, ok := conn.portals[msg.Name]
		if !ok {
			return pgerror.New(
				pgerrcode.InvalidCursorName, fmt.Sprintf("unknown portal %q", msg.Name))
		}

		if err := bw.Send(&pgproto3.ParameterDescription{ParameterOIDs: portal.Prepared.ParamOIDs}); err != nil {
			return err
		}
		if err := writePreparedRowDescription(bw, portal.Prepared); err != nil {
			return err
		}
		return bw.Flush()

	default:
		return pgerror.New(
			pgerrcode.ProtocolViolation, fmt.Sprintf("invalid DESCRIBE message subtype %x", msg.ObjectType),
		)
	}
}

// Handle the Extended Query protocol Parse message. Classification runs on
// the system-function-rewritten text before the translator pipeline does
// (spec.md §4.8 Executor Core): a statement the classifier marks fast-path
// eligible skips translator.Translate entirely, since its datetime/array-
// JSON/FTS/decimal/batch-update rewriting and cast analysis are no-ops for
// a single-table statement with no RETURNING clause and no NUMERIC column
// in scope. Everything else still runs the full pipeline.
func (conn *ClientConn) handleParse(ctx context.Context, msg *pgproto3.Parse) error {
	defer timer("handleParse")()

	rewritten := parser.RewriteQuery(msg.Query)
	rawResult, err := parser.Parse(rewritten)
	if err != nil {
		log.Printf("Error parsing query %s\n", rewritten)
		return err
	}
	if len(rawResult) != 1 {
		return pgerror.New(pgerrcode.InvalidPreparedStatementDefinition,
			"wrong number of prepared statements or invalid statement")
	}

	candidate := store.Statement{
		Query:       rawResult[0].Sql,
		CmdType:     command.ConvertToStmtCmd(rawResult[0]),
		ReturnsRows: rawResult[0].ReturnsRows,
	}
	_, fastPath := conn.executor().Classify(candidate, conn.db.Schema())

	query := candidate.Query
	parserResult := rawResult
	if !fastPath {
		// Rewrite system-information queries, then run the translation pipeline.
		query, _, err = conn.translate(msg.Query)
		if err != nil {
			log.Printf("Error translating query %s\n", msg.Query)
			return err
		}

		// Validate syntax and extract statement parameter names.
		parserResult, err = parser.Parse(query)
		if err != nil {
			log.Printf("Error parsing query %s\n", query)
			return err
		}

		// The query string contained in a Parse message cannot include more
		// than one SQL statement; else a syntax error is reported.
		if len(parserResult) != 1 {
			return pgerror.New(pgerrcode.InvalidPreparedStatementDefinition,
				"wrong number of prepared statements or invalid statement")
		}
	}

	// Convert parser result to a database statement.
	stmt := &store.Statement{
		Query:       parserResult[0].Sql,
		CmdType:     command.ConvertToStmtCmd(parserResult[0]),
		ReturnsRows: parserResult[0].ReturnsRows,
	}

	// Check if Parse message contains any parameter type hints.
	var paramTypes []uint32
	if len(msg.ParameterOIDs) == 0 {
		paramTypes, err = conn.lookupParamTypes(ctx, stmt.Query, parserResult[0].ArgColumns, parserResult[0].Tables)
		if err != nil {
			return err
		}
	} else {
		paramTypes = msg.ParameterOIDs
	}

	// Create prepared statement and add it to the session cache.
	if _, err := conn.addPreparedStatement(msg.Name, stmt, paramTypes); err != nil {
		return err
	}

	// Parsing complete.
	return writeMessages(conn, &pgproto3.ParseComplete{})
}
