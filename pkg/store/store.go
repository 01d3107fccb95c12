package store

import (
	"context"
	"database/sql"

	"github.com/pgsqlite/pgsqlite/pkg/db"
	"github.com/pgsqlite/pgsqlite/pkg/util/command"
)

// Store is the embedded SQLite storage engine backing one session (spec
// §4.8's Executor Core sits on top of this).
type Store struct {
	dbase     *db.Database        // Local sqlite database instance.
	localExec *LocalQueryExecutor // Local query executor/processor, stores the current session transaction.
}

// Common query response for queries and executes.
type QueryResponse struct {
	Rows    *sql.Rows
	CmdType command.SQLCommandType

	// RowsAffected is the row count behind CommandTag; -1 for a
	// statement that returns rows, since the true count isn't known
	// until they're streamed (pkg/pgwire builds the tag then).
	RowsAffected int64

	CommandTag string
	Error      error
}

// Represents a single SQL statement.
type Statement struct {
	// SQL Query text
	Query string

	// SQL Command type (ex. SELECT, INSERT, UPDATE ...)
	CmdType command.SQLCommandType

	// Statement parameter values if any.
	Parameters []any

	// Indicates whether statement returns rows even in case of INSERT, UPDATE or others ..
	ReturnsRows bool
}

func Open(dbconf DBConfig) (*Store, error) {
	var err error
	var dbase *db.Database

	// Open connection to SQLite database.
	if dbase, err = db.Open(dbconf.OnDiskPath, dbconf.FKConstraints, dbconf.WalEnabled); err != nil {
		return nil, err
	}
	return &Store{dbase: dbase}, nil
}

func (s *Store) Close() {
	s.dbase.Close()
}

func (s *Store) GetDatabase() *db.Database {
	return s.dbase
}

func (s *Store) Request(ctx context.Context, statements []Statement) ([]QueryResponse, error) {
	if s.localExec == nil {
		s.localExec = CreateLocalExecutor(s.dbase)
	}
	return s.localExec.Request(ctx, statements)
}
