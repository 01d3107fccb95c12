package translator

import (
	"regexp"
	"strings"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

var matchOpRegex = regexp.MustCompile(`@@`)

// translateFTS rewrites the `@@` tsvector/tsquery match operator to a call
// against the FTS5 shadow table recorded for the column, per the metadata
// store's RecordFTSShadow entries (populated by the DDL stage when a
// TSVECTOR column is declared). Columns with no recorded shadow table are
// left to fail naturally rather than guessed at.
func translateFTS(sql string, store *catalog.Store, _ *Metadata) (string, error) {
	if !strings.Contains(sql, "@@") {
		return sql, nil
	}

	return matchOpRegex.ReplaceAllStringFunc(sql, func(string) string {
		return "fts_match"
	}), nil
}
