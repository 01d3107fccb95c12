package translator

import (
	"regexp"

	"github.com/pgsqlite/pgsqlite/pkg/catalog"
)

// now() and current_timestamp need to return an epoch-microseconds integer
// rather than SQLite's default text datetime, since declared TIMESTAMP
// columns are stored as INTEGER (translateDDL) microseconds since the epoch
// and DATE columns as days since the epoch (pkg/types converters).
var (
	nowCallRegex   = regexp.MustCompile(`(?i)\bnow\s*\(\s*\)`)
	currentTsRegex = regexp.MustCompile(`(?i)\bcurrent_timestamp\b(\s*\(\s*\))?`)
	dateLitRegex   = regexp.MustCompile(`(?i)\bDATE\s+'([^']+)'`)
)

// translateDatetime rewrites PG datetime constructs so the integer
// representation used by declared TIMESTAMP/DATE columns round-trips
// correctly: now()/CURRENT_TIMESTAMP become strftime-based
// epoch-microsecond expressions, and `DATE '...'` literals become the
// number of days from the epoch to that date.
func translateDatetime(sql string, _ *catalog.Store, _ *Metadata) (string, error) {
	if !nowCallRegex.MatchString(sql) && !currentTsRegex.MatchString(sql) && !dateLitRegex.MatchString(sql) {
		return sql, nil
	}

	out := nowCallRegex.ReplaceAllString(sql, "(strftime('%s','now') * 1000000)")
	out = currentTsRegex.ReplaceAllString(out, "(strftime('%s','now') * 1000000)")
	out = dateLitRegex.ReplaceAllString(out, "(strftime('%s','$1') / 86400)")
	return out, nil
}
