package cache

import "github.com/pgsqlite/pgsqlite/pkg/config"

// Tiers bundles the five process-wide caches named in spec.md §4.6: the
// rewritten-SQL translation cache, the per-statement execution plan cache,
// the parameter-type cache (OIDs inferred for a prepared statement's $n
// placeholders), the row-description cache (RowDescription wire messages
// for a statement's result columns), and the result cache (whole small
// result sets for statements known to be side-effect free). All five are
// process-wide rather than per-session since the SQL text/fingerprint is
// the key, not anything connection-specific.
type Tiers struct {
	Translation    *LRU
	Plan           *LRU
	ParamType      *LRU
	RowDescription *LRU
	Result         *LRU
}

// NewTiers builds the five cache tiers from the configured sizes/TTLs.
// Plan, parameter-type, and row-description caches share the statement
// cache's size/TTL (they're all keyed off a prepared statement's identity
// and invalidate together), and the result cache uses the conversion
// cache's budget (both hold converted, wire-ready values).
func NewTiers(cfg config.CacheConfig) *Tiers {
	return &Tiers{
		Translation:    NewLRU("translation", cfg.TranslationCacheSize, cfg.TranslationCacheTTL),
		Plan:           NewLRU("plan", cfg.StatementCacheSize, cfg.StatementCacheTTL),
		ParamType:      NewLRU("param_type", cfg.StatementCacheSize, cfg.StatementCacheTTL),
		RowDescription: NewLRU("row_description", cfg.StatementCacheSize, cfg.StatementCacheTTL),
		Result:         NewLRU("result", cfg.ConversionCacheSize, cfg.ConversionCacheTTL),
	}
}

// TrimHalf evicts the least-recently-used half of every tier, the cleanup
// action the buffer Monitor invokes under memory pressure rather than a
// full invalidation (spec.md §4.2: "the monitor may trim caches by up to
// 50%").
func (t *Tiers) TrimHalf() {
	t.Translation.TrimHalf()
	t.Plan.TrimHalf()
	t.ParamType.TrimHalf()
	t.RowDescription.TrimHalf()
	t.Result.TrimHalf()
}

// InvalidateAll clears every tier, used when the schema metadata store's
// version advances (any DDL statement) since cached plans/translations may
// reference a table or column shape that no longer exists.
func (t *Tiers) InvalidateAll() {
	t.Translation.Invalidate()
	t.Plan.Invalidate()
	t.ParamType.Invalidate()
	t.RowDescription.Invalidate()
	t.Result.Invalidate()
}
