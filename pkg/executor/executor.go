package executor

import (
	"context"

	"github.com/pgsqlite/pgsqlite/pkg/cache"
	"github.com/pgsqlite/pgsqlite/pkg/catalog"
	"github.com/pgsqlite/pgsqlite/pkg/store"
)

// planEntry is what the Plan cache tier stores: the classification and
// fast-path decision for a fingerprinted statement shape, per spec.md §4.6.
type planEntry struct {
	class    Class
	fastPath bool
}

// Executor wraps a session's LocalQueryExecutor with the classification,
// caching and tag-shaping duties spec.md §4.8 assigns to the Executor Core.
// It is grounded directly on pkg/store's LocalQueryExecutor (the engine
// call itself is unchanged) and adds the layer above it the teacher never
// had: a storage engine with no caller-visible query planner of its own.
type Executor struct {
	local *store.LocalQueryExecutor
	tiers *cache.Tiers
}

// New builds an Executor over local, consulting tiers for plan caching when
// non-nil.
func New(local *store.LocalQueryExecutor, tiers *cache.Tiers) *Executor {
	return &Executor{local: local, tiers: tiers}
}

// Classify returns the statement's class and fast-path eligibility,
// consulting and populating the Plan cache tier keyed by the
// literal-blind fingerprint (two statements differing only in a literal
// value share one plan cache entry, same as every other cache tier
// keyed by structural shape).
func (e *Executor) Classify(stmt store.Statement, schema *catalog.Store) (Class, bool) {
	key := cache.Fingerprint(stmt.Query)

	if e.tiers != nil {
		if cached, ok := e.tiers.Plan.Get(key); ok {
			p := cached.(planEntry)
			return p.class, p.fastPath
		}
	}

	class := Classify(stmt.CmdType, stmt.Query)
	fastPath := FastPathEligible(class, stmt.Query, schema)

	if e.tiers != nil {
		e.tiers.Plan.Put(key, planEntry{class: class, fastPath: fastPath})
	}
	return class, fastPath
}

// Request runs statements through the underlying storage engine and
// rebuilds each response's CommandComplete tag from its command type and
// affected-row count rather than trusting whatever text the storage layer
// produced, so a stale or malformed tag never reaches the wire.
func (e *Executor) Request(ctx context.Context, statements []store.Statement) ([]store.QueryResponse, error) {
	responses, err := e.local.Request(ctx, statements)
	for i := range responses {
		if responses[i].RowsAffected >= 0 {
			responses[i].CommandTag = BuildCommandTag(responses[i].CmdType, responses[i].RowsAffected)
		}
	}
	return responses, err
}
