// Package sqlite re-exports the driver name registered by pkg/catalog.
//
// Earlier drafts of this package registered a second sql.Driver under the
// same name that pkg/catalog also registers; running both init() functions
// in the same binary panics ("sql: Register called twice for driver ...").
// pkg/catalog owns the single registration (it additionally wires the
// pg_catalog virtual tables), so this package now just re-exports the name
// for callers that only need the driver string.
package sqlite

import "github.com/pgsqlite/pgsqlite/pkg/catalog"

const DriverName = catalog.DriverName
