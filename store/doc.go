// Package store is the read-only route collaborator spec.md §6
// describes: "Routes source. Yields records {origin, destination,
// travel_time} ... The store is read-only, the core does not write."
//
// Grounded on stadam23-Eve-flipper/internal/db/db.go's
// database/sql + modernc.org/sqlite opening pattern, trimmed to the
// one query this domain needs and with the migration machinery
// dropped — routes are provisioned out of band, never by this
// package.
package store
