// Package rental implements the domain operations of the game rental
// store on top of the statement-level store: user accounts and
// authentication, catalog search, order placement, and tracking records.
// Entities live in the external store; this layer holds no copies beyond
// a single operation.
package rental
