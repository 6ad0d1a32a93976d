// Package models defines the domain value types the admin console works with.
//
// # Server-owned snapshots
//
// Every record type here (roulette runs, products, orders, users, point
// records) is a snapshot of server state identified by an integer id. The
// console never patches fields locally past a refetch: after any mutation the
// owning controller reloads the affected page or record wholesale, so a
// snapshot is only ever replaced, never merged.
//
// # Pagination
//
// List endpoints return Page[T] with 0-based page numbers. An empty
// collection reports TotalPages == 0 and empty Content.
//
// # Session
//
// Session is the one piece of client-owned durable state. It is persisted
// under a single well-known key and is the sole source of truth for the
// authenticated identity across restarts.
package models
