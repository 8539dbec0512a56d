// Package history persists a summary of every comparison run in SQLite so
// results can be listed and revisited later.
//
// The store is optional and only opened when history is enabled. Schema
// creation and inserts are serialised across processes with a lock file next
// to the database; reads rely on SQLite's own locking with a busy retry.
package history
