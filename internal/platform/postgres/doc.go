// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, written against store.DBTX so they
// run equally inside or outside a transaction.
package postgres
