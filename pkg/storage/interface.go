// Package storage defines the persistence interfaces the runner relies on.
// Backends such as pkg/storage/postgres provide the concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every capability a storage handle offers, inside or
// outside a transaction.
type AllStorage interface {
	AuditStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists all changes made within the transaction.
	Commit() error
	// Rollback discards all changes made within the transaction.
	Rollback() error
}

// Storage is the top-level, non-transactional storage handle.
type Storage interface {
	AllStorage

	// Close releases the resources held by the storage, such as the
	// connection pool.
	Close() error

	// Begin opens a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb within a transaction that is committed when cb returns nil
	// and rolled back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
