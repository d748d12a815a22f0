package reconcile

import "context"

// Store is the owner-scoped persistence boundary the engine writes through.
// One instance exists per entity kind. Every operation takes the ownerID so
// cross-owner access is structurally impossible; a Store must never return or
// touch another owner's rows.
//
// The Store, not the engine, owns write timestamps: Update must stamp
// updated_at itself unless the caller set it explicitly. The engine performs
// read-then-write inside Transact and relies on the store's transaction
// isolation to prevent lost updates between concurrent batches.
type Store interface {
	// Insert persists a new record. The record already carries its id,
	// owner, and timestamps.
	Insert(ctx context.Context, rec Record) (Record, error)

	// FindByID loads one record (active or tombstoned) for the owner.
	// Returns an error wrapping ErrNotFound when absent.
	FindByID(ctx context.Context, ownerID, id string) (Record, error)

	// Update applies the given column values to one record of the owner and
	// returns the record as persisted. Returns an error wrapping ErrNotFound
	// when absent.
	Update(ctx context.Context, ownerID, id string, fields map[string]any) (Record, error)

	// ListActiveByOwner returns every non-deleted record of the owner.
	ListActiveByOwner(ctx context.Context, ownerID string) ([]Record, error)

	// CountActiveByOwner counts non-deleted records of the owner.
	CountActiveByOwner(ctx context.Context, ownerID string) (int64, error)

	// Transact runs fn inside one atomic unit of work. The Store passed to
	// fn operates within the transaction; any error from fn rolls everything
	// back.
	Transact(ctx context.Context, fn func(tx Store) error) error
}
