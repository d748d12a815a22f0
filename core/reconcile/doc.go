// Package reconcile implements the bulk synchronization engine used by the
// offline-capable client surfaces. When connectivity resumes, a client
// submits one BatchRequest per entity kind (tasks, notes, block rules, tab
// stashes) containing the mutations it queued while offline; the engine
// reconciles them against server state and returns a BatchResult the client
// uses to patch its local id mapping and discard superseded mutations.
//
// # Algorithm
//
// A Reconcile call runs three phases inside one atomic unit of work:
//
//  1. Creates, in request order. Each create is validated (batch-fatal on
//     failure), given kind defaults, clamped to field limits, checked against
//     the per-owner record cap, and inserted. The clientId carried by the op
//     is mapped to the assigned server id for the rest of the batch.
//  2. Updates. Ops addressed by clientId are resolved through the phase-1
//     map; unresolvable ops are dropped. Competing updates for the same
//     record collapse to the one with the latest client updatedAt
//     (last-write-wins), then each survivor is applied as a partial update.
//     Tombstoned records follow delete precedence: only a strictly newer
//     update resurrects them.
//  3. Deletes. Targets are resolved like updates and tombstoned by setting
//     deletedAt; records are never physically removed, so a stale client can
//     never resurrect a deletion it has not seen.
//
// Missing records in phases 2 and 3 are isolated failures, reported only by
// omission from the result. Clients may resubmit a batch safely, except that
// a re-sent create whose clientId was already applied produces a duplicate;
// deduplicating applied clientIds is the caller's responsibility.
//
// # Kinds and stores
//
// The engine is generic. Entity specifics live behind the Kind capability
// interface (validation, defaults, partial-update mapping, per-owner caps);
// persistence lives behind the owner-scoped Store interface, implemented for
// GORM in the gormstore subpackage. A kind implementing Exclusive gets the
// single-active-flag invariant enforced as a write side effect: after any
// write setting the flag, it is cleared on every other active record of the
// owner within the same transaction.
//
// # Usage
//
//	store := gormstore.New(db, func() *Task { return &Task{} })
//	engine := reconcile.New(taskKind{}, store, logger)
//	result, err := engine.Reconcile(ctx, ownerID, req)
package reconcile
