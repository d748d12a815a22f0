package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focusdeck/core/utils"

	"go.uber.org/zap"
)

// Engine reconciles a batch of locally-queued client mutations against server
// state for one entity kind. It is stateless across calls: the clientId map
// lives on the stack of a single Reconcile invocation, so engines are safe
// for concurrent use by any number of owners.
type Engine struct {
	kind  Kind
	store Store
	log   *zap.Logger
	now   func() time.Time
}

// New creates an engine for one entity kind backed by the given store.
func New(kind Kind, store Store, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		kind:  kind,
		store: store,
		log:   log.With(zap.String("kind", kind.Name())),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile applies req for ownerID inside one atomic unit of work:
// creates in request order, then collapsed updates, then deletes.
//
// Validation and limit failures on creates abort the whole batch and roll the
// transaction back. Missing records on updates and deletes are isolated
// failures: logged, skipped, and visible to the caller only as absences from
// the result. Resubmitting the same batch is therefore safe, with the
// documented exception that a re-sent create with an already-applied clientId
// produces a duplicate record.
func (e *Engine) Reconcile(ctx context.Context, ownerID string, req BatchRequest) (*BatchResult, error) {
	res := &BatchResult{
		Created: []CreatedRecord{},
		Updated: []Record{},
		Deleted: []string{},
	}

	err := e.store.Transact(ctx, func(tx Store) error {
		// clientId -> serverId, scoped to this batch only.
		idMap := make(map[string]string, len(req.Creates))

		if err := e.applyCreates(ctx, tx, ownerID, req.Creates, idMap, res); err != nil {
			return err
		}
		if err := e.applyUpdates(ctx, tx, ownerID, collapseUpdates(resolveUpdates(req.Updates, idMap)), res); err != nil {
			return err
		}
		return e.applyDeletes(ctx, tx, ownerID, req.Deletes, idMap, res)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// applyCreates processes creates in request order. Any failure here is
// batch-fatal: a skipped create would break clientId references in the
// phases that follow.
func (e *Engine) applyCreates(ctx context.Context, tx Store, ownerID string, ops []CreateOp, idMap map[string]string, res *BatchResult) error {
	if len(ops) == 0 {
		return nil
	}

	var active int64
	if max := e.kind.MaxPerOwner(); max > 0 {
		var err error
		active, err = tx.CountActiveByOwner(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("count %s records: %w", e.kind.Name(), err)
		}
	}

	for _, op := range ops {
		if err := e.kind.Validate(op.Fields); err != nil {
			return err
		}
		if max := e.kind.MaxPerOwner(); max > 0 && active >= max {
			return &LimitExceededError{Kind: e.kind.Name(), Limit: max}
		}

		rec := e.kind.NewRecord(ownerID, op.Fields)
		inserted, err := tx.Insert(ctx, rec)
		if err != nil {
			return fmt.Errorf("insert %s: %w", e.kind.Name(), err)
		}
		active++

		if op.ClientID != "" {
			idMap[op.ClientID] = inserted.GetID()
		}

		if ex, ok := e.kind.(Exclusive); ok && utils.ToBool(op.Fields[ex.ExclusiveField()]) {
			if err := e.enforceExclusive(ctx, tx, ex, ownerID, inserted.GetID()); err != nil {
				return err
			}
		}

		res.Created = append(res.Created, CreatedRecord{Record: inserted, ClientID: op.ClientID})
	}
	return nil
}

// resolvedUpdate is an UpdateOp whose target is pinned to a server id.
type resolvedUpdate struct {
	id        string
	updatedAt time.Time
	fields    map[string]any
}

// resolveUpdates maps each op to a server id, consulting the create-phase
// clientId map. Ops with neither a known clientId nor a server id reference a
// create that never happened (a retried or duplicate submission) and are
// silently dropped.
func resolveUpdates(ops []UpdateOp, idMap map[string]string) []resolvedUpdate {
	resolved := make([]resolvedUpdate, 0, len(ops))
	for _, op := range ops {
		id := op.ID
		if id == "" {
			id = idMap[op.ClientID]
		}
		if id == "" {
			continue
		}
		resolved = append(resolved, resolvedUpdate{id: id, updatedAt: op.UpdatedAt, fields: op.Fields})
	}
	return resolved
}

// collapseUpdates keeps one op per server id: the one with the latest
// updatedAt. Ops without a client timestamp carry the zero time and lose to
// anything stamped; among equal timestamps the later submission wins, which
// matches applying them in insertion order. Output order is first-seen order
// of the ids.
func collapseUpdates(ops []resolvedUpdate) []resolvedUpdate {
	collapsed := make([]resolvedUpdate, 0, len(ops))
	index := make(map[string]int, len(ops))
	for _, op := range ops {
		i, seen := index[op.id]
		if !seen {
			index[op.id] = len(collapsed)
			collapsed = append(collapsed, op)
			continue
		}
		if !op.updatedAt.Before(collapsed[i].updatedAt) {
			collapsed[i] = op
		}
	}
	return collapsed
}

// applyUpdates applies each collapsed update with per-operation failure
// isolation. Only store-level faults other than a missing record abort the
// batch.
func (e *Engine) applyUpdates(ctx context.Context, tx Store, ownerID string, ops []resolvedUpdate, res *BatchResult) error {
	for _, op := range ops {
		current, err := tx.FindByID(ctx, ownerID, op.id)
		if err != nil {
			if isNotFound(err) {
				e.log.Warn("update target missing, skipping", zap.String("id", op.id))
				continue
			}
			return fmt.Errorf("load %s %s: %w", e.kind.Name(), op.id, err)
		}

		// Delete precedence: a tombstone survives unless the update is
		// strictly newer, in which case the update resurrects the record.
		// A losing update returns the tombstone unchanged so the client
		// learns the record is gone.
		resurrect := false
		if del := current.GetDeletedAt(); del != nil {
			if !op.updatedAt.After(*del) {
				e.log.Debug("update older than tombstone, discarding",
					zap.String("id", op.id),
					zap.Time("deletedAt", *del),
					zap.Time("updatedAt", op.updatedAt))
				res.Updated = append(res.Updated, current)
				continue
			}
			resurrect = true
		}

		cols := e.kind.ApplyPartial(op.fields)
		if resurrect {
			cols["deleted_at"] = nil
		}
		if len(cols) == 0 {
			res.Updated = append(res.Updated, current)
			continue
		}

		updated, err := tx.Update(ctx, ownerID, op.id, cols)
		if err != nil {
			if isNotFound(err) {
				e.log.Warn("update target vanished, skipping", zap.String("id", op.id))
				continue
			}
			return fmt.Errorf("update %s %s: %w", e.kind.Name(), op.id, err)
		}

		if ex, ok := e.kind.(Exclusive); ok && utils.ToBool(op.fields[ex.ExclusiveField()]) {
			if err := e.enforceExclusive(ctx, tx, ex, ownerID, op.id); err != nil {
				return err
			}
		}

		res.Updated = append(res.Updated, updated)
	}
	return nil
}

// applyDeletes tombstones each resolved target with per-operation failure
// isolation. Records are never physically removed; deletion is a field
// mutation so stale clients cannot resurrect what they never saw.
func (e *Engine) applyDeletes(ctx context.Context, tx Store, ownerID string, ops []DeleteOp, idMap map[string]string, res *BatchResult) error {
	for _, op := range ops {
		id := op.ID
		if id == "" {
			id = idMap[op.ClientID]
		}
		if id == "" {
			continue
		}

		current, err := tx.FindByID(ctx, ownerID, id)
		if err != nil {
			if isNotFound(err) {
				e.log.Warn("delete target missing, skipping", zap.String("id", id))
				continue
			}
			return fmt.Errorf("load %s %s: %w", e.kind.Name(), id, err)
		}

		// Re-deleting an existing tombstone is a no-op; the original
		// deletion timestamp stands.
		if current.GetDeletedAt() == nil {
			at := op.DeletedAt
			if at.IsZero() {
				at = e.now()
			}
			if _, err := tx.Update(ctx, ownerID, id, map[string]any{"deleted_at": at}); err != nil {
				if isNotFound(err) {
					continue
				}
				return fmt.Errorf("delete %s %s: %w", e.kind.Name(), id, err)
			}
		}

		res.Deleted = append(res.Deleted, id)
	}
	return nil
}

// enforceExclusive clears the exclusive flag on every other active record of
// the owner, so at most one record carries it once the unit of work commits.
func (e *Engine) enforceExclusive(ctx context.Context, tx Store, ex Exclusive, ownerID, keepID string) error {
	others, err := tx.ListActiveByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("list %s records: %w", e.kind.Name(), err)
	}
	for _, rec := range others {
		if rec.GetID() == keepID || !ex.ExclusiveSet(rec) {
			continue
		}
		if _, err := tx.Update(ctx, ownerID, rec.GetID(), map[string]any{ex.ExclusiveField(): false}); err != nil {
			return fmt.Errorf("clear %s on %s %s: %w", ex.ExclusiveField(), e.kind.Name(), rec.GetID(), err)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
