package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focusdeck/core/reconcile"

	"gorm.io/gorm"
)

// Store is a GORM-backed reconcile.Store, generic over the model pointer
// type (e.g. *tasks.Task). All four synced kinds share this implementation;
// only the model factory differs.
type Store[T reconcile.Record] struct {
	db    *gorm.DB
	model func() T
	now   func() time.Time
}

// New creates a store for one model. The factory returns a blank record for
// GORM to scan into.
func New[T reconcile.Record](db *gorm.DB, model func() T) *Store[T] {
	return &Store[T]{
		db:    db,
		model: model,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Insert persists a new record.
func (s *Store[T]) Insert(ctx context.Context, rec reconcile.Record) (reconcile.Record, error) {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return rec, nil
}

// FindByID loads one record of the owner, tombstoned or not.
func (s *Store[T]) FindByID(ctx context.Context, ownerID, id string) (reconcile.Record, error) {
	rec := s.model()
	err := s.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id %s: %w", id, reconcile.ErrNotFound)
		}
		return nil, fmt.Errorf("find %s: %w", id, err)
	}
	return rec, nil
}

// Update applies column values to one record of the owner and returns the
// persisted state. The write timestamp is stamped here, making the store
// clock authoritative over anything the client supplied.
func (s *Store[T]) Update(ctx context.Context, ownerID, id string, fields map[string]any) (reconcile.Record, error) {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = s.now()
	}

	res := s.db.WithContext(ctx).
		Model(s.model()).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("update %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("id %s: %w", id, reconcile.ErrNotFound)
	}

	return s.FindByID(ctx, ownerID, id)
}

// ListActiveByOwner returns every non-tombstoned record of the owner.
func (s *Store[T]) ListActiveByOwner(ctx context.Context, ownerID string) ([]reconcile.Record, error) {
	var rows []T
	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list active: %w", err)
	}
	recs := make([]reconcile.Record, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, r)
	}
	return recs, nil
}

// CountActiveByOwner counts non-tombstoned records of the owner.
func (s *Store[T]) CountActiveByOwner(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(s.model()).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count active: %w", err)
	}
	return n, nil
}

// Transact runs fn inside one database transaction. The store handed to fn
// shares the transaction connection, so every engine phase commits or rolls
// back as a unit.
func (s *Store[T]) Transact(ctx context.Context, fn func(tx reconcile.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store[T]{db: tx, model: s.model, now: s.now})
	})
}
