package siteblock

import (
	"context"

	"focusdeck/core/reconcile"
	"focusdeck/core/reconcile/gormstore"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles block rule synchronization and reads.
type Service struct {
	engine *reconcile.Engine
	store  reconcile.Store
	logger *zap.Logger
}

// NewService creates a new siteblock service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	store := gormstore.New(db, func() *BlockRule { return &BlockRule{} })
	return &Service{
		engine: reconcile.New(Kind{}, store, logger),
		store:  store,
		logger: logger,
	}
}

// Sync reconciles a batch of queued client mutations for the owner.
func (s *Service) Sync(ctx context.Context, ownerID string, req reconcile.BatchRequest) (*reconcile.BatchResult, error) {
	return s.engine.Reconcile(ctx, ownerID, req)
}

// ListActive returns the owner's non-deleted block rules.
func (s *Service) ListActive(ctx context.Context, ownerID string) ([]reconcile.Record, error) {
	return s.store.ListActiveByOwner(ctx, ownerID)
}
