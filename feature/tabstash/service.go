package tabstash

import (
	"context"

	"focusdeck/core/reconcile"
	"focusdeck/core/reconcile/gormstore"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles tab stash synchronization and reads.
type Service struct {
	engine *reconcile.Engine
	store  reconcile.Store
	logger *zap.Logger
}

// NewService creates a new tabstash service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	store := gormstore.New(db, func() *TabStash { return &TabStash{} })
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

// ListActive returns the owner's non-deleted tab stashes.
func (s *Service) ListActive(ctx context.Context, ownerID string) ([]reconcile.Record, error) {
	return s.store.ListActiveByOwner(ctx, ownerID)
}
