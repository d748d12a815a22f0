package tabstash

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	db      *gorm.DB
}

// NewFeature creates the tabstash feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(db, logger)
	return &Feature{service: svc, handler: NewHandler(svc), db: db}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tabstash"
}

// IsEnabled reports whether the feature has a database to work with.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
