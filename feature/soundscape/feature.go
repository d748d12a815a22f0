package soundscape

import (
	"focusdeck/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the soundscape feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "soundscape"
}

// IsEnabled reports whether object storage is available.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
