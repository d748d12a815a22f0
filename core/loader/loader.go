package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Feature is a self-contained application module that registers its own
// routes. Features are constructed in the start command and loaded through
// the Manager.
type Feature interface {
	// Name returns the feature name for logging.
	Name() string
	// IsEnabled reports whether the feature has the dependencies it needs
	// (e.g. a database connection) and should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes on the router.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature registry.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature, in registration order.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("load feature %s: %w", f.Name(), err)
		}
	}
	return nil
}

// Enabled returns the names of the enabled features, for startup logging.
func (m *Manager) Enabled() []string {
	var names []string
	for _, f := range m.features {
		if f.IsEnabled() {
			names = append(names, f.Name())
		}
	}
	return names
}
