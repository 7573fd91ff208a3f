package inspect

import (
	"gamedata-manager/feature/game"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new inspection feature over manager.
func NewFeature(manager *game.Manager, readOnly bool, logger *zap.Logger) *Feature {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := NewService(manager, readOnly)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "inspect"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.manager != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
