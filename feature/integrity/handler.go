package integrity

import (
	"errors"

	"gamedata-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/layout", h.HandleLayoutCheck)
	group.Get("/bucket", h.HandleBucketCheck)
	group.Get("/journal", h.HandleJournalCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.CheckAll(c.Context()))
}

// HandleLayoutCheck checks the install layout.
func (h *Handler) HandleLayoutCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	language := c.QueryInt("language", h.service.language)
	report, err := h.service.CheckLayoutLanguage(c.Context(), language)
	if err != nil {
		l.Error("Layout check failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleBucketCheck checks the storage bucket.
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckBucket(c.Context())
	if err != nil {
		return h.fail(c, l, "Bucket check failed", err)
	}

	return c.JSON(report)
}

// HandleJournalCheck checks the save journal schema.
func (h *Handler) HandleJournalCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting journal schema check")

	report, err := h.service.CheckJournal()
	if err != nil {
		return h.fail(c, l, "Journal schema check failed", err)
	}

	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrCheckUnavailable) {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
