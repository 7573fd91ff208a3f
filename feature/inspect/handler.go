package inspect

import (
	"errors"

	"gamedata-manager/core/logger"
	"gamedata-manager/feature/game"
	"gamedata-manager/feature/game/text"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for session inspection.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the inspection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/game")
	group.Get("/", h.HandleStatus)
	group.Get("/files", h.HandleFiles)
	group.Get("/files/:file", h.HandleMembers)
	group.Get("/resolved", h.HandleResolved)
	group.Get("/strings/:name", h.HandleStrings)
	group.Get("/data", h.HandleKinds)
	group.Get("/data/:kind", h.HandleData)
	group.Post("/save", h.HandleSave)
}

// HandleStatus returns the session summary.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleFiles returns the file map of the version.
func (h *Handler) HandleFiles(c *fiber.Ctx) error {
	files, err := h.service.Files()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(files)
}

// HandleMembers lists the members of one container.
func (h *Handler) HandleMembers(c *fiber.Ctx) error {
	id, err := game.ParseFileID(c.Params("file"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	members, err := h.service.Members(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"file": id, "members": members})
}

// HandleResolved lists the resolved containers.
func (h *Handler) HandleResolved(c *fiber.Ctx) error {
	resolved := h.service.Resolved()
	if resolved == nil {
		resolved = []ResolvedFile{}
	}
	return c.JSON(resolved)
}

// HandleStrings returns the lines of a text table.
func (h *Handler) HandleStrings(c *fiber.Ctx) error {
	name, err := text.ParseName(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lines, err := h.service.Strings(c.Context(), name, c.QueryInt("language", -1))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"name": name.String(), "lines": lines})
}

// HandleKinds lists the registered data kinds.
func (h *Handler) HandleKinds(c *fiber.Ctx) error {
	return c.JSON(h.service.Kinds())
}

// HandleData returns the structures of one kind.
func (h *Handler) HandleData(c *fiber.Ctx) error {
	kind := game.Kind(c.Params("kind"))
	value, err := h.service.Data(kind)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"kind": kind, "data": value})
}

// HandleSave persists the session.
func (h *Handler) HandleSave(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	l.Info("Saving session")

	if err := h.service.Save(c.Context()); err != nil {
		if errors.Is(err, ErrReadOnly) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		}
		errs := multierr.Errors(err)
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, e.Error())
		}
		l.Error("Save failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "failed", "errors": messages})
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

// fail maps session errors to HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrUnsupportedFileKind),
		errors.Is(err, game.ErrUnknownText),
		errors.Is(err, ErrUnknownKind):
		status = fiber.StatusNotFound
	case errors.Is(err, game.ErrUnknownLanguage),
		errors.Is(err, game.ErrFolderNotInitialized):
		status = fiber.StatusBadRequest
	case errors.Is(err, game.ErrMaterializationFailed):
		status = fiber.StatusUnprocessableEntity
	}

	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.logger, c).Error("Request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
