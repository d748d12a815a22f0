package tabstash

import (
	"focusdeck/core/logger"
	"focusdeck/core/middleware/auth"
	"focusdeck/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for tab stashes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the tabstash routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tab-stashes")
	group.Get("/", h.HandleList)
	group.Post("/sync", h.HandleSync)
}

// HandleList returns the owner's active tab stashes.
// @Summary List Tab Stashes
// @Description List the authenticated user's non-deleted tab stashes.
// @Tags tabstash
// @Produce json
// @Success 200 {array} tabstash.TabStash "Active stashes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /tab-stashes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.ListActive(c.Context(), auth.OwnerID(c))
	if err != nil {
		l.Error("Tab stash list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(records)
}

// HandleSync reconciles a batch of queued tab stash mutations.
// @Summary Sync Tab Stashes
// @Description Apply a batch of offline-queued tab stash creates, updates, and deletes.
// @Tags tabstash
// @Accept json
// @Produce json
// @Param batch body reconcile.BatchRequest true "Queued mutations"
// @Success 200 {object} reconcile.BatchResult "Reconciliation result"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 422 {object} map[string]string "Record limit exceeded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /tab-stashes/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req reconcile.BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed batch: " + err.Error(),
		})
	}

	result, err := h.service.Sync(c.Context(), auth.OwnerID(c), req)
	if err != nil {
		l.Error("Tab stash sync failed", zap.Error(err))
		return c.Status(reconcile.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(result)
}
