package soundscape

import (
	"strconv"

	"focusdeck/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for soundscapes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the soundscape routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/soundscapes")
	group.Get("/", h.HandleList)
	group.Get("/:file", h.HandleStream)
}

// HandleList returns the available soundscapes.
// @Summary List Soundscapes
// @Description List the ambient audio loops available for playback.
// @Tags soundscape
// @Produce json
// @Success 200 {array} soundscape.Soundscape "Available soundscapes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /soundscapes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	scapes, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Soundscape list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(scapes)
}

// HandleStream streams one soundscape audio file.
// @Summary Stream Soundscape
// @Description Stream one ambient audio loop by file name (e.g. 'rain.mp3').
// @Tags soundscape
// @Produce octet-stream
// @Param file path string true "Soundscape file name"
// @Success 200 {file} binary "Audio stream"
// @Failure 404 {object} map[string]string "Unknown soundscape"
// @Router /soundscapes/{file} [get]
func (h *Handler) HandleStream(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	reader, meta, err := h.service.Stream(c.Context(), c.Params("file"))
	if err != nil {
		l.Warn("Soundscape stream failed", zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "soundscape not found",
		})
	}

	c.Set(fiber.HeaderContentType, meta.ContentType)
	c.Set(fiber.HeaderContentLength, strconv.FormatInt(meta.SizeBytes, 10))
	return c.SendStream(reader, int(meta.SizeBytes))
}
