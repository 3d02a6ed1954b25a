package monuments

import (
	"errors"
	"net/url"

	"card-timers/core/logger"
	"card-timers/core/state"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for monuments.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the monument routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/monuments")
	group.Get("/", h.HandleBoard)
	group.Get("/:name", h.HandleMonument)
}

// HandleBoard returns every monument.
// @Summary List Monuments
// @Description Last swipe of every monument, annotated against the current reset epoch.
// @Tags monuments
// @Produce json
// @Success 200 {object} Board "Monument Board"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /monuments [get]
func (h *Handler) HandleBoard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	board, err := h.service.Board(c.Context())
	if err != nil {
		l.Error("Failed to load monument board", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(board)
}

// HandleMonument returns a single monument.
// @Summary Get Monument
// @Description Last swipe of a single monument. Names are case-sensitive.
// @Tags monuments
// @Produce json
// @Param name path string true "Monument name (e.g. 'Sewer Branch')"
// @Success 200 {object} MonumentView "Monument"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /monuments/{name} [get]
func (h *Handler) HandleMonument(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid monument name"})
	}

	m, err := h.service.Monument(c.Context(), name)
	if errors.Is(err, state.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Failed to load monument", zap.String("monument", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(m)
}
