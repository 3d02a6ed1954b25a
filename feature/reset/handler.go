package reset

import (
	"card-timers/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the reset epoch.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/reset", h.HandleStatus)
}

// HandleStatus returns the last and next reset.
// @Summary Reset Status
// @Description Returns the stored reset epoch and the next scheduled reset instants.
// @Tags reset
// @Produce json
// @Param count query int false "Number of upcoming resets to list"
// @Success 200 {object} Status "Reset Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reset [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	st, err := h.service.Status(c.Context(), c.QueryInt("count", 1))
	if err != nil {
		l.Error("Failed to load reset status", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(st)
}
