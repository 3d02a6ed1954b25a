package snapshot

import (
	"errors"

	"card-timers/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Post("/", h.HandleExport)
	group.Get("/", h.HandleList)
	group.Post("/prune", h.HandlePrune)
	group.Get("/:name", h.HandleFetch)
	group.Delete("/:name", h.HandleDelete)
}

// HandleExport takes a snapshot.
// @Summary Take Snapshot
// @Description Uploads the current monument board and reset epoch to object storage.
// @Tags snapshots
// @Produce json
// @Success 201 {object} Info "Snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.Export(c.Context())
	if err != nil {
		l.Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleList lists stored snapshots.
// @Summary List Snapshots
// @Description Lists stored snapshots, oldest first.
// @Tags snapshots
// @Produce json
// @Success 200 {array} Info "Snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if list == nil {
		list = []Info{}
	}
	return c.JSON(list)
}

// HandleFetch returns a stored snapshot.
// @Summary Get Snapshot
// @Tags snapshots
// @Produce json
// @Param name path string true "Snapshot file name"
// @Success 200 {object} Document "Snapshot Document"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /snapshots/{name} [get]
func (h *Handler) HandleFetch(c *fiber.Ctx) error {
	doc, err := h.service.Fetch(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(doc)
}

// HandleDelete removes a snapshot.
// @Summary Delete Snapshot
// @Tags snapshots
// @Param name path string true "Snapshot file name"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /snapshots/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("name")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePrune keeps only the newest snapshots.
// @Summary Prune Snapshots
// @Tags snapshots
// @Produce json
// @Param keep query int false "Snapshots to keep (default 10)"
// @Success 200 {object} map[string]interface{} "Removed Snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots/prune [post]
func (h *Handler) HandlePrune(c *fiber.Ctx) error {
	removed, err := h.service.Prune(c.Context(), c.QueryInt("keep", 10))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot prune failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"removed": removed,
		})
	}
	return c.JSON(fiber.Map{"removed": removed})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Snapshot request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
