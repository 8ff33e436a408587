package snapshot

import (
	"errors"
	"time"

	"charge-finder/core/logger"
	"charge-finder/feature/stations"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the snapshot routes.
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
	group.Delete("/", h.HandlePrune)
	group.Get("/:name", h.HandleGet)
}

// HandleExport stores a reconciled nearby result.
// @Summary Export Snapshot
// @Description Runs a nearby search and stores the reconciled result as JSON in object storage.
// @Tags snapshots
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query int false "Radius in meters (100-50000)" default(5000)
// @Param limit query int false "Maximum results (1-100)" default(20)
// @Param sort query string false "rating or distance"
// @Success 201 {object} map[string]interface{} "{data: snapshot info}"
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 502 {object} map[string]string "Registry unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	q, err := stations.ParseNearbyQuery(func(k string) string { return c.Query(k) })
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	info, err := h.service.Export(c.UserContext(), q, logger.RayID(c))
	if err != nil {
		status := stations.StatusFor(err)
		l.Error("Snapshot export failed", zap.Int("status", status), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": info})
}

// HandleList lists stored snapshots.
// @Summary List Snapshots
// @Tags snapshots
// @Produce json
// @Success 200 {object} map[string]interface{} "{data: [...]}"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	infos, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": infos})
}

// HandleGet returns one stored snapshot.
// @Summary Get Snapshot
// @Tags snapshots
// @Produce json
// @Param name path string true "Snapshot file name"
// @Success 200 {object} Document
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 404 {object} map[string]string "Not found"
// @Router /snapshots/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	body, err := h.service.Get(c.UserContext(), c.Params("name"))
	switch {
	case errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		logger.WithRayID(h.service.logger, c).Error("Snapshot read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// HandlePrune deletes old snapshots.
// @Summary Prune Snapshots
// @Description Deletes snapshots older than the retention window.
// @Tags snapshots
// @Produce json
// @Param older_than query string true "Go duration, e.g. 720h"
// @Success 200 {object} map[string]interface{} "{removed: n}"
// @Failure 400 {object} map[string]string "Invalid duration"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshots [delete]
func (h *Handler) HandlePrune(c *fiber.Ctx) error {
	retention, err := time.ParseDuration(c.Query("older_than"))
	if err != nil || retention <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "older_than must be a positive duration such as 720h"})
	}

	removed, err := h.service.Prune(c.UserContext(), retention)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot prune failed", zap.Int("removed", removed), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "removed": removed})
	}
	return c.JSON(fiber.Map{"removed": removed})
}
