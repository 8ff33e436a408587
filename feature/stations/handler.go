package stations

import (
	"errors"

	"charge-finder/core/logger"
	"charge-finder/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the station routes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the station routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stations")
	group.Get("/nearby", h.HandleNearby)
	group.Get("/:id", h.HandleStation)
}

// HandleNearby lists reconciled stations around a point.
// @Summary Nearby Stations
// @Description Returns registry stations around a point, enriched with directory ratings, photos, amenities and live connector availability.
// @Tags stations
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query int false "Radius in meters (100-50000)" default(5000)
// @Param limit query int false "Maximum results (1-100)" default(20)
// @Param sort query string false "rating or distance"
// @Success 200 {object} NearbyResult
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 502 {object} map[string]string "Registry unavailable"
// @Router /stations/nearby [get]
func (h *Handler) HandleNearby(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	q, err := ParseNearbyQuery(func(k string) string { return c.Query(k) })
	if err != nil {
		return writeError(c, l, err)
	}

	res, err := h.service.Nearby(c.UserContext(), q, logger.RayID(c))
	if err != nil {
		return writeError(c, l, err)
	}

	l.Info("Nearby search served",
		zap.Float64("latitude", q.Latitude),
		zap.Float64("longitude", q.Longitude),
		zap.Int("radius", q.RadiusMeters),
		zap.Int("results", res.Meta.Total))
	return c.JSON(res)
}

// HandleStation returns one reconciled station.
// @Summary Station Detail
// @Description Returns one station by its "<prefix>_<digits>" id, enriched from the directory with photo fallbacks.
// @Tags stations
// @Produce json
// @Param id path string true "Station id, e.g. ocm_12345"
// @Success 200 {object} map[string]interface{} "{data: station}"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 502 {object} map[string]string "Registry unavailable"
// @Router /stations/{id} [get]
func (h *Handler) HandleStation(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	st, err := h.service.Station(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, l, err)
	}
	return c.JSON(fiber.Map{"data": st})
}

// StatusFor maps a domain error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrInvalidIDFormat), errors.Is(err, reconcile.ErrInvalidQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, reconcile.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, reconcile.ErrProviderUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := StatusFor(err)
	msg := err.Error()
	switch {
	case status >= fiber.StatusInternalServerError:
		l.Error("Station request failed", zap.Int("status", status), zap.Error(err))
		if status == fiber.StatusInternalServerError {
			msg = "internal server error"
		} else {
			msg = "station provider unavailable"
		}
	default:
		l.Debug("Station request rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
