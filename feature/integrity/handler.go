package integrity

import (
	"errors"
	"strconv"

	"charge-finder/core/logger"
	"charge-finder/core/utils"

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
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/providers", h.HandleProviderCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the snapshot bucket, the history schema and both station providers.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.RunAll(c.UserContext()))
}

// HandleStorageCheck checks and optionally fixes the snapshot bucket.
// @Summary Check Storage
// @Description Checks that the snapshot bucket and its folders exist. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing bucket and folders"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStructure(c.UserContext())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() {
		l.Warn("Missing storage folders detected",
			zap.Bool("bucket_exists", report.BucketExists),
			zap.Strings("missing", report.Missing))

		if fix {
			l.Info("Attempting to fix storage structure")
			if err := h.service.FixStructure(c.UserContext(), report.Missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": report.Missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  report.Missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"report": report,
	})
}

// HandleDatabaseCheck checks the history schema.
// @Summary Check Database Schema
// @Description Compares the search history table with its model.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckDatabase()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Database check failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleProviderCheck probes the station providers.
// @Summary Check Providers
// @Description Runs a one-result nearby search against each provider.
// @Tags integrity
// @Produce json
// @Param latitude query number false "Probe latitude"
// @Param longitude query number false "Probe longitude"
// @Success 200 {object} map[string]interface{} "{providers: [...]}"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /integrity/providers [get]
func (h *Handler) HandleProviderCheck(c *fiber.Ctx) error {
	lat, lon := DefaultProbeLatitude, DefaultProbeLongitude
	if raw := c.Query("latitude"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "latitude must be a number"})
		}
		lat = v
	}
	if raw := c.Query("longitude"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "longitude must be a number"})
		}
		lon = v
	}
	if !utils.ValidCoordinates(lat, lon) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "coordinates out of range"})
	}

	return c.JSON(fiber.Map{"providers": h.service.CheckProviders(c.UserContext(), lat, lon)})
}

func statusFor(err error) int {
	var nc notConfiguredError
	if errors.As(err, &nc) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
