package history

import (
	"strconv"

	"charge-finder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Handler serves the history routes.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/history", h.HandleList)
}

// HandleList lists recent nearby searches.
// @Summary Search History
// @Description Lists the most recent nearby searches, newest first.
// @Tags history
// @Produce json
// @Param limit query int false "Maximum entries (1-100)" default(20)
// @Success 200 {object} map[string]interface{} "{data: [...]}"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxLimit {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be an integer in [1,100]"})
		}
		limit = v
	}

	records, err := h.repo.Recent(c.UserContext(), limit)
	if err != nil {
		l.Error("History query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": records})
}
