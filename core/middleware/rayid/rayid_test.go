package rayid

import (
	"net/http/httptest"
	"testing"

	"charge-finder/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(logger.RayID(c))
	})

	t.Run("generates id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		rid := resp.Header.Get(Header)
		_, parseErr := uuid.Parse(rid)
		assert.NoError(t, parseErr)
	})

	t.Run("keeps valid inbound id", func(t *testing.T) {
		inbound := uuid.NewString()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(Header, inbound)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, inbound, resp.Header.Get(Header))
	})

	t.Run("replaces malformed inbound id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(Header, "not-a-uuid")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", resp.Header.Get(Header))
	})
}
