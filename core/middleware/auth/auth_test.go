package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		path       string
		header     string
		wantStatus int
	}{
		{"disabled", "", "/stations/nearby", "", fiber.StatusOK},
		{"valid key", "secret", "/stations/nearby", "secret", fiber.StatusOK},
		{"missing key", "secret", "/stations/nearby", "", fiber.StatusUnauthorized},
		{"wrong key", "secret", "/stations/nearby", "nope", fiber.StatusUnauthorized},
		{"skipped path", "secret", "/health", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(New(Config{ApiKey: tt.apiKey, Skip: []string{"/health"}}))
			app.Get("/*", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(Header, tt.header)
			}
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
