package middleware_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"gamedata-manager/core/middleware/auth"
	"gamedata-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})
	return app
}

func TestRayID(t *testing.T) {
	app := newApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))
	assert.Equal(t, resp.Header.Get(rayid.Header), string(body))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "given")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "given", resp.Header.Get(rayid.Header))
}

func TestAuth(t *testing.T) {
	app := newApp("secret")

	tests := []struct {
		name   string
		header string
		query  string
		want   int
	}{
		{"Missing", "", "", fiber.StatusUnauthorized},
		{"Wrong", "nope", "", fiber.StatusUnauthorized},
		{"Header", "secret", "", fiber.StatusOK},
		{"Query", "", "?api_key=secret", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
