package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupMiddleware(app, config.Defaults())
	app.Get("/api/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/api/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/api/panic", func(c *fiber.Ctx) error { panic("oops") })
	SetupErrorHandler(app)
	return app
}

func decode(t *testing.T, app *fiber.App, path string) (int, models.APIResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body models.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	return resp.StatusCode, body
}

func TestErrorHandler(t *testing.T) {
	app := newApp()

	status, body := decode(t, app, "/api/boom")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Internal Server Error", body.Message)

	status, body = decode(t, app, "/api/teapot")
	assert.Equal(t, fiber.StatusTeapot, status)
	assert.Equal(t, "short and stout", body.Message)

	status, _ = decode(t, app, "/api/panic")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	status, body := decode(t, newApp(), "/api/nowhere")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Not Found", body.Message)
}
