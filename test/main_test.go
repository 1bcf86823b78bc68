package main

import (
	"net/http/httptest"
	"testing"

	"app/middleware"
	"app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRoutesRequireAuth(t *testing.T) {
	middleware.JWTSecret = []byte("test-secret")

	app := fiber.New()
	routes.SetupRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/forecast/", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, 401, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/v1/sales/", nil)
	resp, _ = app.Test(req)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestMetricsEndpointIsPublic(t *testing.T) {
	app := fiber.New()
	routes.SetupRoutes(app)

	req := httptest.NewRequest("GET", "/metrics", nil)
	resp, _ := app.Test(req)
	assert.Equal(t, 200, resp.StatusCode)
}
