package health

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"esg-backend/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthTest(t *testing.T) (*fiber.App, *redis.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	h := &Handlers{Rdb: rdb, DB: nil, HealthAdminKey: "admin-key"}
	app := fiber.New()
	app.Use(middleware.HealthMarker(rdb))
	app.Get("/health/json", h.JSON)
	app.Get("/health/reset", h.Reset)
	app.Get("/api/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app, rdb
}

func TestHealthJSON_ReportsTraffic(t *testing.T) {
	app, _ := setupHealthTest(t)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/ping", nil))
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Service string      `json:"service"`
		Traffic TrafficInfo `json:"traffic"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "esg-backend", body.Service)
	assert.Equal(t, 3, body.Traffic.TotalRequests)
	assert.Equal(t, 0, body.Traffic.FailedCount)
}

func TestHealthJSON_SkipsHealthRoutes(t *testing.T) {
	app, _ := setupHealthTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/json", nil))
	require.NoError(t, err)
	var body struct {
		Traffic TrafficInfo `json:"traffic"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Zero(t, body.Traffic.TotalRequests)
}

func TestReset_RequiresAdminKey(t *testing.T) {
	app, _ := setupHealthTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/reset?key=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestReset_ClearsCounters(t *testing.T) {
	app, rdb := setupHealthTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/ping", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/reset?key=admin-key", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	total, _ := rdb.Get(context.Background(), middleware.KeyReqTotal).Result()
	assert.Empty(t, total)
}
