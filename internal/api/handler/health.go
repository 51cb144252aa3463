package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const readinessTimeout = 3 * time.Second

// HealthHandler serves the liveness and readiness probes. Liveness answers
// unconditionally; readiness runs every registered dependency check.
type HealthHandler struct {
	checks map[string]func(context.Context) error
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{checks: make(map[string]func(context.Context) error)}
}

// WithMongo registers a MongoDB connectivity check.
func (h *HealthHandler) WithMongo(db *mongo.Database) *HealthHandler {
	h.checks["mongodb"] = func(ctx context.Context) error {
		return db.Client().Ping(ctx, nil)
	}
	return h
}

// WithRedis registers a Redis connectivity check.
func (h *HealthHandler) WithRedis(rdb *redis.Client) *HealthHandler {
	h.checks["redis"] = func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
	return h
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	type checkResult struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}

	results := make(map[string]checkResult, len(h.checks))
	ready := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			results[name] = checkResult{Status: "unhealthy", Error: err.Error()}
			ready = false
			continue
		}
		results[name] = checkResult{Status: "ok"}
	}

	status, code := "ok", http.StatusOK
	if !ready {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]any{
		"status":       status,
		"dependencies": results,
	})
}
