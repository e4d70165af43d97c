package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/companyhub/directory-api/internal/api/envelope"
	"github.com/companyhub/directory-api/internal/core/domain"
)

const readinessTimeout = 3 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness checks. Dependency errors
// are logged, never returned to the caller.
type HealthHandler struct {
	db  Pinger
	log zerolog.Logger
}

func NewHealthHandler(db Pinger, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

type dependencyStatus struct {
	Status string `json:"status"`
}

type readinessResponse struct {
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Liveness handles GET /health. It only confirms the process is serving.
//
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  envelope.SuccessBody
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, envelope.Success("OK", nil))
}

// Readiness handles GET /health/ready by pinging PostgreSQL.
//
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  envelope.SuccessBody{data=readinessResponse}
// @Failure      503  {object}  envelope.ErrorBody
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error().Err(err).Str("dependency", "postgres").Msg("readiness check failed")
		deps := map[string]dependencyStatus{"postgres": {Status: "unhealthy"}}
		return c.JSON(http.StatusServiceUnavailable,
			envelope.Failure(domain.CodeInternal, "Service not ready", readinessResponse{Dependencies: deps}))
	}

	deps := map[string]dependencyStatus{"postgres": {Status: "ok"}}
	return c.JSON(http.StatusOK, envelope.Success("Ready", readinessResponse{Dependencies: deps}))
}
