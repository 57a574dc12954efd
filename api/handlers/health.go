package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const HEALTH_RESPONSE = "OK"

// @Summary Check service liveness
// @Description Responds with a plain "OK" to indicate that the process is alive and serving.
// @Tags health
// @Accept plain
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func HealthHandler(c echo.Context) error {
	return c.String(http.StatusOK, HEALTH_RESPONSE)
}

// MethodNotAllowedHandler answers methods a path does not serve.
func MethodNotAllowedHandler(c echo.Context) error {
	return echo.ErrMethodNotAllowed
}
