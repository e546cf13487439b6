package handler

import (
	"net/http"

	"todo/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness for probes and load balancers.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
