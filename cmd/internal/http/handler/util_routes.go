package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Docker Compose healthcheck
func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
