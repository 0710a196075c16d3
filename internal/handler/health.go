package handler // declare the package name; contains HTTP handlers

import (
	"context"      // context carries the ping deadline
	"database/sql" // sql gives access to the connection pool for the ping
	"net/http"     // net/http provides status codes and response helpers
	"time"

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// Health returns a health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It pings the
// database with a short timeout; a failed ping reports 503 so orchestrators
// stop routing traffic to the instance.
func Health(db *sql.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "error": "database unreachable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
