package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/roster"
)

// ZoneHandler serves the per-zone readiness report.
type ZoneHandler struct {
	Roster *roster.Roster
}

// ZoneReport handles GET /v1/zones/report.  The report covers every zone,
// counting confirmed operators and flagging those whose access the guard
// would reject.
func (h *ZoneHandler) ZoneReport(c echo.Context) error {
	reports := engine.ZoneReadiness(h.Roster.List())
	return c.JSON(http.StatusOK, map[string]any{"zones": reports})
}
