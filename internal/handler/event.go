package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memehouse/crew-ops/internal/repository"
)

// EventHandler serves the singleton event configuration record.
type EventHandler struct {
	Repo *repository.EventRepo
}

// GetEvent handles GET /v1/event.
func (h *EventHandler) GetEvent(c echo.Context) error {
	ev, err := h.Repo.Get(c.Request().Context())
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not configured"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, ev)
}

// PatchEvent handles PATCH /v1/event.  Only the name, dates and the labor
// budget cap are writable; the budget feeds the remaining-budget figure on
// the stats endpoint.
func (h *EventHandler) PatchEvent(c echo.Context) error {
	var body struct {
		Name           *string  `json:"name"`
		StartDate      *string  `json:"startDate"`
		EndDate        *string  `json:"endDate"`
		LaborBudgetCap *float64 `json:"laborBudgetCap"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	cols := make(map[string]any, 4)
	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "name must not be empty"})
		}
		cols["event_name"] = name
	}
	if body.StartDate != nil {
		cols["start_date"] = *body.StartDate
	}
	if body.EndDate != nil {
		cols["end_date"] = *body.EndDate
	}
	if body.LaborBudgetCap != nil {
		if *body.LaborBudgetCap < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "laborBudgetCap must not be negative"})
		}
		cols["labor_budget_cap"] = *body.LaborBudgetCap
	}

	ev, err := h.Repo.Patch(c.Request().Context(), cols)
	if err != nil {
		if errors.Is(err, repository.ErrNoFields) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "no fields"})
		}
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "event not configured"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update event"})
	}
	return c.JSON(http.StatusOK, ev)
}
