package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/model"
	"github.com/memehouse/crew-ops/internal/repository"
	"github.com/memehouse/crew-ops/internal/roster"
)

// ShiftHandler serves the shift log.  Shifts are append-and-delete only;
// there is no shift update, a mistaken entry is deleted and re-entered.
type ShiftHandler struct {
	Repo   *repository.ShiftRepo
	Roster *roster.Roster
}

// shiftWithPay decorates a stored shift with its derived payroll breakdown.
type shiftWithPay struct {
	model.Shift
	Pay engine.ShiftPay `json:"pay"`
}

// ListShifts handles GET /v1/shifts, newest first, each with computed pay.
func (h *ShiftHandler) ListShifts(c echo.Context) error {
	shifts, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	items := make([]shiftWithPay, 0, len(shifts))
	for _, s := range shifts {
		items = append(items, shiftWithPay{Shift: s, Pay: engine.ComputeShiftPay(s)})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

// CreateShift handles POST /v1/shifts.  When an operator id is given the
// shift inherits the operator's name, zone and day rate unless the body
// overrides them; flat hours and the overtime multiplier fall back to the
// contract defaults.
func (h *ShiftHandler) CreateShift(c echo.Context) error {
	var body model.Shift
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	body.ID = 0
	body.ShiftCode = ""

	if body.OperatorID != nil {
		op, ok := h.Roster.Get(*body.OperatorID)
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "operator not found"})
		}
		if body.OperatorName == "" {
			body.OperatorName = op.Name
		}
		if body.Zone == "" {
			body.Zone = op.Zone
		}
		if body.DayRate == 0 {
			body.DayRate = float64(op.Rate)
		}
	}

	body.OperatorName = strings.TrimSpace(body.OperatorName)
	if body.OperatorName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "operatorName is required"})
	}
	if body.Date == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date is required"})
	}
	if body.Zone != "" && !model.ValidZone(body.Zone) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown zone"})
	}
	if body.BreakMinutes < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "breakMinutes must not be negative"})
	}
	if body.StartTime != nil && body.EndTime != nil && body.EndTime.Before(*body.StartTime) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "endTime before startTime"})
	}

	if body.FlatHours <= 0 {
		body.FlatHours = model.DefaultFlatHours
	}
	if body.OTMultiplier <= 0 {
		body.OTMultiplier = model.DefaultOTMultiplier
	}

	if err := h.Repo.Create(c.Request().Context(), &body); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create shift"})
	}
	return c.JSON(http.StatusCreated, shiftWithPay{Shift: body, Pay: engine.ComputeShiftPay(body)})
}

// DeleteShift handles DELETE /v1/shifts/:id.
func (h *ShiftHandler) DeleteShift(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "shift not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete shift"})
	}
	return c.NoContent(http.StatusNoContent)
}
