package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/model"
	"github.com/memehouse/crew-ops/internal/repository"
	"github.com/memehouse/crew-ops/internal/roster"
)

// OperatorHandler serves the roster endpoints.  Reads come from the
// in-memory snapshot; creates and deletes go through storage first so the
// database assigns ids, then the snapshot is updated.  Patches flow through
// the reconciliation layer, which applies them locally and forwards them to
// storage off the request path.
type OperatorHandler struct {
	Roster *roster.Roster
	Repo   *repository.OperatorRepo
}

// ListOperators handles GET /v1/operators and returns the full snapshot in
// insertion order.
func (h *OperatorHandler) ListOperators(c echo.Context) error {
	items := h.Roster.List()
	return c.JSON(http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

// GetOperator handles GET /v1/operators/:id.
func (h *OperatorHandler) GetOperator(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	op, ok := h.Roster.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "operator not found"})
	}
	return c.JSON(http.StatusOK, op)
}

// CreateOperator handles POST /v1/operators.  Ids and op codes are assigned
// by storage; any id in the body is ignored.  Missing fields fall back to
// the roster defaults and the initial risk level is derived before the row
// is returned.
func (h *OperatorHandler) CreateOperator(c echo.Context) error {
	var body model.Operator
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	body.ID = 0
	body.OpCode = ""
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	if body.Tier == "" {
		body.Tier = model.TierT2
	}
	if !model.ValidTier(body.Tier) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown tier"})
	}
	if body.Zone == "" {
		body.Zone = model.ZoneFloater
	}
	if !model.ValidZone(body.Zone) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown zone"})
	}
	if body.Stage == "" {
		body.Stage = model.StageOutreach
	}
	if !model.ValidStage(body.Stage) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown hire stage"})
	}
	if body.Cred == "" {
		body.Cred = model.CredNotStarted
	}
	if !model.ValidCredState(body.Cred) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown credential status"})
	}
	if body.CredType == "" {
		body.CredType = model.CredTypeNone
	}
	if !model.ValidCredType(body.CredType) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown credential type"})
	}
	for _, g := range body.Gear {
		if !model.ValidGearTag(g) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown gear tag %q", g)})
		}
	}

	min, max, _ := model.TierRateBand(body.Tier)
	if body.Rate == 0 {
		body.Rate = min
	}
	if body.Rate < min || body.Rate > max {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("day rate %d outside %s band %d-%d", body.Rate, body.Tier, min, max),
		})
	}

	if body.Reliability == 0 {
		body.Reliability = model.DefaultReliability
	}
	if body.Reliability < 1 || body.Reliability > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "reliability must be 1-5"})
	}

	// The zone guard gates creation the same way it gates patches.
	if d := engine.CanAssign(body, body.Zone); !d.OK {
		return c.JSON(http.StatusConflict, map[string]string{"error": d.Reason, "zone": body.Zone})
	}

	body.Risk = engine.ClassifyRisk(body)

	if err := h.Repo.Create(c.Request().Context(), &body); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create operator"})
	}
	h.Roster.Add(body)
	return c.JSON(http.StatusCreated, body)
}

// PatchOperator handles PATCH /v1/operators/:id.  The body is a partial
// update keyed by API field names; the reviewer role from the session
// decides which fields may be written, and one denied field rejects the
// whole patch.
func (h *OperatorHandler) PatchOperator(c echo.Context) error {
	role, _ := c.Get("role").(string)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var patch model.Patch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	op, err := h.Roster.ApplyPatch(c.Request().Context(), role, id, patch)
	if err != nil {
		var denied *roster.DeniedFieldError
		var zone *roster.ZoneDeniedError
		var bad *model.PatchError
		switch {
		case errors.Is(err, roster.ErrUnknownOperator):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "operator not found"})
		case errors.As(err, &denied):
			return c.JSON(http.StatusForbidden, map[string]string{"error": denied.Error(), "field": denied.Field})
		case errors.As(err, &zone):
			return c.JSON(http.StatusConflict, map[string]string{"error": zone.Reason, "zone": zone.Zone})
		case errors.As(err, &bad):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": bad.Error(), "field": bad.Field})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "patch failed"})
		}
	}
	return c.JSON(http.StatusOK, op)
}

// DeleteOperator handles DELETE /v1/operators/:id.  The stored row is
// removed first; only then does the snapshot drop it.
func (h *OperatorHandler) DeleteOperator(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "operator not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete operator"})
	}
	h.Roster.Remove(id)
	return c.NoContent(http.StatusNoContent)
}

// EmergencyPool handles GET /v1/operators/emergency-pool: approved,
// reliable operators who can be pulled onto the floor at short notice.
func (h *OperatorHandler) EmergencyPool(c echo.Context) error {
	items := engine.EmergencyPool(h.Roster.List())
	return c.JSON(http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

// BroadcastQualified handles GET /v1/operators/broadcast: operators
// carrying at least one broadcast-grade gear tag.
func (h *OperatorHandler) BroadcastQualified(c echo.Context) error {
	items := engine.BroadcastQualified(h.Roster.List())
	return c.JSON(http.StatusOK, map[string]any{"items": items, "count": len(items)})
}
