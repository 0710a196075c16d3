package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/model"
	"github.com/memehouse/crew-ops/internal/repository"
	"github.com/memehouse/crew-ops/internal/roster"
)

// StatsHandler serves the aggregated dashboard snapshot.
type StatsHandler struct {
	Roster    *roster.Roster
	ShiftRepo *repository.ShiftRepo
	EventRepo *repository.EventRepo
}

// Stats handles GET /v1/stats.  The three inputs are gathered concurrently;
// any fetch failure fails the whole request rather than serving a snapshot
// computed from partial data.
func (h *StatsHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		wg     sync.WaitGroup
		ops    []model.Operator
		shifts []model.Shift
		ev     *model.Event
		errs   [2]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		ops = h.Roster.List()
	}()
	go func() {
		defer wg.Done()
		shifts, errs[0] = h.ShiftRepo.List(ctx)
	}()
	go func() {
		defer wg.Done()
		ev, errs[1] = h.EventRepo.Get(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not gather stats inputs"})
		}
	}

	return c.JSON(http.StatusOK, engine.ComputeStats(ops, shifts, *ev))
}
