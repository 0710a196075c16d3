package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/memehouse/crew-ops/internal/engine"     // reviewer role names used when gating route groups
	"github.com/memehouse/crew-ops/internal/handler"    // import the handlers that implement business logic
	"github.com/memehouse/crew-ops/internal/middleware" // import middleware for session authentication and role enforcement
)

// Handlers bundles every handler the server mounts so registration stays a
// single call from main.
type Handlers struct {
	Health   echo.HandlerFunc
	Session  *handler.SessionHandler
	Operator *handler.OperatorHandler
	Zone     *handler.ZoneHandler
	Shift    *handler.ShiftHandler
	Event    *handler.EventHandler
	Stats    *handler.StatsHandler
}

// RegisterRoutes wires the full HTTP surface onto the provided Echo
// instance.  /healthz and POST /v1/session are open; everything else under
// /v1 requires a session token carrying one of the reviewer roles.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string) {
	// Health check for load balancers and monitoring systems.
	e.GET("/healthz", h.Health)

	// Session issuance is the only unauthenticated /v1 operation: the
	// caller picks a reviewer role and receives a bearer token for it.
	e.POST("/v1/session", h.Session.CreateSession)

	// Every other endpoint requires a valid session.  RequireRole rejects
	// tokens whose role is missing or unknown.
	auth := e.Group("/v1")
	auth.Use(middleware.SessionAuth(jwtSecret))
	auth.Use(middleware.RequireRole(engine.Roles...))

	// Roster reads and derived views.
	auth.GET("/operators", h.Operator.ListOperators)
	auth.GET("/operators/emergency-pool", h.Operator.EmergencyPool)
	auth.GET("/operators/broadcast", h.Operator.BroadcastQualified)
	auth.GET("/operators/:id", h.Operator.GetOperator)

	// Roster writes.  Patch authorization is per field inside the
	// reconciliation layer, so the route itself stays open to all roles;
	// create and delete are staffing actions reserved for the production
	// lead and the hiring coordinator.
	auth.PATCH("/operators/:id", h.Operator.PatchOperator)
	staffing := middleware.RequireRole(engine.RoleProductionLead, engine.RoleHiringCoordinator)
	auth.POST("/operators", h.Operator.CreateOperator, staffing)
	auth.DELETE("/operators/:id", h.Operator.DeleteOperator, staffing)

	// Zone readiness report.
	auth.GET("/zones/report", h.Zone.ZoneReport)

	// Shift log and payroll.
	auth.GET("/shifts", h.Shift.ListShifts)
	auth.POST("/shifts", h.Shift.CreateShift)
	auth.DELETE("/shifts/:id", h.Shift.DeleteShift)

	// Event configuration.  Budget and dates are production-lead territory.
	auth.GET("/event", h.Event.GetEvent)
	auth.PATCH("/event", h.Event.PatchEvent, middleware.RequireRole(engine.RoleProductionLead))

	// Aggregated dashboard snapshot.
	auth.GET("/stats", h.Stats.Stats)
}
