package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memehouse/crew-ops/internal/engine"
	"github.com/memehouse/crew-ops/internal/utils"
)

// SessionHandler issues review-session tokens.  A session is nothing more
// than a signed role claim: the caller picks one of the reviewer roles and
// receives a bearer token carrying it.  There is no account, password or
// identity check behind the exchange; the role gates which fields the
// session may edit, not who the caller is.
type SessionHandler struct {
	Secret string // HS256 signing secret
	TTLMin int    // token lifetime in minutes
}

// CreateSession handles POST /v1/session.  The body must name one of the
// known reviewer roles; anything else is rejected with 400.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	role := strings.TrimSpace(body.Role)
	if !engine.KnownRole(role) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error": "unknown role",
			"roles": engine.Roles,
		})
	}
	tok, err := utils.NewSessionToken(h.Secret, role, h.TTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not issue token"})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"token":      tok.Token,
		"role":       role,
		"expires_at": tok.Exp,
	})
}
