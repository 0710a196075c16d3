package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memehouse/crew-ops/internal/engine"
)

func postJSON(t *testing.T, e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateSession(t *testing.T) {
	h := &SessionHandler{Secret: "test-secret", TTLMin: 60}
	e := echo.New()

	c, rec := postJSON(t, e, "/v1/session", `{"role":"Credential Manager"}`)
	require.NoError(t, h.CreateSession(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, engine.RoleCredentialManager, body.Role)

	tok, err := jwt.Parse(body.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, engine.RoleCredentialManager, claims["role"])
	_, hasSub := claims["sub"]
	assert.False(t, hasSub, "sessions carry a role, not an identity")
}

func TestCreateSessionUnknownRole(t *testing.T) {
	h := &SessionHandler{Secret: "test-secret", TTLMin: 60}
	e := echo.New()

	c, rec := postJSON(t, e, "/v1/session", `{"role":"Stage Manager"}`)
	require.NoError(t, h.CreateSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown role")
}
