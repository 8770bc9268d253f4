package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecap-org/ecap-directory/internal/auth"
)

type stubLookup struct {
	known map[string]bool
	err   error
}

func (s stubLookup) AdminExists(_ context.Context, id string) (bool, error) {
	return s.known[id], s.err
}

func setupRouter(t *testing.T, lookup AdminLookup) (*gin.Engine, *auth.Tokens) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokens("mw-secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", RequireAdmin(tokens, lookup), func(c *gin.Context) {
		s, ok := auth.CurrentSession(c)
		require.True(t, ok)
		fromCtx, ok := auth.SessionFrom(c.Request.Context())
		require.True(t, ok)
		assert.Equal(t, s, fromCtx)
		c.JSON(http.StatusOK, gin.H{"id": s.AdminID, "email": s.Email})
	})
	return r, tokens
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequireAdmin(t *testing.T) {
	lookup := stubLookup{known: map[string]bool{"admin-1": true}}
	r, tokens := setupRouter(t, lookup)

	valid, err := tokens.Sign(auth.Claims{ID: "admin-1", Email: "admin@ecap.com"})
	require.NoError(t, err)
	ghost, err := tokens.Sign(auth.Claims{ID: "deleted-admin", Email: "gone@ecap.com"})
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		rr := doGet(r, "Bearer "+valid)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":"admin-1","email":"admin@ecap.com"}`, rr.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		rr := doGet(r, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"missing authorization token"}`, rr.Body.String())
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rr := doGet(r, "Token "+valid)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rr := doGet(r, "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, rr.Body.String())
	})

	t.Run("admin no longer exists", func(t *testing.T) {
		rr := doGet(r, "Bearer "+ghost)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireAdmin_LookupFailure(t *testing.T) {
	r, tokens := setupRouter(t, stubLookup{err: errors.New("db down")})
	token, err := tokens.Sign(auth.Claims{ID: "admin-1", Email: "a@b.c"})
	require.NoError(t, err)

	rr := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRequireAdmin_NilLookup(t *testing.T) {
	r, tokens := setupRouter(t, nil)
	token, err := tokens.Sign(auth.Claims{ID: "anyone", Email: "a@b.c"})
	require.NoError(t, err)

	rr := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rr.Code)
}
