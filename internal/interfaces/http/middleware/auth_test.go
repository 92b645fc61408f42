package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myra/internal/infrastructure/auth"
	"myra/internal/shared/constants"
	"myra/internal/shared/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService("test-secret", 60)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m := NewAuthMiddleware(jwtService, log)

	r := gin.New()
	protected := r.Group("/protected", m.RequireAuth())
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetUint(constants.ContextKeyUserID),
			"role":   c.GetString(constants.ContextKeyUserRole),
		})
	})
	admin := r.Group("/admin", m.RequireAuth(), m.RequireRole(constants.RoleAdmin))
	admin.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, jwtService
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	r, jwtService := newTestRouter(t)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", 60)
		token, err := other.Generate(12, constants.RoleRangeOfficer)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token populates the request context", func(t *testing.T) {
		token, err := jwtService.Generate(12, constants.RoleRangeOfficer)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":12,"role":"myra_range_officer"}`, w.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewJWTService("test-secret", -5)
		token, err := expired.Generate(12, constants.RoleRangeOfficer)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	r, jwtService := newTestRouter(t)

	t.Run("admin passes", func(t *testing.T) {
		token, err := jwtService.Generate(1, constants.RoleAdmin)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("officer forbidden", func(t *testing.T) {
		token, err := jwtService.Generate(12, constants.RoleRangeOfficer)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
